package kociemba

import (
	"strings"
	"testing"
	"time"
)

// applyTokens applies a sequence of notation tokens ("R", "U'", "F2", ...)
// to the solved cube and returns the resulting facelet string.
func applyTokens(t *testing.T, tokens ...string) string {
	t.Helper()
	c := newSolvedCubie()
	for _, tok := range tokens {
		m, ok := parseMoveToken(tok)
		if !ok {
			t.Fatalf("bad test fixture token %q", tok)
		}
		c = applyMove(c, m)
	}
	return cubieToFacelet(c)
}

func TestSolveAlreadySolved(t *testing.T) {
	got := Solve(solvedFacelets, 20, 5*time.Second, ModeOptimal)
	if got != "" {
		t.Errorf("Solve(solved) = %q, want \"\"", got)
	}
}

func TestSolveSingleTurnIsOptimal(t *testing.T) {
	s := applyTokens(t, "R")
	got := Solve(s, 20, 10*time.Second, ModeOptimal)
	if got != "R'" {
		t.Errorf("Solve(one R turn) = %q, want %q", got, "R'")
	}
}

func TestSolveCommutatorSixTimesIsSolved(t *testing.T) {
	// [R,U] = R U R' U' has order 6: applying it six times returns the
	// cube to the solved state.
	tokens := []string{}
	for i := 0; i < 6; i++ {
		tokens = append(tokens, "R", "U", "R'", "U'")
	}
	s := applyTokens(t, tokens...)
	got := Solve(s, 5, 5*time.Second, ModeOptimal)
	if got != "" {
		t.Errorf("Solve((RUR'U')^6) = %q, want \"\"", got)
	}
}

func TestSolveScrambleSolvesWithinScrambleLength(t *testing.T) {
	tokens := []string{"R", "U2", "F'", "D", "B2", "L", "U", "R2", "F", "D'",
		"B", "L2", "U'", "R", "F2", "D2", "B'", "L'"}
	s := applyTokens(t, tokens...)
	got := Solve(s, len(tokens), 20*time.Second, ModeOptimal)
	if strings.HasPrefix(got, "Error: ") {
		t.Fatalf("Solve(scramble) returned an error: %s", got)
	}
	if n := len(strings.Fields(got)); n > len(tokens) {
		t.Errorf("Solve(scramble) used %d moves, want <= %d (the scramble length)", n, len(tokens))
	}
}

func TestSolveBadParityReportsError(t *testing.T) {
	c := newSolvedCubie()
	c.cp[0], c.cp[1] = c.cp[1], c.cp[0] // swap two corners, leave orientation untouched
	s := cubieToFacelet(c)
	got := Solve(s, 20, 5*time.Second, ModeOptimal)
	if got != "Error: bad parity" {
		t.Errorf("Solve(bad parity cube) = %q, want %q", got, "Error: bad parity")
	}
}

func TestSolveFastModeIsQuick(t *testing.T) {
	tokens := []string{"R", "U2", "F'", "D", "B2", "L", "U", "R2", "F", "D'",
		"B", "L2", "U'", "R", "F2", "D2", "B'", "L'", "U2", "R'", "F", "D2",
		"B", "L'", "U"}
	s := applyTokens(t, tokens...)

	start := time.Now()
	got := Solve(s, 50, 3*time.Second, ModeFast)
	elapsed := time.Since(start)

	if strings.HasPrefix(got, "Error: ") {
		t.Fatalf("Solve(fast, 25-move scramble) returned an error: %s", got)
	}
	if elapsed > 3*time.Second {
		t.Errorf("fast-mode solve took %v, want under the 3s budget", elapsed)
	}
}

func TestVerifyReplaysMoves(t *testing.T) {
	s := applyTokens(t, "R", "U")
	ok, err := Verify(s, "U' R'")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Errorf("Verify(R U, solved by U' R') = false, want true")
	}
}

func TestVerifyRejectsWrongMoves(t *testing.T) {
	s := applyTokens(t, "R")
	ok, err := Verify(s, "U")
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Errorf("Verify(R, \"undone\" by U) = true, want false")
	}
}
