package cube

import "testing"

func TestFaceletStringOfSolvedCube(t *testing.T) {
	c := NewCube(3)
	s, err := faceletString(c)
	if err != nil {
		t.Fatalf("faceletString(solved): %v", err)
	}
	if len(s) != 54 {
		t.Fatalf("faceletString length = %d, want 54", len(s))
	}
	// Each face's 9 stickers must share one letter, and all 6 letters
	// used must be distinct.
	seen := map[byte]bool{}
	for i := 0; i < 6; i++ {
		letter := s[i*9]
		for j := 0; j < 9; j++ {
			if s[i*9+j] != letter {
				t.Fatalf("face %d is not uniform: %q", i, s[i*9:i*9+9])
			}
		}
		if seen[letter] {
			t.Fatalf("letter %q used for more than one face", letter)
		}
		seen[letter] = true
	}
}

func TestFaceletStringRejectsNon3x3(t *testing.T) {
	c := NewCube(4)
	if _, err := faceletString(c); err == nil {
		t.Error("faceletString(4x4x4) should return an error")
	}
}

func TestKociembaSolverSolvesSolvedCube(t *testing.T) {
	c := NewCube(3)
	solver := &KociembaSolver{}
	result, err := solver.Solve(c)
	if err != nil {
		t.Fatalf("Solve(solved): %v", err)
	}
	if len(result.Solution) != 0 {
		t.Errorf("Solve(solved) produced %d moves, want 0", len(result.Solution))
	}
}

func TestKociembaSolverSolvesSingleTurn(t *testing.T) {
	c := NewCube(3)
	c.ApplyMove(Move{Face: Right, Clockwise: true})

	solver := &KociembaSolver{}
	result, err := solver.Solve(c)
	if err != nil {
		t.Fatalf("Solve(R): %v", err)
	}
	c.ApplyMoves(result.Solution)
	if !c.IsSolved() {
		t.Errorf("applying the Kociemba solution did not solve the cube")
	}
}
