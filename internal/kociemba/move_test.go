package kociemba

import "testing"

func TestFormatSolutionEmpty(t *testing.T) {
	if got := formatSolution([]int{}, []int{}, 0); got != "" {
		t.Errorf("formatSolution of empty = %q, want \"\"", got)
	}
}

func TestFormatSolutionNotation(t *testing.T) {
	axis := []int{axisR, axisU, axisR}
	power := []int{2, 0, 1} // R' U R2
	if got := formatSolution(axis, power, 3); got != "R' U R2" {
		t.Errorf("formatSolution = %q, want %q", got, "R' U R2")
	}
}

func TestParseMoveTokenRoundTrip(t *testing.T) {
	for axis := 0; axis < numAxes; axis++ {
		for power := 0; power < 3; power++ {
			m := 3*axis + power
			tok := formatSolution([]int{axis}, []int{power}, 1)
			got, ok := parseMoveToken(tok)
			if !ok {
				t.Fatalf("parseMoveToken(%q) failed to parse", tok)
			}
			if got != m {
				t.Errorf("parseMoveToken(%q) = %d, want %d", tok, got, m)
			}
		}
	}
}

func TestParseMoveTokenRejectsGarbage(t *testing.T) {
	for _, tok := range []string{"", "X", "R3", "UU"} {
		if _, ok := parseMoveToken(tok); ok {
			t.Errorf("parseMoveToken(%q) should have failed", tok)
		}
	}
}
