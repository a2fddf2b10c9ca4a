package cube

import "testing"

func TestGetSolver(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantErr   bool
	}{
		{"Beginner solver", "beginner", "Beginner", false},
		{"CFOP solver", "cfop", "CFOP", false},
		{"Kociemba solver", "kociemba", "Kociemba", false},
		{"Invalid solver", "invalid", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := GetSolver(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetSolver(%q) error = %v, wantErr %v", tt.algorithm, err, tt.wantErr)
				return
			}
			if !tt.wantErr && solver.Name() != tt.wantName {
				t.Errorf("GetSolver(%q).Name() = %q, want %q", tt.algorithm, solver.Name(), tt.wantName)
			}
		})
	}
}

func TestBeginnerSolverOnSolvedCube(t *testing.T) {
	cube := NewCube(3)
	solver := &BeginnerSolver{}

	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("BeginnerSolver.Solve() error = %v", err)
	}

	// BeginnerSolver is still a placeholder: it returns a fixed sequence
	// regardless of input.
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal solution length (%d)", result.Steps, len(result.Solution))
	}
	if result.Duration < 0 {
		t.Error("Duration should not be negative")
	}
}

func TestKociembaSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4) // 4x4x4 cube
	solver := &KociembaSolver{}

	_, err := solver.Solve(cube)
	if err == nil {
		t.Error("KociembaSolver should reject 4x4x4 cubes")
	}
}
