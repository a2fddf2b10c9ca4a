package cube

import (
	"fmt"
	"strings"
	"time"

	"github.com/ehrlich-b/cube/internal/kociemba"
)

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// Solver interface for different solving algorithms
type Solver interface {
	Solve(cube *Cube) (*SolverResult, error)
	Name() string
}

// BeginnerSolver implements a basic layer-by-layer method
type BeginnerSolver struct{}

func (s *BeginnerSolver) Name() string {
	return "Beginner"
}

func (s *BeginnerSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// This is a placeholder implementation
	// A real beginner solver would implement:
	// 1. White cross
	// 2. White corners (first layer)
	// 3. Middle layer edges
	// 4. Yellow cross
	// 5. Yellow face
	// 6. Permute last layer
	
	solution := []Move{
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// CFOPSolver implements the CFOP method
type CFOPSolver struct{}

func (s *CFOPSolver) Name() string {
	return "CFOP"
}

func (s *CFOPSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// Placeholder CFOP implementation
	// Real CFOP would implement:
	// 1. Cross
	// 2. F2L (First Two Layers)
	// 3. OLL (Orient Last Layer)
	// 4. PLL (Permute Last Layer)
	
	solution := []Move{
		{Face: Front, Clockwise: true},
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
		{Face: Front, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// KociembaSolver implements Kociemba's two-phase algorithm
type KociembaSolver struct{}

func (s *KociembaSolver) Name() string {
	return "Kociemba"
}

// kociembaFaceOrder lists the internal faces in U,R,F,D,L,B order, matching
// the canonical Yellow-up/Blue-front orientation cfen.GenerateCFEN uses.
var kociembaFaceOrder = [6]Face{Up, Right, Front, Down, Left, Back}

// faceletString renders a 3x3x3 cube as the 54-char URFDLB facelet string
// the kociemba package consumes. The letter for a sticker is derived from
// which face's center shares its color, not from a fixed color table, so
// any consistent cube orientation produces a valid string.
func faceletString(c *Cube) (string, error) {
	if c.Size != 3 {
		return "", fmt.Errorf("Kociemba algorithm only supports 3x3x3 cubes")
	}

	var colorLetter [6]byte
	for i, face := range kociembaFaceOrder {
		center := c.Faces[face][1][1]
		colorLetter[center] = "URFDLB"[i]
	}

	var sb strings.Builder
	for _, face := range kociembaFaceOrder {
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				sb.WriteByte(colorLetter[c.Faces[face][row][col]])
			}
		}
	}
	return sb.String(), nil
}

// kociembaNotationToMove turns one token of the solver's output ("R", "R2",
// "R'") into a Move, reusing the notation parser the rest of the package
// already exposes.
func kociembaNotationToMove(tok string) (Move, error) {
	return ParseMove(tok)
}

func (s *KociembaSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()

	facelets, err := faceletString(cube)
	if err != nil {
		return nil, err
	}

	result := kociemba.Solve(facelets, 25, 10*time.Second, kociemba.ModeOptimal)
	if strings.HasPrefix(result, "Error: ") {
		return nil, fmt.Errorf("kociemba: %s", strings.TrimPrefix(result, "Error: "))
	}

	var solution []Move
	if result != "" {
		for _, tok := range strings.Fields(result) {
			move, err := kociembaNotationToMove(tok)
			if err != nil {
				return nil, fmt.Errorf("kociemba: unparseable move %q: %w", tok, err)
			}
			solution = append(solution, move)
		}
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// GetSolver returns a solver by name
func GetSolver(name string) (Solver, error) {
	switch name {
	case "beginner":
		return &BeginnerSolver{}, nil
	case "cfop":
		return &CFOPSolver{}, nil
	case "kociemba":
		return &KociembaSolver{}, nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}