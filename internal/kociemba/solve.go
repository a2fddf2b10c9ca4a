package kociemba

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Mode selects between the two search variants spec'd in §4.5/§6.
type Mode int

const (
	// ModeOptimal iterates the depth limit upward from 1 and returns the
	// first (hence shortest) solution found.
	ModeOptimal Mode = iota
	// ModeFast starts at the initial heuristic estimate and jumps the
	// depth limit by 7 on exhaustion, trading optimality for speed.
	ModeFast
)

func (m Mode) String() string {
	if m == ModeFast {
		return "fast"
	}
	return "optimal"
}

const (
	defaultOptimalCap = 25
	defaultFastCap    = 50
	phase2CapOptimal  = 10
	phase2CapFast     = 25
)

var (
	tablesOnce sync.Once
	loadedTbl  *tables
)

// ensureTables performs the one-time, race-free table initialization spec
// §5 requires: load from cache, or generate and cache on a miss. Safe for
// concurrent callers; only the first pays the cost.
func ensureTables() *tables {
	tablesOnce.Do(func() {
		path := defaultCachePath()
		if t, ok := loadTables(path); ok {
			loadedTbl = t
			return
		}
		t := generateTables()
		loadedTbl = t
		saveTables(path, t)
	})
	return loadedTbl
}

var (
	errTimeout      = errors.New("timeout")
	errNoSolution   = errors.New("no solution in limit")
	errInvalidDepth = errors.New("max depth must be positive")
)

// Solve is the primary, synchronous API (spec §6): given a 54-character
// facelet string, a move-count budget, a wall-clock timeout and a search
// mode, it returns a space-separated move sequence, or a string beginning
// with "Error: " naming the failure.
func Solve(cubeString string, maxDepth int, timeout time.Duration, mode Mode) string {
	seq, err := solveCube(cubeString, maxDepth, timeout, mode)
	if err != nil {
		return "Error: " + errorToken(err)
	}
	return seq
}

// errorToken strips pkg/errors' added stack context back down to the bare
// message spec §6's error vocabulary expects.
func errorToken(err error) string {
	return errors.Cause(err).Error()
}

func solveCube(cubeString string, maxDepth int, timeout time.Duration, mode Mode) (string, error) {
	if maxDepth <= 0 {
		return "", errInvalidDepth
	}
	facelets, err := parseFacelets(cubeString)
	if err != nil {
		return "", err
	}
	cube, err := faceletToCubie(facelets)
	if err != nil {
		return "", err
	}
	switch v := cube.verify(); v {
	case VerifyOK:
	case VerifyBadCornerPerm:
		return "", ErrBadCorner
	case VerifyBadEdgePerm:
		return "", ErrBadEdge
	case VerifyBadFlip:
		return "", ErrBadFlip
	case VerifyBadTwist:
		return "", ErrBadTwist
	case VerifyBadParity:
		return "", ErrBadParity
	default:
		return "", errors.Errorf("unexpected verification result: %s", v)
	}

	t := ensureTables()

	s := &searchState{t: t}
	s.twist[0] = cube.getTwist()
	s.flip[0] = cube.getFlip()
	s.frToBR[0] = cube.getFRtoBR()
	s.urfToDLF[0] = cube.getURFtoDLF()
	s.urToUL[0] = cube.getURtoUL()
	s.ubToDF[0] = cube.getUBtoDF()
	s.parity[0] = cube.cornerParity()

	if s.twist[0] == 0 && s.flip[0] == 0 && s.frToBR[0] == 0 && s.urfToDLF[0] == 0 &&
		s.parity[0] == 0 && cube.getURtoDF() == 0 {
		return "", nil
	}

	if timeout <= 0 {
		timeout = time.Hour // "no timeout" in practice; callers pass a real budget
	}
	s.deadline = time.Now().Add(timeout)

	switch mode {
	case ModeFast:
		return runFast(s, maxDepth)
	default:
		return runOptimal(s, maxDepth)
	}
}

func runOptimal(s *searchState, maxDepth int) (string, error) {
	cap := maxDepth
	if cap > defaultOptimalCap {
		cap = defaultOptimalCap
	}
	for d := 1; d <= cap; d++ {
		s.maxTotal = d
		s.phase2Cap = phase2CapOptimal
		if s.phase1(0) {
			return formatSolution(s.axis[:], s.power[:], s.solvedDepth), nil
		}
		if s.timedOut {
			return "", errTimeout
		}
	}
	return "", errNoSolution
}

func runFast(s *searchState, maxDepth int) (string, error) {
	cap := maxDepth
	if cap > defaultFastCap {
		cap = defaultFastCap
	}
	h0 := max(s.t.pruneSliceFlip(sliceOf(s.frToBR[0]), s.flip[0]), s.t.pruneSliceTwist(sliceOf(s.frToBR[0]), s.twist[0]))
	for d := h0; d <= cap; d += 7 {
		s.maxTotal = d
		s.phase2Cap = phase2CapFast
		if s.phase1(0) {
			return formatSolution(s.axis[:], s.power[:], s.solvedDepth), nil
		}
		if s.timedOut {
			return "", errTimeout
		}
	}
	return "", errNoSolution
}

// Verify replays a move sequence (as produced by Solve) against the given
// starting facelet string and reports whether it lands on the solved
// state. Used by the CLI's --verify flag and by tests.
func Verify(cubeString, moves string) (bool, error) {
	facelets, err := parseFacelets(cubeString)
	if err != nil {
		return false, err
	}
	cube, err := faceletToCubie(facelets)
	if err != nil {
		return false, err
	}
	if moves != "" {
		for _, tok := range splitMoves(moves) {
			m, ok := parseMoveToken(tok)
			if !ok {
				return false, errors.Errorf("bad move token %q", tok)
			}
			cube = applyMove(cube, m)
		}
	}
	return cube.getTwist() == 0 && cube.getFlip() == 0 && cube.getFRtoBR() == 0 &&
		cube.getURFtoDLF() == 0 && cube.cornerParity() == 0 && cube.getURtoDF() == 0, nil
}

func splitMoves(s string) []string {
	var out []string
	start := -1
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	return out
}
