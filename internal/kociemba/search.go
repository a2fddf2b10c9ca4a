package kociemba

import "time"

// maxStackDepth bounds the search stack: 30 for optimal plus headroom, 50
// for fast mode per spec §3's stated lifecycle maxima. One fixed array
// serves both; no per-node heap allocation happens in the hot path.
const maxStackDepth = 61

// searchState is the fixed-size stack the IDA* traversal walks. It is
// private to one Solve call and cheap to allocate once per call.
type searchState struct {
	t *tables

	axis  [maxStackDepth]int
	power [maxStackDepth]int // 0=quarter cw, 1=half, 2=quarter ccw

	flip, twist, frToBR   [maxStackDepth]int
	urfToDLF, urToUL      [maxStackDepth]int
	ubToDF, parity        [maxStackDepth]int
	urToDF                [maxStackDepth]int // only meaningful from the phase-1/2 boundary onward

	phase2Cap   int
	maxTotal    int
	deadline    time.Time
	timedOut    bool
	solvedDepth int
}

func sliceOf(frToBR int) int { return frToBR / 24 }

// canFollow applies the move-enumeration rules shared by both phases: no
// consecutive moves on the same axis, and opposite-face pairs canonicalized
// to always apply the lower-indexed face first.
func canFollow(prevAxis, axis int) bool {
	if prevAxis < 0 {
		return true
	}
	if prevAxis == axis {
		return false
	}
	if prevAxis == axis+3 {
		return false
	}
	return true
}

// phase2PowerAllowed enforces the phase-2 restriction: axes R,F,L,B only
// move as half turns; U,D allow all three powers.
func phase2PowerAllowed(axis, power int) bool {
	if axis == axisU || axis == axisD {
		return true
	}
	return power == 1
}

func (s *searchState) expired() bool {
	if s.timedOut {
		return true
	}
	if !s.deadline.IsZero() && time.Now().After(s.deadline) {
		s.timedOut = true
		return true
	}
	return false
}

// phase1 extends the move sequence looking for an entry into G1
// (twist=flip=slice=0); each time it reaches one, it immediately attempts
// to complete phase 2 from there before trying to extend phase 1 further.
func (s *searchState) phase1(depth int) bool {
	if s.expired() {
		return false
	}
	h := max(s.t.pruneSliceFlip(sliceOf(s.frToBR[depth]), s.flip[depth]), s.t.pruneSliceTwist(sliceOf(s.frToBR[depth]), s.twist[depth]))
	if h == 0 {
		budget := s.phase2Cap
		if s.maxTotal-depth < budget {
			budget = s.maxTotal - depth
		}
		if budget >= 0 {
			urToDF := int(s.t.mergeURtoDF[s.urToUL[depth]][s.ubToDF[depth]])
			if urToDF >= 0 {
				s.urToDF[depth] = urToDF
				if s.phase2(depth, budget) {
					return true
				}
			}
		}
	}
	if depth >= s.maxTotal || depth+h > s.maxTotal {
		return false
	}
	prevAxis := -1
	if depth > 0 {
		prevAxis = s.axis[depth-1]
	}
	for axis := 0; axis < numAxes; axis++ {
		if !canFollow(prevAxis, axis) {
			continue
		}
		for power := 0; power < 3; power++ {
			m := 3*axis + power
			s.axis[depth] = axis
			s.power[depth] = power
			s.flip[depth+1] = int(s.t.flipMove[s.flip[depth]][m])
			s.twist[depth+1] = int(s.t.twistMove[s.twist[depth]][m])
			s.frToBR[depth+1] = int(s.t.frToBRMove[s.frToBR[depth]][m])
			s.urfToDLF[depth+1] = int(s.t.urfToDLFMove[s.urfToDLF[depth]][m])
			s.urToUL[depth+1] = int(s.t.urToULMove[s.urToUL[depth]][m])
			s.ubToDF[depth+1] = int(s.t.ubToDFMove[s.ubToDF[depth]][m])
			s.parity[depth+1] = int(s.t.parityMove[s.parity[depth]][m])
			if s.phase1(depth + 1) {
				return true
			}
			if s.timedOut {
				return false
			}
		}
	}
	return false
}

// phase2 extends the move sequence within G1 looking for the solved state.
func (s *searchState) phase2(depth, togo int) bool {
	if s.expired() {
		return false
	}
	h := max(s.t.pruneURFtoDLFParity(s.urfToDLF[depth], s.frToBR[depth]%24, s.parity[depth]),
		s.t.pruneURtoDFParity(s.urToDF[depth], s.frToBR[depth]%24, s.parity[depth]))
	if h == 0 {
		s.solvedDepth = depth
		return true
	}
	if togo == 0 || h > togo {
		return false
	}
	prevAxis := -1
	if depth > 0 {
		prevAxis = s.axis[depth-1]
	}
	for mi, m := range phase2Moves {
		axis := m / 3
		power := m % 3
		if !canFollow(prevAxis, axis) || !phase2PowerAllowed(axis, power) {
			continue
		}
		s.axis[depth] = axis
		s.power[depth] = power
		s.frToBR[depth+1] = int(s.t.frToBRMove[s.frToBR[depth]][m])
		s.urfToDLF[depth+1] = int(s.t.urfToDLFMove[s.urfToDLF[depth]][m])
		s.urToDF[depth+1] = int(s.t.urToDFMove[s.urToDF[depth]][mi])
		s.parity[depth+1] = int(s.t.parityMove[s.parity[depth]][m])
		if s.phase2(depth+1, togo-1) {
			return true
		}
		if s.timedOut {
			return false
		}
	}
	return false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
