package kociemba

import "testing"

func TestSolvedCubeVerifiesOK(t *testing.T) {
	c := newSolvedCubie()
	if v := c.verify(); v != VerifyOK {
		t.Errorf("newSolvedCubie().verify() = %v, want VerifyOK", v)
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for m := 0; m < numMoves; m += 3 { // one quarter turn per axis
		c := newSolvedCubie()
		for i := 0; i < 4; i++ {
			c = applyMove(c, m)
		}
		if *c != *newSolvedCubie() {
			t.Errorf("move %d applied four times did not return to solved state: %+v", m, c)
		}
	}
}

func TestTwoHalfTurnsIsIdentity(t *testing.T) {
	for axis := 0; axis < numAxes; axis++ {
		m := 3*axis + 1 // half turn
		c := newSolvedCubie()
		c = applyMove(c, m)
		c = applyMove(c, m)
		if *c != *newSolvedCubie() {
			t.Errorf("half turn on axis %d applied twice did not return to solved state", axis)
		}
	}
}

func TestCornerAndEdgeMultiplyMatchFullMultiply(t *testing.T) {
	a := applyMove(newSolvedCubie(), 0)
	b := applyMove(newSolvedCubie(), 9)

	full := a.clone()
	full.multiply(b)

	split := a.clone()
	split.cornerMultiply(b)
	split.edgeMultiply(b)

	if split.cp != full.cp || split.co != full.co || split.ep != full.ep || split.eo != full.eo {
		t.Errorf("cornerMultiply+edgeMultiply diverged from multiply:\nsplit=%+v\nfull=%+v", split, full)
	}
}

func TestVerifyCatchesBadTwist(t *testing.T) {
	c := newSolvedCubie()
	c.co[0] = 1 // unbalance the corner twist sum
	if v := c.verify(); v != VerifyBadTwist {
		t.Errorf("verify() with unbalanced co = %v, want VerifyBadTwist", v)
	}
}

func TestVerifyCatchesBadFlip(t *testing.T) {
	c := newSolvedCubie()
	c.eo[0] = 1 // unbalance the edge flip sum
	if v := c.verify(); v != VerifyBadFlip {
		t.Errorf("verify() with unbalanced eo = %v, want VerifyBadFlip", v)
	}
}

func TestVerifyCatchesBadParity(t *testing.T) {
	c := newSolvedCubie()
	c.cp[0], c.cp[1] = c.cp[1], c.cp[0] // odd corner permutation alone
	if v := c.verify(); v != VerifyBadParity {
		t.Errorf("verify() with mismatched parities = %v, want VerifyBadParity", v)
	}
}
