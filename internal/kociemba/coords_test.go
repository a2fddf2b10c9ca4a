package kociemba

import "testing"

func TestTwistRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for twist := 0; twist < nTwist; twist += 37 { // sample, not exhaustive
		c.setTwist(twist)
		if got := c.getTwist(); got != twist {
			t.Fatalf("twist round trip: set %d, got %d", twist, got)
		}
	}
}

func TestFlipRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for flip := 0; flip < nFlip; flip += 31 {
		c.setFlip(flip)
		if got := c.getFlip(); got != flip {
			t.Fatalf("flip round trip: set %d, got %d", flip, got)
		}
	}
}

func TestFRtoBRRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for idx := 0; idx < nFRtoBR; idx += 113 {
		c.setFRtoBR(idx)
		if got := c.getFRtoBR(); got != idx {
			t.Fatalf("FRtoBR round trip: set %d, got %d", idx, got)
		}
	}
}

func TestURFtoDLFRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for idx := 0; idx < nURFtoDLF; idx += 191 {
		c.setURFtoDLF(idx)
		if got := c.getURFtoDLF(); got != idx {
			t.Fatalf("URFtoDLF round trip: set %d, got %d", idx, got)
		}
	}
}

func TestURtoULRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for idx := 0; idx < nURtoUL; idx += 13 {
		c.setURtoUL(idx)
		if got := c.getURtoUL(); got != idx {
			t.Fatalf("URtoUL round trip: set %d, got %d", idx, got)
		}
	}
}

func TestUBtoDFRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for idx := 0; idx < nUBtoDF; idx += 13 {
		c.setUBtoDF(idx)
		if got := c.getUBtoDF(); got != idx {
			t.Fatalf("UBtoDF round trip: set %d, got %d", idx, got)
		}
	}
}

func TestURtoDFRoundTrip(t *testing.T) {
	c := newSolvedCubie()
	for idx := 0; idx < nURtoDF; idx += 191 {
		c.setURtoDF(idx)
		if got := c.getURtoDF(); got != idx {
			t.Fatalf("URtoDF round trip: set %d, got %d", idx, got)
		}
	}
}

func TestMergeURtoDFDetectsOverlap(t *testing.T) {
	// Index 0 for both URtoUL and UBtoDF puts their three edges in slots
	// 0..2, so the two claim the same slots and the merge must report -1.
	if merged := mergeURtoDF(0, 0); merged != -1 {
		t.Errorf("mergeURtoDF(0, 0) = %d, want -1", merged)
	}
	// The solved cube's values (URtoUL 0, UBtoDF 114) are disjoint and merge
	// to the solved URtoDF.
	if merged := mergeURtoDF(0, 114); merged != 0 {
		t.Errorf("mergeURtoDF(0, 114) = %d, want 0", merged)
	}
}

func TestSolvedCoordinates(t *testing.T) {
	c := newSolvedCubie()
	// UB,DR,DF sit in slots 3..5 when solved, so UBtoDF is C(3,1)+C(4,2)+C(5,3) = 19 times 3! = 114.
	if c.getTwist() != 0 || c.getFlip() != 0 || c.getFRtoBR() != 0 || c.getURFtoDLF() != 0 ||
		c.getURtoUL() != 0 || c.getUBtoDF() != 114 || c.getURtoDF() != 0 {
		t.Errorf("solved cube should have all-zero coordinates except UBtoDF = 114")
	}
}
