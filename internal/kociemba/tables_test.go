package kociemba

import "testing"

func TestNybblePackRoundTrip(t *testing.T) {
	buf := newNybbleTable(40)
	for i := 0; i < 40; i++ {
		if getNybble(buf, i) != 0x0f {
			t.Fatalf("newNybbleTable should start all-unreached, index %d was %d", i, getNybble(buf, i))
		}
	}
	for i := 0; i < 40; i++ {
		setNybble(buf, i, i%15)
	}
	for i := 0; i < 40; i++ {
		if got := getNybble(buf, i); got != i%15 {
			t.Errorf("getNybble(%d) = %d, want %d", i, got, i%15)
		}
	}
}

func TestBinomialMatchesPascalsRule(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for k := 1; k < n; k++ {
			want := binomial(n-1, k-1) + binomial(n-1, k)
			if got := binomial(n, k); got != want {
				t.Errorf("binomial(%d,%d) = %d, want %d", n, k, got, want)
			}
		}
	}
}

func TestBinomialOutOfRangeIsZero(t *testing.T) {
	if binomial(3, 5) != 0 {
		t.Errorf("binomial(3,5) should be 0, not a panic or garbage value")
	}
	if binomial(3, -1) != 0 {
		t.Errorf("binomial(3,-1) should be 0")
	}
}

func TestFactorial(t *testing.T) {
	cases := map[int]int{0: 1, 1: 1, 2: 2, 3: 6, 4: 24, 6: 720}
	for n, want := range cases {
		if got := factorial(n); got != want {
			t.Errorf("factorial(%d) = %d, want %d", n, got, want)
		}
	}
}
