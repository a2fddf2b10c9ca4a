package kociemba

// Cnk is a precomputed table of binomial coefficients C(n, k) for n, k <= 12,
// the base of every combinatorial-number-system coordinate below.
var cnk [13][13]int

func init() {
	for n := 0; n <= 12; n++ {
		cnk[n][0] = 1
		cnk[n][n] = 1
		for k := 1; k < n; k++ {
			cnk[n][k] = cnk[n-1][k-1] + cnk[n-1][k]
		}
	}
}

func binomial(n, k int) int {
	if k < 0 || n < 0 || k > n {
		return 0
	}
	return cnk[n][k]
}

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// rotateLeft cyclically shifts arr[l..r] left by one: arr[l] <- arr[l+1] <- ... <- arr[r] <- old arr[l].
func rotateLeft(arr []int, l, r int) {
	tmp := arr[l]
	for i := l; i < r; i++ {
		arr[i] = arr[i+1]
	}
	arr[r] = tmp
}

// rotateRight is the inverse of rotateLeft.
func rotateRight(arr []int, l, r int) {
	tmp := arr[r]
	for i := r; i > l; i-- {
		arr[i] = arr[i-1]
	}
	arr[l] = tmp
}

// encodeComboPerm is the generalized combinatorial-number-system encoder
// shared by FRtoBR, URFtoDLF, URtoUL, UBtoDF and URtoDF: it splits a
// length-k ordered selection drawn from a length-n permutation into a
// "which positions" combination index and a "in what order" permutation
// index, and packs them as factorial(k)*comb + perm.
//
// perm holds the full n-length array (cp or ep). belongs reports whether a
// value is one of the k tracked pieces; local maps a tracked value to its
// 0..k-1 rank among the tracked set, in the pieces' canonical order.
func encodeComboPerm(perm []int, n, k int, belongs func(v int) bool, local func(v int) int) int {
	a := 0
	x := 0
	buf := make([]int, k)
	for j := 0; j < n; j++ {
		v := perm[j]
		if belongs(v) {
			a += binomial(j, x+1)
			buf[x] = local(v)
			x++
		}
	}
	b := 0
	for j := k - 1; j > 0; j-- {
		kk := 0
		for buf[j] != j {
			rotateLeft(buf, 0, j)
			kk++
		}
		b = (j+1)*b + kk
	}
	return factorial(k)*a + b
}

// decodeComboPerm is the inverse of encodeComboPerm. fill writes the
// reconstructed values into perm at positions 0..n-1: tracked positions get
// unlocal(rank), the rest get the sentinel marker (used by the caller to
// then fill in the untracked pieces).
func decodeComboPerm(idx, n, k int, unlocal func(rank int) int, sentinel int, perm []int) {
	b := idx % factorial(k)
	a := idx / factorial(k)

	for i := 0; i < n; i++ {
		perm[i] = sentinel
	}

	buf := make([]int, k)
	for i := range buf {
		buf[i] = i
	}
	for x := 1; x < k; x++ {
		kk := b % (x + 1)
		b /= x + 1
		for kk > 0 {
			rotateRight(buf, 0, x)
			kk--
		}
	}

	x := k - 1
	for j := n - 1; j >= 0 && x >= 0; j-- {
		if a-binomial(j, x+1) >= 0 {
			perm[j] = unlocal(buf[x])
			a -= binomial(j, x+1)
			x--
		}
	}
}

// --- twist: corner orientation, 0..2186 ---

func (c *CubieCube) getTwist() int {
	ret := 0
	for i := 0; i < 7; i++ {
		ret = 3*ret + c.co[i]
	}
	return ret
}

func (c *CubieCube) setTwist(twist int) {
	parity := 0
	for i := 6; i >= 0; i-- {
		c.co[i] = twist % 3
		parity += c.co[i]
		twist /= 3
	}
	c.co[7] = (3 - parity%3) % 3
}

// --- flip: edge orientation, 0..2047 ---

func (c *CubieCube) getFlip() int {
	ret := 0
	for i := 0; i < 11; i++ {
		ret = 2*ret + c.eo[i]
	}
	return ret
}

func (c *CubieCube) setFlip(flip int) {
	parity := 0
	for i := 10; i >= 0; i-- {
		c.eo[i] = flip % 2
		parity += c.eo[i]
		flip /= 2
	}
	c.eo[11] = (2 - parity%2) % 2
}

// --- FRtoBR: the four E-slice edges, positions and order, 0..11879 ---

// Positions are counted from the BR end, so the solved cube (slice edges in
// slots 8..11) has FRtoBR 0 and every G1 state has FRtoBR < 24.
func (c *CubieCube) getFRtoBR() int {
	var rev [12]int
	for j := 0; j < 12; j++ {
		rev[j] = c.ep[11-j]
	}
	return encodeComboPerm(rev[:], 12, 4,
		func(v int) bool { return v >= eFR && v <= eBR },
		func(v int) int { return eBR - v },
	)
}

func (c *CubieCube) setFRtoBR(idx int) {
	var rev [12]int
	decodeComboPerm(idx, 12, 4, func(rank int) int { return eBR - rank }, -1, rev[:])
	others := []int{eDB, eDL, eDF, eDR, eUB, eUL, eUF, eUR}
	oi := 0
	for j := 0; j < 12; j++ {
		if rev[j] == -1 {
			rev[j] = others[oi]
			oi++
		}
		c.ep[11-j] = rev[j]
	}
}

// --- URFtoDLF: permutation of the six non-slice-adjacent corners, 0..20159 ---

func (c *CubieCube) getURFtoDLF() int {
	return encodeComboPerm(c.cp[:], 8, 6,
		func(v int) bool { return v <= cDLF },
		func(v int) int { return v },
	)
}

func (c *CubieCube) setURFtoDLF(idx int) {
	decodeComboPerm(idx, 8, 6, func(rank int) int { return rank }, -1, c.cp[:])
	others := []int{cDBL, cDRB}
	oi := 0
	for j := 0; j < 8; j++ {
		if c.cp[j] == -1 {
			c.cp[j] = others[oi]
			oi++
		}
	}
}

// --- URtoUL: placement+order of edges UR,UF,UL, 0..1319 ---

func (c *CubieCube) getURtoUL() int {
	return encodeComboPerm(c.ep[:], 12, 3,
		func(v int) bool { return v <= eUL },
		func(v int) int { return v },
	)
}

// setURtoUL leaves the nine untracked edge slots at the eBR sentinel value,
// matching the convention mergeURtoDF relies on to detect overlap.
func (c *CubieCube) setURtoUL(idx int) {
	decodeComboPerm(idx, 12, 3, func(rank int) int { return rank }, eBR, c.ep[:])
}

// --- UBtoDF: placement+order of edges UB,DR,DF, 0..1319 ---

func (c *CubieCube) getUBtoDF() int {
	return encodeComboPerm(c.ep[:], 12, 3,
		func(v int) bool { return v >= eUB && v <= eDF },
		func(v int) int { return v - eUB },
	)
}

func (c *CubieCube) setUBtoDF(idx int) {
	decodeComboPerm(idx, 12, 3, func(rank int) int { return rank + eUB }, eBR, c.ep[:])
}

// --- URtoDF: placement+order of the six U/D layer edges, 0..20159, phase-2 valid only ---

func (c *CubieCube) getURtoDF() int {
	return encodeComboPerm(c.ep[:], 12, 6,
		func(v int) bool { return v <= eDF },
		func(v int) int { return v },
	)
}

func (c *CubieCube) setURtoDF(idx int) {
	decodeComboPerm(idx, 12, 6, func(rank int) int { return rank }, -1, c.ep[:])
	others := []int{eDL, eDB, eFR, eFL, eBL, eBR}
	oi := 0
	for j := 0; j < 12; j++ {
		if c.ep[j] == -1 {
			c.ep[j] = others[oi]
			oi++
		}
	}
}

// mergeURtoDF combines a phase-1-endpoint URtoUL value and UBtoDF value into
// the single URtoDF coordinate phase 2 needs, or -1 if the two describe
// overlapping edge occupancy (an infeasible combination).
func mergeURtoDF(urToUL, ubToDF int) int {
	a := newSolvedCubie()
	a.setURtoUL(urToUL)
	b := newSolvedCubie()
	b.setUBtoDF(ubToDF)
	for i := 0; i < 8; i++ {
		if b.ep[i] != eBR {
			if a.ep[i] != eBR {
				return -1
			}
			a.ep[i] = b.ep[i]
		}
	}
	// positions 8..11 (the slice edges) are untouched by either setter's
	// sentinel fill since both leave them at eBR; URtoDF only reads ep[0..11]
	// through its own belongs() filter, and slice edges (>DF) never match it,
	// so their placeholder value here is immaterial to the result.
	return a.getURtoDF()
}
