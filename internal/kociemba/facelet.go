package kociemba

import "github.com/pkg/errors"

// ErrBadLength, ErrBadChar and friends classify facelet-string validation
// failures (spec §7, kind 1: input validation).
var (
	ErrBadLength     = errors.New("invalid cubestring length")
	ErrBadChar       = errors.New("bad character")
	ErrBadColorCount = errors.New("bad color count")
	ErrBadEdge       = errors.New("bad edge")
	ErrBadCorner     = errors.New("bad corner")
	ErrBadFlip       = errors.New("bad flip")
	ErrBadTwist      = errors.New("bad twist")
	ErrBadParity     = errors.New("bad parity")
)

const facCount = 54

// faceletToAxis parses the single-letter axis name a facelet string uses.
func faceletToAxis(b byte) (int, bool) {
	for a, l := range faceLetters {
		if l == b {
			return a, true
		}
	}
	return 0, false
}

// parseFacelets validates a 54-character facelet string and returns the
// per-sticker axis indices, or one of the Err* sentinels above.
func parseFacelets(s string) ([facCount]int, error) {
	var f [facCount]int
	if len(s) != facCount {
		return f, ErrBadLength
	}
	var count [numAxes]int
	for i := 0; i < facCount; i++ {
		a, ok := faceletToAxis(s[i])
		if !ok {
			return f, ErrBadChar
		}
		f[i] = a
		count[a]++
	}
	for _, c := range count {
		if c != 9 {
			return f, ErrBadColorCount
		}
	}
	centers := [numAxes]int{facU + 4, facR + 4, facF + 4, facD + 4, facL + 4, facB + 4}
	for axis, idx := range centers {
		if f[idx] != axis {
			return f, ErrBadChar
		}
	}
	return f, nil
}

// faceletToCubie reconstructs a CubieCube from a validated facelet array.
func faceletToCubie(f [facCount]int) (*CubieCube, error) {
	c := &CubieCube{}
	for i := range c.cp {
		c.cp[i] = -1
	}
	for i := range c.ep {
		c.ep[i] = -1
	}

	for slot := 0; slot < 8; slot++ {
		var oriented int
		for oriented = 0; oriented < 3; oriented++ {
			fIdx := cornerFacelet[slot][oriented]
			if f[fIdx] == axisU || f[fIdx] == axisD {
				break
			}
		}
		col1 := f[cornerFacelet[slot][(oriented+1)%3]]
		col2 := f[cornerFacelet[slot][(oriented+2)%3]]
		found := false
		for piece := 0; piece < 8; piece++ {
			if cornerColor[piece][1] == col1 && cornerColor[piece][2] == col2 {
				c.cp[slot] = piece
				c.co[slot] = oriented
				found = true
				break
			}
		}
		if !found {
			return nil, ErrBadCorner
		}
	}

	for slot := 0; slot < 12; slot++ {
		a, b := f[edgeFacelet[slot][0]], f[edgeFacelet[slot][1]]
		found := false
		for piece := 0; piece < 12; piece++ {
			ref := edgeColor[piece]
			if ref[0] == a && ref[1] == b {
				c.ep[slot] = piece
				c.eo[slot] = 0
				found = true
				break
			}
			if ref[0] == b && ref[1] == a {
				c.ep[slot] = piece
				c.eo[slot] = 1
				found = true
				break
			}
		}
		if !found {
			return nil, ErrBadEdge
		}
	}

	return c, nil
}

// cubieToFacelet is the inverse of faceletToCubie: it writes a full 54-byte
// facelet string for a cube state, centers first, then each slot's stickers
// rotated by its orientation.
func cubieToFacelet(c *CubieCube) string {
	var f [facCount]byte
	centers := [numAxes]int{facU + 4, facR + 4, facF + 4, facD + 4, facL + 4, facB + 4}
	for axis, idx := range centers {
		f[idx] = faceLetters[axis]
	}
	for slot := 0; slot < 8; slot++ {
		piece := c.cp[slot]
		ori := c.co[slot]
		for k := 0; k < 3; k++ {
			f[cornerFacelet[slot][(k+ori)%3]] = faceLetters[cornerColor[piece][k]]
		}
	}
	for slot := 0; slot < 12; slot++ {
		piece := c.ep[slot]
		ori := c.eo[slot]
		for k := 0; k < 2; k++ {
			f[edgeFacelet[slot][(k+ori)%2]] = faceLetters[edgeColor[piece][k]]
		}
	}
	return string(f[:])
}
