// Package kociemba implements Kociemba's two-phase algorithm for the
// 3x3x3 Rubik's Cube: a cubie-level model, a coordinate system that
// projects cube states into bounded integer ranges, precomputed move
// and pruning tables, and the IDA* search that ties them together.
package kociemba

// Corner slot names, fixed by location.
const (
	cURF = iota
	cUFL
	cULB
	cUBR
	cDFR
	cDLF
	cDBL
	cDRB
)

// Edge slot names, fixed by location.
const (
	eUR = iota
	eUF
	eUL
	eUB
	eDR
	eDF
	eDL
	eDB
	eFR
	eFL
	eBL
	eBR
)

// Face axes, numbered the way the move alphabet indexes them: move = 3*axis + power.
const (
	axisU = iota
	axisR
	axisF
	axisD
	axisL
	axisB
	numAxes
)

var axisName = [numAxes]string{"U", "R", "F", "D", "L", "B"}

const numMoves = 18

// powerSuffix maps a move's power (0=quarter cw, 1=half, 2=quarter ccw)
// to the notation suffix used in solution strings.
var powerSuffix = [3]string{"", "2", "'"}

// phase2Moves is the ten-move subgroup <U,D,R2,L2,F2,B2> that preserves G1,
// indexed under the 3*axis+power scheme: U, U2, U', R2, F2, D, D2, D', L2, B2.
var phase2Moves = [10]int{0, 1, 2, 4, 7, 9, 10, 11, 13, 16}

// Facelet face offsets: U=0..8, R=9..17, F=18..26, D=27..35, L=36..44, B=45..53.
const (
	facU = 0
	facR = 9
	facF = 18
	facD = 27
	facL = 36
	facB = 45
)

// faceLetters indexes by axis (U,R,F,D,L,B) to its facelet letter.
var faceLetters = [numAxes]byte{'U', 'R', 'F', 'D', 'L', 'B'}

// cornerFacelet[c] gives, for corner slot c, the three facelet indices in
// (U/D-facing, clockwise-next, clockwise-previous) order.
var cornerFacelet = [8][3]int{
	{8, 9, 20},   // URF
	{6, 18, 38},  // UFL
	{0, 36, 47},  // ULB
	{2, 45, 11},  // UBR
	{29, 26, 15}, // DFR
	{27, 44, 24}, // DLF
	{33, 53, 42}, // DBL
	{35, 17, 51}, // DRB
}

// edgeFacelet[e] gives, for edge slot e, the two facelet indices in
// (primary, secondary) order.
var edgeFacelet = [12][2]int{
	{5, 10},  // UR
	{7, 19},  // UF
	{3, 37},  // UL
	{1, 46},  // UB
	{32, 16}, // DR
	{28, 25}, // DF
	{30, 43}, // DL
	{34, 52}, // DB
	{23, 12}, // FR
	{21, 41}, // FL
	{50, 39}, // BL
	{48, 14}, // BR
}

// cornerColor[c] gives the reference axis (face identity) of each of the
// three stickers of corner slot c, in the same order as cornerFacelet.
var cornerColor = [8][3]int{
	{axisU, axisR, axisF},
	{axisU, axisF, axisL},
	{axisU, axisL, axisB},
	{axisU, axisB, axisR},
	{axisD, axisF, axisR},
	{axisD, axisL, axisF},
	{axisD, axisB, axisL},
	{axisD, axisR, axisB},
}

// edgeColor[e] gives the reference axis of each of the two stickers of
// edge slot e, in the same order as edgeFacelet.
var edgeColor = [12][2]int{
	{axisU, axisR},
	{axisU, axisF},
	{axisU, axisL},
	{axisU, axisB},
	{axisD, axisR},
	{axisD, axisF},
	{axisD, axisL},
	{axisD, axisB},
	{axisF, axisR},
	{axisF, axisL},
	{axisB, axisL},
	{axisB, axisR},
}

// Literal generator tables: cp, co, ep, eo of the solved cube after one
// clockwise quarter-turn of each face. These six arrays are the geometric
// ground truth the rest of the package is built on; they must appear
// bit-exact, not derived.
var (
	cpU = [8]int{cUBR, cURF, cUFL, cULB, cDFR, cDLF, cDBL, cDRB}
	coU = [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	epU = [12]int{eUB, eUR, eUF, eUL, eDR, eDF, eDL, eDB, eFR, eFL, eBL, eBR}
	eoU = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpR = [8]int{cDFR, cUFL, cULB, cURF, cDRB, cDLF, cDBL, cUBR}
	coR = [8]int{2, 0, 0, 1, 1, 0, 0, 2}
	epR = [12]int{eFR, eUF, eUL, eUB, eBR, eDF, eDL, eDB, eDR, eFL, eBL, eUR}
	eoR = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpF = [8]int{cUFL, cDLF, cULB, cUBR, cURF, cDFR, cDBL, cDRB}
	coF = [8]int{1, 2, 0, 0, 2, 1, 0, 0}
	epF = [12]int{eUR, eFL, eUL, eUB, eDR, eFR, eDL, eDB, eUF, eDF, eBL, eBR}
	eoF = [12]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0}

	cpD = [8]int{cURF, cUFL, cULB, cUBR, cDLF, cDBL, cDRB, cDFR}
	coD = [8]int{0, 0, 0, 0, 0, 0, 0, 0}
	epD = [12]int{eUR, eUF, eUL, eUB, eDF, eDL, eDB, eDR, eFR, eFL, eBL, eBR}
	eoD = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpL = [8]int{cURF, cULB, cDBL, cUBR, cDFR, cUFL, cDLF, cDRB}
	coL = [8]int{0, 1, 2, 0, 0, 2, 1, 0}
	epL = [12]int{eUR, eUF, eBL, eUB, eDR, eDF, eFL, eDB, eFR, eUL, eDL, eBR}
	eoL = [12]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

	cpB = [8]int{cURF, cUFL, cUBR, cDRB, cDFR, cDLF, cULB, cDBL}
	coB = [8]int{0, 0, 1, 2, 0, 0, 2, 1}
	epB = [12]int{eUR, eUF, eUL, eBR, eDR, eDF, eDL, eBL, eFR, eFL, eUB, eDB}
	eoB = [12]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1}
)

// Coordinate ranges (spec §3).
const (
	nTwist     = 2187
	nFlip      = 2048
	nSlice1    = 495 // C(12,4) distinct unordered occupancies of the four E-slice edges
	nFRtoBR    = 11880
	nURFtoDLF  = 20160
	nURtoUL    = 1320
	nUBtoDF    = 1320
	nURtoDF    = 20160
	nParity    = 2
	nSlice2    = 24 // FRtoBR % 24, i.e. the order-only part once the combination is fixed
)
