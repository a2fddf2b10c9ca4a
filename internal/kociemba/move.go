package kociemba

import "strings"

// formatSolution renders the moves recorded on a search stack (axis/power
// pairs at indices 0..length-1) as the spec's space-separated notation,
// e.g. "R U R' U'". An empty sequence renders as "".
func formatSolution(axis, power []int, length int) string {
	if length == 0 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i < length; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(axisName[axis[i]])
		sb.WriteString(powerSuffix[power[i]])
	}
	return sb.String()
}

// parseMoveToken parses one notation token ("R", "R2", "R'") into a move
// index 0..17.
func parseMoveToken(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	var axis = -1
	for a, name := range axisName {
		if name == string(tok[0]) {
			axis = a
			break
		}
	}
	if axis < 0 {
		return 0, false
	}
	power := 0
	switch tok[1:] {
	case "":
		power = 0
	case "2":
		power = 1
	case "'":
		power = 2
	default:
		return 0, false
	}
	return 3*axis + power, true
}
