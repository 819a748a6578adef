package buffer

// Pos points into the document by (line, col) in runes.
// Line and Col are 0-based. Col may equal the line length.
type Pos struct {
	Line int
	Col  int
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ClampPos clamps p into document bounds described by lineCount and lineLen.
//
// - lineCount is the number of lines.
// - lineLen(line) returns the rune length of the given line.
//
// The returned Pos always satisfies:
// - 0 <= Line < lineCount (with lineCount treated as at least 1)
// - 0 <= Col <= lineLen(Line)
func ClampPos(p Pos, lineCount int, lineLen func(line int) int) Pos {
	if lineCount <= 0 {
		lineCount = 1
	}

	line := clampInt(p.Line, 0, lineCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = lineLen(line)
		if maxCol < 0 {
			maxCol = 0
		}
	}
	col := clampInt(p.Col, 0, maxCol)

	return Pos{Line: line, Col: col}
}
