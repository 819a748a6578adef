// Package words finds word boundaries in a single line using Unicode word
// segmentation (UAX #29). Positions are rune offsets.
package words

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

type segment struct {
	start, end int
	space      bool
}

// segments splits text into word segments with rune offsets.
func segments(text string) []segment {
	if text == "" {
		return nil
	}
	var out []segment
	state := -1
	pos := 0
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := utf8.RuneCountInString(word)
		out = append(out, segment{start: pos, end: pos + n, space: isSpace(word)})
		pos += n
	}
	return out
}

func isSpace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Prev returns the start of the word before col: whitespace is skipped, then
// the word it reaches. It returns 0 when there is none.
func Prev(text string, col int) int {
	segs := segments(text)
	i := len(segs) - 1
	for i >= 0 && segs[i].start >= col {
		i--
	}
	for i >= 0 && segs[i].space {
		i--
	}
	if i < 0 {
		return 0
	}
	return segs[i].start
}

// Next returns the end of the word at or after col: whitespace is skipped,
// then the word it reaches. It returns the rune length when there is none.
func Next(text string, col int) int {
	segs := segments(text)
	if len(segs) == 0 {
		return 0
	}
	i := 0
	for i < len(segs) && segs[i].end <= col {
		i++
	}
	for i < len(segs) && segs[i].space {
		i++
	}
	if i >= len(segs) {
		return segs[len(segs)-1].end
	}
	return segs[i].end
}
