package dialogue

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks s into lines no wider than width terminal cells. Spaces are
// preferred break points; CJK text without spaces breaks between runes.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		lines = append(lines, wrapPara(para, width)...)
	}
	return lines
}

func wrapPara(s string, width int) []string {
	var (
		lines     []string
		cur       []rune
		curW      int
		lastSpace = -1
	)
	flush := func(upto int) {
		lines = append(lines, string(cur[:upto]))
	}
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if curW+rw > width && len(cur) > 0 {
			switch {
			case r == ' ':
				flush(len(cur))
				cur, curW, lastSpace = nil, 0, -1
				continue
			case lastSpace > 0:
				flush(lastSpace)
				cur = append([]rune(nil), cur[lastSpace+1:]...)
			default:
				flush(len(cur))
				cur = nil
			}
			curW = runewidth.StringWidth(string(cur))
			lastSpace = -1
			if curW+rw > width && len(cur) > 0 {
				flush(len(cur))
				cur, curW = nil, 0
			}
		}
		if r == ' ' {
			lastSpace = len(cur)
		}
		cur = append(cur, r)
		curW += rw
	}
	return append(lines, string(cur))
}
