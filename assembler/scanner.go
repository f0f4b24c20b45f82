package assembler

import (
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// scanner splits one source line into lowercase symbol tokens.
type scanner struct {
	line []rune
	cur  int // index of the next rune to read
	row  int // 1-based line number, for errors
}

func (s *scanner) init(line string, row int) {
	s.line = []rune(line)
	s.cur = 0
	s.row = row
}

// next returns the next token and its 1-based column. An empty token
// means the line is exhausted.
func (s *scanner) next() (string, int, error) {
	var tok []rune
	col := 0
	for s.cur < len(s.line) {
		ch := s.line[s.cur]
		switch {
		case unicode.IsLetter(ch) || unicode.IsNumber(ch):
			if tok == nil {
				col = s.cur + 1
			}
			// Only ASCII folds; other letters stay as written and never name an opcode.
			if ch < utf8.RuneSelf {
				ch = unicode.ToLower(ch)
			}
			tok = append(tok, ch)
		case !unicode.IsSpace(ch):
			return "", 0, errors.Wrapf(ErrIllegalCharacter, "line %d, column %d: %q", s.row, s.cur+1, ch)
		case tok != nil:
			return string(tok), col, nil
		}
		s.cur++
	}
	return string(tok), col, nil
}
