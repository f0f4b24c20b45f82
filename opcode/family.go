package opcode

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSize is returned when a numbered opcode's suffix is out of range.
	ErrInvalidSize = errors.New("invalid opcode size")
	// ErrCaptureGroup is returned when a pattern that should match yields no group.
	ErrCaptureGroup = errors.New("unable to capture group")
)

// Family describes a group of opcodes written as a prefix and a decimal suffix,
// e.g. "dup3" or "push32". The opcode is Base plus the suffix.
type Family struct {
	Name    string
	Prefix  string
	Base    uint32
	Max     uint32
	Operand bool // an immediate hex literal follows

	pattern *regexp.Regexp
}

func newFamily(name, prefix string, base, limit uint32, operand bool) Family {
	return Family{
		Name:    name,
		Prefix:  prefix,
		Base:    base,
		Max:     limit,
		Operand: operand,
		pattern: regexp.MustCompile(fmt.Sprintf(`^%s([0-9]+)$`, prefix)),
	}
}

var families = []Family{
	newFamily("duplicate", "dup", 0x7f, 16, false),
	newFamily("log", "log", 0x9f, 4, false),
	newFamily("push", "push", 0x5f, 32, true),
	newFamily("swap", "swap", 0x8f, 16, false),
}

// Families returns a copy of the opcode families in resolution order.
func Families() []Family {
	return append([]Family(nil), families...)
}

// Match reports whether the token is the family prefix followed by digits.
func (f Family) Match(token string) bool {
	if f.pattern == nil {
		return false
	}
	return f.pattern.MatchString(token)
}

// Encode returns the hex digits of the opcode for a token already known to
// match the family.
func (f Family) Encode(token string) (string, error) {
	digits, err := CaptureGroup(f.pattern, token)
	if err != nil {
		return "", err
	}

	n, err := strconv.ParseUint(digits, 10, 32)
	if err != nil || n < 1 || uint32(n) > f.Max {
		return "", errors.Wrapf(ErrInvalidSize, "%s (%s takes 1-%d)", token, f.Prefix, f.Max)
	}
	return ToHex(f.Base + uint32(n))
}

// Resolve tries each family in order. It returns the matching family and
// its encoded opcode, or a nil family if none applies.
func Resolve(token string) (*Family, string, error) {
	for _, f := range families {
		if !f.Match(token) {
			continue
		}
		hex, err := f.Encode(token)
		return &f, hex, err
	}
	return nil, "", nil
}

// CaptureGroup returns the first submatch of re in s.
func CaptureGroup(re *regexp.Regexp, s string) (string, error) {
	var m []string
	if re != nil {
		m = re.FindStringSubmatch(s)
	}
	if len(m) < 2 {
		return "", errors.Wrapf(ErrCaptureGroup, "%q in %q", re, s)
	}
	return m[1], nil
}
