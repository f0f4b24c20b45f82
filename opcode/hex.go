package opcode

import "github.com/pkg/errors"

// ErrInvalidNibble is returned when a value outside 0-15 is converted to a hex digit.
var ErrInvalidNibble = errors.New("invalid nibble")

func nibble(v uint32) (byte, error) {
	switch {
	case v <= 9:
		return byte('0' + v), nil
	case v <= 15:
		return byte('a' + v - 10), nil
	}
	return 0, errors.Wrapf(ErrInvalidNibble, "%d", v)
}

// ToHex renders n in lowercase hexadecimal with no padding.
// Zero renders as "0".
func ToHex(n uint32) (string, error) {
	if n == 0 {
		return "0", nil
	}

	var buf [8]byte
	i := len(buf)
	for n > 0 {
		d, err := nibble(n % 16)
		if err != nil {
			return "", err
		}
		i--
		buf[i] = d
		n /= 16
	}
	return string(buf[i:]), nil
}
