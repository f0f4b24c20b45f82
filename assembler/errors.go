package assembler

import (
	"github.com/pkg/errors"

	"github.com/Urethramancer/evmasm/opcode"
)

// Failure kinds returned by Assemble. Test with errors.Is.
var (
	// ErrIllegalCharacter is a character that is neither alphanumeric nor whitespace.
	ErrIllegalCharacter = errors.New("parse error")
	// ErrInvalidOpcode is a token that names no instruction.
	ErrInvalidOpcode = errors.New("invalid opcode")
	// ErrMissingOperand is a push not followed by a hex literal.
	ErrMissingOperand = errors.New("missing push operand")
	// ErrReadLine is a failure reading the source.
	ErrReadLine = errors.New("unable to read line")

	// ErrInvalidSize is a numbered opcode with an out-of-range suffix.
	ErrInvalidSize = opcode.ErrInvalidSize
	// ErrCaptureGroup is a literal that could not be extracted.
	ErrCaptureGroup = opcode.ErrCaptureGroup
)
