package assembler

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/Urethramancer/evmasm/opcode"
)

// Prefix starts every assembled program.
const Prefix = "0x"

var reHexLiteral = regexp.MustCompile(`^0x([0-9a-f]+)$`)

type state int

const (
	stateNormal state = iota
	stateOperand
)

// Assembler holds the state for the assembly process.
type Assembler struct {
	scan    scanner
	state   state
	pending string // the push awaiting its operand
	out     strings.Builder
}

// New creates a new Assembler instance.
func New() *Assembler {
	return &Assembler{}
}

// Assemble translates a listing into a 0x-prefixed hex string.
func (asm *Assembler) Assemble(src string) (string, error) {
	return asm.AssembleReader(strings.NewReader(src))
}

// AssembleReader translates the listing read from r, one line at a time.
// The first error aborts the translation and no output is returned.
func (asm *Assembler) AssembleReader(r io.Reader) (string, error) {
	asm.reset()

	br := bufio.NewReader(r)
	row := 0
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrapf(ErrReadLine, "line %d: %v", row+1, err)
		}
		if line == "" && err == io.EOF {
			break
		}
		row++
		if lerr := asm.assembleLine(line, row); lerr != nil {
			return "", lerr
		}
		if err == io.EOF {
			break
		}
	}

	if asm.state == stateOperand {
		return "", errors.Wrapf(ErrMissingOperand, "end of input after %q", asm.pending)
	}

	glog.V(1).Infof("assembled %d lines into %d bytes", row, (asm.out.Len()-len(Prefix))/2)
	return asm.out.String(), nil
}

func (asm *Assembler) reset() {
	asm.state = stateNormal
	asm.pending = ""
	asm.out.Reset()
	asm.out.WriteString(Prefix)
}

func (asm *Assembler) assembleLine(line string, row int) error {
	asm.scan.init(line, row)
	for {
		tok, col, err := asm.scan.next()
		if err != nil {
			return err
		}
		if tok == "" {
			return nil
		}
		if err := asm.assembleToken(tok); err != nil {
			return errors.Wrapf(err, "line %d, column %d", row, col)
		}
	}
}

func (asm *Assembler) assembleToken(tok string) error {
	if asm.state == stateOperand {
		if !reHexLiteral.MatchString(tok) {
			return errors.Wrapf(ErrMissingOperand, "%q follows %q", tok, asm.pending)
		}
		digits, err := opcode.CaptureGroup(reHexLiteral, tok)
		if err != nil {
			return err
		}
		glog.V(2).Infof("operand %s -> %s", tok, digits)
		asm.out.WriteString(digits)
		asm.state = stateNormal
		asm.pending = ""
		return nil
	}

	if hex, ok := opcode.Lookup(tok); ok {
		glog.V(2).Infof("%s -> %s", tok, hex)
		asm.out.WriteString(hex)
		return nil
	}

	f, hex, err := opcode.Resolve(tok)
	if err != nil {
		return err
	}
	if f == nil {
		return errors.Wrapf(ErrInvalidOpcode, "%q", tok)
	}
	glog.V(2).Infof("%s -> %s (%s)", tok, hex, f.Name)
	asm.out.WriteString(hex)
	if f.Operand {
		asm.state = stateOperand
		asm.pending = tok
	}
	return nil
}
