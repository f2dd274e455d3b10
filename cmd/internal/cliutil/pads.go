// Package cliutil holds the positional-argument parsing shared by
// cmd/pksplit and cmd/pkreassemble: both tools take the same
// `<pad1-file> <offset1> [<pad2-file> <offset2>]` shape.
package cliutil

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rcauth-eu/privkeysplit/splitxor"
)

// ErrBadArgCount is returned when the command line didn't carry exactly two
// or exactly four positional arguments.
var ErrBadArgCount = fmt.Errorf("expected <pad1-file> <offset1> [<pad2-file> <offset2>]")

// Pads holds the two loaded pads and their offsets, resolved from CLI
// positional arguments per spec's split/reassemble argument shape.
type Pads struct {
	Pad1    splitxor.Pad
	Offset1 int
	Pad2    splitxor.Pad
	Offset2 int
}

// Zeroize releases both pads' backing bytes.
func (p *Pads) Zeroize() {
	p.Pad1.Zeroize()
	p.Pad2.Zeroize()
}

// ResolvePads loads pad1 always from a file, and pad2 either from a second
// file (args[2], args[3]) or, when only two arguments are given, from a
// single hex-ASCII line read off stdin with offset2 forced to zero.
func ResolvePads(args []string, stdin io.Reader) (Pads, error) {
	if len(args) != 2 && len(args) != 4 {
		return Pads{}, ErrBadArgCount
	}

	offset1, err := strconv.Atoi(args[1])
	if err != nil {
		return Pads{}, fmt.Errorf("offset1: %w", err)
	}

	raw1, err := os.ReadFile(args[0])
	if err != nil {
		return Pads{}, fmt.Errorf("pad1 file: %w", err)
	}

	pad1 := splitxor.LoadPad(raw1)

	if len(args) == 4 {
		offset2, err := strconv.Atoi(args[3])
		if err != nil {
			return Pads{}, fmt.Errorf("offset2: %w", err)
		}

		raw2, err := os.ReadFile(args[2])
		if err != nil {
			return Pads{}, fmt.Errorf("pad2 file: %w", err)
		}

		return Pads{Pad1: pad1, Offset1: offset1, Pad2: splitxor.LoadPad(raw2), Offset2: offset2}, nil
	}

	scanner := bufio.NewScanner(stdin)
	if !scanner.Scan() {
		return Pads{}, fmt.Errorf("reading pad2 line from stdin: %w", scanner.Err())
	}

	pad2 := splitxor.LoadPad([]byte(scanner.Text()))

	return Pads{Pad1: pad1, Offset1: offset1, Pad2: pad2, Offset2: 0}, nil
}
