// Package prompt reads phrases and shifts from an interactive text stream
// and writes lines back to the user.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"
)

var (
	// ErrInvalidInput is returned when the shift is not a whole number.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNoInput is returned when the stream ends before anything was read.
	ErrNoInput = errors.New("no input")
)

type Prompter struct {
	r *bufio.Reader
	w io.Writer
}

func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{
		r: bufio.NewReader(r),
		w: w,
	}
}

// ReadLine reads one line without its line ending.
// The last line of the stream does not need a trailing newline.
func (p *Prompter) ReadLine() (string, error) {
	line, err := p.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("prompt: read line: %w", err)
		}
		if line == "" {
			return "", ErrNoInput
		}
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

// ReadShift reads one line holding a signed base-10 integer of any size.
func (p *Prompter) ReadShift() (*big.Int, error) {
	line, err := p.ReadLine()
	if err != nil {
		return nil, err
	}

	s := strings.TrimSpace(line)
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a whole number", ErrInvalidInput, s)
	}
	return n, nil
}

func (p *Prompter) WriteLine(s string) error {
	_, err := io.WriteString(p.w, s+"\n")
	if err != nil {
		return fmt.Errorf("prompt: write: %w", err)
	}
	return nil
}

func (p *Prompter) Writef(format string, a ...any) error {
	_, err := fmt.Fprintf(p.w, format, a...)
	if err != nil {
		return fmt.Errorf("prompt: write: %w", err)
	}
	return nil
}
