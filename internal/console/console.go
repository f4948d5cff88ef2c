// Package console reads interactive input for the payroll command line.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var ErrNoInput = errors.New("console: no more input")

type Prompter interface {
	ReadLine(prompt string) (string, error)
	ReadSecret(prompt string) (string, error)
}

type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter prompts on out and reads from in. Secrets are read without
// echo when in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.tty = true
	}
	return p
}

func (p *prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *prompter) ReadSecret(prompt string) (string, error) {
	if !p.tty {
		return p.ReadLine(prompt)
	}

	fmt.Fprint(p.out, prompt)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadFloat keeps asking until the answer parses as a number.
func ReadFloat(p Prompter, out io.Writer, prompt string) (float64, error) {
	for {
		raw, err := p.ReadLine(prompt)
		if err != nil {
			return 0, err
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err == nil {
			return v, nil
		}
		fmt.Fprintln(out, "Please enter a number.")
	}
}
