package sync

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoAnswer is returned by PromptConfirmer when input ends before an answer.
var ErrNoAnswer = errors.New("no answer")

// Confirmer asks a yes/no question. Apply treats both false and a non-nil
// error as "no".
type Confirmer interface {
	Confirm(message string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(message string) (bool, error)

// Confirm calls f(message).
func (f ConfirmFunc) Confirm(message string) (bool, error) { return f(message) }

// PromptConfirmer asks on a line-oriented terminal. The default answer is no.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
	// interactive is false when input is not a terminal; every prompt then
	// declines without reading.
	interactive bool
}

// NewPromptConfirmer creates a confirmer reading answers from r and writing
// prompts to w.
func NewPromptConfirmer(r io.Reader, w io.Writer, interactive bool) *PromptConfirmer {
	return &PromptConfirmer{
		in:          bufio.NewReader(r),
		out:         w,
		interactive: interactive,
	}
}

// Confirm prints "<message> [y/N]: " and reads one line.
// Only "y" and "yes" (any case) confirm.
func (p *PromptConfirmer) Confirm(message string) (bool, error) {
	if !p.interactive {
		fmt.Fprintf(p.out, "%s [y/N]: kept (non-interactive)\n", message)
		return false, nil
	}

	fmt.Fprintf(p.out, "%s [y/N]: ", message)

	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		fmt.Fprintln(p.out)
		if errors.Is(err, io.EOF) {
			return false, ErrNoAnswer
		}
		return false, fmt.Errorf("reading answer: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
