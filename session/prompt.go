package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/katalvlaran/lvlalg/parse"
)

type scanned struct {
	line string
	err  error
}

// Prompter asks questions on out and reads one line per answer from in.
// Lines are read by a background goroutine so that a prompt can be abandoned
// when its context is cancelled. After a cancelled Line the goroutine may
// still be blocked on in; discard the Prompter at that point.
type Prompter struct {
	in    io.Reader
	out   io.Writer
	once  sync.Once
	lines chan scanned
}

// NewPrompter returns a Prompter over in and out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, out: out, lines: make(chan scanned)}
}

func (p *Prompter) scan() {
	defer close(p.lines)
	sc := bufio.NewScanner(p.in)
	for sc.Scan() {
		p.lines <- scanned{line: sc.Text()}
	}
	if err := sc.Err(); err != nil {
		p.lines <- scanned{err: err}
	}
}

// Line prints question (when non-empty) and returns the next input line.
// End of input yields ErrCancelled; a done ctx yields ctx.Err().
func (p *Prompter) Line(ctx context.Context, question string) (string, error) {
	if question != "" {
		fmt.Fprintln(p.out, question)
	}
	p.once.Do(func() { go p.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r, ok := <-p.lines:
		switch {
		case !ok:
			return "", ErrCancelled
		case r.err != nil:
			return "", fmt.Errorf("read input: %w", r.err)
		}
		return r.line, nil
	}
}

// Ask prints question and parses answers with fn until one is accepted.
// Answers rejected with parse.ErrInvalidInput print a notice and ask again;
// any other error is returned as is.
func Ask[T any](ctx context.Context, p *Prompter, question string, fn func(string) (T, error)) (T, error) {
	for {
		line, err := p.Line(ctx, question)
		if err != nil {
			var zero T
			return zero, err
		}
		v, err := fn(line)
		if err == nil {
			return v, nil
		}
		if !errors.Is(err, parse.ErrInvalidInput) {
			var zero T
			return zero, err
		}
		fmt.Fprintf(p.out, "Invalid input (%v). Please try again.\n", err)
	}
}
