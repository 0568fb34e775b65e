package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidInteger is returned when a token cannot be parsed as an integer.
var ErrInvalidInteger = errors.New("invalid integer")

// Prompter reads whitespace-delimited tokens and whole lines from an input
// stream. Integers may share a line ("3 9 1") or arrive one per line.
type Prompter struct {
	r *bufio.Reader
}

// NewPrompter wraps r for token and line reads.
func NewPrompter(r io.Reader) *Prompter {
	return &Prompter{r: bufio.NewReader(r)}
}

// ReadToken returns the next whitespace-delimited token. The delimiter that
// ends the token is consumed. It returns io.EOF when no token remains.
func (p *Prompter) ReadToken() (string, error) {
	var sb strings.Builder
	for {
		ch, _, err := p.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(ch) {
			if sb.Len() == 0 {
				continue
			}
			return sb.String(), nil
		}
		sb.WriteRune(ch)
	}
}

// ReadInt reads the next token as a base-10 integer.
func (p *Prompter) ReadInt() (int, error) {
	tok, err := p.ReadToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w %q: %w", ErrInvalidInteger, tok, err)
	}
	return n, nil
}

// ReadLine returns the next non-blank line with surrounding whitespace
// trimmed. Blank lines, including the remainder of a line whose token was
// already consumed, are skipped.
func (p *Prompter) ReadLine() (string, error) {
	for {
		line, err := p.r.ReadString('\n')
		if s := strings.TrimSpace(line); s != "" {
			return s, nil
		}
		if err != nil {
			return "", err
		}
	}
}
