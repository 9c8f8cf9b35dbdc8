// Package prompt asks for a note name on the terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/starford/zet/internal/apperr"
)

// Message is written before reading the name.
const Message = "Enter a filename: "

type flusher interface {
	Flush() error
}

type syncer interface {
	Sync() error
}

// Ask writes Message to out, reads one line from in and returns it with
// surrounding whitespace removed. A last line without a newline is accepted;
// end of input before anything is read yields apperr.ErrNoInput.
func Ask(in io.Reader, out io.Writer) (string, error) {
	if _, err := io.WriteString(out, Message); err != nil {
		return "", fmt.Errorf("prompt: write: %w", err)
	}
	if err := flush(out); err != nil {
		return "", fmt.Errorf("prompt: flush: %w", err)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("prompt: read: %w", err)
		}
		if line == "" {
			return "", apperr.ErrNoInput
		}
	}
	return strings.TrimSpace(line), nil
}

func flush(out io.Writer) error {
	switch w := out.(type) {
	case flusher:
		return w.Flush()
	case syncer:
		// Terminals and pipes reject fsync; unbuffered files need nothing.
		_ = w.Sync()
	}
	return nil
}
