package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader reads command input from the --file flag or, when the flag is
// unset, from piped stdin.
type FileReader[T any] struct {
	// Usage overrides the flag help text.
	Usage string
	// Decode parses the input. name is the file path, or "stdin.json" for
	// piped input. Nil decodes JSON.
	Decode func(r io.Reader, name string) (T, error)

	fileFlagValue string
}

func (fr *FileReader[T]) Flag() *cli.StringFlag {
	usage := fr.Usage
	if usage == "" {
		usage = "path to JSON file (reads from stdin if not provided)"
	}
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       usage,
		Destination: &fr.fileFlagValue,
	}
}

// Path returns the --file value.
func (fr *FileReader[T]) Path() string {
	return fr.fileFlagValue
}

func (fr *FileReader[T]) Read() (T, error) {
	var (
		reader io.Reader
		input  T
		name   = "stdin.json"
	)

	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return input, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		reader = f
		name = fr.fileFlagValue
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return input, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = os.Stdin
	}

	if fr.Decode != nil {
		return fr.Decode(reader, name)
	}

	if err := json.NewDecoder(reader).Decode(&input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}
