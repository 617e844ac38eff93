package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var errNoInput = errors.New("naming: no input was found. Enter -h or --help for help information.")

// readInput collects the raw input texts, one per file, or a single text from
// stdin when no file is given. Refusing to hang on an interactive terminal
// with no input is an error, not a wait.
func readInput(files []string, eof string) ([]string, error) {
	if len(files) == 0 {
		if stdinIsTerminal() {
			return nil, errNoInput
		}

		text, err := readAll(os.Stdin, eof)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}

		return []string{text}, nil
	}

	texts := make([]string, 0, len(files))
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
		}

		text, err := readAll(f, eof)
		_ = f.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
		}

		texts = append(texts, text)
	}

	return texts, nil
}

// readAll reads r to the end, or up to (excluding) the first line equal to
// the EOF marker when one is set.
func readAll(r io.Reader, eof string) (string, error) {
	if eof == "" {
		data, err := io.ReadAll(r)
		return string(data), err
	}

	var lines []string

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if line == eof {
			break
		}
		lines = append(lines, line)
	}

	return strings.Join(lines, "\n"), sc.Err()
}

func stdinIsTerminal() bool  { return isTerminal(os.Stdin) }
func stdoutIsTerminal() bool { return isTerminal(os.Stdout) }

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}

	return info.Mode()&os.ModeCharDevice != 0
}
