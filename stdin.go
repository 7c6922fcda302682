package main

import (
	"bufio"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"
)

type stattable interface {
	Stat() (fs.FileInfo, error)
}

var (
	errUnpipedStdin = errors.New("could not read token from non-piped standard input")
	errStatStdin    = errors.New("could not read token from standard input")
	errEmptyStdin   = errors.New("no token present on standard input")
)

// reads a token from r, which is typically stdin. The token is the first non-blank line with
// surrounding whitespace removed.
func tokenFromStdin(r io.Reader) (string, error) {
	// if r is stattable (like os.Stdin), make sure it's a pipe so we never block on a terminal
	if stdin, ok := r.(stattable); ok {
		fi, err := stdin.Stat()
		if err != nil {
			return "", errStatStdin
		}

		if fi.Mode()&os.ModeNamedPipe == 0 {
			return "", errUnpipedStdin
		}
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if ln := strings.TrimSpace(scanner.Text()); ln != "" {
			return ln, nil
		}
	}

	if err := scanner.Err(); err != nil {
		return "", err
	}

	return "", errEmptyStdin
}
