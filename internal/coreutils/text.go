// SPDX-License-Identifier: MPL-2.0

package coreutils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// lineReader yields lines with their terminators. The last line may lack one.
type lineReader struct {
	br *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{br: bufio.NewReader(r)}
}

// Next returns the next line including its "\n", or io.EOF when input is
// exhausted. Lines are not length limited.
func (lr *lineReader) Next() (string, error) {
	line, err := lr.br.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input: %w", err)
	}
	return line, nil
}

// trimEOL strips a trailing "\n" or "\r\n".
func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// painter returns a fatih/color printer that is on or off regardless of the
// package-wide NoColor detection, since the decision is made per invocation.
func painter(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}

// header writes the "==> name <==" separator used by headr and tailr.
func header(w io.Writer, name string, index int) {
	if index > 0 {
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "==> %s <==\n", name)
}
