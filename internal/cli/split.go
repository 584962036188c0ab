package cli

import (
	"errors"
	"fmt"

	"github.com/google/shlex"
)

var errBadQuoting = errors.New("unterminated quote or trailing escape")

// splitLine breaks a session line into words with shell quoting rules.
// Single or double quotes group words and may produce an empty word; a
// backslash escapes the next rune outside single quotes. A word starting
// with # begins a comment, so quote values such as "#42".
func splitLine(line string) ([]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errBadQuoting, err)
	}
	return words, nil
}
