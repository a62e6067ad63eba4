// Package feature turns raw user input into a validated feature name.
package feature

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinLength is the shortest accepted feature name.
const MinLength = 3

// PromptText is written before reading the name from the terminal.
const PromptText = "Please enter feature name :"

var namePattern = regexp.MustCompile(`^[a-z]+[a-z0-9_]*[a-z0-9]$`)

// Reason classifies why a name was rejected.
type Reason int

const (
	ReasonRequired Reason = iota
	ReasonTooShort
	ReasonPattern
)

// InvalidNameError reports a feature name that cannot be used.
type InvalidNameError struct {
	Name   string
	Reason Reason
}

func (e *InvalidNameError) Error() string {
	switch e.Reason {
	case ReasonRequired:
		return "feature name required !"
	case ReasonTooShort:
		return fmt.Sprintf("feature name should have least %d char !", MinLength)
	default:
		return "Invalid file name !"
	}
}

// Normalize trims s, lowercases it and replaces spaces with underscores.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// Validate checks an already normalized name.
func Validate(name string) error {
	switch n := utf8.RuneCountInString(name); {
	case n == 0:
		return &InvalidNameError{Name: name, Reason: ReasonRequired}
	case n < MinLength:
		return &InvalidNameError{Name: name, Reason: ReasonTooShort}
	}
	if !namePattern.MatchString(name) {
		return &InvalidNameError{Name: name, Reason: ReasonPattern}
	}
	return nil
}

// Parse normalizes raw and validates the result.
func Parse(raw string) (string, error) {
	name := Normalize(raw)
	if err := Validate(name); err != nil {
		return "", err
	}
	return name, nil
}

// Prompt writes PromptText to w and reads one line from r. A final line
// without a trailing newline is accepted.
func Prompt(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, PromptText)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading feature name: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
