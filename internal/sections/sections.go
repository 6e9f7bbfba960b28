// Package sections splits text into numbered sections. A section starts at
// a line made only of digits and runs until the next such line.
package sections

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dgallion1/pagesnip/internal/document"
)

// ErrUnpairedFragment is returned when split fragments do not come in
// marker/body pairs.
var ErrUnpairedFragment = errors.New("unpaired section fragment")

var markerRe = regexp.MustCompile(`(?m)^(\p{Nd}+)\n`)

// Parse returns the sections of text in source order. Text before the first
// marker line is dropped. Section numbers are not checked for order or
// uniqueness.
func Parse(text string) ([]document.Section, error) {
	return pair(split(text))
}

// split cuts text at marker lines, keeping the captured digits. The result
// is the preamble followed by alternating marker and body fragments.
func split(text string) []string {
	matches := markerRe.FindAllStringSubmatchIndex(text, -1)
	fragments := make([]string, 0, 1+2*len(matches))
	prev := 0
	for _, m := range matches {
		fragments = append(fragments, text[prev:m[0]], text[m[2]:m[3]])
		prev = m[1]
	}
	return append(fragments, text[prev:])
}

func pair(fragments []string) ([]document.Section, error) {
	if len(fragments) > 0 {
		fragments = fragments[1:]
	}
	if len(fragments)%2 != 0 {
		return nil, fmt.Errorf("%w: %d fragments after preamble", ErrUnpairedFragment, len(fragments))
	}

	out := make([]document.Section, 0, len(fragments)/2)
	for i := 0; i < len(fragments); i += 2 {
		n, err := strconv.Atoi(asciiDigits(fragments[i]))
		if err != nil {
			return nil, fmt.Errorf("section marker %q: %w", fragments[i], err)
		}
		out = append(out, document.Section{Number: n, Body: fragments[i+1]})
	}
	return out, nil
}

// asciiDigits maps every decimal digit of s, from any script, to its
// ASCII form.
func asciiDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 0x80 {
			return r
		}
		if d := unicode.Digit(r); d >= 0 {
			return '0' + rune(d)
		}
		return r
	}, s)
}
