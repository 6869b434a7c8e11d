package match

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is a compiled regular expression together with its flags.
type Pattern struct {
	re     *regexp.Regexp
	source string
	flags  string
	global bool
	sticky bool
}

// Compile builds a Pattern from a pattern body and a flag string.
func Compile(pattern, flags string) (*Pattern, error) {
	input := "/" + pattern + "/" + flags
	if pattern == "" {
		return nil, &PatternError{Input: input, Err: ErrEmptyPattern}
	}

	p := &Pattern{source: pattern, flags: flags}
	var inline strings.Builder
	seen := make(map[rune]bool, len(flags))
	for _, f := range flags {
		if seen[f] {
			return nil, &PatternError{Input: input, Err: fmt.Errorf("%w: %q repeated", ErrInvalidFlag, f)}
		}
		seen[f] = true

		switch f {
		case 'g':
			p.global = true
		case 'y':
			p.sticky = true
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'u':
		default:
			return nil, &PatternError{Input: input, Err: fmt.Errorf("%w: %q", ErrInvalidFlag, f)}
		}
	}

	expr := pattern
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &PatternError{Input: input, Err: err}
	}
	p.re = re
	return p, nil
}

// ParsePattern parses user input of the form /pattern/flags.
// The last slash separates the flags, so the body may contain slashes.
func ParsePattern(input string) (*Pattern, error) {
	s := strings.TrimSpace(input)
	if len(s) < 2 || s[0] != '/' {
		return nil, &PatternError{Input: input, Err: ErrMissingDelimiter}
	}
	last := strings.LastIndexByte(s, '/')
	if last == 0 {
		return nil, &PatternError{Input: input, Err: ErrMissingDelimiter}
	}
	p, err := Compile(s[1:last], s[last+1:])
	if err != nil {
		if pe, ok := err.(*PatternError); ok {
			pe.Input = input
		}
		return nil, err
	}
	return p, nil
}

// String returns the pattern in /pattern/flags form.
func (p *Pattern) String() string {
	return "/" + p.source + "/" + p.flags
}

// FindAll returns submatch index pairs for the matches in text, left to
// right, following the g and y flags.
//
// An empty match never repeats at the same offset: the scan resumes one
// rune further, so every pattern terminates.
func (p *Pattern) FindAll(text string) [][]int {
	n := 1
	if p.global {
		n = -1
	}
	if !p.sticky {
		return p.re.FindAllStringSubmatchIndex(text, n)
	}

	var locs [][]int
	pos := 0
	for _, loc := range p.re.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] != pos {
			break
		}
		locs = append(locs, loc)
		if !p.global {
			break
		}
		pos = loc[1]
	}
	return locs
}
