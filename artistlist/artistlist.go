// Package artistlist reads the artist column of the songs table, which holds
// a python-style list literal of quoted names, like
//
//	['Boris Brejcha', "Ann Clue", 'Guy J\'s Orchestra']
package artistlist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrSyntax is wrapped by every error returned from Parse.
var ErrSyntax = errors.New("invalid artist list")

// Parse decodes an artist list literal. Anything other than a bracketed,
// comma-separated list of string literals is an error.
func Parse(s string) ([]string, error) {
	p := &parser{src: s}
	artists, err := p.list()
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d of %q: %s", ErrSyntax, p.pos, s, err)
	}
	return artists, nil
}

// ParseOrEmpty is Parse with failures collapsed to an empty list. Malformed
// rows contribute no artists.
func ParseOrEmpty(s string) []string {
	artists, err := Parse(s)
	if err != nil {
		return []string{}
	}
	return artists
}

type parser struct {
	src string
	pos int
}

func (p *parser) list() ([]string, error) {
	p.space()
	if !p.eat('[') {
		return nil, errors.New("expected '['")
	}
	artists := []string{}
	for {
		p.space()
		if p.eat(']') {
			break
		}
		artist, err := p.str()
		if err != nil {
			return nil, err
		}
		artists = append(artists, artist)
		p.space()
		if p.eat(',') {
			continue
		}
		if p.eat(']') {
			break
		}
		return nil, errors.New("expected ',' or ']'")
	}
	p.space()
	if p.pos != len(p.src) {
		return nil, errors.New("trailing characters")
	}
	return artists, nil
}

func (p *parser) str() (string, error) {
	raw := false
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case 'u', 'U':
			p.pos++
			continue
		case 'r', 'R':
			raw = true
			p.pos++
			continue
		}
		break
	}
	if p.pos >= len(p.src) {
		return "", errors.New("unexpected end of input")
	}
	quote := p.src[p.pos]
	if quote != '\'' && quote != '"' {
		return "", errors.New("expected a quoted string")
	}
	p.pos++

	var b strings.Builder
	for {
		if p.pos >= len(p.src) {
			return "", errors.New("unterminated string")
		}
		c := p.src[p.pos]
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\n':
			return "", errors.New("newline in string")
		case c == '\\' && raw:
			if p.pos+1 < len(p.src) {
				b.WriteString(p.src[p.pos : p.pos+2])
				p.pos += 2
			} else {
				return "", errors.New("unterminated string")
			}
		case c == '\\':
			if err := p.escape(&b); err != nil {
				return "", err
			}
		default:
			r, size := utf8.DecodeRuneInString(p.src[p.pos:])
			b.WriteRune(r)
			p.pos += size
		}
	}
}

func (p *parser) escape(b *strings.Builder) error {
	p.pos++
	if p.pos >= len(p.src) {
		return errors.New("unterminated escape")
	}
	c := p.src[p.pos]
	p.pos++
	switch c {
	case '\\', '\'', '"':
		b.WriteByte(c)
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'r':
		b.WriteByte('\r')
	case 'a':
		b.WriteByte('\a')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'v':
		b.WriteByte('\v')
	case '\n':
		// line continuation
	case 'x':
		return p.codepoint(b, 2)
	case 'u':
		return p.codepoint(b, 4)
	case 'U':
		return p.codepoint(b, 8)
	default:
		// python keeps unknown escapes verbatim
		b.WriteByte('\\')
		b.WriteByte(c)
	}
	return nil
}

func (p *parser) codepoint(b *strings.Builder, digits int) error {
	if p.pos+digits > len(p.src) {
		return errors.New("truncated escape")
	}
	n, err := strconv.ParseUint(p.src[p.pos:p.pos+digits], 16, 32)
	if err != nil {
		return fmt.Errorf("bad escape: %w", err)
	}
	if n > utf8.MaxRune {
		return errors.New("escape out of range")
	}
	b.WriteRune(rune(n))
	p.pos += digits
	return nil
}

func (p *parser) space() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) eat(c byte) bool {
	if p.pos < len(p.src) && p.src[p.pos] == c {
		p.pos++
		return true
	}
	return false
}
