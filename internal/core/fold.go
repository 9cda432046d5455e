package core

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// fold returns the key names are matched by. Two names share a key exactly
// when strings.EqualFold reports them equal: every rune is replaced with the
// smallest rune of its simple case folding orbit, so "ß" stays distinct
// from "ss".
func fold(s string) string {
	lower := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf {
			return strings.Map(foldRune, s)
		}
		lower = lower || ('a' <= c && c <= 'z')
	}
	if !lower {
		return s
	}
	// ASCII only: the smallest rune of every letter orbit is its upper case.
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func foldRune(r rune) rune {
	m := r
	for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
		if f < m {
			m = f
		}
	}
	return m
}
