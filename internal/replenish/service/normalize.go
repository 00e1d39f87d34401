package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

var folder = cases.Fold()

// size synonyms -> canonical short code
var sizeMap = map[string]string{
	"x-small": "xs", "x small": "xs", "xs": "xs",
	"small": "s", "s": "s",
	"medium": "m", "m": "m",
	"large": "l", "l": "l",
	"x-large": "xl", "x large": "xl", "xl": "xl",
	"xxl": "xxl", "xxxl": "xxxl",
	"0": "0", "1": "1", "2": "2", "3": "3", "4": "4", "5": "5",
}

var sizeCanon = func() map[string]struct{} {
	m := make(map[string]struct{}, len(sizeMap))
	for _, v := range sizeMap {
		m[v] = struct{}{}
	}
	return m
}()

var (
	reSizeAbbrev = regexp.MustCompile(`^(xs|s|m|l|xl|xxl|xxxl)$`)
	reSizeDigits = regexp.MustCompile(`^\d{1,2}$`)
)

// Normalize case-folds, collapses whitespace runs and trims. Pure and
// idempotent; both index construction and lookups run tokens through it.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(folder.String(s)), " ")
}

// NormalizeColor glues spaced separators so "blanco - lagoon" and
// "blanco-lagoon" compare equal.
func NormalizeColor(s string) string {
	out := Normalize(s)
	out = strings.ReplaceAll(out, " - ", "-")
	out = strings.ReplaceAll(out, " / ", "/")
	return out
}

// NormalizeSize maps known size-name synonyms to their canonical short
// form; unknown inputs pass through normalized but unmapped.
func NormalizeSize(s string) string {
	out := Normalize(s)
	if canon, ok := sizeMap[out]; ok {
		return canon
	}
	return out
}

// LooksLikeSize reports whether a lone attribute token should be tried as
// a size before a color: a canonical size code, a bare letter size, or a
// 1-2 digit number (numeric sizing systems).
func LooksLikeSize(tok string) bool {
	t := NormalizeSize(tok)
	if _, ok := sizeCanon[t]; ok {
		return true
	}
	return reSizeAbbrev.MatchString(t) || reSizeDigits.MatchString(t)
}
