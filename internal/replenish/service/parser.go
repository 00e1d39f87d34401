package service

import (
	"regexp"
	"strings"

	"replenish-service/internal/replenish/model"
)

var (
	reBracketRef = regexp.MustCompile(`\[(.*?)\]`)
	reTrailParen = regexp.MustCompile(`\((.*)\)\s*$`)
	reBareParen  = regexp.MustCompile(`^(.*?)\s*\((.*?)\)\s*$`)
)

// ParseVariant extracts (reference, attr1, attr2) from a free-text line
// following "[REF] Name (attr1[, attr2])". It tolerates missing brackets
// or parens by degrading to a lower attribute count, never failing: the
// input is externally supplied text of uncertain quality.
//
// A bare "REF (attr)" line (no brackets) is accepted too; the prefix is
// then taken as the reference with a single attribute.
func ParseVariant(raw string) model.ParsedVariant {
	s := strings.TrimSpace(raw)
	if s == "" {
		return model.ParsedVariant{}
	}

	m := reBracketRef.FindStringSubmatch(s)
	if m == nil {
		if bm := reBareParen.FindStringSubmatch(s); bm != nil {
			ref := strings.TrimSpace(bm[1])
			attr := strings.TrimSpace(bm[2])
			if ref != "" && attr != "" {
				return model.ParsedVariant{Reference: ref, Attr1: attr, AttrCount: 1}
			}
		}
		return model.ParsedVariant{}
	}
	ref := strings.TrimSpace(m[1])

	pm := reTrailParen.FindStringSubmatch(s)
	if pm == nil {
		return model.ParsedVariant{Reference: ref}
	}
	inside := strings.TrimSpace(pm[1])
	if inside == "" {
		return model.ParsedVariant{Reference: ref}
	}

	// split on the LAST comma: color names may themselves contain commas
	if i := strings.LastIndex(inside, ","); i >= 0 {
		return model.ParsedVariant{
			Reference: ref,
			Attr1:     strings.TrimSpace(inside[:i]),
			Attr2:     strings.TrimSpace(inside[i+1:]),
			AttrCount: 2,
		}
	}
	return model.ParsedVariant{Reference: ref, Attr1: inside, AttrCount: 1}
}
