package service

import (
	"regexp"
	"strings"

	"replenish-service/internal/replenish/model"
)

var reRefSplit = regexp.MustCompile(`[\n\r,;\t ]+`)

// Search returns catalog rows whose reference, name, color or identifier
// contains the query, case-insensitively, capped at limit. Backs the
// manual search-and-pick path.
func Search(idx *Index, query string, limit int) []model.CatalogRow {
	q := Normalize(query)
	if q == "" {
		return nil
	}
	if limit <= 0 {
		limit = 20
	}
	qID := strings.TrimSpace(query)
	var out []model.CatalogRow
	for _, r := range idx.Rows() {
		if strings.Contains(r.RefNorm, q) ||
			strings.Contains(Normalize(r.Name), q) ||
			strings.Contains(r.ColorNorm, q) ||
			strings.Contains(r.Identifier, qID) {
			out = append(out, r)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// ParseRefList splits a pasted blob of references on newlines, commas,
// semicolons, tabs or spaces, deduplicating while keeping first-seen order.
func ParseRefList(text string) []string {
	tokens := reRefSplit.Split(strings.TrimSpace(text), -1)
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		key := Normalize(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, t)
	}
	return out
}
