package service

import (
	"sort"

	"github.com/agnivade/levenshtein"

	"replenish-service/internal/replenish/model"
)

const suggestThreshold = 0.6

// SuggestReferences offers the nearest catalog references for a reference
// that matched nothing, by normalized Levenshtein similarity. Purely a
// hint for the correction step; suggestions are never auto-applied.
func SuggestReferences(ref string, idx *Index, limit int) []model.Suggestion {
	refN := Normalize(ref)
	if refN == "" || limit <= 0 {
		return nil
	}

	best := make(map[string]model.Suggestion) // one entry per reference
	for _, r := range idx.Rows() {
		if r.RefNorm == "" {
			continue
		}
		s := similarity(refN, r.RefNorm)
		if s < suggestThreshold {
			continue
		}
		if ex, ok := best[r.RefNorm]; !ok || s > ex.Score {
			best[r.RefNorm] = model.Suggestion{Reference: r.Reference, Name: r.Name, Score: s}
		}
	}

	out := make([]model.Suggestion, 0, len(best))
	for _, s := range best {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Reference < out[j].Reference
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	m := la
	if lb > m {
		m = lb
	}
	if m == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(m)
}
