package service

import "replenish-service/internal/replenish/model"

type exactKey struct{ ref, color, size string }
type pairKey struct{ ref, attr string }

// Index holds the three lookup maps derived from one catalog snapshot.
// It is built once per catalog load and shared read-only afterwards;
// rebuilding per lookup would be wasted work, not a correctness issue.
type Index struct {
	exact    map[exactKey][]model.CatalogRow
	refColor map[pairKey][]model.CatalogRow
	refSize  map[pairKey][]model.CatalogRow
	byID     map[string]model.CatalogRow
	rows     []model.CatalogRow
}

// BuildIndex normalizes every row and inserts it under its three keys.
// Rows missing color or size participate with an empty key component, so
// reference-only products still resolve through the pair indexes.
func BuildIndex(rows []model.CatalogRow) *Index {
	idx := &Index{
		exact:    make(map[exactKey][]model.CatalogRow, len(rows)),
		refColor: make(map[pairKey][]model.CatalogRow, len(rows)),
		refSize:  make(map[pairKey][]model.CatalogRow, len(rows)),
		byID:     make(map[string]model.CatalogRow, len(rows)),
		rows:     make([]model.CatalogRow, 0, len(rows)),
	}
	for _, r := range rows {
		if r.RefNorm == "" {
			r.RefNorm = Normalize(r.Reference)
		}
		if r.ColorNorm == "" {
			r.ColorNorm = NormalizeColor(r.Color)
		}
		if r.SizeNorm == "" {
			r.SizeNorm = NormalizeSize(r.Size)
		}
		idx.rows = append(idx.rows, r)
		if r.Identifier != "" {
			if _, ok := idx.byID[r.Identifier]; !ok {
				idx.byID[r.Identifier] = r
			}
		}

		ek := exactKey{r.RefNorm, r.ColorNorm, r.SizeNorm}
		ck := pairKey{r.RefNorm, r.ColorNorm}
		sk := pairKey{r.RefNorm, r.SizeNorm}
		idx.exact[ek] = append(idx.exact[ek], r)
		idx.refColor[ck] = append(idx.refColor[ck], r)
		idx.refSize[sk] = append(idx.refSize[sk], r)
	}
	return idx
}

// Rows returns the catalog snapshot the index was built from.
func (idx *Index) Rows() []model.CatalogRow { return idx.rows }

// ByIdentifier looks up a catalog row by its unique identifier.
// Backs the manual-add path, where the UI picked a concrete variant.
func (idx *Index) ByIdentifier(id string) (model.CatalogRow, bool) {
	r, ok := idx.byID[id]
	return r, ok
}

// VariantsOf returns every catalog row sharing the given reference,
// in catalog order. Used by the batch manual-add path.
func (idx *Index) VariantsOf(ref string) []model.CatalogRow {
	refN := Normalize(ref)
	var out []model.CatalogRow
	for _, r := range idx.rows {
		if r.RefNorm == refN {
			out = append(out, r)
		}
	}
	return out
}
