package service

import "replenish-service/internal/replenish/model"

// Strategy labels reported back on every resolution attempt so a human
// can see which lookup was tried when fixing source data.
const (
	StrategyExact    = "exact ref+color+size"
	StrategyRefSize  = "ref+size"
	StrategyRefColor = "ref+color"
	StrategyNoAttrs  = "no attributes"
)

// Resolve matches a parsed variant against the catalog index and returns
// exactly one row or a classified failure. With a single attribute the
// size index is tried when the token looks like a size, the color index
// otherwise. The resolver never guesses among ambiguous candidates:
// shipping the wrong variant is worse than reporting an incidence.
func Resolve(v model.ParsedVariant, idx *Index) (model.Resolution, string) {
	refN := Normalize(v.Reference)
	if refN == "" {
		return model.Resolution{Reason: model.ReasonNotFound}, StrategyNoAttrs
	}

	switch v.AttrCount {
	case 2:
		k := exactKey{refN, NormalizeColor(v.Attr1), NormalizeSize(v.Attr2)}
		return pickUnique(idx.exact[k]), StrategyExact
	case 1:
		if LooksLikeSize(v.Attr1) {
			k := pairKey{refN, NormalizeSize(v.Attr1)}
			return pickUnique(idx.refSize[k]), StrategyRefSize
		}
		k := pairKey{refN, NormalizeColor(v.Attr1)}
		return pickUnique(idx.refColor[k]), StrategyRefColor
	default:
		return model.Resolution{Reason: model.ReasonNotFound}, StrategyNoAttrs
	}
}

// pickUnique demands exactly one candidate with a usable identifier.
func pickUnique(rows []model.CatalogRow) model.Resolution {
	switch {
	case len(rows) == 0:
		return model.Resolution{Reason: model.ReasonNotFound}
	case len(rows) > 1:
		return model.Resolution{Reason: model.ReasonAmbiguous, Candidates: len(rows)}
	}
	row := rows[0]
	if row.Identifier == "" {
		return model.Resolution{Reason: model.ReasonMissingIdentifier}
	}
	return model.Resolution{Row: &row}
}
