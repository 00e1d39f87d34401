package service

import "replenish-service/internal/replenish/model"

// ImportRows runs one batch through parse -> resolve -> accumulate.
// Per-row failures become incidences; the batch itself never aborts,
// partial success is the normal outcome. Rows with quantity <= 0 carry
// nothing to add and are skipped outright.
func ImportRows(rows []model.ImportRow, idx *Index) (Cart, model.ImportResult) {
	cart := NewCart()
	res := model.ImportResult{
		Processed:  make([]model.ProcessedLine, 0, len(rows)),
		Incidences: make([]model.Incidence, 0),
	}

	for _, r := range rows {
		if r.Quantity <= 0 {
			continue
		}
		res.TotalRows++

		parsed := ParseVariant(r.RawText)
		resolution, strategy := Resolve(parsed, idx)

		if !resolution.Resolved() {
			inc := model.Incidence{
				RawText:    r.RawText,
				Reference:  parsed.Reference,
				Attribute:  parsed.Attr1,
				Quantity:   r.Quantity,
				Reason:     resolution.Reason,
				Strategy:   strategy,
				Candidates: resolution.Candidates,
			}
			if resolution.Reason == model.ReasonNotFound {
				inc.Suggestions = SuggestReferences(parsed.Reference, idx, 5)
			}
			res.Incidences = append(res.Incidences, inc)
			continue
		}

		cart.Add(*resolution.Row, r.Quantity)
		res.Matched++
		res.Units += r.Quantity
		res.Processed = append(res.Processed, model.ProcessedLine{
			Line: model.CartLine{
				Identifier: resolution.Row.Identifier,
				Reference:  resolution.Row.Reference,
				Name:       resolution.Row.Name,
				Color:      resolution.Row.Color,
				Size:       resolution.Row.Size,
				Quantity:   r.Quantity,
			},
			Strategy: strategy,
		})
	}

	return cart, res
}
