package service

import "replenish-service/internal/replenish/model"

// Serialize converts the final cart lines into flat export records, one
// per identifier, annotated with the shipment metadata. RequestRef is
// emitted as-is (possibly empty), never omitted. Input order is kept:
// Cart.Lines already yields a stable ordering.
func Serialize(lines []model.CartLine, sh model.Shipment) []model.ExportRecord {
	out := make([]model.ExportRecord, 0, len(lines))
	for _, l := range lines {
		out = append(out, model.ExportRecord{
			Identifier:  l.Identifier,
			Reference:   l.Reference,
			Name:        l.Name,
			Color:       l.Color,
			Size:        l.Size,
			Quantity:    l.Quantity,
			Origin:      sh.Origin,
			Destination: sh.Destination,
			Date:        sh.Date,
			RequestRef:  sh.RequestRef,
		})
	}
	return out
}
