package service

import (
	"sort"

	"replenish-service/internal/replenish/model"
)

// Cart is the consolidated identifier -> line mapping. It is a plain map
// so the hosting application can JSON-(de)serialize it for persistence;
// all mutation goes through the methods below.
type Cart map[string]model.CartLine

func NewCart() Cart { return make(Cart) }

// Add accumulates quantity for a catalog row. Repeated additions for the
// same identifier sum rather than overwrite, regardless of whether they
// came from the import or the manual path.
func (c Cart) Add(row model.CatalogRow, qty int) {
	if row.Identifier == "" || qty <= 0 {
		return
	}
	if line, ok := c[row.Identifier]; ok {
		line.Quantity += qty
		c[row.Identifier] = line
		return
	}
	c[row.Identifier] = model.CartLine{
		Identifier: row.Identifier,
		Reference:  row.Reference,
		Name:       row.Name,
		Color:      row.Color,
		Size:       row.Size,
		Quantity:   qty,
	}
}

// SetQuantity is the absolute override used by the review step.
// Zero or negative removes the line.
func (c Cart) SetQuantity(identifier string, qty int) {
	line, ok := c[identifier]
	if !ok {
		return
	}
	if qty <= 0 {
		delete(c, identifier)
		return
	}
	line.Quantity = qty
	c[identifier] = line
}

func (c Cart) Remove(identifier string) { delete(c, identifier) }

// Merge returns a new cart with summed quantities. Commutative and
// associative, with the empty cart as identity: the import and manual
// carts are merged independently before export and order must not matter.
func Merge(a, b Cart) Cart {
	out := make(Cart, len(a)+len(b))
	for id, line := range a {
		out[id] = line
	}
	for id, line := range b {
		if ex, ok := out[id]; ok {
			ex.Quantity += line.Quantity
			out[id] = ex
			continue
		}
		out[id] = line
	}
	return out
}

// Lines returns the cart entries with quantity > 0, ordered by reference
// then identifier for reproducible output.
func (c Cart) Lines() []model.CartLine {
	out := make([]model.CartLine, 0, len(c))
	for _, line := range c {
		if line.Quantity > 0 {
			out = append(out, line)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Reference != out[j].Reference {
			return out[i].Reference < out[j].Reference
		}
		return out[i].Identifier < out[j].Identifier
	})
	return out
}

// Units is the total quantity across all live lines.
func (c Cart) Units() int {
	total := 0
	for _, line := range c {
		if line.Quantity > 0 {
			total += line.Quantity
		}
	}
	return total
}
