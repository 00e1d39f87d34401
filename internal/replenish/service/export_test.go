package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"replenish-service/internal/replenish/model"
)

func TestSerialize(t *testing.T) {
	c := NewCart()
	c.Add(rowE3, 2)
	c.Add(rowE1, 5)

	sh := model.Shipment{
		Date:        "2026-08-31",
		Origin:      "Almacén Central",
		Destination: "Tienda Marbella",
		RequestRef:  "PET-042",
	}
	records := Serialize(c.Lines(), sh)

	require.Len(t, records, 2)
	// Cart.Lines orders by reference, so A123 before B900
	require.Equal(t, model.ExportRecord{
		Identifier:  "E1",
		Reference:   "A123",
		Name:        "Dress",
		Color:       "Red",
		Size:        "M",
		Quantity:    5,
		Origin:      "Almacén Central",
		Destination: "Tienda Marbella",
		Date:        "2026-08-31",
		RequestRef:  "PET-042",
	}, records[0])
	require.Equal(t, "E3", records[1].Identifier)
}

func TestSerializeEmptyRequestRef(t *testing.T) {
	c := NewCart()
	c.Add(rowE1, 1)

	records := Serialize(c.Lines(), model.Shipment{Date: "2026-01-02", Origin: "A", Destination: "B"})
	require.Len(t, records, 1)
	require.Equal(t, "", records[0].RequestRef) // empty string, never omitted
}

func TestSerializeEmptyCart(t *testing.T) {
	records := Serialize(nil, model.Shipment{})
	require.NotNil(t, records)
	require.Empty(t, records)
}
