package fileio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"

	"replenish-service/internal/replenish/model"
)

func TestWritePetition(t *testing.T) {
	sh := model.Shipment{
		Date:        "2026-08-31",
		Origin:      "Almacén Central",
		Destination: "Tienda Marbella",
		RequestRef:  "PET-042",
	}
	records := []model.ExportRecord{
		{
			Identifier: "8400000000017", Reference: "A123", Name: "Vestido",
			Color: "Rojo", Size: "M", Quantity: 5,
			Origin: sh.Origin, Destination: sh.Destination, Date: sh.Date, RequestRef: sh.RequestRef,
		},
		{
			Identifier: "8400000000024", Reference: "B900", Name: "Camisa",
			Color: "Azul", Size: "", Quantity: 2,
			Origin: sh.Origin, Destination: sh.Destination, Date: sh.Date, RequestRef: sh.RequestRef,
		},
	}

	data, err := WritePetition(records, sh)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("PETICION")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, petitionHeader, rows[0])
	require.Equal(t, "8400000000017", rows[1][0])
	require.Equal(t, "5", rows[1][5])
	require.Equal(t, "2026-08-31", rows[1][8])
	require.Equal(t, "B900", rows[2][1])

	meta, err := f.GetRows("META")
	require.NoError(t, err)
	require.Len(t, meta, 2)
	require.Equal(t, "Tienda Marbella", meta[1][2])
}

func TestWritePetitionEmpty(t *testing.T) {
	data, err := WritePetition(nil, model.Shipment{Date: "2026-01-01", Origin: "A", Destination: "B"})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("PETICION")
	require.NoError(t, err)
	require.Len(t, rows, 1) // header only
}

func TestPetitionFilename(t *testing.T) {
	sh := model.Shipment{Date: "2026-08-31", RequestRef: "PET 042"}
	require.Equal(t, "peticion_PET_042_20260831.xlsx", PetitionFilename(sh))

	sh = model.Shipment{Date: "2026-08-31"}
	require.Equal(t, "peticion_sin_ref_20260831.xlsx", PetitionFilename(sh))
}
