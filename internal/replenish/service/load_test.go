package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogFromMaps(t *testing.T) {
	maps := []map[string]string{
		{"Referencia": "A123", "Código EAN": "8400000000017.0", "Descripción": "Vestido", "Color": "Rojo", "Talla": "M"},
		{"Referencia": "A123", "Código EAN": "8400000000024", "Descripción": "Vestido", "Color": "Rojo", "Talla": "L"},
		{"Referencia": "B900", "Código EAN": "nan", "Descripción": "Camisa", "Color": "Azul", "Talla": ""},
		{"Referencia": "", "Código EAN": "", "Descripción": "", "Color": "", "Talla": ""},
	}

	rows, err := CatalogFromMaps(maps)
	require.NoError(t, err)
	require.Len(t, rows, 3) // fully empty row dropped

	require.Equal(t, "8400000000017", rows[0].Identifier) // ".0" artifact stripped
	require.Equal(t, "Vestido", rows[0].Name)
	require.Equal(t, "", rows[2].Identifier) // "nan" cleaned to empty
	require.Equal(t, "B900", rows[2].Reference)
}

func TestCatalogFromMapsEnglishHeaders(t *testing.T) {
	maps := []map[string]string{
		{"Reference": "A1", "Barcode": "111", "Name": "Shirt", "Color": "Blue", "Size": "S"},
	}
	rows, err := CatalogFromMaps(maps)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "111", rows[0].Identifier)
	require.Equal(t, "S", rows[0].Size)
}

func TestCatalogFromMapsMissingColumns(t *testing.T) {
	_, err := CatalogFromMaps([]map[string]string{{"Foo": "x", "Bar": "y"}})
	require.ErrorIs(t, err, ErrMissingColumns)

	_, err = CatalogFromMaps(nil)
	require.ErrorIs(t, err, ErrMissingColumns)

	// reference present but no identifier column
	_, err = CatalogFromMaps([]map[string]string{{"Referencia": "A1", "Nombre": "X"}})
	require.ErrorIs(t, err, ErrMissingColumns)
}

func TestCatalogFromMapsOptionalColumnsDefaultEmpty(t *testing.T) {
	maps := []map[string]string{
		{"Referencia": "A1", "EAN": "111"},
	}
	rows, err := CatalogFromMaps(maps)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "", rows[0].Name)
	require.Equal(t, "", rows[0].Color)
	require.Equal(t, "", rows[0].Size)
}

func TestImportRowsFromMaps(t *testing.T) {
	headers := []string{"Producto", "Cantidad"}
	maps := []map[string]string{
		{"Producto": "[A1] Shirt (Blue, S)", "Cantidad": "4"},
		{"Producto": "[A1] Shirt (Blue, M)", "Cantidad": "1 234"},
		{"Producto": "[A1] Shirt (Blue, L)", "Cantidad": "0"},
		{"Producto": "[A1] Shirt (Blue, XL)", "Cantidad": "abc"},
		{"Producto": "", "Cantidad": "7"},
	}

	rows := ImportRowsFromMaps(maps, headers)
	require.Len(t, rows, 2)
	require.Equal(t, 4, rows[0].Quantity)
	require.Equal(t, 1234, rows[1].Quantity)
}

func TestImportRowsFromMapsPositionalFallback(t *testing.T) {
	// headers with no recognizable keywords: first column is the text,
	// second the quantity (plain POS export layout)
	headers := []string{"Column 1", "Column 2"}
	maps := []map[string]string{
		{"Column 1": "[A1] Shirt (Blue, S)", "Column 2": "3"},
	}
	rows := ImportRowsFromMaps(maps, headers)
	require.Len(t, rows, 1)
	require.Equal(t, "[A1] Shirt (Blue, S)", rows[0].RawText)
	require.Equal(t, 3, rows[0].Quantity)
}

func TestResolveKeyAlternativesAndContains(t *testing.T) {
	rec := map[string]string{"Sum of Cantidad Vendida": "10", "Nombre del Artículo": "x"}

	require.Equal(t, "Sum of Cantidad Vendida", resolveKey(rec, "cantidad|qty"))
	require.Equal(t, "Nombre del Artículo", resolveKey(rec, "nombre|name"))
	require.Equal(t, "", resolveKey(rec, ""))
}
