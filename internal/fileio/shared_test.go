package fileio

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	excelize "github.com/xuri/excelize/v2"
)

func TestReadAnyTableCSV(t *testing.T) {
	csv := "Producto;Cantidad\n[A1] Shirt (Blue, S);4\n[A1] Shirt (Blue, M);2\n;;\n"
	headers, maps, err := ReadAnyTable(strings.NewReader(csv), "ventas.csv", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Producto", "Cantidad"}, headers)
	require.Len(t, maps, 2) // fully empty row skipped
	require.Equal(t, "4", maps[0]["Cantidad"])
	require.Equal(t, "[A1] Shirt (Blue, M)", maps[1]["Producto"])
}

func TestReadAnyTableCSVCommaSeparated(t *testing.T) {
	csv := "Ref,Qty\nA1,3\n"
	headers, maps, err := ReadAnyTable(strings.NewReader(csv), "data.csv", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Ref", "Qty"}, headers)
	require.Len(t, maps, 1)
	require.Equal(t, "3", maps[0]["Qty"])
}

func TestReadAnyTableXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]interface{}{"Referencia", "EAN", "Nombre"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]interface{}{"A123", "111", "Vestido"}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	headers, maps, err := ReadAnyTable(bytes.NewReader(buf.Bytes()), "catalogo.xlsx", 1)
	require.NoError(t, err)
	require.Equal(t, []string{"Referencia", "EAN", "Nombre"}, headers)
	require.Len(t, maps, 1)
	require.Equal(t, "A123", maps[0]["Referencia"])
}

func TestReadAnyTableHeaderRowOffset(t *testing.T) {
	csv := "informe de ventas,\nProducto,Cantidad\n[A1] X (S),1\n"
	headers, maps, err := ReadAnyTable(strings.NewReader(csv), "v.csv", 2)
	require.NoError(t, err)
	require.Equal(t, []string{"Producto", "Cantidad"}, headers)
	require.Len(t, maps, 1)
}

func TestReadAnyTableUnsupported(t *testing.T) {
	_, _, err := ReadAnyTable(strings.NewReader("x"), "file.pdf", 1)
	require.Error(t, err)
}

func TestPickHeaderFillsBlanks(t *testing.T) {
	rows := [][]string{{"Producto", "", "Cantidad"}}
	require.Equal(t, []string{"Producto", "Column 2", "Cantidad"}, pickHeader(rows, 1))
}
