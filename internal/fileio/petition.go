package fileio

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	excelize "github.com/xuri/excelize/v2"

	"replenish-service/internal/replenish/model"
)

// Column layout expected by the Gextia/Odoo import.
var petitionHeader = []string{
	"EAN", "Referencia", "Nombre", "Color", "Talla", "Cantidad",
	"Origen", "Destino", "Fecha", "Ref_Peticion",
}

// WritePetition renders the export records into the petition workbook:
// a PETICION sheet with one row per record and a META sheet with the
// shipment summary.
func WritePetition(records []model.ExportRecord, sh model.Shipment) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "PETICION"
	f.SetSheetName(f.GetSheetName(0), sheet)

	if err := f.SetSheetRow(sheet, "A1", &petitionHeader); err != nil {
		return nil, err
	}
	for i, rec := range records {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []interface{}{
			rec.Identifier, rec.Reference, rec.Name, rec.Color, rec.Size,
			rec.Quantity, rec.Origin, rec.Destination, rec.Date, rec.RequestRef,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	const meta = "META"
	if _, err := f.NewSheet(meta); err != nil {
		return nil, err
	}
	metaHeader := []string{"Fecha", "Origen", "Destino", "Ref_Peticion", "Generado"}
	if err := f.SetSheetRow(meta, "A1", &metaHeader); err != nil {
		return nil, err
	}
	metaRow := []interface{}{
		sh.Date, sh.Origin, sh.Destination, sh.RequestRef,
		time.Now().Format("2006-01-02 15:04:05"),
	}
	if err := f.SetSheetRow(meta, "A2", &metaRow); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PetitionFilename builds "peticion_<ref>_<YYYYMMDD>.xlsx", falling back
// to "sin_ref" when the request has no reference.
func PetitionFilename(sh model.Shipment) string {
	ref := strings.TrimSpace(sh.RequestRef)
	if ref == "" {
		ref = "sin_ref"
	}
	ref = strings.ReplaceAll(ref, " ", "_")

	datePart := strings.ReplaceAll(sh.Date, "-", "")
	if datePart == "" {
		datePart = time.Now().Format("20060102")
	}
	return fmt.Sprintf("peticion_%s_%s.xlsx", ref, datePart)
}
