package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"replenish-service/internal/replenish/model"
	"replenish-service/internal/utils"
)

var ErrMissingColumns = errors.New("catalog is missing required columns")

// Column name candidates, "a|b|c" alternatives. Catalogs come from
// different ERP exports with Spanish or English headers.
const (
	catalogRefCols   = "referencia|reference|ref|sku"
	catalogIDCols    = "ean|barcode|codigo ean|codigo de barras"
	catalogNameCols  = "nombre|name|descripcion|denominacion|articulo"
	catalogColorCols = "color"
	catalogSizeCols  = "talla|size"

	importTextCols = "producto|product|referencia|reference|descripcion|articulo|item"
	importQtyCols  = "cantidad|qty|unidades|units|uds|piezas"
)

var rxHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey canonicalizes a column header: lower-case, NBSP variants
// to spaces, punctuation stripped, accents folded so "Descripción"
// matches "descripcion".
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", " ", " ", " ").Replace(s)
	s = strings.NewReplacer(
		"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ñ", "n", "ü", "u",
	).Replace(s)
	s = rxHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the real record key for a wanted column name.
// Supports "a|b|c" alternatives, then exact normalized matches, then
// contains in either direction (composite headers like
// "sum of cantidad vendida" still hit "cantidad").
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	var nWantAll []string
	for _, a := range alts {
		nWantAll = append(nWantAll, normHeaderKey(a))
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nWantAll {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nWantAll {
			if strings.Contains(nk, n) || strings.Contains(n, nk) {
				if len(n) > score {
					score = len(n)
				}
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

// CatalogFromMaps resolves columns once and builds typed catalog rows.
// Reference and identifier columns are a hard precondition; name, color
// and size default to empty when absent. Identifiers get the spreadsheet
// float artifacts stripped.
func CatalogFromMaps(maps []map[string]string) ([]model.CatalogRow, error) {
	if len(maps) == 0 {
		return nil, fmt.Errorf("%w: empty file", ErrMissingColumns)
	}

	first := maps[0]
	refKey := resolveKey(first, catalogRefCols)
	idKey := resolveKey(first, catalogIDCols)

	var missing []string
	if refKey == "" {
		missing = append(missing, "reference")
	}
	if idKey == "" {
		missing = append(missing, "identifier (EAN)")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}

	nameKey := resolveKey(first, catalogNameCols)
	colorKey := resolveKey(first, catalogColorCols)
	sizeKey := resolveKey(first, catalogSizeCols)

	rows := make([]model.CatalogRow, 0, len(maps))
	for _, rec := range maps {
		ref := strings.TrimSpace(rec[refKey])
		id := utils.CleanIdentifier(rec[idKey])
		if ref == "" && id == "" {
			continue
		}
		rows = append(rows, model.CatalogRow{
			Identifier: id,
			Reference:  ref,
			Name:       strings.TrimSpace(rec[nameKey]),
			Color:      strings.TrimSpace(rec[colorKey]),
			Size:       strings.TrimSpace(rec[sizeKey]),
		})
	}
	return rows, nil
}

// ImportRowsFromMaps extracts (free text, quantity) pairs from an uploaded
// sales file. Columns are detected by keyword; when detection fails the
// first column is taken as text and the second as quantity, which is the
// layout the POS export uses. Unparseable or non-positive quantities are
// skipped, not errored.
func ImportRowsFromMaps(maps []map[string]string, headers []string) []model.ImportRow {
	if len(maps) == 0 {
		return nil
	}

	first := maps[0]
	textKey := resolveKey(first, importTextCols)
	qtyKey := resolveKey(first, importQtyCols)
	if textKey == "" && len(headers) > 0 {
		textKey = headers[0]
	}
	if (qtyKey == "" || qtyKey == textKey) && len(headers) > 1 {
		qtyKey = headers[1]
	}

	out := make([]model.ImportRow, 0, len(maps))
	for _, rec := range maps {
		raw := strings.TrimSpace(rec[textKey])
		if raw == "" {
			continue
		}
		qty, ok := utils.ParseQuantity(rec[qtyKey])
		if !ok || qty <= 0 {
			continue
		}
		out = append(out, model.ImportRow{RawText: raw, Quantity: qty})
	}
	return out
}
