package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadAnyMaps picks a parser by extension and returns the rows as
// map[header]value records. headerRow is 1-based.
func ReadAnyMaps(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	_, maps, err := ReadAnyTable(r, filename, headerRow)
	return maps, err
}

// ReadAnyTable is ReadAnyMaps plus the resolved header list in column
// order, for callers that need positional fallbacks.
func ReadAnyTable(r io.Reader, filename string, headerRow int) ([]string, []map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	var (
		maps []map[string]string
		hdrs []string
		err  error
	)
	switch ext {
	case ".xlsx":
		hdrs, maps, err = readXLSX(r, headerRow)
	case ".xls":
		hdrs, maps, err = readXLS(r, headerRow)
	case ".csv":
		hdrs, maps, err = readCSV(r, headerRow)
	default:
		return nil, nil, fmt.Errorf("unsupported file: %s", filename)
	}
	return hdrs, maps, err
}

// pickHeader takes the header row and substitutes "Column N" for blanks.
func pickHeader(rows [][]string, headerRow int) []string {
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps converts the cell grid into records keyed by header,
// skipping rows that are entirely empty.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	start := headerRow // first row after the headers
	var out []map[string]string
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		m := map[string]string{}
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
		}
		empty := true
		for _, v := range m {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}
