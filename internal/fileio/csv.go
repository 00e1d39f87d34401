package fileio

import (
	"bufio"
	"encoding/csv"
	"io"
	"strings"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// readCSV reads CSV with headerRow (1-based), auto-detecting the encoding
// and converting to UTF-8. Legacy POS exports tend to arrive as
// Windows-1252/ISO-8859-1 with accented product names.
func readCSV(r io.Reader, headerRow int) ([]string, []map[string]string, error) {
	br := bufio.NewReader(r)

	// peek a bit to detect encoding
	peek, _ := br.Peek(2048)
	cs := "utf-8"
	if len(peek) > 0 {
		if det, err := chardet.NewTextDetector().DetectBest(peek); err == nil && det != nil {
			cs = strings.ToLower(det.Charset)
		}
	}

	var dec io.Reader = br
	switch cs {
	case "windows-1252", "cp1252":
		dec = transform.NewReader(br, charmap.Windows1252.NewDecoder())
	case "iso-8859-1", "latin1":
		dec = transform.NewReader(br, charmap.ISO8859_1.NewDecoder())
	default:
		// assume UTF-8
	}

	cr := csv.NewReader(dec)
	cr.FieldsPerRecord = -1
	if sep := sniffSeparator(peek); sep != 0 {
		cr.Comma = sep
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		rows = append(rows, rec)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	h := pickHeader(rows, headerRow)
	return h, rowsToMaps(rows, h, headerRow), nil
}

// sniffSeparator guesses ';' vs ',' from the first chunk; European
// spreadsheet exports commonly use semicolons.
func sniffSeparator(peek []byte) rune {
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	semis := strings.Count(line, ";")
	commas := strings.Count(line, ",")
	switch {
	case semis > commas:
		return ';'
	case commas > 0:
		return ','
	default:
		return 0
	}
}
