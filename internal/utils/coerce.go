package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	rxKeepNums  = regexp.MustCompile(`[^\d\.\-]`)
	rxDotGroups = regexp.MustCompile(`^-?\d{1,3}(\.\d{3})+$`)
)

// ParseQuantity parses spreadsheet quantity cells tolerantly: "1 234,50"
// and "1.234,50", NBSP/thin-space grouping, parenthesized negatives.
// Spanish exports group thousands with dots and mark decimals with a
// comma; a dot only counts as a decimal point when no comma says
// otherwise and the digits do not look dot-grouped. Returns the value
// rounded toward zero and false when the cell holds no usable number.
func ParseQuantity(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	neg := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		neg = true
		s = s[1 : len(s)-1]
	}
	repl := strings.NewReplacer(" ", "", " ", "", " ", "", " ", "", "\t", "")
	s = repl.Replace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if rxDotGroups.MatchString(s) {
		s = strings.ReplaceAll(s, ".", "")
	}
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if neg {
		f = -f
	}
	return int(f), true
}

// CleanIdentifier strips the float artifacts spreadsheets leave on barcode
// cells: a trailing ".0" and the literal "nan".
func CleanIdentifier(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "nan") {
		return ""
	}
	s = strings.TrimSuffix(s, ".0")
	return strings.TrimSpace(s)
}
