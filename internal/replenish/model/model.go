package model

// CatalogRow is one row of the product master data. Identifier is the
// per-variant barcode (EAN) required by the ERP; it may legitimately be
// empty when the master data is incomplete.
type CatalogRow struct {
	Identifier string `json:"identifier"`
	Reference  string `json:"reference"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Size       string `json:"size"`

	// normalized forms, computed once at catalog load
	RefNorm   string `json:"-"`
	ColorNorm string `json:"-"`
	SizeNorm  string `json:"-"`
}

// ParsedVariant is the result of parsing a free-text product line like
// "[A123] Dress (Red, M)". AttrCount is 0, 1 or 2; with one attribute its
// role (color vs size) is undecided until resolution.
type ParsedVariant struct {
	Reference string
	Attr1     string
	Attr2     string
	AttrCount int
}

// Reason classifies why an import line could not be resolved.
type Reason string

const (
	ReasonNotFound          Reason = "NOT_FOUND"
	ReasonAmbiguous         Reason = "AMBIGUOUS"
	ReasonMissingIdentifier Reason = "MISSING_IDENTIFIER"
)

// Resolution is the outcome of matching a parsed variant against the
// catalog. Exactly one of Row or Reason is meaningful.
type Resolution struct {
	Row        *CatalogRow
	Reason     Reason
	Candidates int // competing rows when Reason == AMBIGUOUS
}

func (r Resolution) Resolved() bool { return r.Row != nil }

// CartLine is one consolidated cart entry, keyed by Identifier.
type CartLine struct {
	Identifier string `json:"identifier"`
	Reference  string `json:"reference"`
	Name       string `json:"name"`
	Color      string `json:"color"`
	Size       string `json:"size"`
	Quantity   int    `json:"quantity"`
}

// Incidence records an import line that did not resolve to a unique
// catalog variant. The list is surfaced in full for manual correction.
type Incidence struct {
	RawText     string       `json:"rawText"`
	Reference   string       `json:"reference"`
	Attribute   string       `json:"attribute,omitempty"`
	Quantity    int          `json:"quantity"`
	Reason      Reason       `json:"reason"`
	Strategy    string       `json:"strategy"`
	Candidates  int          `json:"candidates,omitempty"`
	Suggestions []Suggestion `json:"suggestions,omitempty"`
}

// Suggestion is a near-miss catalog reference offered for a NOT_FOUND line.
type Suggestion struct {
	Reference string  `json:"reference"`
	Name      string  `json:"name"`
	Score     float64 `json:"score"`
}

// ImportRow is one raw line of an uploaded sales/replenishment file.
type ImportRow struct {
	RawText  string `json:"rawText"`
	Quantity int    `json:"quantity"`
}

// ProcessedLine is an import line that resolved, with the strategy used.
type ProcessedLine struct {
	Line     CartLine `json:"line"`
	Strategy string   `json:"strategy"`
}

// ImportResult is the partial-success outcome of one import batch:
// resolved additions plus the full incidence list. The batch never aborts
// on individual bad rows.
type ImportResult struct {
	Processed  []ProcessedLine `json:"processed"`
	Incidences []Incidence     `json:"incidences"`
	TotalRows  int             `json:"totalRows"`
	Matched    int             `json:"matched"`
	Units      int             `json:"units"`
}

// Shipment is the request metadata attached to every exported record.
type Shipment struct {
	Date        string `json:"date"` // YYYY-MM-DD
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	RequestRef  string `json:"requestRef"`
}

// ExportRecord is one flat output row handed to the spreadsheet writer.
type ExportRecord struct {
	Identifier  string `json:"identifier"`
	Reference   string `json:"reference"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Size        string `json:"size"`
	Quantity    int    `json:"quantity"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Date        string `json:"date"`
	RequestRef  string `json:"requestRef"`
}
