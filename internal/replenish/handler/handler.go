package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"replenish-service/internal/fileio"
	"replenish-service/internal/middleware"
	"replenish-service/internal/replenish/model"
	"replenish-service/internal/replenish/service"
	"replenish-service/internal/replenish/session"
)

const dateLayout = "2006-01-02"

type shipmentPayload struct {
	Date        string `json:"date"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	RequestRef  string `json:"requestRef"`
}

func (p shipmentPayload) toShipment() (model.Shipment, error) {
	origin := strings.TrimSpace(p.Origin)
	dest := strings.TrimSpace(p.Destination)
	if origin == "" || dest == "" {
		return model.Shipment{}, errors.New("origin and destination are required")
	}
	if origin == dest {
		return model.Shipment{}, errors.New("origin and destination must differ")
	}
	date := strings.TrimSpace(p.Date)
	if date == "" {
		date = time.Now().Format(dateLayout)
	} else if _, err := time.Parse(dateLayout, date); err != nil {
		return model.Shipment{}, fmt.Errorf("date must be %s", dateLayout)
	}
	return model.Shipment{
		Date:        date,
		Origin:      origin,
		Destination: dest,
		RequestRef:  strings.TrimSpace(p.RequestRef),
	}, nil
}

func reqLogger(logger zerolog.Logger, r *http.Request) zerolog.Logger {
	if rid := middleware.GetRequestID(r); rid != "" {
		return logger.With().Str("req_id", rid).Logger()
	}
	return logger
}

func getSession(store *session.Store, w http.ResponseWriter, r *http.Request) *session.Session {
	sess, err := store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil
	}
	return sess
}

// CreateSession starts a petition: shipment config in, session id out.
func CreateSession(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var p shipmentPayload
		if err := readJSON(r, &p); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		sh, err := p.toShipment()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		sess := store.Create(sh)
		log := reqLogger(logger, r)
		log.Info().Str("session", sess.ID).
			Str("origin", sh.Origin).Str("destination", sh.Destination).
			Msg("session created")
		writeJSON(w, http.StatusCreated, map[string]any{"id": sess.ID, "shipment": sess.Shipment})
	}
}

// DeleteSession discards a session and everything it accumulated.
func DeleteSession(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		store.Delete(id)
		log := reqLogger(logger, r)
		log.Info().Str("session", id).Msg("session deleted")
		w.WriteHeader(http.StatusNoContent)
	}
}

// UpdateConfig replaces the shipment config of an existing session.
func UpdateConfig(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		var p shipmentPayload
		if err := readJSON(r, &p); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		sh, err := p.toShipment()
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		sess.Shipment = sh
		writeJSON(w, http.StatusOK, map[string]any{"shipment": sess.Shipment})
	}
}

// UploadCatalog reads a catalog spreadsheet, resolves its columns once
// and builds the session's lookup index.
func UploadCatalog(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		log := reqLogger(logger, r)

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		maps, err := fileio.ReadAnyMaps(file, header.Filename, headerRow)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read catalog: "+err.Error())
			return
		}
		rows, err := service.CatalogFromMaps(maps)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		sess.Index = service.BuildIndex(rows)
		log.Info().Str("session", sess.ID).Str("file", header.Filename).
			Int("rows", len(rows)).Msg("catalog loaded")
		writeJSON(w, http.StatusOK, map[string]any{"rows": len(rows)})
	}
}

// SearchCatalog backs the manual search-and-pick step.
func SearchCatalog(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		if sess.Index == nil {
			writeError(w, http.StatusConflict, "no catalog loaded")
			return
		}
		q := r.URL.Query().Get("q")
		limit := atoi(r.URL.Query().Get("limit"), 20)
		rows := service.Search(sess.Index, q, limit)
		writeJSON(w, http.StatusOK, map[string]any{"results": rows, "count": len(rows)})
	}
}

// BatchRefs resolves a pasted blob of references to their catalog
// variants so the client can offer a variant picker per reference.
func BatchRefs(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	type refVariants struct {
		Reference string             `json:"reference"`
		Found     bool               `json:"found"`
		Variants  []model.CatalogRow `json:"variants,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		if sess.Index == nil {
			writeError(w, http.StatusConflict, "no catalog loaded")
			return
		}
		var body struct {
			Refs string `json:"refs"`
		}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		refs := service.ParseRefList(body.Refs)
		out := make([]refVariants, 0, len(refs))
		for _, ref := range refs {
			variants := sess.Index.VariantsOf(ref)
			out = append(out, refVariants{Reference: ref, Found: len(variants) > 0, Variants: variants})
		}
		writeJSON(w, http.StatusOK, map[string]any{"references": out})
	}
}

// ImportFile runs an uploaded sales/replenishment file through the
// variant-matching pipeline and merges the resolved lines into the
// session's import cart. Partial success is the normal outcome: the
// response carries both the additions and the full incidence list.
func ImportFile(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		if sess.Index == nil {
			writeError(w, http.StatusConflict, "no catalog loaded")
			return
		}
		log := reqLogger(logger, r)

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer file.Close()

		headerRow := atoi(r.FormValue("header_row"), 1)
		headers, maps, err := fileio.ReadAnyTable(file, header.Filename, headerRow)
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read import file: "+err.Error())
			return
		}

		rows := service.ImportRowsFromMaps(maps, headers)
		cart, res := service.ImportRows(rows, sess.Index)
		sess.ImportCart = service.Merge(sess.ImportCart, cart)
		sess.Incidences = append(sess.Incidences, res.Incidences...)

		log.Info().Str("session", sess.ID).Str("file", header.Filename).
			Int("rows", res.TotalRows).Int("matched", res.Matched).
			Int("incidences", len(res.Incidences)).Int("units", res.Units).
			Dur("elapsed", time.Since(start)).Msg("import done")
		writeJSON(w, http.StatusOK, res)
	}
}

// AddManualItem adds a quantity for a concrete catalog variant picked in
// the UI. Additions for an identifier already in the cart accumulate.
func AddManualItem(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		if sess.Index == nil {
			writeError(w, http.StatusConflict, "no catalog loaded")
			return
		}
		var body struct {
			Identifier string `json:"identifier"`
			Quantity   int    `json:"quantity"`
		}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		if body.Quantity <= 0 {
			writeError(w, http.StatusBadRequest, "quantity must be positive")
			return
		}
		row, ok := sess.Index.ByIdentifier(strings.TrimSpace(body.Identifier))
		if !ok {
			writeError(w, http.StatusNotFound, "identifier not in catalog")
			return
		}
		sess.ManualCart.Add(row, body.Quantity)
		writeJSON(w, http.StatusOK, map[string]any{"line": sess.ManualCart[row.Identifier]})
	}
}

// SetItemQuantity is the absolute override from the review step. It
// applies to whichever cart holds the line (import first); a zero or
// negative quantity removes it.
func SetItemQuantity(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		id := chi.URLParam(r, "identifier")
		var body struct {
			Quantity int `json:"quantity"`
		}
		if err := readJSON(r, &body); err != nil {
			writeError(w, http.StatusBadRequest, "bad request body: "+err.Error())
			return
		}
		if _, ok := sess.ImportCart[id]; ok {
			sess.ImportCart.SetQuantity(id, body.Quantity)
		} else if _, ok := sess.ManualCart[id]; ok {
			sess.ManualCart.SetQuantity(id, body.Quantity)
		} else {
			writeError(w, http.StatusNotFound, "identifier not in cart")
			return
		}
		writeJSON(w, http.StatusOK, cartView(sess))
	}
}

// RemoveItem drops an identifier from both carts.
func RemoveItem(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		id := chi.URLParam(r, "identifier")
		sess.ImportCart.Remove(id)
		sess.ManualCart.Remove(id)
		writeJSON(w, http.StatusOK, cartView(sess))
	}
}

// GetCart returns the merged cart plus totals and collected incidences.
func GetCart(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		writeJSON(w, http.StatusOK, cartView(sess))
	}
}

func cartView(sess *session.Session) map[string]any {
	merged := service.Merge(sess.ImportCart, sess.ManualCart)
	lines := merged.Lines()
	return map[string]any{
		"lines":       lines,
		"importLines": sess.ImportCart.Lines(),
		"manualLines": sess.ManualCart.Lines(),
		"references":  len(lines),
		"units":       merged.Units(),
		"incidences":  sess.Incidences,
	}
}

// Export serializes the merged cart and streams the petition workbook.
func Export(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		merged := service.Merge(sess.ImportCart, sess.ManualCart)
		lines := merged.Lines()
		if len(lines) == 0 {
			writeError(w, http.StatusConflict, "cart is empty")
			return
		}

		records := service.Serialize(lines, sess.Shipment)
		data, err := fileio.WritePetition(records, sess.Shipment)
		log := reqLogger(logger, r)
		if err != nil {
			log.Error().Err(err).Str("session", sess.ID).Msg("write petition")
			writeError(w, http.StatusInternalServerError, "failed to build workbook")
			return
		}

		filename := fileio.PetitionFilename(sess.Shipment)
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = w.Write(data)

		log.Info().Str("session", sess.ID).
			Int("records", len(records)).Str("file", filename).Msg("petition exported")
	}
}

// GetState returns the JSON snapshot a client persists across reloads.
func GetState(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		writeJSON(w, http.StatusOK, session.Snapshot{
			Shipment:   sess.Shipment,
			ImportCart: sess.ImportCart,
			ManualCart: sess.ManualCart,
			Incidences: sess.Incidences,
		})
	}
}

// PutState restores a previously saved snapshot into the session. The
// catalog index is not part of the snapshot; it is derived data and is
// rebuilt by a catalog upload.
func PutState(store *session.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := getSession(store, w, r)
		if sess == nil {
			return
		}
		var snap session.Snapshot
		if err := readJSON(r, &snap); err != nil {
			writeError(w, http.StatusBadRequest, "bad snapshot: "+err.Error())
			return
		}
		if snap.ImportCart == nil {
			snap.ImportCart = service.NewCart()
		}
		if snap.ManualCart == nil {
			snap.ManualCart = service.NewCart()
		}
		if snap.Incidences == nil {
			snap.Incidences = []model.Incidence{}
		}
		sess.Shipment = snap.Shipment
		sess.ImportCart = snap.ImportCart
		sess.ManualCart = snap.ManualCart
		sess.Incidences = snap.Incidences
		writeJSON(w, http.StatusOK, map[string]string{"status": "restored"})
	}
}
