package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/zoobzio/filterql"
	"github.com/zoobzio/filterql/repository"
)

// TenantHeader carries the tenant every search is scoped to.
const TenantHeader = "X-Tenant-ID"

type filterBody struct {
	Column   string `json:"column"`
	Operator string `json:"operator"`
	Value    any    `json:"value"`
}

type searchBody struct {
	Filters        []filterBody `json:"filters"`
	LogicOperator  string       `json:"logicOperator"`
	SelectedIDs    []int64      `json:"selectedIds"`
	IncludeDeleted bool         `json:"includeDeleted"`
	Start          int          `json:"start"`
	End            int          `json:"end"`
}

// request converts the body. json.Number values become float64 or int64
// so the compiler sees plain Go numbers.
func (b searchBody) request(tenantID int64) repository.Request {
	filters := make([]filterql.FilterCondition, len(b.Filters))
	for i, f := range b.Filters {
		value := f.Value
		if n, ok := value.(json.Number); ok {
			if v, err := n.Int64(); err == nil {
				value = v
			} else if v, err := n.Float64(); err == nil {
				value = v
			} else {
				value = n.String()
			}
		}
		filters[i] = filterql.FilterCondition{Column: f.Column, Operator: f.Operator, Value: value}
	}
	return repository.Request{
		TenantID:       tenantID,
		SelectedIDs:    b.SelectedIDs,
		Logic:          b.LogicOperator,
		Filters:        filters,
		IncludeDeleted: b.IncludeDeleted,
		Start:          b.Start,
		End:            b.End,
	}
}

func parseTenant(r *http.Request) (int64, error) {
	raw := r.Header.Get(TenantHeader)
	if raw == "" {
		return 0, fmt.Errorf("%s header is required", TenantHeader)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s header must be an integer: %q", TenantHeader, raw)
	}
	return id, nil
}

// Search handles POST /v1/{entity}/search.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	tenantID, err := parseTenant(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	var body searchBody
	if err := decodeJSON(w, r, &body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", err.Error())
			return
		}
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", "invalid JSON: "+err.Error())
		return
	}
	req := body.request(tenantID)

	entity := chi.URLParam(r, "entity")
	if entity == "purchase-orders" && r.URL.Query().Get("details") == "true" {
		page, err := h.catalog.PurchaseOrdersWithDetails(r.Context(), req)
		if err != nil {
			searchErrorToHTTP(w, h.logger, err)
			return
		}
		writeJSON(w, http.StatusOK, page)
		return
	}

	page, err := h.catalog.Search(r.Context(), entity, req)
	if err != nil {
		searchErrorToHTTP(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}
