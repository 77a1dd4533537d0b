package handlers

import (
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// SearchHandler handles HTTP requests for cross-model search.
type SearchHandler struct {
	search ports.SearchService
}

// NewSearchHandler creates a new SearchHandler.
func NewSearchHandler(search ports.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// Search handles GET /api/v1/search. Query parameters: q (substring term),
// order (views, -views, date, -date), page, page_size. Out-of-range pages
// clamp to the last page rather than erroring.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	query, err := parseSearchQuery(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.search.Search(r.Context(), actorID(r), query)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewSearchResponse(result))
}

func parseSearchQuery(r *http.Request) (ports.SearchQuery, error) {
	q := ports.SearchQuery{
		Term:  r.URL.Query().Get("q"),
		Order: ports.SearchOrder(r.URL.Query().Get("order")),
	}

	fields := make(map[string]string)

	switch q.Order {
	case "", ports.OrderViews, ports.OrderViewsDesc, ports.OrderDate, ports.OrderDateDesc:
	default:
		fields["order"] = "must be one of: views, -views, date, -date"
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			fields["page"] = "must be a valid integer"
		} else {
			q.Page = page
		}
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			fields["page_size"] = "must be a valid integer"
		} else {
			q.PageSize = size
		}
	}

	if len(fields) > 0 {
		return ports.SearchQuery{}, &domain.ValidationError{Fields: fields}
	}
	return q, nil
}
