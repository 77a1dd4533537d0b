package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
	"github.com/jsamuelsen11/taskmaster/mocks"
)

func TestSearch_OK(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockSearchService(t)
	svc.EXPECT().Search(mock.Anything, int64(7), ports.SearchQuery{
		Term:     "milk",
		Order:    ports.OrderViewsDesc,
		Page:     2,
		PageSize: 5,
	}).Return(&ports.SearchResult{
		Hits:     []ports.SearchHit{{Ref: domain.Ref{Kind: domain.KindTask, ID: 1}, Title: "Buy milk"}},
		Count:    6,
		Page:     2,
		PageSize: 5,
	}, nil)

	h := handlers.NewSearchHandler(svc)

	rec := httptest.NewRecorder()
	req := withActor(httptest.NewRequest(http.MethodGet, "/api/v1/search?q=milk&order=-views&page=2&page_size=5", nil), 7)
	h.Search(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.SearchResponse](t, rec)
	if resp.Count != 6 || len(resp.Hits) != 1 {
		t.Errorf("response = %+v", resp)
	}
	if resp.Hits[0].Ref != "tasks/1" {
		t.Errorf("Ref = %q, want tasks/1", resp.Hits[0].Ref)
	}
}

func TestSearch_RejectsBadParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"unknown order", "order=alphabetical"},
		{"non-numeric page", "page=two"},
		{"non-numeric page size", "page_size=big"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockSearchService(t)
			h := handlers.NewSearchHandler(svc)

			rec := httptest.NewRecorder()
			req := withActor(httptest.NewRequest(http.MethodGet, "/api/v1/search?"+tt.query, nil), 7)
			h.Search(rec, req)

			requireStatus(t, rec, http.StatusBadRequest)
		})
	}
}
