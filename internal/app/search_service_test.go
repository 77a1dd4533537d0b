package app_test

import (
	"context"
	"testing"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

func TestSearch_VisibilityMatchesPolicy(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	bob := e.user(t, "bob")
	mine := e.list(t, alice.ID, "my milk run")
	shared := e.list(t, bob.ID, "shared milk plans")
	hidden := e.list(t, bob.ID, "secret milk stash")
	e.relate(t, shared.ID, alice.ID, bob.ID, domain.RoleGuest)
	e.task(t, mine.ID, alice.ID, "milk the search index")
	e.task(t, hidden.ID, bob.ID, "milk nobody should see")

	result, err := e.search.Search(ctx, alice.ID, ports.SearchQuery{Term: "milk"})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	for _, hit := range result.Hits {
		if hit.Ref.Kind == domain.KindTaskList && hit.Ref.ID == hidden.ID {
			t.Fatalf("hidden list leaked into search: %v", hit)
		}
		if hit.Title == "milk nobody should see" {
			t.Fatalf("task on hidden list leaked into search: %v", hit)
		}
	}
	if result.Count != 3 {
		t.Fatalf("Count = %d, want 3 (two visible lists, one visible task)", result.Count)
	}
}

func TestSearch_OrderByViews(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	quiet := e.list(t, alice.ID, "quiet list")
	busy := e.list(t, alice.ID, "busy list")
	for range 5 {
		if err := e.store.IncrementTaskListViews(ctx, busy.ID); err != nil {
			t.Fatalf("bumping views: %v", err)
		}
	}

	result, err := e.search.Search(ctx, alice.ID, ports.SearchQuery{Term: "list", Order: ports.OrderViewsDesc})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(result.Hits) != 2 {
		t.Fatalf("len(Hits) = %d, want 2", len(result.Hits))
	}
	if result.Hits[0].Ref.ID != busy.ID {
		t.Errorf("first hit = %v, want busiest list first", result.Hits[0])
	}

	result, err = e.search.Search(ctx, alice.ID, ports.SearchQuery{Term: "list", Order: ports.OrderViews})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if result.Hits[0].Ref.ID != quiet.ID {
		t.Errorf("first hit = %v, want quietest list first", result.Hits[0])
	}
}

func TestSearch_PaginationClampsToCount(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	list := e.list(t, alice.ID, "inbox")
	for range 25 {
		e.task(t, list.ID, alice.ID, "chore")
	}

	// 26 matches at page size 10: pages 1..3.
	result, err := e.search.Search(ctx, alice.ID, ports.SearchQuery{Term: "", Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if result.Count != 26 {
		t.Fatalf("Count = %d, want 26", result.Count)
	}
	if len(result.Hits) != 6 {
		t.Fatalf("len(Hits) on last page = %d, want 6", len(result.Hits))
	}

	// Multi-digit page numbers are handled arithmetically; far past the end
	// clamps to the last page instead of erroring or wrapping.
	result, err = e.search.Search(ctx, alice.ID, ports.SearchQuery{Term: "", Page: 12, PageSize: 10})
	if err != nil {
		t.Fatalf("Search(page 12) error: %v", err)
	}
	if result.Page != 3 {
		t.Errorf("effective Page = %d, want clamp to 3", result.Page)
	}
	if len(result.Hits) != 6 {
		t.Errorf("len(Hits) = %d, want last page's 6", len(result.Hits))
	}

	// Defaults: page 1, default size.
	result, err = e.search.Search(ctx, alice.ID, ports.SearchQuery{})
	if err != nil {
		t.Fatalf("Search(defaults) error: %v", err)
	}
	if result.Page != 1 || result.PageSize != 10 {
		t.Errorf("defaults = page %d size %d, want page 1 size 10", result.Page, result.PageSize)
	}
	if len(result.Hits) != 10 {
		t.Errorf("len(Hits) = %d, want 10", len(result.Hits))
	}
}

func TestSearch_CaseInsensitiveMatch(t *testing.T) {
	t.Parallel()

	e := newEnv(t)
	ctx := context.Background()
	alice := e.user(t, "alice")
	e.list(t, alice.ID, "Weekend PLANS")

	result, err := e.search.Search(ctx, alice.ID, ports.SearchQuery{Term: "plans"})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if result.Count != 1 {
		t.Fatalf("Count = %d, want 1 for case-insensitive match", result.Count)
	}
}
