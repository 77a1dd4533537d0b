package app

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// Compile-time check that SearchService implements ports.SearchService.
var _ ports.SearchService = (*SearchService)(nil)

const defaultPageSize = 10

// SearchService searches across every resource visible to the actor. The
// search space is derived from the policy engine's VisibleTaskLists, so a hit
// here is by construction a resource the detail endpoints would also serve.
type SearchService struct {
	policy       ports.Authorizer
	tasks        ports.TaskStore
	taskComments ports.TaskCommentStore
	listComments ports.ListCommentStore
	logger       *slog.Logger
}

// NewSearchService creates a SearchService.
func NewSearchService(
	policy ports.Authorizer,
	tasks ports.TaskStore,
	taskComments ports.TaskCommentStore,
	listComments ports.ListCommentStore,
	logger *slog.Logger,
) *SearchService {
	return &SearchService{
		policy:       policy,
		tasks:        tasks,
		taskComments: taskComments,
		listComments: listComments,
		logger:       logger,
	}
}

// candidate is a matchable resource with the fields ordering needs.
type candidate struct {
	ref       domain.Ref
	title     string
	body      string
	views     int64
	createdAt time.Time
}

// Search matches the term case-insensitively against titles and
// descriptions, orders by views or creation date, and returns one page.
// Page numbers of any magnitude are honored; requests past the end clamp to
// the last page, and the effective page is echoed in the result.
func (s *SearchService) Search(ctx context.Context, actorID int64, q ports.SearchQuery) (*ports.SearchResult, error) {
	candidates, err := s.gather(ctx, actorID)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to gather search space",
			slog.String("operation", "Search"),
			slog.Int64("actor_id", actorID),
			slog.Any("error", err),
		)
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(q.Term))
	var matched []candidate
	for _, c := range candidates {
		if term == "" ||
			strings.Contains(strings.ToLower(c.title), term) ||
			strings.Contains(strings.ToLower(c.body), term) {
			matched = append(matched, c)
		}
	}

	order(matched, q.Order)

	page, pageSize := clampPaging(q.Page, q.PageSize, len(matched))
	start := (page - 1) * pageSize
	end := min(start+pageSize, len(matched))
	if start > len(matched) {
		start, end = len(matched), len(matched)
	}

	hits := make([]ports.SearchHit, 0, end-start)
	for _, c := range matched[start:end] {
		hits = append(hits, ports.SearchHit{Ref: c.ref, Title: c.title})
	}

	return &ports.SearchResult{
		Hits:     hits,
		Count:    len(matched),
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// gather builds the actor's full search space: visible lists, their tasks,
// and the comments under both.
func (s *SearchService) gather(ctx context.Context, actorID int64) ([]candidate, error) {
	lists, err := s.policy.VisibleTaskLists(ctx, actorID)
	if err != nil {
		return nil, err
	}

	listIDs := make([]int64, 0, len(lists))
	var candidates []candidate
	for _, l := range lists {
		listIDs = append(listIDs, l.ID)
		candidates = append(candidates, candidate{
			ref:       domain.Ref{Kind: domain.KindTaskList, ID: l.ID},
			title:     l.Title,
			body:      l.Description,
			views:     l.Views,
			createdAt: l.CreatedAt,
		})
	}

	tasks, err := s.tasks.ListTasksByList(ctx, listIDs)
	if err != nil {
		return nil, err
	}
	taskIDs := make([]int64, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
		candidates = append(candidates, candidate{
			ref:       domain.Ref{Kind: domain.KindTask, ID: t.ID},
			title:     t.Title,
			views:     t.Views,
			createdAt: t.CreatedAt,
		})
	}

	taskComments, err := s.taskComments.ListTaskCommentsByTask(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range taskComments {
		candidates = append(candidates, candidate{
			ref:       domain.Ref{Kind: domain.KindTaskComment, ID: c.ID},
			title:     c.Title,
			body:      c.Description,
			views:     c.Views,
			createdAt: c.CreatedAt,
		})
	}

	listComments, err := s.listComments.ListListCommentsByList(ctx, listIDs)
	if err != nil {
		return nil, err
	}
	for _, c := range listComments {
		candidates = append(candidates, candidate{
			ref:       domain.Ref{Kind: domain.KindListComment, ID: c.ID},
			title:     c.Title,
			body:      c.Description,
			views:     c.Views,
			createdAt: c.CreatedAt,
		})
	}

	return candidates, nil
}

// order sorts candidates in place. Unknown orderings fall back to newest
// first, which is also the default.
func order(candidates []candidate, o ports.SearchOrder) {
	switch o {
	case ports.OrderViews:
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return cmp.Compare(a.views, b.views)
		})
	case ports.OrderViewsDesc:
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return cmp.Compare(b.views, a.views)
		})
	case ports.OrderDate:
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return a.createdAt.Compare(b.createdAt)
		})
	default:
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			return b.createdAt.Compare(a.createdAt)
		})
	}
}

// clampPaging normalizes page and page size against the match count.
func clampPaging(page, pageSize, count int) (int, int) {
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		page = 1
	}

	lastPage := (count + pageSize - 1) / pageSize
	if lastPage < 1 {
		lastPage = 1
	}
	if page > lastPage {
		page = lastPage
	}
	return page, pageSize
}
