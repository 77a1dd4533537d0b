package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/mocks"
)

func TestCreateTaskComment_Created(t *testing.T) {
	t.Parallel()

	created := &domain.TaskComment{ID: 5, Title: "Looks done", TaskID: 1, OwnerID: 7, CreatedAt: testTime}
	svc := mocks.NewMockCommentService(t)
	svc.EXPECT().CreateTaskComment(mock.Anything, int64(7), mock.Anything).Return(created, nil)

	h := handlers.NewCommentHandler(svc)

	body := jsonBody(t, dto.CreateTaskCommentRequest{Title: "Looks done", TaskID: 1})
	rec := httptest.NewRecorder()
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/v1/task-comments", body), 7)
	h.CreateTaskComment(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.TaskCommentResponse](t, rec)
	if resp.ID != 5 || resp.TaskID != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateTaskComment_NoReadAccess(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockCommentService(t)
	svc.EXPECT().CreateTaskComment(mock.Anything, int64(9), mock.Anything).Return(nil, domain.ErrForbidden)

	h := handlers.NewCommentHandler(svc)

	body := jsonBody(t, dto.CreateTaskCommentRequest{Title: "Drive-by", TaskID: 1})
	rec := httptest.NewRecorder()
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/v1/task-comments", body), 9)
	h.CreateTaskComment(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestUpdateListComment_Moderated(t *testing.T) {
	t.Parallel()

	updated := &domain.ListComment{ID: 2, Title: "Edited", ListID: 1, OwnerID: 8, CreatedAt: testTime}
	svc := mocks.NewMockCommentService(t)
	svc.EXPECT().UpdateListComment(mock.Anything, int64(7), int64(2), mock.Anything).Return(updated, nil)

	h := handlers.NewCommentHandler(svc)

	body := jsonBody(t, dto.UpdateListCommentRequest{Title: ptr("Edited")})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/list-comments/2", body)
	req = withActor(withChiParams(req, map[string]string{"id": "2"}), 7)
	h.UpdateListComment(rec, req)

	requireStatus(t, rec, http.StatusOK)

	resp := decodeJSON[dto.ListCommentResponse](t, rec)
	if resp.Title != "Edited" {
		t.Errorf("response = %+v", resp)
	}
}

func TestDeleteTaskComment_OwnerOnly(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockCommentService(t)
	svc.EXPECT().DeleteTaskComment(mock.Anything, int64(7), int64(5)).Return(domain.ErrForbidden)

	h := handlers.NewCommentHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/task-comments/5", nil)
	req = withActor(withChiParams(req, map[string]string{"id": "5"}), 7)
	h.DeleteTaskComment(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}
