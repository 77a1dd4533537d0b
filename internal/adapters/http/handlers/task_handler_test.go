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

func TestCreateTask_Created(t *testing.T) {
	t.Parallel()

	created := validTask()
	svc := mocks.NewMockTaskService(t)
	svc.EXPECT().CreateTask(mock.Anything, int64(7), mock.Anything).Return(&created, nil)

	h := handlers.NewTaskHandler(svc)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "Buy milk", ListID: 1})
	rec := httptest.NewRecorder()
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body), 7)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusCreated)

	resp := decodeJSON[dto.TaskResponse](t, rec)
	if resp.ID != 1 || resp.ListID != 1 {
		t.Errorf("response = %+v", resp)
	}
}

func TestCreateTask_MissingList(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	h := handlers.NewTaskHandler(svc)

	body := jsonBody(t, dto.CreateTaskRequest{Title: "Buy milk"})
	rec := httptest.NewRecorder()
	req := withActor(httptest.NewRequest(http.MethodPost, "/api/v1/tasks", body), 7)
	h.CreateTask(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestUpdateTask_MoveForbidden(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	svc.EXPECT().UpdateTask(mock.Anything, int64(7), int64(1), mock.Anything).Return(nil, domain.ErrForbidden)

	h := handlers.NewTaskHandler(svc)

	body := jsonBody(t, dto.UpdateTaskRequest{ListID: ptr(int64(99))})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/tasks/1", body)
	req = withActor(withChiParams(req, map[string]string{"id": "1"}), 7)
	h.UpdateTask(rec, req)

	requireStatus(t, rec, http.StatusForbidden)
}

func TestGetTask_NotFound(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	svc.EXPECT().GetTask(mock.Anything, int64(7), int64(42)).Return(nil, domain.ErrNotFound)

	h := handlers.NewTaskHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/42", nil)
	req = withActor(withChiParams(req, map[string]string{"id": "42"}), 7)
	h.GetTask(rec, req)

	requireStatus(t, rec, http.StatusNotFound)
}

func TestDeleteTask_NoContent(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockTaskService(t)
	svc.EXPECT().DeleteTask(mock.Anything, int64(7), int64(1)).Return(nil)

	h := handlers.NewTaskHandler(svc)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/1", nil)
	req = withActor(withChiParams(req, map[string]string{"id": "1"}), 7)
	h.DeleteTask(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}
