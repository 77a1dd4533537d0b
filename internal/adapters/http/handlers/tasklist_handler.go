package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// TaskListHandler handles HTTP requests for task list operations.
type TaskListHandler struct {
	lists ports.ListService
}

// NewTaskListHandler creates a new TaskListHandler.
func NewTaskListHandler(lists ports.ListService) *TaskListHandler {
	return &TaskListHandler{lists: lists}
}

// ListTaskLists handles GET /api/v1/task-lists. Only lists the caller owns
// or holds a relation to are returned.
func (h *TaskListHandler) ListTaskLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.lists.ListTaskLists(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskListListResponse(lists))
}

// CreateTaskList handles POST /api/v1/task-lists.
func (h *TaskListHandler) CreateTaskList(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.lists.CreateTaskList(r.Context(), actorID(r), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewTaskListResponse(created))
}

// GetTaskList handles GET /api/v1/task-lists/{id}.
func (h *TaskListHandler) GetTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	list, err := h.lists.GetTaskList(r.Context(), actorID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskListResponse(list))
}

// UpdateTaskList handles PATCH /api/v1/task-lists/{id}.
func (h *TaskListHandler) UpdateTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskListRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.lists.UpdateTaskList(r.Context(), actorID(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskListResponse(updated))
}

// DeleteTaskList handles DELETE /api/v1/task-lists/{id}. Deleting a list
// removes its tasks, relations, and comments with it.
func (h *TaskListHandler) DeleteTaskList(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.lists.DeleteTaskList(r.Context(), actorID(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
