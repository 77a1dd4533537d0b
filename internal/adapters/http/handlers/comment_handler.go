package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// CommentHandler handles HTTP requests for both comment kinds. Task comments
// and list comments share a service but expose separate route families so
// their differing moderation rules stay visible in the API surface.
type CommentHandler struct {
	comments ports.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments ports.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListTaskComments handles GET /api/v1/task-comments.
func (h *CommentHandler) ListTaskComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListTaskComments(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskCommentListResponse(comments))
}

// CreateTaskComment handles POST /api/v1/task-comments.
func (h *CommentHandler) CreateTaskComment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.comments.CreateTaskComment(r.Context(), actorID(r), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewTaskCommentResponse(created))
}

// GetTaskComment handles GET /api/v1/task-comments/{id}.
func (h *CommentHandler) GetTaskComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	comment, err := h.comments.GetTaskComment(r.Context(), actorID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskCommentResponse(comment))
}

// UpdateTaskComment handles PATCH /api/v1/task-comments/{id}. Only the
// comment's own author may edit it; list admins get no special treatment.
func (h *CommentHandler) UpdateTaskComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.comments.UpdateTaskComment(r.Context(), actorID(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewTaskCommentResponse(updated))
}

// DeleteTaskComment handles DELETE /api/v1/task-comments/{id}.
func (h *CommentHandler) DeleteTaskComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.comments.DeleteTaskComment(r.Context(), actorID(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListListComments handles GET /api/v1/list-comments.
func (h *CommentHandler) ListListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.ListListComments(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListCommentListResponse(comments))
}

// CreateListComment handles POST /api/v1/list-comments.
func (h *CommentHandler) CreateListComment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateListCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.comments.CreateListComment(r.Context(), actorID(r), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewListCommentResponse(created))
}

// GetListComment handles GET /api/v1/list-comments/{id}.
func (h *CommentHandler) GetListComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	comment, err := h.comments.GetListComment(r.Context(), actorID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListCommentResponse(comment))
}

// UpdateListComment handles PATCH /api/v1/list-comments/{id}. The author or
// a list admin may edit.
func (h *CommentHandler) UpdateListComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateListCommentRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.comments.UpdateListComment(r.Context(), actorID(r), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewListCommentResponse(updated))
}

// DeleteListComment handles DELETE /api/v1/list-comments/{id}.
func (h *CommentHandler) DeleteListComment(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.comments.DeleteListComment(r.Context(), actorID(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
