package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/taskmaster/internal/adapters/http/dto"
	"github.com/jsamuelsen11/taskmaster/internal/domain"
	"github.com/jsamuelsen11/taskmaster/internal/ports"
)

// RelationHandler handles HTTP requests for share grants.
type RelationHandler struct {
	relations ports.RelationService
}

// NewRelationHandler creates a new RelationHandler.
func NewRelationHandler(relations ports.RelationService) *RelationHandler {
	return &RelationHandler{relations: relations}
}

// ListRelations handles GET /api/v1/relations. Returns the grants the
// caller is the subject or the grantor of.
func (h *RelationHandler) ListRelations(w http.ResponseWriter, r *http.Request) {
	relations, err := h.relations.ListRelations(r.Context(), actorID(r))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewRelationListResponse(relations))
}

// CreateRelation handles POST /api/v1/relations. Granting access requires
// owning or administering the list; a duplicate (user, list) pair is a 409.
func (h *RelationHandler) CreateRelation(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateRelationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.relations.CreateRelation(r.Context(), actorID(r), req.ListID, req.UserID, domain.Role(req.Role))
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.NewRelationResponse(created))
}

// GetRelation handles GET /api/v1/relations/{id}.
func (h *RelationHandler) GetRelation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	relation, err := h.relations.GetRelation(r.Context(), actorID(r), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewRelationResponse(relation))
}

// UpdateRelation handles PATCH /api/v1/relations/{id}.
func (h *RelationHandler) UpdateRelation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateRelationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.relations.UpdateRelation(r.Context(), actorID(r), id, req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewRelationResponse(updated))
}

// DeleteRelation handles DELETE /api/v1/relations/{id}.
func (h *RelationHandler) DeleteRelation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.relations.DeleteRelation(r.Context(), actorID(r), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
