package handler

import (
	"context"
	"net/http"

	"github.com/dangerclosesec/mubadara/internal/middleware"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
	"github.com/google/uuid"
)

type ParticipantHandler struct {
	service *service.ParticipationService
}

func NewParticipantHandler(service *service.ParticipationService) *ParticipantHandler {
	return &ParticipantHandler{service: service}
}

func (h *ParticipantHandler) Join(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	var input service.JoinInput
	if r.ContentLength != 0 && !decodeJSON(w, r, &input) {
		return
	}

	p, err := h.service.Join(r.Context(), middleware.ActorFrom(r.Context()), id, input)
	if err != nil {
		respondWithDomainError(w, r, "joining initiative", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ok(p))
}

func (h *ParticipantHandler) Leave(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	p, err := h.service.Leave(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "leaving initiative", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(p))
}

func (h *ParticipantHandler) List(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	status := model.ParticipantStatus(r.URL.Query().Get("status"))
	switch status {
	case "", model.ParticipantPending, model.ParticipantAccepted, model.ParticipantRejected, model.ParticipantLeft:
	default:
		respondWithError(w, http.StatusBadRequest, "invalid_input", "قيمة status غير صالحة")
		return
	}

	participants, err := h.service.List(r.Context(), middleware.ActorFrom(r.Context()), id, status)
	if err != nil {
		respondWithDomainError(w, r, "listing participants", err)
		return
	}

	if participants == nil {
		participants = []*model.Participant{}
	}
	respondWithJSON(w, http.StatusOK, ok(participants))
}

func (h *ParticipantHandler) Accept(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "accepting participant", h.service.Accept)
}

func (h *ParticipantHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "rejecting participant", h.service.Reject)
}

func (h *ParticipantHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, "removing participant", h.service.Remove)
}

type decision func(ctx context.Context, actor workflow.Actor, participantID uuid.UUID) (*model.Participant, error)

func (h *ParticipantHandler) decide(w http.ResponseWriter, r *http.Request, msg string, fn decision) {
	id, valid := uuidParam(w, r, "participantID")
	if !valid {
		return
	}

	p, err := fn(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, msg, err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(p))
}
