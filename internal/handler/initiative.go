package handler

import (
	"net/http"

	"github.com/dangerclosesec/mubadara/internal/middleware"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
)

type InitiativeHandler struct {
	service *service.InitiativeService
	machine *workflow.StatusMachine
}

func NewInitiativeHandler(service *service.InitiativeService, machine *workflow.StatusMachine) *InitiativeHandler {
	return &InitiativeHandler{
		service: service,
		machine: machine,
	}
}

func (h *InitiativeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.InitiativeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	initiative, err := h.service.Create(r.Context(), middleware.ActorFrom(r.Context()), input)
	if err != nil {
		respondWithDomainError(w, r, "creating initiative", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ok(initiative))
}

func (h *InitiativeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	var input service.InitiativeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	initiative, err := h.service.Update(r.Context(), middleware.ActorFrom(r.Context()), id, input)
	if err != nil {
		respondWithDomainError(w, r, "updating initiative", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(initiative))
}

func (h *InitiativeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	initiative, err := h.service.Get(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "loading initiative", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(initiative))
}

// ListPublic browses published initiatives. Any status filter is ignored.
func (h *InitiativeHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	filters, valid := parseFilters(w, r, h.machine, workflow.KindInitiative)
	if !valid {
		return
	}
	page, valid := parsePage(w, r)
	if !valid {
		return
	}

	initiatives, total, err := h.service.ListPublic(r.Context(), filters, page)
	if err != nil {
		respondWithDomainError(w, r, "listing initiatives", err)
		return
	}

	respondWithJSON(w, http.StatusOK, list(initiatives, total, page))
}

func (h *InitiativeHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	filters, valid := parseFilters(w, r, h.machine, workflow.KindInitiative)
	if !valid {
		return
	}
	page, valid := parsePage(w, r)
	if !valid {
		return
	}

	initiatives, total, err := h.service.ListAdmin(r.Context(), middleware.ActorFrom(r.Context()), filters, page)
	if err != nil {
		respondWithDomainError(w, r, "listing initiatives for review", err)
		return
	}

	respondWithJSON(w, http.StatusOK, list(initiatives, total, page))
}

func (h *InitiativeHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	initiative, err := h.service.Publish(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "publishing initiative", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(initiative))
}

func (h *InitiativeHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	var input ReasonRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	initiative, err := h.service.Cancel(r.Context(), middleware.ActorFrom(r.Context()), id, input.Reason)
	if err != nil {
		respondWithDomainError(w, r, "cancelling initiative", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(initiative))
}

func (h *InitiativeHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	transitions, err := h.service.AvailableTransitions(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "listing initiative transitions", err)
		return
	}

	respondWithTransitions(w, transitions)
}

func (h *InitiativeHandler) History(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "initiativeID")
	if !valid {
		return
	}

	changes, err := h.service.History(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "loading initiative history", err)
		return
	}

	respondWithHistory(w, changes)
}
