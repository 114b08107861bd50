package handler

import (
	"net/http"

	"github.com/dangerclosesec/mubadara/internal/middleware"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/dangerclosesec/mubadara/internal/workflow"
)

type OrganizationHandler struct {
	service *service.OrganizationService
	machine *workflow.StatusMachine
}

func NewOrganizationHandler(service *service.OrganizationService, machine *workflow.StatusMachine) *OrganizationHandler {
	return &OrganizationHandler{
		service: service,
		machine: machine,
	}
}

func (h *OrganizationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateOrganizationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	org, err := h.service.Create(r.Context(), middleware.ActorFrom(r.Context()), input)
	if err != nil {
		respondWithDomainError(w, r, "creating organization", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ok(org))
}

func (h *OrganizationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	org, err := h.service.Get(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "loading organization", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(org))
}

// List is the admin review queue.
func (h *OrganizationHandler) List(w http.ResponseWriter, r *http.Request) {
	filters, valid := parseFilters(w, r, h.machine, workflow.KindOrganization)
	if !valid {
		return
	}
	page, valid := parsePage(w, r)
	if !valid {
		return
	}

	orgs, total, err := h.service.List(r.Context(), middleware.ActorFrom(r.Context()), filters, page)
	if err != nil {
		respondWithDomainError(w, r, "listing organizations", err)
		return
	}

	respondWithJSON(w, http.StatusOK, list(orgs, total, page))
}

func (h *OrganizationHandler) Mine(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.Mine(r.Context(), middleware.ActorFrom(r.Context()))
	if err != nil {
		respondWithDomainError(w, r, "listing own organizations", err)
		return
	}

	if orgs == nil {
		orgs = []model.Organization{}
	}
	respondWithJSON(w, http.StatusOK, ok(orgs))
}

func (h *OrganizationHandler) Members(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	members, err := h.service.Members(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "listing organization members", err)
		return
	}

	if members == nil {
		members = []*model.OrganizationUser{}
	}
	respondWithJSON(w, http.StatusOK, ok(members))
}

func (h *OrganizationHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	var input service.AddMemberInput
	if !decodeJSON(w, r, &input) {
		return
	}

	member, err := h.service.AddMember(r.Context(), middleware.ActorFrom(r.Context()), id, input)
	if err != nil {
		respondWithDomainError(w, r, "adding organization member", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, ok(member))
}

func (h *OrganizationHandler) Approve(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	org, err := h.service.Approve(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "approving organization", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(org))
}

func (h *OrganizationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	var input ReasonRequest
	if !decodeJSON(w, r, &input) {
		return
	}

	org, err := h.service.Reject(r.Context(), middleware.ActorFrom(r.Context()), id, input.Reason)
	if err != nil {
		respondWithDomainError(w, r, "rejecting organization", err)
		return
	}

	respondWithJSON(w, http.StatusOK, ok(org))
}

func (h *OrganizationHandler) Transitions(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	transitions, err := h.service.AvailableTransitions(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "listing organization transitions", err)
		return
	}

	respondWithTransitions(w, transitions)
}

func (h *OrganizationHandler) History(w http.ResponseWriter, r *http.Request) {
	id, valid := uuidParam(w, r, "organizationID")
	if !valid {
		return
	}

	changes, err := h.service.History(r.Context(), middleware.ActorFrom(r.Context()), id)
	if err != nil {
		respondWithDomainError(w, r, "loading organization history", err)
		return
	}

	respondWithHistory(w, changes)
}

func respondWithTransitions(w http.ResponseWriter, transitions []workflow.Status) {
	if transitions == nil {
		transitions = []workflow.Status{}
	}
	respondWithJSON(w, http.StatusOK, TransitionsResponse{BaseResponse: BaseResponse{Ok: true}, Transitions: transitions})
}

func respondWithHistory(w http.ResponseWriter, changes []model.StatusChange) {
	if changes == nil {
		changes = []model.StatusChange{}
	}
	respondWithJSON(w, http.StatusOK, ok(changes))
}
