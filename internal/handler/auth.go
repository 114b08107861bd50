// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/mubadara/internal/middleware"
	"github.com/dangerclosesec/mubadara/internal/model"
	"github.com/dangerclosesec/mubadara/internal/service"
	"github.com/google/uuid"
)

type AuthHandler struct {
	userService *service.UserService
}

func NewAuthHandler(userService *service.UserService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
	}
}

type SessionResponse struct {
	BaseResponse
	User  *model.User `json:"user"`
	Token string      `json:"token"`
}

type MeResponse struct {
	BaseResponse
	User                 *model.User `json:"user"`
	ManagedOrganizations []uuid.UUID `json:"managed_organizations"`
}

func (h *AuthHandler) SignupHandler(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.userService.Signup(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, "user registration error", err)
		return
	}

	respondWithJSON(w, http.StatusCreated, SessionResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	output, err := h.userService.Login(r.Context(), input)
	if err != nil {
		respondWithDomainError(w, r, "user login error", err)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{
		BaseResponse: BaseResponse{Ok: true},
		User:         output.User,
		Token:        output.Token,
	})
}

func (h *AuthHandler) MeHandler(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFrom(r.Context())

	user, err := h.userService.Get(r.Context(), actor.UserID)
	if err != nil {
		respondWithDomainError(w, r, "loading current user", err)
		return
	}

	managed := actor.ManagedOrganizations
	if managed == nil {
		managed = []uuid.UUID{}
	}
	respondWithJSON(w, http.StatusOK, MeResponse{
		BaseResponse:         BaseResponse{Ok: true},
		User:                 user,
		ManagedOrganizations: managed,
	})
}
