package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"songvault/internal/app/service"
	"songvault/internal/common"

	"github.com/go-chi/chi/v5"
)

const registrationFieldsMessage = "Username, email and password are required"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Absent or malformed body is the same as missing fields
		common.RespondWithMessage(w, http.StatusBadRequest, registrationFieldsMessage)
		return
	}

	user, err := h.authService.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrBadRequest):
			common.RespondWithMessage(w, http.StatusBadRequest, registrationFieldsMessage)
		case errors.Is(err, common.ErrConflict):
			common.RespondWithMessage(w, http.StatusConflict, "Username is already taken")
		default:
			common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		}
		return
	}

	common.RespondWithJSON(w, http.StatusCreated, map[string]interface{}{"user": user})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithMessage(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.authService.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			common.RespondWithMessage(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		common.RespondWithMessage(w, common.HTTPStatusFromError(err), err.Error())
		return
	}

	common.RespondWithJSON(w, http.StatusOK, map[string]string{"token": token})
}
