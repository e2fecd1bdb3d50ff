package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// AuthHandler serves the registration and login endpoints.
type AuthHandler struct {
	userService *UserService
	jwtService  *JWTService
	validate    *validator.Validate
}

func NewAuthHandler(userService *UserService, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtService:  jwtService,
		validate:    validator.New(),
	}
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// HandleRegister creates an account and returns its ID.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeAuthError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	id, err := h.userService.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		log.Printf("Registration failed for %q: %v", req.Username, err)
		writeAuthError(w, HTTPStatus(err), err.Error())
		return
	}

	writeAuthJSON(w, http.StatusCreated, map[string]any{
		"success":  true,
		"user_id":  id,
		"username": req.Username,
	})
}

// HandleLogin verifies credentials and returns a signed token.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeAuthError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	user, err := h.userService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeAuthError(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		log.Printf("Token generation failed for %q: %v", user.Username, err)
		writeAuthError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeAuthJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"user":    user,
	})
}

// validationMessage flattens validator output into a single readable line.
func validationMessage(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return "invalid request"
	}
	first := errs[0]
	switch first.Tag() {
	case "required":
		return first.Field() + " is required"
	case "email":
		return first.Field() + " must be a valid email address"
	case "min":
		return first.Field() + " is too short"
	case "max":
		return first.Field() + " is too long"
	default:
		return first.Field() + " is invalid"
	}
}

func writeAuthJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	writeAuthJSON(w, status, map[string]any{"success": false, "error": message})
}
