package handler

import (
	_ "embed"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Chiggy-Playz/Todo-API/internal/handler/dto"
	"github.com/Chiggy-Playz/Todo-API/internal/service"
)

//go:embed register.html
var registerPage []byte

// RegisterHandler handles user registration and credential issuance.
type RegisterHandler struct {
	identity *service.IdentityService
	logger   *slog.Logger
	validate *validator.Validate
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(identity *service.IdentityService, logger *slog.Logger) *RegisterHandler {
	return &RegisterHandler{
		identity: identity,
		logger:   logger,
		validate: validator.New(),
	}
}

// Page serves the static registration form.
// GET /register
func (h *RegisterHandler) Page(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(registerPage)
}

// GenerateAPIKey issues a credential for a new user.
// The key is returned exactly once and never retrievable afterwards.
// POST /generate-api-key
func (h *RegisterHandler) GenerateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Name and a valid email are required")
		return
	}

	user, apiKey, err := h.identity.Register(r.Context(), service.RegisterInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.logger.Info("user registered",
		slog.Int64("user_id", user.ID),
		slog.String("request_id", requestIDFrom(r)),
	)

	writeJSON(w, http.StatusOK, dto.APIKeyResponse{APIKey: apiKey})
}

// handleServiceError maps identity service errors to HTTP responses.
func (h *RegisterHandler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		writeError(w, http.StatusBadRequest, "EMAIL_TAKEN", "Email already registered")
	case errors.Is(err, service.ErrMissingName), errors.Is(err, service.ErrMissingEmail):
		writeError(w, http.StatusBadRequest, "VALIDATION_FAILED", "Name and a valid email are required")
	default:
		h.logger.Error("registration failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
