package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kashifkhan1545/fingerauth/internal/common"
	"github.com/kashifkhan1545/fingerauth/internal/logging"
	"github.com/kashifkhan1545/fingerauth/internal/server/users"
)

// successMessage is the exact marker clients look for in a login response.
// The misspelling is part of the wire contract and must not be corrected.
const successMessage = "successfull"

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResult struct {
	Token string `json:"token"`
}

type loginResponse struct {
	Message string       `json:"message"`
	Result  *loginResult `json:"result,omitempty"`
}

// Handler serves the account endpoints backed by the user service.
type Handler struct {
	userService *users.Service
	logger      logging.Logger
}

func NewHandler(userService *users.Service, logger logging.Logger) *Handler {
	return &Handler{userService: userService, logger: logger}
}

// Router returns the HTTP routes served by the login server.
func (h *Handler) Router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/account/login", h.login)
	mux.HandleFunc("GET /ping", h.ping)
	return mux
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(ctx, w, http.StatusBadRequest, loginResponse{Message: "malformed request"})
		return
	}

	token, err := h.userService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.writeJSON(ctx, w, http.StatusUnauthorized, loginResponse{Message: "invalid credentials"})
			return
		}
		h.logger.Error(ctx, "login failed", "error", err)
		h.writeJSON(ctx, w, http.StatusInternalServerError, loginResponse{Message: "internal error"})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, loginResponse{
		Message: successMessage,
		Result:  &loginResult{Token: token},
	})
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (h *Handler) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error(ctx, "response encode failed", "error", err)
	}
}
