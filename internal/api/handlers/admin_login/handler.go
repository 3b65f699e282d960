package admin_login

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/GabrielEscala/Proyecto-Salas/internal/api/handlers"
	"github.com/GabrielEscala/Proyecto-Salas/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidCode        = "código de acceso incorrecto"
	msgAdminDisabled      = "el acceso administrativo no está habilitado"

	sessionTTL = 8 * time.Hour
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	OK        bool   `json:"ok"`
	ExpiresAt string `json:"expiresAt"`
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	adminCode string
	logger    Logger
}

func NewHandler(adminCode string, logger Logger) *Handler {
	return &Handler{
		adminCode: adminCode,
		logger:    logger,
	}
}

// Handle POST /api/v1/admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.adminCode == "" {
		h.logger.Warn("POST /admin/login - Admin access disabled")
		handlers.RespondUnauthorized(w, msgAdminDisabled)
		return
	}

	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, handlers.CodeInvalidRequest, msgInvalidRequestBody)
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Code), []byte(h.adminCode)) != 1 {
		h.logger.Warn("POST /admin/login - Wrong access code")
		handlers.RespondUnauthorized(w, msgInvalidCode)
		return
	}

	expires := time.Now().Add(sessionTTL)
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.AdminCookieName,
		Value:    h.adminCode,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Info("POST /admin/login - Admin session opened")
	handlers.RespondJSON(w, http.StatusOK, LoginResponse{
		OK:        true,
		ExpiresAt: expires.UTC().Format(time.RFC3339),
	})
}
