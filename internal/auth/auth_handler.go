package auth

import (
	"context"
	"net/http"
	"strings"

	"go-payroll/internal/middleware"
	"go-payroll/internal/shared/apperror"
	"go-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	session, err := h.service.Attempt(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Warn("http login failed", zap.String("username", req.Username))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toSessionResponse(session), nil)
}

func (h *Handler) Session(c *gin.Context) {
	sid := strings.TrimSpace(c.GetHeader(middleware.SessionHeader))
	if sid == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	session, err := h.service.CheckSession(c.Request.Context(), sid)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, toSessionResponse(session), nil)
}

func (h *Handler) Logout(c *gin.Context) {
	sid := strings.TrimSpace(c.GetHeader(middleware.SessionHeader))
	if sid == "" {
		response.FromError(c, apperror.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), sid); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Logout success.", nil)
}

// ResolveSession adapts the service for middleware.RequireSession.
func ResolveSession(s Service) middleware.SessionResolver {
	return func(ctx context.Context, sessionID string) (string, error) {
		session, err := s.CheckSession(ctx, sessionID)
		if err != nil {
			return "", err
		}
		return session.Username, nil
	}
}
