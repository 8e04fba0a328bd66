package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"moa/internal/delivery/http/middleware"
	"moa/internal/delivery/http/response"
	"moa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QueryHandlerParams holds dependencies for QueryHandler, injected by Fx.
type QueryHandlerParams struct {
	fx.In

	QueryUC usecase.GroupQueryUsecase
	Logger  *slog.Logger
}

// QueryHandler serves the derived, read-only group listings
type QueryHandler struct {
	queryUC usecase.GroupQueryUsecase
	logger  *slog.Logger
}

// NewQueryHandler is the constructor for QueryHandler
func NewQueryHandler(params QueryHandlerParams) *QueryHandler {
	return &QueryHandler{
		queryUC: params.QueryUC,
		logger:  params.Logger,
	}
}

// ClosingSoon handles listing groups whose deadline is inside the window
func (h *QueryHandler) ClosingSoon(c echo.Context) error {
	groups, err := h.queryUC.ClosingSoon(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Closing groups retrieved successfully")
}

// ByRemaining handles listing recruiting groups closest to their threshold
func (h *QueryHandler) ByRemaining(c echo.Context) error {
	groups, err := h.queryUC.ByRemaining(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Groups retrieved successfully")
}

// Nearby handles listing open local groups around the caller's registered
// coordinates
func (h *QueryHandler) Nearby(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	page := 0
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return response.BadRequest(c, "INVALID_PAGE", "Invalid page number")
		}
		page = parsed
	}

	groups, err := h.queryUC.Nearby(c.Request().Context(), userID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups, "Nearby groups retrieved successfully")
}
