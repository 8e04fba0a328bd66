// Package handler contains the HTTP handlers for the group-buy API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"moa/internal/delivery/http/middleware"
	"moa/internal/delivery/http/response"
	"moa/internal/domain/entity"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GroupHandlerParams holds dependencies for GroupHandler, injected by Fx.
type GroupHandlerParams struct {
	fx.In

	GroupUC usecase.GroupUsecase
	Logger  *slog.Logger
}

// GroupHandler holds dependencies for group lifecycle handlers
type GroupHandler struct {
	groupUC usecase.GroupUsecase
	logger  *slog.Logger
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(params GroupHandlerParams) *GroupHandler {
	return &GroupHandler{
		groupUC: params.GroupUC,
		logger:  params.Logger,
	}
}

// CreateGroupRequest represents the request body for opening a group buy
type CreateGroupRequest struct {
	GroupType     string    `json:"group_type" validate:"required,oneof=local normal"`
	Name          string    `json:"name" validate:"required,max=255"`
	ProductID     uuid.UUID `json:"product_id" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Deadline      time.Time `json:"deadline" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,min=1"`
	PaymentMethod string    `json:"payment_method" validate:"required"`
}

// JoinGroupRequest represents the request body for joining a group
type JoinGroupRequest struct {
	Quantity      int    `json:"quantity" validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

// SetQuantityRequest represents the request body for changing a quantity
type SetQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,min=1"`
}

// UpdateGroupRequest represents the request body for patching a group.
// All fields are optional; omitted fields stay unchanged.
type UpdateGroupRequest struct {
	Name      *string    `json:"name,omitempty"`
	GroupType *string    `json:"group_type,omitempty" validate:"omitempty,oneof=local normal"`
	Location  *string    `json:"location,omitempty"`
	Deadline  *time.Time `json:"deadline,omitempty"`
	ProductID *uuid.UUID `json:"product_id,omitempty"`
	State     *int       `json:"state,omitempty"`
}

// CreateGroup handles opening a new group buy
func (h *GroupHandler) CreateGroup(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid group input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), userID, &usecase.CreateGroupInput{
		GroupType:     entity.GroupType(req.GroupType),
		Name:          req.Name,
		ProductID:     req.ProductID,
		Location:      req.Location,
		Deadline:      req.Deadline,
		Quantity:      req.Quantity,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, group, "Group created successfully")
}

// GetGroupState reports the lifecycle state of a group. Closed groups
// answer with the closed-group error payload.
func (h *GroupHandler) GetGroupState(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	state, err := h.groupUC.CheckState(c.Request().Context(), groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"state": state}, "Group state retrieved successfully")
}

// JoinGroup handles admitting the caller into a group
func (h *GroupHandler) JoinGroup(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	var req JoinGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid join input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	group, err := h.groupUC.JoinGroup(c.Request().Context(), userID, groupID, req.Quantity, req.PaymentMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Joined group successfully")
}

// SetQuantity handles changing the caller's purchase quantity
func (h *GroupHandler) SetQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	var req SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	group, err := h.groupUC.SetQuantity(c.Request().Context(), userID, groupID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Quantity updated successfully")
}

// LeaveGroup handles removing the caller from a group
func (h *GroupHandler) LeaveGroup(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	group, err := h.groupUC.LeaveGroup(c.Request().Context(), userID, groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Left group successfully")
}

// UpdateGroup handles patching mutable group fields, including admin-driven
// state transitions
func (h *GroupHandler) UpdateGroup(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	var req UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	patch := &usecase.GroupPatch{
		Name:      req.Name,
		Location:  req.Location,
		Deadline:  req.Deadline,
		ProductID: req.ProductID,
	}
	if req.GroupType != nil {
		groupType := entity.GroupType(*req.GroupType)
		patch.GroupType = &groupType
	}
	if req.State != nil {
		state := entity.GroupState(*req.State)
		patch.State = &state
	}

	group, err := h.groupUC.UpdateGroup(c.Request().Context(), groupID, patch)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group, "Group updated successfully")
}

// MarkReviewed handles flagging the caller's review on a group
func (h *GroupHandler) MarkReviewed(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	if err := h.groupUC.MarkReviewed(c.Request().Context(), userID, groupID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Review recorded"}, "Review recorded successfully")
}

// GenerateInviteQR handles rendering a join invite QR code for a group
func (h *GroupHandler) GenerateInviteQR(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	qrCode, err := h.groupUC.GenerateInviteQR(c.Request().Context(), groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
