package handler

import (
	"log/slog"
	"net/http"
	"time"

	"moa/internal/delivery/http/response"
	"moa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler holds dependencies for payment ledger handlers
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// SetPaymentRequest represents the request body for patching a ledger entry.
// All fields are optional; omitted fields stay unchanged.
type SetPaymentRequest struct {
	DueDate *time.Time `json:"due_date,omitempty"`
	Used    *bool      `json:"used,omitempty"`
	Voucher *int       `json:"voucher,omitempty" validate:"omitempty,min=0"`
}

// GetPayment handles retrieving one ledger entry
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), paymentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment retrieved successfully")
}

// ListGroupPayments handles retrieving the full ledger of a group
func (h *PaymentHandler) ListGroupPayments(c echo.Context) error {
	groupID, err := uuid.Parse(c.Param("groupId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid group ID")
	}

	payments, err := h.paymentUC.ListGroupPayments(c.Request().Context(), groupID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payments, "Group payments retrieved successfully")
}

// SetPayment handles patching a ledger entry
func (h *PaymentHandler) SetPayment(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	var req SetPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.SetPayment(c.Request().Context(), paymentID, &usecase.PaymentPatch{
		DueDate: req.DueDate,
		Used:    req.Used,
		Voucher: req.Voucher,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Payment updated successfully")
}

// RedeemVoucher handles consuming one voucher use on fulfillment
func (h *PaymentHandler) RedeemVoucher(c echo.Context) error {
	paymentID, err := uuid.Parse(c.Param("paymentId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid payment ID")
	}

	payment, err := h.paymentUC.RedeemVoucher(c.Request().Context(), paymentID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, payment, "Voucher redeemed successfully")
}
