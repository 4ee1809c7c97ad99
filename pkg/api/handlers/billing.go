package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/GitNimay/lumino-crm-vc/pkg/api/errors"
	custommw "github.com/GitNimay/lumino-crm-vc/pkg/api/middleware"
	"github.com/GitNimay/lumino-crm-vc/pkg/billing"
	"github.com/GitNimay/lumino-crm-vc/pkg/models"
	"github.com/labstack/echo/v4"
)

// BillingHandler handles pricing and checkout endpoints
type BillingHandler struct {
	billingService *billing.Service
	validator      *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billingService *billing.Service) *BillingHandler {
	return &BillingHandler{
		billingService: billingService,
		validator:      validator.New(),
	}
}

// Tiers handles the public pricing table
func (h *BillingHandler) Tiers(c echo.Context) error {
	return c.JSON(http.StatusOK, h.billingService.Tiers())
}

// CreateCheckout handles starting a Stripe checkout session
func (h *BillingHandler) CreateCheckout(c echo.Context) error {
	userID := custommw.UserID(c)
	if userID == "" {
		return errors.UnauthorizedError(c, "missing user")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return errors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return errors.ValidationError(c, err)
	}

	resp, err := h.billingService.CreateCheckoutSession(c.Request().Context(), userID, custommw.UserEmail(c), req.Tier)
	if err != nil {
		return errors.Handle(c, err)
	}

	return c.JSON(http.StatusCreated, resp)
}
