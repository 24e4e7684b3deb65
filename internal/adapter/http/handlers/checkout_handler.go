package handlers

import (
	"errors"
	"log"
	"net/http"

	request "clinic_pos/internal/adapter/http/dto/request"
	response "clinic_pos/internal/adapter/http/dto/response"
	"clinic_pos/internal/usecase"
	"clinic_pos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCheckoutPayload = pkg.NewDomainErrorSimple("INVALID_CHECKOUT_INPUT", "Invalid checkout payload", http.StatusBadRequest)
)

// CheckoutHandler handles HTTP requests confirming a till's selections.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// Checkout persists the confirmed selections as flat sale rows and, when a
// payment payload is attached, charges the recomputed total.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	domain, err := payload.ResolveDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_DOMAIN", "Invalid sale domain", http.StatusBadRequest).ToHTTPError())
		return
	}
	selections, err := payload.ResolveSelections()
	if err != nil {
		c.JSON(errInvalidCheckoutPayload.HTTPStatus, errInvalidCheckoutPayload.ToHTTPError())
		return
	}

	cmd := usecase.CheckoutCommand{
		Domain:         domain,
		Identity:       payload.ResolveIdentity(),
		Restricted:     payload.ResolveRestricted(),
		Selections:     selections,
		Buyer:          payload.Buyer,
		PaymentMethod:  payload.PaymentMethod,
		StaffName:      payload.StaffName,
		Note:           payload.Note,
		PaymentPayload: payload.MPPayload,
	}

	log.Printf("[checkout][handler] start domain=%s identity=%s selections=%d", domain, cmd.Identity, len(selections))
	result, err := h.usecase.Checkout(c.Request.Context(), cmd)
	if err != nil {
		log.Printf("[checkout][handler] failed domain=%s identity=%s err=%v", domain, cmd.Identity, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] success order_ref=%s rows=%d total=%.2f", result.OrderRef, len(result.Items), result.Total)

	c.JSON(http.StatusCreated, response.FromCheckoutResult(result))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptySelection), errors.Is(err, usecase.ErrInvalidSelectionQty), errors.Is(err, usecase.ErrInvalidIdentity):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_PAYLOAD", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRestrictedIdentity):
		return pkg.NewDomainErrorSimple("RESTRICTED_IDENTITY", "Identity not allowed for this role", http.StatusForbidden)
	case errors.Is(err, usecase.ErrItemNotSellable):
		return pkg.NewDomainErrorSimple("ITEM_NOT_SELLABLE", "Item not sellable for this identity", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
