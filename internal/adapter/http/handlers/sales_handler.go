package handlers

import (
	"errors"
	"log"
	"net/http"

	response "clinic_pos/internal/adapter/http/dto/response"
	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase"
	"clinic_pos/pkg"

	"github.com/gin-gonic/gin"
)

// SalesHandler handles HTTP requests for the grouped sales report.

type SalesHandler struct {
	usecase usecase.ISalesReportUseCase
}

func NewSalesHandler(uc usecase.ISalesReportUseCase) *SalesHandler {
	return &SalesHandler{usecase: uc}
}

// ListGroupedSales returns the sale rows of a domain regrouped into logical
// orders and bundles.
func (h *SalesHandler) ListGroupedSales(c *gin.Context) {
	domain, err := entities.ParseSaleDomain(c.Param("domain"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DOMAIN", "Invalid sale domain", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sales][handler] list-grouped start domain=%s", domain)

	groups, err := h.usecase.ListGroupedSales(c.Request.Context(), domain)
	if err != nil {
		log.Printf("[sales][handler] list-grouped failed domain=%s err=%v", domain, err)
		appErr := mapSalesError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sales][handler] list-grouped success domain=%s groups=%d", domain, len(groups))

	c.JSON(http.StatusOK, response.FromAggregatedGroups(groups))
}

func mapSalesError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidSaleDomain):
		return pkg.NewDomainErrorSimple("INVALID_DOMAIN", "Invalid sale domain", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
