package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	request "clinic_pos/internal/adapter/http/dto/request"
	response "clinic_pos/internal/adapter/http/dto/response"
	"clinic_pos/internal/domain/entities"
	"clinic_pos/internal/usecase"
	"clinic_pos/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDraftPayload = pkg.NewDomainErrorSimple("INVALID_DRAFT_INPUT", "Invalid draft payload", http.StatusBadRequest)
)

// CatalogHandler handles HTTP requests for the sellable catalog and for
// per-till selection drafts.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListSellable returns the items of a domain sellable under the identity tab
// passed as the "identity" query parameter, each with its resolved unit
// price. Items without a usable price for that identity are excluded.
func (h *CatalogHandler) ListSellable(c *gin.Context) {
	domain, err := entities.ParseSaleDomain(c.Param("domain"))
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DOMAIN", "Invalid sale domain", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	identity := entities.Identity(strings.ToLower(strings.TrimSpace(c.Query("identity"))))
	restricted := parseRestrictedIdentities(c.Query("restricted"))
	log.Printf("[catalog][handler] list-sellable start domain=%s identity=%s", domain, identity)

	items, err := h.usecase.ListSellable(c.Request.Context(), domain, identity, restricted)
	if err != nil {
		log.Printf("[catalog][handler] list-sellable failed domain=%s identity=%s err=%v", domain, identity, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[catalog][handler] list-sellable success domain=%s identity=%s items=%d", domain, identity, len(items))

	c.JSON(http.StatusOK, response.FromSellableItems(items))
}

// SaveDraft stores the selections of a till verbatim under the key in path.
func (h *CatalogHandler) SaveDraft(c *gin.Context) {
	key := c.Param("key")

	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDraftPayload.HTTPStatus, errInvalidDraftPayload.ToHTTPError())
		return
	}

	if err := h.usecase.SaveDraft(c.Request.Context(), key, payload.ResolveSelections()); err != nil {
		log.Printf("[catalog][handler] save-draft failed key=%s err=%v", key, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// LoadDraft returns the selections previously stored under the key in path.
func (h *CatalogHandler) LoadDraft(c *gin.Context) {
	key := c.Param("key")

	selections, err := h.usecase.LoadDraft(c.Request.Context(), key)
	if err != nil {
		log.Printf("[catalog][handler] load-draft failed key=%s err=%v", key, err)
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if selections == nil {
		selections = []entities.Selection{}
	}

	c.JSON(http.StatusOK, gin.H{"selections": selections})
}

func parseRestrictedIdentities(raw string) entities.IdentitySet {
	set := entities.IdentitySet{}
	for _, part := range strings.Split(raw, ",") {
		if v := strings.ToLower(strings.TrimSpace(part)); v != "" {
			set[entities.Identity(v)] = struct{}{}
		}
	}
	return set
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIdentity):
		return pkg.NewDomainErrorSimple("INVALID_IDENTITY", "Invalid identity", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRestrictedIdentity):
		return pkg.NewDomainErrorSimple("RESTRICTED_IDENTITY", "Identity not allowed for this role", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidDraftKey):
		return pkg.NewDomainErrorSimple("INVALID_DRAFT_KEY", "Invalid draft key", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
