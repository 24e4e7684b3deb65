package routes

import (
	"clinic_pos/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSales    = "/sales"
	PathCatalog  = "/catalog"
	PathCheckout = "/checkout"
	PathDrafts   = "/drafts"
)

func addPosRoutes(rg *gin.RouterGroup, salesHandler *handlers.SalesHandler, catalogHandler *handlers.CatalogHandler, checkoutHandler *handlers.CheckoutHandler) {
	sales := rg.Group(PathSales)
	{
		sales.GET("/:domain/grouped", salesHandler.ListGroupedSales)
	}

	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/:domain/sellable", catalogHandler.ListSellable)
	}

	rg.POST(PathCheckout, checkoutHandler.Checkout)

	drafts := rg.Group(PathDrafts)
	{
		drafts.PUT("/:key", catalogHandler.SaveDraft)
		drafts.GET("/:key", catalogHandler.LoadDraft)
	}
}
