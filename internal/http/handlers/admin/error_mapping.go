package admin

import (
	"net/http"

	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

var productAdminErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Status: http.StatusNotFound, Message: "product not found"},
	{Target: service.ErrSlugExists, Status: http.StatusBadRequest, Message: "product slug already exists"},
	{Target: service.ErrMediaUnavailable, Status: http.StatusInternalServerError, Message: "image upload unavailable"},
}

var orderAdminErrorRules = []shared.MappedError{
	{Target: service.ErrOrderNotFound, Status: http.StatusNotFound, Message: "order not found"},
}

func respondProductAdminError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, productAdminErrorRules, "catalog update failed")
}

func respondOrderAdminError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, orderAdminErrorRules, "order update failed")
}
