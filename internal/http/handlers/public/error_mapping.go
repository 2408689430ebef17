package public

import (
	"net/http"

	"github.com/velora-shop/velora/internal/http/handlers/shared"
	"github.com/velora-shop/velora/internal/service"

	"github.com/gin-gonic/gin"
)

// Conflicts render as 400 here: the envelope message is the contract,
// not a 409 status.
var authErrorRules = []shared.MappedError{
	{Target: service.ErrEmailExists, Status: http.StatusBadRequest, Message: "email already registered"},
	{Target: service.ErrPhoneExists, Status: http.StatusBadRequest, Message: "phone already registered"},
	{Target: service.ErrInvalidCredentials, Status: http.StatusUnauthorized, Message: "invalid email or password"},
	{Target: service.ErrUserNotFound, Status: http.StatusNotFound, Message: "user not found"},
	{Target: service.ErrUnauthorized, Status: http.StatusUnauthorized, Message: "authentication required"},
	{Target: service.ErrMediaUnavailable, Status: http.StatusInternalServerError, Message: "image upload unavailable"},
}

var productErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Status: http.StatusNotFound, Message: "product not found"},
}

var cartErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Status: http.StatusNotFound, Message: "product not found"},
	{Target: service.ErrCartItemNotFound, Status: http.StatusNotFound, Message: "cart item not found"},
	{Target: service.ErrProductUnavailable, Status: http.StatusBadRequest, Message: "product is out of stock"},
	{Target: service.ErrInsufficientStock, Status: http.StatusBadRequest, Message: "insufficient stock"},
	{Target: service.ErrInvalidQuantity, Status: http.StatusBadRequest, Message: "quantity must be at least 1"},
}

var favoriteErrorRules = []shared.MappedError{
	{Target: service.ErrProductNotFound, Status: http.StatusNotFound, Message: "product not found"},
	{Target: service.ErrFavoriteExists, Status: http.StatusBadRequest, Message: "product already favorited"},
	{Target: service.ErrFavoriteNotFound, Status: http.StatusNotFound, Message: "favorite not found"},
}

var orderErrorRules = []shared.MappedError{
	{Target: service.ErrCartEmpty, Status: http.StatusBadRequest, Message: "cart is empty"},
	{Target: service.ErrProductNotFound, Status: http.StatusNotFound, Message: "product not found"},
	{Target: service.ErrInsufficientStock, Status: http.StatusBadRequest, Message: "insufficient stock"},
	{Target: service.ErrOrderNotFound, Status: http.StatusNotFound, Message: "order not found"},
	{Target: service.ErrPaymentNotPaid, Status: http.StatusBadRequest, Message: "payment not completed"},
	{Target: service.ErrGatewayUnavailable, Status: http.StatusInternalServerError, Message: "payment service unavailable"},
}

func respondAuthError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, authErrorRules, "authentication failed")
}

func respondProductError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, productErrorRules, "catalog request failed")
}

func respondCartError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, cartErrorRules, "cart request failed")
}

func respondFavoriteError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, favoriteErrorRules, "favorites request failed")
}

func respondOrderError(c *gin.Context, err error) {
	shared.RespondMapped(c, err, orderErrorRules, "order request failed")
}
