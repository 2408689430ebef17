package router

import (
	"github.com/velora-shop/velora/internal/config"
	adminhandlers "github.com/velora-shop/velora/internal/http/handlers/admin"
	publichandlers "github.com/velora-shop/velora/internal/http/handlers/public"
	"github.com/velora-shop/velora/internal/logger"
	"github.com/velora-shop/velora/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the gin engine and wires every route group.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", publicHandler.Health)
	r.GET("/ready", publicHandler.Ready)

	apiV1 := r.Group("/api/v1")
	{
		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", publicHandler.Login)
		}

		products := apiV1.Group("/products")
		{
			products.GET("", publicHandler.ListProducts)
			products.GET("/search", publicHandler.SearchProducts)
			products.GET("/categories", publicHandler.ListCategories)
			products.GET("/id/:id", publicHandler.GetProductByID)
			products.GET("/:slug", publicHandler.GetProductBySlug)
		}

		// Payment return is a bare browser redirect from the gateway; it
		// carries no Authorization header and resolves the order by session
		// id, so it stays outside the auth group.
		apiV1.GET("/orders/success", publicHandler.PaymentSuccess)

		user := apiV1.Group("")
		user.Use(JWTAuthMiddleware(c.AuthService))
		{
			user.GET("/auth/profile", publicHandler.GetProfile)
			user.PUT("/auth/profile", publicHandler.UpdateProfile)

			user.GET("/cart", publicHandler.GetCart)
			user.GET("/cart/count", publicHandler.CartCount)
			user.POST("/cart/items", publicHandler.AddCartItem)
			user.PUT("/cart/items/:id", publicHandler.UpdateCartItem)
			user.DELETE("/cart/items/:id", publicHandler.RemoveCartItem)
			user.DELETE("/cart", publicHandler.ClearCart)

			user.GET("/favorites", publicHandler.ListFavorites)
			user.POST("/favorites/:productId", publicHandler.AddFavorite)
			user.DELETE("/favorites/:productId", publicHandler.RemoveFavorite)
			user.GET("/favorites/check/:productId", publicHandler.CheckFavorite)

			user.POST("/orders/checkout", publicHandler.Checkout)
			user.GET("/orders", publicHandler.ListMyOrders)
			user.GET("/orders/:id", publicHandler.GetMyOrder)
		}

		admin := apiV1.Group("/admin")
		admin.Use(JWTAuthMiddleware(c.AuthService), RBACMiddleware(c.Authz))
		{
			admin.POST("/auth/register", publicHandler.RegisterAdmin)

			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.GET("/orders", adminHandler.ListOrders)
			admin.PATCH("/orders/:id/status", adminHandler.UpdateOrderStatus)

			admin.POST("/upload", adminHandler.UploadImage)
		}
	}

	return r
}
