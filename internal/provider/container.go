// Package provider wires repositories and services into a single
// dependency container shared by the HTTP handlers.
package provider

import (
	"fmt"

	"github.com/velora-shop/velora/internal/authz"
	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/logger"
	"github.com/velora-shop/velora/internal/media"
	"github.com/velora-shop/velora/internal/models"
	stripegw "github.com/velora-shop/velora/internal/payment/stripe"
	"github.com/velora-shop/velora/internal/repository"
	"github.com/velora-shop/velora/internal/service"

	"gorm.io/gorm"
)

// Container holds every shared dependency.
type Container struct {
	Cfg *config.Config
	DB  *gorm.DB

	Authz *authz.Service

	AuthService     *service.AuthService
	ProductService  *service.ProductService
	CartService     *service.CartService
	FavoriteService *service.FavoriteService
	OrderService    *service.OrderService
	UploadService   *service.UploadService
}

// Build wires the container from config and the initialized database.
// External clients (payment gateway, media host) are optional: when not
// configured they stay nil and the owning service reports them
// unavailable. The check happens once, here.
func Build(cfg *config.Config) (*Container, error) {
	db := models.DB
	if db == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	authzService, err := authz.NewService(db)
	if err != nil {
		return nil, fmt.Errorf("init authz: %w", err)
	}
	if err := authzService.Bootstrap(); err != nil {
		return nil, fmt.Errorf("seed authz policies: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	cartRepo := repository.NewCartRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	gateway, err := stripegw.NewGateway(cfg.Stripe)
	if err != nil {
		return nil, fmt.Errorf("init payment gateway: %w", err)
	}
	var paymentGateway service.PaymentGateway
	if gateway != nil {
		paymentGateway = gateway
		logger.Infow("payment_gateway_enabled", "provider", "stripe")
	} else {
		logger.Warnw("payment_gateway_disabled", "reason", "stripe secret key not configured")
	}

	uploader, err := media.NewCloudinaryUploader(cfg.Cloudinary)
	if err != nil {
		return nil, fmt.Errorf("init media uploader: %w", err)
	}
	var mediaUploader service.MediaUploader
	if uploader != nil {
		mediaUploader = uploader
		logger.Infow("media_uploader_enabled", "provider", "cloudinary")
	} else {
		logger.Warnw("media_uploader_disabled", "reason", "cloudinary not configured")
	}

	return &Container{
		Cfg:             cfg,
		DB:              db,
		Authz:           authzService,
		AuthService:     service.NewAuthService(cfg, userRepo),
		ProductService:  service.NewProductService(productRepo),
		CartService:     service.NewCartService(cartRepo, productRepo),
		FavoriteService: service.NewFavoriteService(favoriteRepo, productRepo),
		OrderService:    service.NewOrderService(orderRepo, productRepo, cartRepo, paymentGateway),
		UploadService:   service.NewUploadService(cfg.Upload, mediaUploader),
	}, nil
}
