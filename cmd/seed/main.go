package main

import (
	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/logger"
	"github.com/velora-shop/velora/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	if err := models.InitDefaultAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		stdLog.Printf("Failed to init default admin: %v", err)
	}

	seedDemoUser(stdLog.Printf)
	seedProducts(stdLog.Printf)
}

func seedDemoUser(logf func(string, ...interface{})) {
	var existing models.User
	if err := models.DB.Where("email = ?", "demo@velora.shop").First(&existing).Error; err == nil {
		logf("Demo user already exists: %s", existing.Email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("Demo@12345"), bcrypt.DefaultCost)
	if err != nil {
		logf("Failed to hash demo password: %v", err)
		return
	}
	user := models.User{
		Username:     "demo",
		Email:        "demo@velora.shop",
		PasswordHash: string(hash),
		Phone:        "+15550000001",
		Role:         constants.RoleUser,
	}
	if err := models.DB.Create(&user).Error; err != nil {
		logf("Failed to create demo user: %v", err)
		return
	}
	logf("Created demo user: %s", user.Email)
}

func seedProducts(logf func(string, ...interface{})) {
	products := []models.Product{
		{
			Name:        "Linen Overshirt",
			Slug:        "linen-overshirt",
			Description: "Relaxed-fit overshirt in washed linen with corozo buttons.",
			Tags:        models.StringArray{"shirts", "summer"},
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1596755094514-f87e34085b2c?w=800",
			},
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(79.00)),
			Colour:     "sand",
			Size:       constants.SizeMedium,
			InStock:    true,
			TotalStock: 40,
		},
		{
			Name:        "Merino Crewneck",
			Slug:        "merino-crewneck",
			Description: "Fine-gauge merino knit, fully fashioned seams.",
			Tags:        models.StringArray{"knitwear", "winter"},
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1576871337622-98d48d1cf531?w=800",
			},
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(129.50)),
			Colour:     "navy",
			Size:       constants.SizeLarge,
			InStock:    true,
			TotalStock: 25,
		},
		{
			Name:        "Canvas Tote",
			Slug:        "canvas-tote",
			Description: "Heavy cotton canvas tote with internal zip pocket.",
			Tags:        models.StringArray{"bags", "accessories"},
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1544816155-12df9643f363?w=800",
			},
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(39.00)),
			Colour:     "natural",
			Size:       constants.SizeSmall,
			InStock:    true,
			TotalStock: 100,
		},
		{
			Name:        "Selvedge Denim Jacket",
			Slug:        "selvedge-denim-jacket",
			Description: "14oz Japanese selvedge denim, raw finish.",
			Tags:        models.StringArray{"jackets", "denim"},
			Images: models.StringArray{
				"https://images.unsplash.com/photo-1551537482-f2075a1d41f2?w=800",
			},
			Price:      models.NewMoneyFromDecimal(decimal.NewFromFloat(189.00)),
			Colour:     "indigo",
			Size:       constants.SizeXLarge,
			InStock:    true,
			TotalStock: 15,
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", product.Slug).First(&existing).Error; err == nil {
			logf("Product already exists: %s", product.Slug)
			continue
		}
		if err := models.DB.Create(&product).Error; err != nil {
			logf("Failed to create product %s: %v", product.Slug, err)
			continue
		}
		logf("Created product: %s", product.Slug)
	}
}
