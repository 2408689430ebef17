package service

import (
	"fmt"
	"testing"

	"github.com/velora-shop/velora/internal/config"
	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/models"
	"github.com/velora-shop/velora/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Favorite{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{SecretKey: "test-secret", ExpireHours: 1},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:      8,
				RequireUpper:   true,
				RequireLower:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		},
	}
}

func createTestProduct(t *testing.T, db *gorm.DB, slug string, price int64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        "Product " + slug,
		Slug:        slug,
		Description: "test product",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Size:        constants.SizeMedium,
		Images:      models.StringArray{"https://img.example/" + slug + ".jpg"},
		InStock:     stock > 0,
		TotalStock:  stock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

var testPhoneSeq int

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	testPhoneSeq++
	user := &models.User{
		Username:     "tester",
		Email:        email,
		PasswordHash: "x",
		Phone:        fmt.Sprintf("+1555000%04d", testPhoneSeq),
		Role:         constants.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func newCartServiceForTest(t *testing.T, db *gorm.DB) *CartService {
	t.Helper()
	return NewCartService(repository.NewCartRepository(db), repository.NewProductRepository(db))
}
