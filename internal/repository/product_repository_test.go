package repository

import (
	"fmt"
	"testing"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db)
}

func createCatalogProduct(t *testing.T, repo *GormProductRepository, slug string, price int64, stock int, sold int, tags ...string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        "Product " + slug,
		Slug:        slug,
		Description: "test product",
		Tags:        models.StringArray(tags),
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Size:        constants.SizeMedium,
		Images:      models.StringArray{"https://img.example/" + slug + ".jpg"},
		InStock:     stock > 0,
		TotalStock:  stock,
		SoldCount:   sold,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestRecordSaleDecrementsStockAndIncrementsSold(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, "sale-lifecycle", 100, 10, 2)

	affected, err := repo.RecordSale(product.ID, 3)
	if err != nil {
		t.Fatalf("record sale failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("record sale affected want 1 got %d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.TotalStock != 7 {
		t.Fatalf("total stock want 7 got %d", got.TotalStock)
	}
	if got.SoldCount != 5 {
		t.Fatalf("sold count want 5 got %d", got.SoldCount)
	}
	if !got.InStock {
		t.Fatalf("expected product to remain in stock")
	}
}

func TestRecordSaleRefusesInsufficientStock(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, "sale-insufficient", 100, 2, 0)

	affected, err := repo.RecordSale(product.ID, 3)
	if err != nil {
		t.Fatalf("record sale failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("record sale affected want 0 got %d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.TotalStock != 2 || got.SoldCount != 0 {
		t.Fatalf("stock must be untouched, got stock=%d sold=%d", got.TotalStock, got.SoldCount)
	}
}

func TestRecordSaleExhaustionClearsInStock(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createCatalogProduct(t, repo, "sale-exhaustion", 100, 3, 0)

	affected, err := repo.RecordSale(product.ID, 3)
	if err != nil {
		t.Fatalf("record sale failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("record sale affected want 1 got %d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.TotalStock != 0 {
		t.Fatalf("total stock want 0 got %d", got.TotalStock)
	}
	if got.InStock {
		t.Fatalf("expected in_stock to be cleared at zero stock")
	}
}

func TestListFiltersAndSorts(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "tee-red", 20, 5, 10, "tees")
	createCatalogProduct(t, repo, "tee-blue", 35, 5, 50, "tees")
	createCatalogProduct(t, repo, "hoodie-black", 60, 0, 5, "hoodies")

	products, total, err := repo.List(ProductListFilter{
		Page: 1, PageSize: 10,
		Tag:  "tees",
		Sort: constants.SortPriceDesc,
	})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("total want 2 got %d", total)
	}
	if products[0].Slug != "tee-blue" || products[1].Slug != "tee-red" {
		t.Fatalf("unexpected price_desc order: %s, %s", products[0].Slug, products[1].Slug)
	}

	inStock := true
	products, total, err = repo.List(ProductListFilter{
		Page: 1, PageSize: 10,
		InStock: &inStock,
		Sort:    constants.SortPopular,
	})
	if err != nil {
		t.Fatalf("list in-stock failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("in-stock total want 2 got %d", total)
	}
	if products[0].Slug != "tee-blue" {
		t.Fatalf("popular sort should lead with tee-blue, got %s", products[0].Slug)
	}

	min := decimal.NewFromInt(30)
	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, MinPrice: &min})
	if err != nil {
		t.Fatalf("list min price failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("min price total want 2 got %d", total)
	}
}

func TestListSearchMatchesNameDescriptionTags(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "winter-coat", 80, 4, 0, "outerwear")
	createCatalogProduct(t, repo, "summer-dress", 45, 4, 0, "dresses")

	products, total, err := repo.List(ProductListFilter{
		Page: 1, PageSize: 10,
		Search: "WINTER",
	})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || products[0].Slug != "winter-coat" {
		t.Fatalf("case-insensitive search should match winter-coat, total=%d", total)
	}

	_, total, err = repo.List(ProductListFilter{Page: 1, PageSize: 10, Search: "outerwear"})
	if err != nil {
		t.Fatalf("tag search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("tag search total want 1 got %d", total)
	}
}

func TestListPagination(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	for i := 0; i < 25; i++ {
		createCatalogProduct(t, repo, fmt.Sprintf("page-item-%02d", i), 10, 3, 0)
	}

	products, total, err := repo.List(ProductListFilter{Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("list page 2 failed: %v", err)
	}
	if total != 25 {
		t.Fatalf("total want 25 got %d", total)
	}
	if len(products) != 10 {
		t.Fatalf("page 2 size want 10 got %d", len(products))
	}

	products, _, err = repo.List(ProductListFilter{Page: 3, PageSize: 10})
	if err != nil {
		t.Fatalf("list page 3 failed: %v", err)
	}
	if len(products) != 5 {
		t.Fatalf("page 3 size want 5 got %d", len(products))
	}
}

func TestDistinctTags(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createCatalogProduct(t, repo, "tag-a", 10, 1, 0, "tees", "sale")
	createCatalogProduct(t, repo, "tag-b", 10, 1, 0, "tees", "new")

	tags, err := repo.DistinctTags()
	if err != nil {
		t.Fatalf("distinct tags failed: %v", err)
	}
	if len(tags) != 3 {
		t.Fatalf("distinct tag count want 3 got %d (%v)", len(tags), tags)
	}
}
