package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/velora-shop/velora/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("bootstrap failed: %v", err)
	}
	return svc
}

func TestAdminRoleCoversAdminRoutes(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	allow, err := svc.EnforceRole(constants.RoleAdmin, "/api/v1/admin/products/42", "delete")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if !allow {
		t.Fatalf("admin must reach admin routes")
	}

	allow, err = svc.EnforceRole(constants.RoleUser, "/api/v1/admin/products/42", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatalf("shopper must not reach admin routes")
	}
}

func TestUnknownRoleDenied(t *testing.T) {
	svc := setupAuthzServiceTest(t)

	allow, err := svc.EnforceRole("superuser", "/api/v1/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if allow {
		t.Fatalf("roles outside the closed set must be denied")
	}
}

func TestBootstrapIsIdempotent(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.Bootstrap(); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}
	allow, err := svc.EnforceRole(constants.RoleAdmin, "/api/v1/admin/orders", "PATCH")
	if err != nil {
		t.Fatalf("enforce failed: %v", err)
	}
	if !allow {
		t.Fatalf("policies must survive reseeding")
	}
}
