package service

import (
	"errors"
	"testing"

	"github.com/velora-shop/velora/internal/constants"
	"github.com/velora-shop/velora/internal/repository"
)

func newAuthServiceForTest(t *testing.T) *AuthService {
	t.Helper()
	db := setupTestDB(t)
	return NewAuthService(testConfig(), repository.NewUserRepository(db))
}

func TestRegisterAndLogin(t *testing.T) {
	svc := newAuthServiceForTest(t)

	user, token, _, err := svc.Register(RegisterInput{
		Username: "jordan",
		Email:    "Jordan@Example.com",
		Password: "Sup3r$ecret",
		Phone:    "+1 (555) 010-2030",
	}, constants.RoleUser)
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.Email != "jordan@example.com" {
		t.Fatalf("email must be normalized, got %q", user.Email)
	}
	if user.PasswordHash == "Sup3r$ecret" {
		t.Fatalf("password must be hashed")
	}
	if token == "" {
		t.Fatalf("expected a token on register")
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleUser {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	logged, _, _, err := svc.Login("jordan@example.com", "Sup3r$ecret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned wrong user")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthServiceForTest(t)

	input := RegisterInput{
		Username: "jordan",
		Email:    "dup@example.com",
		Password: "Sup3r$ecret",
		Phone:    "+15550102030",
	}
	if _, _, _, err := svc.Register(input, constants.RoleUser); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	input.Phone = "+15550102031"
	_, _, _, err := svc.Register(input, constants.RoleUser)
	if !errors.Is(err, ErrEmailExists) {
		t.Fatalf("want ErrEmailExists, got %v", err)
	}

	input.Email = "other@example.com"
	input.Phone = "+15550102030"
	_, _, _, err = svc.Register(input, constants.RoleUser)
	if !errors.Is(err, ErrPhoneExists) {
		t.Fatalf("want ErrPhoneExists, got %v", err)
	}
}

func TestRegisterRejectsWeakInput(t *testing.T) {
	svc := newAuthServiceForTest(t)

	_, _, _, err := svc.Register(RegisterInput{
		Username: "jo",
		Email:    "not-an-email",
		Password: "short",
		Phone:    "abc",
	}, constants.RoleUser)

	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("want FieldErrors, got %v", err)
	}
	for _, field := range []string{"username", "email", "password", "phone"} {
		if _, ok := fieldErrs[field]; !ok {
			t.Fatalf("expected a message for field %q, got %v", field, fieldErrs)
		}
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc := newAuthServiceForTest(t)

	if _, _, _, err := svc.Register(RegisterInput{
		Username: "jordan",
		Email:    "login@example.com",
		Password: "Sup3r$ecret",
		Phone:    "+15550102032",
	}, constants.RoleUser); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, _, err := svc.Login("login@example.com", "WrongPass1$")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("want ErrInvalidCredentials, got %v", err)
	}

	_, _, _, err = svc.Login("ghost@example.com", "Sup3r$ecret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email must look like bad credentials, got %v", err)
	}
}

func TestRegisterAdminRole(t *testing.T) {
	svc := newAuthServiceForTest(t)

	user, token, _, err := svc.Register(RegisterInput{
		Username: "root",
		Email:    "admin@example.com",
		Password: "Sup3r$ecret",
		Phone:    "+15550102033",
	}, constants.RoleAdmin)
	if err != nil {
		t.Fatalf("register admin failed: %v", err)
	}
	if user.Role != constants.RoleAdmin {
		t.Fatalf("role want admin got %s", user.Role)
	}
	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.Role != constants.RoleAdmin {
		t.Fatalf("token role want admin got %s", claims.Role)
	}
}
