package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainErrors "github.com/mkarev/shopapi/internal/domain/errors"
	"github.com/mkarev/shopapi/internal/domain/model"
	pkgAuth "github.com/mkarev/shopapi/internal/pkg/auth"
	testhelpers "github.com/mkarev/shopapi/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	users := testhelpers.NewUserRepositoryStub()
	return NewAuthUseCase(users, testhelpers.HasherStub{}, testhelpers.StrategyStub{}), users
}

func TestAuthUseCaseRegister(t *testing.T) {
	uc, users := newAuthUseCase()

	usr, token, err := uc.Register(context.Background(), "alice", "pass")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}
	if usr.Role != model.RoleCustomer {
		t.Fatalf("expected customer role, got %q", usr.Role)
	}

	stored, err := users.GetByLogin(context.Background(), "alice")
	if err != nil {
		t.Fatalf("user not stored: %v", err)
	}
	if stored.PasswordHash == "pass" {
		t.Fatal("expected password to be hashed before storage")
	}
}

func TestAuthUseCaseRegisterRejectsBlankCredentials(t *testing.T) {
	uc, _ := newAuthUseCase()

	cases := [][2]string{{"", "pass"}, {"alice", ""}, {"   ", "pass"}}
	for _, c := range cases {
		if _, _, err := uc.Register(context.Background(), c[0], c[1]); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials for %q/%q, got %v", c[0], c[1], err)
		}
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "alice", "pass"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, err := uc.Register(context.Background(), "alice", "other"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestAuthUseCaseAuthenticate(t *testing.T) {
	uc, _ := newAuthUseCase()

	if _, _, err := uc.Register(context.Background(), "alice", "pass"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, token, err := uc.Authenticate(context.Background(), "alice", "pass")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if token != "token" {
		t.Fatalf("unexpected token %q", token)
	}

	if _, _, err := uc.Authenticate(context.Background(), "alice", "wrong"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, _, err := uc.Authenticate(context.Background(), "ghost", "pass"); !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown login, got %v", err)
	}
}

func TestAuthUseCaseParseToken(t *testing.T) {
	userID := uuid.New()
	uc := NewAuthUseCase(testhelpers.NewUserRepositoryStub(), testhelpers.HasherStub{}, testhelpers.StrategyStub{ID: userID})

	got, err := uc.ParseToken("anything")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if got != userID {
		t.Fatalf("unexpected user id %s", got)
	}

	if _, err := uc.ParseToken(""); !errors.Is(err, pkgAuth.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for empty token, got %v", err)
	}
}
