package services

import (
	"context"
	"testing"

	"github.com/resumely/resumely/internal/utils"
)

func TestAuthenticateValidCredentials(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	created, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "Dev@Example.com",
		Name:     "Dev",
		Password: "s3cret-pw",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := svc.Authenticate(context.Background(), "dev@example.com", "s3cret-pw")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("authenticated wrong user: %s", u.ID.Hex())
	}
}

func TestAuthenticateRejections(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.Create(context.Background(), CreateUserInput{
		Email:    "dev@example.com",
		Password: "s3cret-pw",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	// OAuth-style account with no stored hash.
	if _, err := svc.Create(context.Background(), CreateUserInput{
		Email: "oauth@example.com",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	cases := []struct {
		name, email, password string
	}{
		{"wrong password", "dev@example.com", "guess"},
		{"unknown email", "nobody@example.com", "s3cret-pw"},
		{"passwordless account", "oauth@example.com", "s3cret-pw"},
	}
	for _, tc := range cases {
		if _, err := svc.Authenticate(context.Background(), tc.email, tc.password); !utils.IsCode(err, utils.CodeUnauthorized) {
			t.Fatalf("%s: expected unauthorized, got %v", tc.name, err)
		}
	}

	if _, err := svc.Authenticate(context.Background(), "dev@example.com", ""); !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("empty password: expected invalid argument, got %v", err)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	if _, err := svc.Create(context.Background(), CreateUserInput{Email: "dev@example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err := svc.Create(context.Background(), CreateUserInput{Email: "DEV@example.com"})
	if !utils.IsCode(err, utils.CodeConflict) {
		t.Fatalf("expected conflict on duplicate email, got %v", err)
	}
}
