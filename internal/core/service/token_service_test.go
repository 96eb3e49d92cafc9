package service

import (
	"errors"
	"testing"
	"time"

	"github.com/usermgmt/identity-service/internal/core/domain"
)

func testUser() *domain.User {
	return &domain.User{
		ID:    1,
		Email: "a@x.com",
		Roles: []string{domain.DefaultRoleName},
	}
}

func TestTokenService_IssueValidate_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected non-empty token")
	}

	if err := svc.Validate(token, "a@x.com"); err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
}

func TestTokenService_Parse_CarriesRoleClaims(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	user := testUser()
	user.AddRole(domain.AdminRoleName)

	token, err := svc.Issue(user)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := svc.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.Email != "a@x.com" {
		t.Fatalf("unexpected subject: %s", claims.Email)
	}
	if len(claims.Roles) != 2 || claims.Roles[0] != domain.DefaultRoleName || claims.Roles[1] != domain.AdminRoleName {
		t.Fatalf("unexpected role claims: %v", claims.Roles)
	}
}

func TestTokenService_Validate_SubjectMismatch(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if err := svc.Validate(token, "b@x.com"); !errors.Is(err, domain.ErrTokenSubjectMismatch) {
		t.Fatalf("expected ErrTokenSubjectMismatch, got %v", err)
	}
}

func TestTokenService_Validate_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := svc.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	svc.now = time.Now
	if err := svc.Validate(token, "a@x.com"); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Parse_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Parse(tc.token); !errors.Is(err, domain.ErrTokenMalformed) {
				t.Fatalf("expected ErrTokenMalformed, got %v", err)
			}
		})
	}
}

func TestTokenService_Parse_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Parse(token); !errors.Is(err, domain.ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}
