package utils

import (
	"testing"
	"time"

	"lensbook/config"

	"github.com/golang-jwt/jwt"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = secret
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })
}

func TestGenerateAndExtractClaims(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateToken("client-42", RoleClient, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	claims, err := ExtractClaims(token)
	if err != nil {
		t.Fatalf("ExtractClaims returned error: %v", err)
	}
	if claims.Subject != "client-42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "client-42")
	}
	if claims.Role != RoleClient {
		t.Errorf("Role = %q, want %q", claims.Role, RoleClient)
	}
}

func TestExtractClaims_Rejects(t *testing.T) {
	withSecret(t, "test-secret")

	expired, err := GenerateToken("client-42", RoleClient, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	withSecret(t, "other-secret")
	foreign, err := GenerateToken("client-42", RoleClient, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}
	withSecret(t, "test-secret")

	noSub, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": RoleVendor,
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": foreign,
		"missing sub":  noSub,
		"garbage":      "not.a.token",
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := ExtractClaims(token); err == nil {
				t.Fatalf("ExtractClaims(%s) succeeded, want error", name)
			}
		})
	}
}

func TestValidateToken_RequiresSecret(t *testing.T) {
	withSecret(t, "")
	if _, err := GenerateToken("x", RoleClient, time.Hour); err == nil {
		t.Fatalf("GenerateToken without secret succeeded, want error")
	}
	if _, err := ValidateToken("a.b.c"); err == nil {
		t.Fatalf("ValidateToken without secret succeeded, want error")
	}
}
