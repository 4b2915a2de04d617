package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signHS256(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestVerifyValidToken(t *testing.T) {
	secret := []byte("test-secret")
	v := HS256Verifier{Secret: secret}

	token := signHS256(t, secret, jwt.MapClaims{
		"sub":            "user-1",
		"cognito:groups": []string{"laundry-manager"},
		"exp":            time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims["sub"] != "user-1" {
		t.Fatalf("unexpected claims: %v", claims)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	v := HS256Verifier{Secret: []byte("right")}

	token := signHS256(t, []byte("wrong"), jwt.MapClaims{"sub": "user-1"})
	if _, err := v.Verify(token); err == nil {
		t.Fatal("expected verification failure for wrong secret")
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	secret := []byte("test-secret")
	v := HS256Verifier{Secret: secret}

	token := signHS256(t, secret, jwt.MapClaims{
		"sub": "user-1",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	if _, err := v.Verify(token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestVerifyGarbage(t *testing.T) {
	v := HS256Verifier{Secret: []byte("test-secret")}
	if _, err := v.Verify("not-a-jwt"); err == nil {
		t.Fatal("expected verification failure for malformed token")
	}
}
