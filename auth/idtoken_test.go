package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/morikuni/failure/v2"
)

func fakeJWT(t *testing.T, claims map[string]any) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString(payload)
	return fmt.Sprintf("%s.%s.signature", header, body)
}

func TestIdentityTokenSourceRequiresAudience(t *testing.T) {
	_, err := IdentityTokenSource(context.Background(), "")
	if err == nil {
		t.Fatal("IdentityTokenSource(\"\") error = nil, want error")
	}
	if code := failure.CodeOf(err); code != ErrNoAudience {
		t.Errorf("error code = %v, want %v", code, ErrNoAudience)
	}
}

func TestIDTokenExpiry(t *testing.T) {
	t.Run("exp claim read", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		token := fakeJWT(t, map[string]any{"exp": exp, "aud": "https://example.run.app"})

		got := idTokenExpiry(token)
		if got.Unix() != exp {
			t.Errorf("idTokenExpiry() = %v, want %v", got.Unix(), exp)
		}
	})

	tests := []struct {
		name  string
		token string
	}{
		{name: "not a JWT", token: "opaque-token"},
		{name: "bad base64 payload", token: "a.!!!.c"},
		{name: "payload not JSON", token: "a." + base64.RawURLEncoding.EncodeToString([]byte("nope")) + ".c"},
		{name: "missing exp claim", token: "a." + base64.RawURLEncoding.EncodeToString([]byte(`{"aud":"x"}`)) + ".c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			got := idTokenExpiry(tt.token)

			// Fallback keeps the token usable for a short window
			min := before.Add(fallbackLifetime - time.Minute)
			max := time.Now().Add(fallbackLifetime + time.Minute)
			if got.Before(min) || got.After(max) {
				t.Errorf("idTokenExpiry() = %v, want within fallback window around %v", got, before.Add(fallbackLifetime))
			}
		})
	}
}
