package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"cloud.google.com/go/compute/metadata"
	"github.com/morikuni/failure/v2"
	"golang.org/x/oauth2"

	"github.com/zoolabs/zoomcp/log"
)

// ErrorCode defines error types for token operations
type ErrorCode string

const (
	ErrNoAudience ErrorCode = "NoAudience"
	ErrTokenFetch ErrorCode = "TokenFetchError"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}

// fallbackLifetime is assumed when a token's exp claim cannot be read
const fallbackLifetime = 15 * time.Minute

// IdentityTokenSource returns a source of Google-signed ID tokens for the
// given audience, typically the URL of the deployed service. On GCE and
// Cloud Run the metadata server mints tokens for the runtime service
// account; elsewhere it shells out to gcloud, matching what the deployment
// walkthroughs script by hand.
func IdentityTokenSource(ctx context.Context, audience string) (oauth2.TokenSource, error) {
	if audience == "" {
		return nil, failure.New(ErrNoAudience,
			failure.Message("Audience is required for identity tokens"),
		)
	}

	var src oauth2.TokenSource
	if metadata.OnGCE() {
		log.Debug("using metadata server for identity tokens", "audience", audience)
		src = &metadataTokenSource{ctx: ctx, audience: audience}
	} else {
		log.Debug("using gcloud for identity tokens", "audience", audience)
		src = &gcloudTokenSource{ctx: ctx, audience: audience}
	}
	return oauth2.ReuseTokenSource(nil, src), nil
}

// Header returns the Authorization header map for calling a service that
// requires the invoker role
func Header(ctx context.Context, audience string) (map[string]string, error) {
	ts, err := IdentityTokenSource(ctx, audience)
	if err != nil {
		return nil, err
	}
	tok, err := ts.Token()
	if err != nil {
		return nil, err
	}
	return map[string]string{"Authorization": "Bearer " + tok.AccessToken}, nil
}

type metadataTokenSource struct {
	ctx      context.Context
	audience string
}

func (s *metadataTokenSource) Token() (*oauth2.Token, error) {
	path := "instance/service-accounts/default/identity?audience=" + url.QueryEscape(s.audience)
	raw, err := metadata.GetWithContext(s.ctx, path)
	if err != nil {
		return nil, failure.New(ErrTokenFetch,
			failure.Message("Metadata server did not return an identity token"),
			failure.Context{
				"audience": s.audience,
				"cause":    err.Error(),
			},
		)
	}
	raw = strings.TrimSpace(raw)
	return &oauth2.Token{
		AccessToken: raw,
		Expiry:      idTokenExpiry(raw),
	}, nil
}

type gcloudTokenSource struct {
	ctx      context.Context
	audience string
}

func (s *gcloudTokenSource) Token() (*oauth2.Token, error) {
	cmd := exec.CommandContext(s.ctx, "gcloud", "auth", "print-identity-token", "--audiences="+s.audience)
	out, err := cmd.Output()
	if err != nil {
		ctx := failure.Context{
			"audience": s.audience,
			"cause":    err.Error(),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			ctx["stderr"] = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, failure.New(ErrTokenFetch,
			failure.Message("gcloud could not print an identity token; run `gcloud auth login` first"),
			ctx,
		)
	}
	raw := strings.TrimSpace(string(out))
	return &oauth2.Token{
		AccessToken: raw,
		Expiry:      idTokenExpiry(raw),
	}, nil
}

// idTokenExpiry reads the exp claim of a JWT without verifying it.
// Verification belongs to the receiving platform; the expiry is only
// used to decide when ReuseTokenSource refreshes.
func idTokenExpiry(token string) time.Time {
	fallback := time.Now().Add(fallbackLifetime)

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return fallback
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return fallback
	}
	var claims struct {
		Exp int64 `json:"exp"`
	}
	if err := json.Unmarshal(payload, &claims); err != nil || claims.Exp == 0 {
		return fallback
	}
	return time.Unix(claims.Exp, 0)
}
