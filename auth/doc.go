// Package auth obtains Google-signed identity tokens for calling
// IAM-protected services.
//
// The auth package provides:
// - An oauth2.TokenSource yielding ID tokens for a target audience
// - Metadata-server sourcing on GCE and Cloud Run
// - A gcloud fallback for local development
//
// Tokens are only produced here; validation is the platform's job.
package auth
