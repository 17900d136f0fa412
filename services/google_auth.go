package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"salon-sync-backend/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Access tokens within this margin of expiry are refreshed before use.
const tokenExpiryMargin = 60 * time.Second

// NewOAuthConfig creates the OAuth2 config for Google Calendar access.
func NewOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/calendar.readonly",
			"https://www.googleapis.com/auth/calendar.events",
		},
		Endpoint: google.Endpoint,
	}
}

// GoogleAuthService owns the authorization-code flow and keeps a valid access
// token available for calendar calls. Refresh happens lazily on use; there is
// no background refresh job.
type GoogleAuthService struct {
	config *oauth2.Config
	tokens TokenStore
}

func NewGoogleAuthService(config *oauth2.Config, tokens TokenStore) *GoogleAuthService {
	return &GoogleAuthService{config: config, tokens: tokens}
}

// AuthCodeURL builds the consent URL. Offline access so a refresh token is
// issued, forced consent so re-authentication reissues one.
func (s *GoogleAuthService) AuthCodeURL() string {
	return s.config.AuthCodeURL("",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// ExchangeCode trades the authorization code from the provider redirect for a
// token. The id_token is available via token.Extra("id_token").
func (s *GoogleAuthService) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExchangeFailed, err)
	}
	return token, nil
}

// EmailFromIDToken extracts the email claim from a Google ID token without
// verifying its signature. The token arrives directly from Google's token
// endpoint over TLS in the same request, which is the trust anchor here; a
// token accepted from any other path would need signature verification.
func (s *GoogleAuthService) EmailFromIDToken(idToken string) (string, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return "", fmt.Errorf("decode id token: %w", err)
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", ErrMissingEmailClaim
	}
	return email, nil
}

// FreshToken returns a token that is valid for at least tokenExpiryMargin,
// refreshing and persisting it first when needed. Called lazily before every
// calendar call. A record with no refresh token cannot be silently renewed:
// that fails with ErrReauthRequired and never contacts the provider.
func (s *GoogleAuthService) FreshToken(ctx context.Context, stored *models.StylistToken) (*models.StylistToken, error) {
	if !stored.Expired(tokenExpiryMargin) {
		return stored, nil
	}

	if stored.RefreshToken == "" {
		return nil, ErrReauthRequired
	}

	// An empty access token forces the token source through the refresh grant.
	src := s.config.TokenSource(ctx, &oauth2.Token{RefreshToken: stored.RefreshToken})
	renewed, err := src.Token()
	if err != nil {
		// Invalid or revoked refresh token. Not retried; the stylist must
		// run the consent flow again.
		return nil, fmt.Errorf("refresh access token: %w", err)
	}

	stored.ApplyOAuthToken(renewed)

	// Persist before returning, even on read-only calendar calls: dropping a
	// renewed access token forces a needless refresh on every subsequent call.
	if err := s.tokens.Save(ctx, stored); err != nil {
		return nil, fmt.Errorf("save refreshed token: %w", err)
	}
	return stored, nil
}

// SaveExchangedToken persists a first-consent token record for the given
// email, carrying over any previously selected calendar.
func (s *GoogleAuthService) SaveExchangedToken(ctx context.Context, email string, token *oauth2.Token) (*models.StylistToken, error) {
	record, err := s.tokens.Get(ctx, email)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &models.StylistToken{Email: email}
	}

	record.ApplyOAuthToken(token)
	if scope, ok := token.Extra("scope").(string); ok && scope != "" {
		record.Scope = scope
	}

	if err := s.tokens.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("save stylist token: %w", err)
	}
	return record, nil
}
