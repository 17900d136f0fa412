package models

import (
	"time"

	"golang.org/x/oauth2"
)

// StylistToken holds one Google OAuth token record per stylist, keyed by the
// verified email address taken from the ID token, never from caller input.
// Records are created on first code exchange, updated in place on every
// refresh, and never deleted by the system.
type StylistToken struct {
	Email string `gorm:"primaryKey" json:"email"`

	AccessToken  string `gorm:"not null" json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	Scope        string `json:"scope"`
	TokenType    string `json:"token_type"`

	// ExpiryDate is milliseconds since epoch, as Google reports it.
	ExpiryDate int64 `json:"expiry_date"`

	// Destination calendar chosen by the stylist; carried over across
	// re-authentication.
	SelectedCalendarID   string `json:"selectedCalendarId,omitempty"`
	SelectedCalendarName string `json:"selectedCalendarName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (t *StylistToken) ExpiresAt() time.Time {
	return time.UnixMilli(t.ExpiryDate)
}

// Expired reports whether the access token is past (or within margin of) its
// expiry. A record without a known expiry counts as expired so the next use
// forces a refresh.
func (t *StylistToken) Expired(margin time.Duration) bool {
	if t.ExpiryDate == 0 {
		return true
	}
	return time.Now().Add(margin).After(t.ExpiresAt())
}

// OAuthToken converts the stored record into an oauth2.Token for API clients.
func (t *StylistToken) OAuthToken() *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken:  t.AccessToken,
		RefreshToken: t.RefreshToken,
		TokenType:    t.TokenType,
	}
	if t.ExpiryDate != 0 {
		tok.Expiry = t.ExpiresAt()
	}
	return tok
}

// ApplyOAuthToken copies renewed credentials into the record. Google omits the
// refresh token on silent refreshes, so an existing one is kept unless reissued.
func (t *StylistToken) ApplyOAuthToken(tok *oauth2.Token) {
	t.AccessToken = tok.AccessToken
	if tok.RefreshToken != "" {
		t.RefreshToken = tok.RefreshToken
	}
	if tok.TokenType != "" {
		t.TokenType = tok.TokenType
	}
	if !tok.Expiry.IsZero() {
		t.ExpiryDate = tok.Expiry.UnixMilli()
	}
}
