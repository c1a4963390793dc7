package models

import "time"

// Session is the authenticated state held by the API client: a bearer access
// token, the refresh token used to renew it and the access token expiry.
//
// AccessToken and RefreshToken are always set together or both empty.
// ExpiresAt is an absolute epoch timestamp in milliseconds; zero means the
// expiry is unknown.
type Session struct {
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresAt    int64  `json:"expiresAt,omitempty"`
}

// IsEmpty reports whether the session holds neither token.
func (s Session) IsEmpty() bool {
	return s.AccessToken == "" && s.RefreshToken == ""
}

// HasExpiry reports whether an expiry is recorded for the access token.
func (s Session) HasExpiry() bool {
	return s.ExpiresAt != 0
}

// ExpiryTime returns the recorded expiry as a time.Time, or the zero time
// when no expiry is recorded.
func (s Session) ExpiryTime() time.Time {
	if !s.HasExpiry() {
		return time.Time{}
	}
	return time.UnixMilli(s.ExpiresAt)
}

// IsFresh reports whether an access token is held and it has not expired at
// now. A session without a recorded expiry is fresh as long as it holds a
// token. This is a local check only.
func (s Session) IsFresh(now time.Time) bool {
	if s.AccessToken == "" {
		return false
	}
	if !s.HasExpiry() {
		return true
	}
	return now.UnixMilli() < s.ExpiresAt
}
