package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSession_IsEmpty(t *testing.T) {
	assert.True(t, Session{}.IsEmpty())
	assert.True(t, Session{ExpiresAt: 1}.IsEmpty())
	assert.False(t, Session{AccessToken: "A", RefreshToken: "R"}.IsEmpty())
}

func TestSession_ExpiryTime(t *testing.T) {
	assert.True(t, Session{}.ExpiryTime().IsZero())
	assert.False(t, Session{}.HasExpiry())

	s := Session{ExpiresAt: 1700000000000}
	assert.True(t, s.HasExpiry())
	assert.Equal(t, int64(1700000000), s.ExpiryTime().Unix())
}

func TestSession_IsFresh(t *testing.T) {
	now := time.UnixMilli(1_000_000)

	tests := []struct {
		name    string
		session Session
		want    bool
	}{
		{"empty", Session{}, false},
		{"refresh only", Session{RefreshToken: "R", ExpiresAt: 2_000_000}, false},
		{"no expiry", Session{AccessToken: "A"}, true},
		{"future expiry", Session{AccessToken: "A", ExpiresAt: 1_000_001}, true},
		{"expires now", Session{AccessToken: "A", ExpiresAt: 1_000_000}, false},
		{"past expiry", Session{AccessToken: "A", ExpiresAt: 999_999}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.IsFresh(now))
		})
	}
}
