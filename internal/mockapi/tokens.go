package mockapi

import (
	"sync"

	"github.com/MKhiriev/appybrain-client/internal/utils"
)

// tokenStore tracks which issued tokens are still accepted.
type tokenStore struct {
	mu      sync.Mutex
	access  map[string]string // access token -> email
	refresh map[string]string // refresh token -> email
	ids     *utils.UUIDGenerator
}

func newTokenStore() *tokenStore {
	return &tokenStore{
		access:  make(map[string]string),
		refresh: make(map[string]string),
		ids:     utils.NewUUIDGenerator(),
	}
}

func (s *tokenStore) addAccess(token, email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access[token] = email
}

func (s *tokenStore) accessOwner(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.access[token]
	return email, ok
}

func (s *tokenStore) issueRefresh(email string) string {
	token := s.ids.Generate()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh[token] = email
	return token
}

func (s *tokenStore) refreshOwner(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.refresh[token]
	return email, ok
}

func (s *tokenStore) revokeAccess(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, owner := range s.access {
		if owner == email {
			delete(s.access, token)
		}
	}
}

func (s *tokenStore) revokeAll(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for token, owner := range s.access {
		if owner == email {
			delete(s.access, token)
		}
	}
	for token, owner := range s.refresh {
		if owner == email {
			delete(s.refresh, token)
		}
	}
}
