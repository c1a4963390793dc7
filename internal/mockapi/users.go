package mockapi

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/appybrain-client/internal/utils"
)

var (
	errUserExists       = errors.New("user already exists")
	errWrongCredentials = errors.New("wrong email or password")
	errEmptyCredentials = errors.New("email and password are required")
)

type user struct {
	id            string
	email         string
	name          string
	passwordHash  []byte
	resetPassword bool
}

type userStore struct {
	mu    sync.RWMutex
	users map[string]user
	ids   *utils.UUIDGenerator
}

func newUserStore() *userStore {
	return &userStore{users: make(map[string]user), ids: utils.NewUUIDGenerator()}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userStore) add(email, password, name string, resetPassword bool) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return errEmptyCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[email]; ok {
		return errUserExists
	}
	s.users[email] = user{
		id:            s.ids.Generate(),
		email:         email,
		name:          name,
		passwordHash:  hash,
		resetPassword: resetPassword,
	}
	return nil
}

func (s *userStore) authenticate(email, password string) (user, error) {
	s.mu.RLock()
	u, ok := s.users[normalizeEmail(email)]
	s.mu.RUnlock()

	if !ok {
		return user{}, errWrongCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return user{}, errWrongCredentials
	}
	return u, nil
}

func (s *userStore) get(email string) (user, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[normalizeEmail(email)]
	return u, ok
}
