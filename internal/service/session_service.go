package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/utils"
	"github.com/indiabills/console/pkg/indiabills"
)

// SessionService owns the upstream session: login, logout, persistence
// in the local store under the `session` key, and the bearer token the
// API client attaches to every call. It implements
// indiabills.TokenProvider.
type SessionService struct {
	api      *indiabills.Client
	local    *localstore.Store
	passHash string

	mu      sync.RWMutex
	current *models.Session
}

// NewSessionService constructs the service and restores any persisted
// session so a daemon restart does not force a re-login.
func NewSessionService(local *localstore.Store, passHash string) *SessionService {
	s := &SessionService{local: local, passHash: passHash}

	var sess models.Session
	ok, err := local.GetJSON(localstore.KeySession, &sess)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to restore persisted session")
	} else if ok {
		s.current = &sess
		log.Info().Int("user_id", sess.ID).Str("role", string(sess.Role)).Msg("Restored persisted session")
	}
	return s
}

// SetAPI wires the upstream client after construction. The client
// needs the service as its token provider, so the two are created in
// two steps.
func (s *SessionService) SetAPI(api *indiabills.Client) {
	s.api = api
}

// Token returns the current bearer token, or empty when logged out.
// Re-read on every request by the API client.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Current returns the active session.
func (s *SessionService) Current() (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, utils.ErrNoSession
	}
	sess := *s.current
	return &sess, nil
}

// Login authenticates against the upstream API and, when the console
// is passcode-protected, verifies the local passcode first. On success
// the session is persisted and a local console JWT is issued for the
// HTTP surface.
func (s *SessionService) Login(ctx context.Context, email, password, passcode string) (*models.Session, string, error) {
	if s.passHash != "" {
		if err := bcrypt.CompareHashAndPassword([]byte(s.passHash), []byte(passcode)); err != nil {
			log.Warn().Str("email", email).Msg("Console passcode rejected")
			return nil, "", errors.New("invalid console passcode")
		}
	}

	res := s.api.Login(ctx, email, password)
	if !res.IsOk() {
		log.Error().Int("status", res.Status()).Str("error", res.Message()).Msg("Upstream login failed")
		return nil, "", errors.New("invalid credentials")
	}
	sess := res.Data()

	if exp, err := utils.TokenExpiry(sess.Token); err == nil {
		log.Info().Time("expires_at", exp).Msg("Upstream token parsed")
		if exp.Before(time.Now()) {
			return nil, "", utils.ErrSessionExpired
		}
	}

	s.mu.Lock()
	s.current = &sess
	s.mu.Unlock()

	if err := s.local.SetJSON(localstore.KeySession, sess); err != nil {
		log.Warn().Err(err).Msg("Failed to persist session")
	}

	localToken, err := utils.GenerateJWT(sess.ID, sess.Name, string(sess.Role))
	if err != nil {
		return nil, "", err
	}

	log.Info().Int("user_id", sess.ID).Str("role", string(sess.Role)).Msg("Login successful")
	return &sess, localToken, nil
}

// Logout clears the session locally and best-effort invalidates it
// upstream.
func (s *SessionService) Logout(ctx context.Context) {
	if res := s.api.Logout(ctx); !res.IsOk() {
		log.Warn().Int("status", res.Status()).Msg("Upstream logout failed, clearing locally anyway")
	}

	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.local.Delete(localstore.KeySession); err != nil {
		log.Warn().Err(err).Msg("Failed to clear persisted session")
	}
	log.Info().Msg("Logged out")
}
