// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/smartfinder/smartfinder/internal/config"
	"github.com/smartfinder/smartfinder/internal/logger"
	"github.com/smartfinder/smartfinder/internal/store"
	"github.com/smartfinder/smartfinder/internal/utils"
	"github.com/smartfinder/smartfinder/models"
)

// authService implements [AuthService] on top of the user repository and the
// in-memory session registry.
type authService struct {
	users    store.UserRepository
	sessions *SessionRegistry
	hasher   *PasswordHasher
	uuid     *utils.UUIDGenerator
	cfg      config.App
	logger   *logger.Logger
}

// NewAuthService constructs an [AuthService].
func NewAuthService(users store.UserRepository, sessions *SessionRegistry, hasher *PasswordHasher, cfg config.App, log *logger.Logger) AuthService {
	log.Debug().Msg("creating auth service")
	return &authService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		uuid:     utils.NewUUIDGenerator(),
		cfg:      cfg,
		logger:   log,
	}
}

// Login checks the credentials against the stored bcrypt digest and opens a
// session on success.
//
// Error handling:
//   - blank login or senha → [ErrEmptyFields].
//   - unknown login → [store.ErrUserNotFound].
//   - digest mismatch → [ErrWrongPassword].
func (s *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if request.Login == "" || request.Senha == "" {
		return models.User{}, models.Token{}, ErrEmptyFields
	}

	user, err := s.users.FindUserByLogin(ctx, request.Login)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if !s.hasher.Verify(request.Senha, user.Senha) {
		log.Info().Str("login", request.Login).Msg("login rejected: password mismatch")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	sessionID := s.uuid.Generate()
	token, err := utils.GenerateJWTToken(s.cfg.TokenIssuer, user.ID, sessionID, s.cfg.TokenDuration, s.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("error: token generation failed")
		return models.User{}, models.Token{}, fmt.Errorf("error generating session token: %w", err)
	}

	s.sessions.Add(sessionID, user.ID)
	log.Info().Int64("userID", user.ID).Msg("session opened")

	return user, token, nil
}

// Logoff closes the session carried by the token string. Tokens that fail
// validation are ignored: the caller holds no open session either way.
func (s *authService) Logoff(ctx context.Context, tokenString string) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		log.Debug().Msg("logoff with no valid session token")
		return
	}

	s.sessions.Revoke(token.SessionID)
	log.Info().Int64("userID", token.UserID).Msg("session closed")
}

// Authenticate validates the token string and checks the session registry.
// Every failure mode collapses into [ErrNoActiveSession]; callers do not
// learn whether the token was malformed, expired, or revoked.
func (s *authService) Authenticate(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.cfg.TokenSignKey, s.cfg.TokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrNoActiveSession, err)
	}

	userID, ok := s.sessions.Resolve(token.SessionID)
	if !ok || userID != token.UserID {
		return models.Token{}, ErrNoActiveSession
	}

	return token, nil
}
