package service

import (
	"errors"
	"time"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid secret")
	ErrSecretRequired     = errors.New("secret is required")
)

// AuthService issues admin tokens in exchange for the admin secret.
type AuthService struct {
	secretHash string
	jwtSecret  string
	jwtExpiry  time.Duration
}

// NewAuthService creates a new AuthService. secretHash is the Argon2id PHC hash of the admin secret.
func NewAuthService(secretHash, jwtSecret string, expiry time.Duration) *AuthService {
	return &AuthService{
		secretHash: secretHash,
		jwtSecret:  jwtSecret,
		jwtExpiry:  expiry,
	}
}

// IssueToken verifies the admin secret and returns a signed admin token.
func (s *AuthService) IssueToken(req model.TokenRequest) (model.TokenResponse, error) {
	if req.Secret == "" {
		return model.TokenResponse{}, ErrSecretRequired
	}

	match, err := crypto.VerifySecret(req.Secret, s.secretHash)
	if err != nil {
		return model.TokenResponse{}, err
	}
	if !match {
		return model.TokenResponse{}, ErrInvalidCredentials
	}

	token, expiresAt, err := crypto.IssueAdminToken(s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.TokenResponse{}, err
	}

	return model.TokenResponse{Token: token, ExpiresAt: expiresAt.UTC()}, nil
}
