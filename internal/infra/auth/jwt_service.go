// Package auth provides concrete implementations for token and signature
// verification domain services.
package auth

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tracker/config"
	"tracker/internal/domain/service"
)

// ErrInvalidToken is the single outcome for every verification failure. The
// caller never learns whether the signature, algorithm, expiry or payload was
// at fault; the internal reason is only logged.
var ErrInvalidToken = errors.New("invalid track token")

// trackJobID identifies the issuing context embedded in every token.
const trackJobID = "job-123"

// jwtService is a concrete implementation of the TrackTokenService interface
// using the JWT standard, pinned to HS256.
type jwtService struct {
	secret []byte
	logger *slog.Logger
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, logger *slog.Logger) (service.TrackTokenService, error) {
	if cfg.Track.Secret == "" {
		return nil, errors.New("track token secret must be provided")
	}

	return &jwtService{secret: []byte(cfg.Track.Secret), logger: logger}, nil
}

// Issue creates a signed token binding a viewer to one candidate id.
func (s *jwtService) Issue(candidateID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"candidate_id": candidateID,
		"job_id":       trackJobID,
		"iat":          time.Now().Unix(),
		"exp":          time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(s.secret)
}

// Verify checks the token and returns the bound candidate id.
func (s *jwtService) Verify(tokenString string) (string, error) {
	// WithValidMethods rejects tokens signed with any other algorithm, so a
	// token re-signed with "none" or RS256 never reaches the claim checks.
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		// The reason stays server-side; the caller only ever sees the one
		// opaque error.
		s.logger.Warn("track token rejected", slog.Any("reason", err))

		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		s.logger.Warn("track token rejected", slog.String("reason", "unexpected claims type"))

		return "", ErrInvalidToken
	}

	candidateID, ok := claims["candidate_id"].(string)
	if !ok || candidateID == "" {
		s.logger.Warn("track token rejected", slog.String("reason", "missing candidate_id claim"))

		return "", ErrInvalidToken
	}

	return candidateID, nil
}
