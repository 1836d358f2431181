package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/barberia-elite/booking-api/internal/config"
)

// The shop has a single admin identity taken from configuration, not a user
// table. The rest of the system only depends on Verifier, so swapping this
// for a real identity provider is a wiring change.

const (
	tokenIssuer   = "barberia-elite-api"
	tokenAudience = "barberia-elite-app"
	tokenTTL      = 8 * time.Hour
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Claims struct {
	Username string
}

type Verifier interface {
	VerifyAdmin(token string) (*Claims, error)
}

type Service struct {
	secret       []byte
	username     string
	passwordHash []byte
}

func NewService(cfg *config.Config) (*Service, error) {
	// The password arrives as plaintext from the environment; it is hashed
	// once at load so comparisons never touch the raw value again.
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		secret:       []byte(cfg.JWTSecret),
		username:     cfg.AdminUsername,
		passwordHash: hash,
	}, nil
}

// Authenticate checks the admin credential pair and issues a signed token.
func (s *Service) Authenticate(username, password string) (string, error) {
	if username != s.username {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  s.username,
		"type": "admin",
		"iss":  tokenIssuer,
		"aud":  tokenAudience,
		"iat":  now.Unix(),
		"exp":  now.Add(tokenTTL).Unix(),
	})

	return token.SignedString(s.secret)
}

func (s *Service) VerifyAdmin(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(
		tokenString,
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return s.secret, nil
		},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(tokenAudience),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if kind, _ := claims["type"].(string); kind != "admin" {
		return nil, ErrInvalidCredentials
	}

	username, _ := claims["sub"].(string)
	return &Claims{Username: username}, nil
}

var _ Verifier = (*Service)(nil)
