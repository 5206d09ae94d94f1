package services

import (
	"errors"
	"fmt"
	"time"

	"MailCheck/config"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAdminDisabled = errors.New("admin API key is not configured")
	ErrInvalidAPIKey = errors.New("invalid API key")
	ErrInvalidToken  = errors.New("invalid or expired token")
)

// AdminService authenticates operators for the admin endpoints. The
// configured API key is bcrypt-hashed at startup and only the hash is kept;
// a successful login yields a short-lived HS256 token.
type AdminService struct {
	keyHash   []byte
	jwtSecret string
	jwtExpiry time.Duration
}

func NewAdminService(cfg *config.Config) (*AdminService, error) {
	s := &AdminService{
		jwtSecret: cfg.JWTSecret,
		jwtExpiry: cfg.JWTExpiry,
	}

	if cfg.AdminAPIKey != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminAPIKey), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash admin API key: %w", err)
		}
		s.keyHash = hash
	}

	return s, nil
}

// Login exchanges the admin API key for a signed token.
func (s *AdminService) Login(apiKey string) (string, error) {
	if len(s.keyHash) == 0 {
		return "", ErrAdminDisabled
	}
	if bcrypt.CompareHashAndPassword(s.keyHash, []byte(apiKey)) != nil {
		return "", ErrInvalidAPIKey
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = "admin"
	claims["exp"] = time.Now().Add(s.jwtExpiry).Unix()
	claims["iat"] = time.Now().Unix()

	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks a bearer token issued by Login.
func (s *AdminService) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return ErrInvalidToken
	}
	return nil
}

func (s *AdminService) JWTExpiry() time.Duration {
	return s.jwtExpiry
}
