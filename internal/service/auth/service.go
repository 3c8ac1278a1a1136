package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/mediblues/directory-api/internal/config"
	"github.com/mediblues/directory-api/internal/model"
	apperrors "github.com/mediblues/directory-api/pkg/errors"
)

const adminRole = "admin"

type AuthServicer interface {
	Login(req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(header string) (*model.AdminClaims, error)
}

type Service struct {
	jwtCfg   config.JWTConfig
	adminCfg config.AdminConfig
	logger   zerolog.Logger
}

func NewService(jwtCfg config.JWTConfig, adminCfg config.AdminConfig, logger zerolog.Logger) *Service {
	return &Service{
		jwtCfg:   jwtCfg,
		adminCfg: adminCfg,
		logger:   logger,
	}
}

// Login checks the credentials against the configured admin identity and
// issues a signed token. The email comparison is case-insensitive. The
// configured password may be plain or a bcrypt hash; a "$2" prefix selects
// the hash comparison.
func (s *Service) Login(req *model.LoginRequest) (*model.LoginResponse, error) {
	if !strings.EqualFold(req.Email, s.adminCfg.Email) || !s.passwordMatches(req.Password) {
		s.logger.Warn().Str("email", req.Email).Msg("failed login attempt")
		return nil, apperrors.NewUnauthorized("invalid email or password", nil)
	}

	now := time.Now()
	claims := model.AdminClaims{
		Email: s.adminCfg.Email,
		Role:  adminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.adminCfg.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwtCfg.ExpiryHours) * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.LoginResponse{
		Token: signed,
		Admin: model.AdminInfo{
			Email: s.adminCfg.Email,
			Name:  s.adminCfg.Name,
			Role:  adminRole,
		},
	}, nil
}

// ValidateToken parses and verifies a token from an Authorization header
// value, with or without the "Bearer " prefix. All verification failures
// collapse into a single invalid-token error; the cause is logged only.
func (s *Service) ValidateToken(header string) (*model.AdminClaims, error) {
	raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if raw == "" {
		return nil, apperrors.NewMissingToken()
	}

	claims := &model.AdminClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(s.jwtCfg.Secret), nil
	})
	if err != nil || !token.Valid {
		s.logger.Debug().Err(err).Msg("token validation failed")
		return nil, apperrors.NewInvalidToken(err)
	}
	return claims, nil
}

func (s *Service) passwordMatches(password string) bool {
	if strings.HasPrefix(s.adminCfg.Password, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(s.adminCfg.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.adminCfg.Password), []byte(password)) == 1
}
