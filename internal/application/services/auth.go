package services

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"tourist-registry-api/internal/application/ports"
	domain "tourist-registry-api/internal/domain/user"
	"tourist-registry-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	userRepository domain.Repository
	jwtService     *jwt.Service
	tokenTTL       time.Duration
}

func NewAuthService(
	userRepository domain.Repository,
	jwtService *jwt.Service,
	tokenTTL time.Duration,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		jwtService:     jwtService,
		tokenTTL:       tokenTTL,
	}
}

// Login never tells the caller whether the email or the password was the
// wrong half of the pair.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil || u.PasswordHash == nil {
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(u.Email, string(u.Role), as.tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
