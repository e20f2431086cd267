package services

import (
	"context"

	"tourist-registry-api/internal/application/ports"
	domain "tourist-registry-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
}

func NewUserService(userRepository domain.Repository) ports.UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindByUUID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByUUID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}
