package user

import (
	"context"
	"fmt"

	"github.com/andresaoe/mi-jornada-calculada/internal/domain/user"
)

type userService struct {
	userRepo user.Repository
}

func NewUserService(userRepo user.Repository) user.Service {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (user.ProfileResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("get user: %w", err)
	}
	return toProfileResponse(u), nil
}

// UpdateProfile replaces the editable profile fields. Changing the base
// salary reprices every month on the next read since calculations are
// always derived from the current salary.
func (s *userService) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("get user: %w", err)
	}

	u.FullName = req.FullName
	u.BaseSalary = req.BaseSalary

	updated, err := s.userRepo.UpdateProfile(ctx, u)
	if err != nil {
		return user.ProfileResponse{}, fmt.Errorf("update profile: %w", err)
	}
	return toProfileResponse(updated), nil
}

func toProfileResponse(u user.User) user.ProfileResponse {
	return user.ProfileResponse{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		BaseSalary: u.BaseSalary,
	}
}
