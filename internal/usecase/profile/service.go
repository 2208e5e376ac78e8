package profile

import (
	"strings"

	"fuel-dispatch-monitor/internal/logger"
	"fuel-dispatch-monitor/internal/repository/memory"
	appErrors "fuel-dispatch-monitor/pkg/errors"
	"fuel-dispatch-monitor/pkg/utils"

	"go.uber.org/zap"
)

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=2,max=120"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,max=32"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type ProfileResponse struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// Service manages the single operator account. There is no login flow;
// the account exists so the settings page has something to edit.
type Service struct {
	store *memory.Store
}

func NewService(store *memory.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get() *ProfileResponse {
	return toResponse(s.store.GetProfile())
}

func (s *Service) Update(req *UpdateProfileRequest) (*ProfileResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	p := s.store.GetProfile()
	p.FullName = utils.SanitizeString(req.FullName)
	p.Email = strings.ToLower(strings.TrimSpace(req.Email))
	p.Phone = utils.SanitizePhone(req.Phone)
	s.store.UpdateProfile(p)

	logger.Info("Profile updated",
		zap.String("email", p.Email),
		zap.String("event", "profile_updated"),
	)

	return toResponse(p), nil
}

func (s *Service) ChangePassword(req *ChangePasswordRequest) error {
	if err := utils.ValidateStruct(req); err != nil {
		return appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	if req.NewPassword != req.ConfirmPassword {
		return appErrors.NewAppError("PASSWORD_MISMATCH", "Passwords do not match", appErrors.ErrPasswordMismatch)
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return appErrors.NewAppError("WEAK_PASSWORD", err.Error(), nil)
	}

	p := s.store.GetProfile()
	if !utils.CheckPassword(p.PasswordHash, req.CurrentPassword) {
		return appErrors.NewAppError("INVALID_PASSWORD", "Current password is incorrect", nil)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}
	p.PasswordHash = hash
	s.store.UpdateProfile(p)

	logger.Info("Password changed",
		zap.String("email", p.Email),
		zap.String("event", "password_changed"),
	)

	return nil
}

func toResponse(p memory.Profile) *ProfileResponse {
	return &ProfileResponse{
		FullName: p.FullName,
		Email:    p.Email,
		Phone:    p.Phone,
		Role:     p.Role,
	}
}
