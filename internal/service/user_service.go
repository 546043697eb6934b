// Package service implements business rules on top of the repository layer.
// The authenticated identity is always passed in explicitly; services keep no
// per-request state.
package service

import (
	"context"

	"synthlab/internal/models"
	"synthlab/internal/repository"
	"synthlab/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// UserService handles account creation, authentication and self-service
// profile management.
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterInput carries the fields accepted at signup.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
}

// UpdateProfileInput carries the mutable profile fields. Nil means "leave
// unchanged"; only the owner's own profile is ever reachable.
type UpdateProfileInput struct {
	Name     *string
	Password *string
}

// Register creates a new user. The email is normalized to lowercase before
// validation and storage, and the password is stored as a bcrypt hash only.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	email := validation.NormalizeEmail(in.Email)
	if err := validation.ValidateEmail(email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateName(in.Name); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Email:    email,
		Name:     in.Name,
		Password: string(hashed),
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterSuperuser creates a user with staff and superuser flags set.
// Used by provisioning tooling, not exposed over HTTP.
func (s *UserService) RegisterSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.Register(ctx, RegisterInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the credentials and returns the matching user.
// Bad or missing credentials surface as a validation error so the token
// endpoint answers 400, matching the account-creation endpoint's contract.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = validation.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, models.NewValidationError("Email and password are required")
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, models.NewValidationError("Unable to authenticate with provided credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewValidationError("Unable to authenticate with provided credentials")
	}
	return user, nil
}

// GetProfile returns the caller's own profile.
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile mutates only the supplied fields of the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		if err := validation.ValidateName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = *in.Name
	}
	if in.Password != nil {
		if err := validation.ValidatePassword(*in.Password); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
