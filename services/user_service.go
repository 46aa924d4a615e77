package services

import (
	"errors"

	"github.com/assetdeploy/dto"
	"github.com/assetdeploy/models"
	"github.com/assetdeploy/repositories"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles admin-side user management
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService() *UserService {
	return &UserService{
		userRepo: repositories.NewUserRepository(),
	}
}

// ListUsers retrieves all users with passwords stripped
func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// GetUser retrieves a single user with the password stripped
func (s *UserService) GetUser(id string) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

// UpdateUser applies a partial update to a user account
func (s *UserService) UpdateUser(id string, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return models.User{}, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Username != nil {
		user.Username = req.Username
	}
	if req.Name != nil {
		user.Name = req.Name
	}
	if req.Role != nil {
		role := models.Role(*req.Role)
		if role != models.RoleUser && role != models.RoleAdmin {
			return models.User{}, errors.New("invalid role")
		}
		user.Role = role
	}

	if err := s.userRepo.Update(user); err != nil {
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// DeleteUser removes a user account
func (s *UserService) DeleteUser(id string) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}

// ResetPassword sets a new password for a user (admin only)
func (s *UserService) ResetPassword(id string, password string) error {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.Password = string(hashed)
	return s.userRepo.Update(user)
}
