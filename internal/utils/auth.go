package utils

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/repos"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

var validRoles = map[string]bool{
	types.RoleFarmer:      true,
	types.RoleDistributor: true,
	types.RoleRetailer:    true,
	types.RoleConsumer:    true,
}

func NormalizeUserFields(user *types.User) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.Name = strings.TrimSpace(user.Name)
	user.Role = strings.ToLower(strings.TrimSpace(user.Role))
}

func ValidateRegistration(ctx context.Context, userRepo repos.UserRepo, user *types.User) error {
	if user == nil {
		return apperr.Validation("no user given, cannot proceed with registration")
	}
	if user.Email == "" {
		return apperr.Validation("an email is required to register")
	}
	if user.Password == "" {
		return apperr.Validation("a password is required to register")
	}
	if user.Name == "" {
		return apperr.Validation("a name is required to register")
	}
	if !validRoles[user.Role] {
		return apperr.Validation("role must be one of farmer, distributor, retailer, consumer")
	}
	exists, err := userRepo.EmailExists(ctx, nil, user.Email)
	if err != nil {
		return apperr.Persistence("check user email", err)
	}
	if exists {
		return apperr.Validation("email is already in use")
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if email == "" {
		return apperr.Validation("email is required to login")
	}
	if password == "" {
		return apperr.Validation("password is required to login")
	}
	return nil
}

func HashPassword(user *types.User) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Validation("failed to hash password")
	}
	user.Password = string(hashed)
	return nil
}
