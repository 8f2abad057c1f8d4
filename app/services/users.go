package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/josys/shop/app/models"
	"github.com/josys/shop/app/repositories"
	"github.com/josys/shop/app/requests"
	"github.com/josys/shop/pkg/hash"
)

type UserService = CRUD[models.User, requests.CreateUser, requests.UpdateUser]

func NewUserService(db *gorm.DB) *UserService {
	return NewCRUD(repositories.New[models.User](db), buildUser, applyUser)
}

func buildUser(in requests.CreateUser) (models.User, error) {
	passwordHash, err := hashPassword(*in.Password)
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		UserName:       *in.UserName,
		Email:          *in.Email,
		PasswordHash:   passwordHash,
		Role:           *in.Role,
		IsActive:       in.IsActive,
		ConfirmedAdmin: *in.ConfirmedAdmin,
	}, nil
}

func applyUser(u *models.User, in requests.UpdateUser) error {
	if err := firstErr(
		set("user_name", in.UserName, &u.UserName),
		set("email", in.Email, &u.Email),
		set("role", in.Role, &u.Role),
		setPtr("is_active", in.IsActive, &u.IsActive),
		set("confirmed_admin", in.ConfirmedAdmin, &u.ConfirmedAdmin),
	); err != nil {
		return err
	}

	if in.Password.Set {
		if in.Password.Null {
			return NotNull("password")
		}
		passwordHash, err := hashPassword(in.Password.Value)
		if err != nil {
			return err
		}
		u.PasswordHash = passwordHash
	}
	return nil
}

func hashPassword(plain string) (string, error) {
	h, err := hash.Password(plain)
	if errors.Is(err, hash.ErrTooLong) {
		return "", &ValidationError{Field: "password", Message: "password must be at most 72 bytes"}
	}
	return h, err
}
