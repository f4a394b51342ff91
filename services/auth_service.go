package services

import (
	"errors"
	"fmt"
	"time"

	"backend/config"
	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

func RegisterUser(email, password, fullName string) error {
	if email == "" || password == "" {
		return ErrInvalidInput
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:          email,
		Password:       hashedPassword,
		FullName:       fullName,
		LastActivityAt: time.Now(),
	}

	if err := config.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email already registered", ErrInvalidInput)
		}
		return storeErr(err)
	}
	return nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return "", storeErr(err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", fmt.Errorf("%w: incorrect password", ErrInvalidInput)
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

// RequestPasswordReset issues a short-lived reset code and mails it.
// Always returns nil for unknown emails so the endpoint does not leak
// which addresses are registered.
func RequestPasswordReset(email string) error {
	var user models.User
	if err := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user).Error; err != nil {
		return nil
	}

	token := utils.GenerateRandomToken(8)
	exp := time.Now().Add(15 * time.Minute)
	user.ResetToken = token
	user.ResetTokenExp = &exp
	if err := config.DB.Save(&user).Error; err != nil {
		return storeErr(err)
	}

	return utils.SendResetEmail(user.Email, token)
}

func ResetPassword(email, token, newPassword string) error {
	if token == "" || len(newPassword) < 6 {
		return ErrInvalidInput
	}

	var user models.User
	err := config.DB.Where("email = ? AND reset_token = ?", email, token).First(&user).Error
	if err != nil {
		return fmt.Errorf("%w: invalid reset code", ErrInvalidInput)
	}
	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return fmt.Errorf("%w: reset code expired", ErrInvalidInput)
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = nil
	return config.DB.Save(&user).Error
}
