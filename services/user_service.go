package services

import (
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	FullName       string  `json:"full_name"`
	MonthlyLimit   float64 `json:"monthly_limit"`
	CurrentBalance float64 `json:"current_balance"`
	Preferences    string  `json:"preferences"`
	ProfilePicture string  `json:"profile_picture"` // base64 data URL
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return nil, storeErr(err)
	}

	return map[string]interface{}{
		"id":              user.ID,
		"email":           user.Email,
		"full_name":       user.FullName,
		"monthly_limit":   user.MonthlyLimit,
		"current_balance": user.CurrentBalance,
		"coins":           user.Coins,
		"level":           user.Level(),
		"streak":          user.Streak,
		"preferences":     user.Preferences,
		"profile_picture": user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user).Error; err != nil {
		return storeErr(err)
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.MonthlyLimit > 0 {
		user.MonthlyLimit = input.MonthlyLimit
	}
	if input.CurrentBalance != 0 {
		user.CurrentBalance = input.CurrentBalance
	}
	if input.Preferences != "" {
		user.Preferences = input.Preferences
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, fmt.Sprintf("user-%d", userID))
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}

func DeleteUser(userID uint) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return storeErr(err)
	}
	user.Disabled = true
	return config.DB.Save(&user).Error
}
