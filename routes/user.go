package routes

import (
	"strings"

	"campsite-market-server/models"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/kataras/iris/v12"
	"golang.org/x/crypto/bcrypt"
)

func Register(ctx iris.Context) {
	var userInput RegisterUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var newUser models.User
	userExists, userExistsErr := getAndHandleUserExists(&newUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if userExists {
		utils.CreateEmailAlreadyRegistered(ctx)
		return
	}

	hashedPassword, hashErr := hashAndSaltPassword(userInput.Password)
	if hashErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	email := strings.ToLower(userInput.Email)
	username := userInput.Username
	if username == "" {
		// Default to the local part of the email address
		username = strings.SplitN(email, "@", 2)[0]
	}

	newUser = models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		IsActive: true,
		IsHost:   userInput.IsHost,
	}

	if err := storage.DB.Create(&newUser).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	returnUser(newUser, ctx)
}

func Login(ctx iris.Context) {
	var userInput LoginUserInput
	err := ctx.ReadJSON(&userInput)
	if err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var existingUser models.User
	errorMsg := "Invalid email or password."
	userExists, userExistsErr := getAndHandleUserExists(&existingUser, userInput.Email)
	if userExistsErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	if !userExists {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	if !existingUser.IsActive {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", "Account is deactivated.", ctx)
		return
	}

	passwordErr := bcrypt.CompareHashAndPassword([]byte(existingUser.Password), []byte(userInput.Password))
	if passwordErr != nil {
		utils.CreateError(iris.StatusUnauthorized, "Credentials Error", errorMsg, ctx)
		return
	}

	returnUser(existingUser, ctx)
}

// Logout revokes the refresh token held in the HttpOnly cookie and clears it.
func Logout(ctx iris.Context) {
	if refreshToken := ctx.GetCookie(utils.RefreshTokenCookie); refreshToken != "" {
		utils.RevokeRefreshToken(refreshToken)
	}
	utils.ClearRefreshTokenCookie(ctx)
	ctx.JSON(iris.Map{"message": "Logged out."})
}

func GetMyInfo(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var user models.User
	result := storage.DB.Find(&user, userID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	ctx.JSON(user)
}

func UpdateMyInfo(ctx iris.Context) {
	userID := ctx.Values().Get("userID").(uint)

	var input UpdateUserInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	var user models.User
	result := storage.DB.Find(&user, userID)
	if result.Error != nil {
		utils.CreateInternalServerError(ctx)
		return
	}
	if result.RowsAffected == 0 {
		utils.CreateNotFound(ctx)
		return
	}

	if input.Username != "" {
		user.Username = input.Username
	}
	if input.PhoneNumber != "" {
		user.PhoneNumber = input.PhoneNumber
	}
	if input.Gender != "" {
		user.Gender = input.Gender
	}
	if input.Language != "" {
		user.Language = input.Language
	}
	if input.Currency != "" {
		user.Currency = input.Currency
	}
	if input.AvatarURL != "" {
		user.AvatarURL = input.AvatarURL
	}
	if input.IsHost != nil {
		user.IsHost = *input.IsHost
	}

	if err := storage.DB.Save(&user).Error; err != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	ctx.JSON(user)
}

func getAndHandleUserExists(user *models.User, email string) (exists bool, err error) {
	userExistsQuery := storage.DB.Where("email = ?", strings.ToLower(email)).Limit(1).Find(&user)

	if userExistsQuery.Error != nil {
		return false, userExistsQuery.Error
	}

	return userExistsQuery.RowsAffected > 0, nil
}

func hashAndSaltPassword(password string) (hashedPassword string, err error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// returnUser issues a token pair, stores the refresh token on the cookie and
// responds with the profile plus the access token.
func returnUser(user models.User, ctx iris.Context) {
	tokenPair, tokenErr := utils.CreateTokenPair(user.ID)
	if tokenErr != nil {
		utils.CreateInternalServerError(ctx)
		return
	}

	utils.SetRefreshTokenCookie(ctx, string(tokenPair.RefreshToken))

	ctx.JSON(iris.Map{
		"ID":          user.ID,
		"username":    user.Username,
		"email":       user.Email,
		"isHost":      user.IsHost,
		"isStaff":     user.IsStaff,
		"accessToken": string(tokenPair.AccessToken),
	})
}

type RegisterUserInput struct {
	Username string `json:"username" validate:"max=150"`
	Email    string `json:"email" validate:"required,max=256,email"`
	Password string `json:"password" validate:"required,min=8,max=256"`
	IsHost   bool   `json:"isHost"`
}

type LoginUserInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserInput struct {
	Username    string `json:"username" validate:"max=150"`
	PhoneNumber string `json:"phoneNumber" validate:"max=15"`
	Gender      string `json:"gender" validate:"omitempty,oneof=male female"`
	Language    string `json:"language" validate:"omitempty,oneof=kr en"`
	Currency    string `json:"currency" validate:"omitempty,oneof=won usd"`
	AvatarURL   string `json:"avatarURL" validate:"omitempty,url"`
	IsHost      *bool  `json:"isHost"`
}
