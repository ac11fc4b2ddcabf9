package utils

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"time"

	"campsite-market-server/models"
	"campsite-market-server/storage"

	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

var bgContext = context.Background()

const RefreshTokenCookie = "refresh_token"

const refreshTokenLifetime = 365 * 24 * time.Hour

func CreateTokenPair(id uint) (*jwt.TokenPair, error) {
	accessTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("ACCESS_TOKEN_SECRET"), 24*time.Hour)
	refreshTokenSigner := jwt.NewSigner(jwt.HS256, os.Getenv("REFRESH_TOKEN_SECRET"), refreshTokenLifetime)

	userID := strconv.FormatUint(uint64(id), 10)

	refreshClaims := jwt.Claims{Subject: userID}

	// Load the staff flag for embedding into the access token
	var u models.User
	isStaff := false
	if err := storage.DB.Select("id, is_staff").First(&u, id).Error; err == nil {
		isStaff = u.IsStaff
	}

	accessTokenClaims := AccessToken{
		ID:      id,
		IsStaff: isStaff,
	}

	accessToken, err := accessTokenSigner.Sign(accessTokenClaims)
	if err != nil {
		return nil, err
	}

	refreshToken, err := refreshTokenSigner.Sign(refreshClaims)
	if err != nil {
		return nil, err
	}

	var tokenPair jwt.TokenPair
	tokenPair.AccessToken = accessToken
	tokenPair.RefreshToken = refreshToken

	storage.Redis.Set(bgContext, string(refreshToken), "true", refreshTokenLifetime+5*time.Minute)

	return &tokenPair, nil
}

// SetRefreshTokenCookie stores the refresh token in an HttpOnly cookie so
// browser clients never expose it to scripts.
func SetRefreshTokenCookie(ctx iris.Context, refreshToken string) {
	ctx.SetCookieKV(RefreshTokenCookie, refreshToken,
		iris.CookieHTTPOnly(true),
		iris.CookieSameSite(http.SameSiteLaxMode),
		iris.CookiePath("/"),
		iris.CookieExpires(refreshTokenLifetime),
	)
}

func ClearRefreshTokenCookie(ctx iris.Context) {
	ctx.RemoveCookie(RefreshTokenCookie, iris.CookiePath("/"))
}

// RevokeRefreshToken drops the token from the Redis allowlist.
func RevokeRefreshToken(refreshToken string) {
	if refreshToken == "" {
		return
	}
	storage.Redis.Del(bgContext, refreshToken)
}

// RefreshToken rotates a verified refresh token: the old one is revoked and a
// fresh pair is issued, with the new refresh token re-set on the cookie.
func RefreshToken(ctx iris.Context) {
	token := jwt.GetVerifiedToken(ctx)
	tokenStr := string(token.Token)
	validToken, tokenErr := storage.Redis.Get(bgContext, tokenStr).Result()

	if tokenErr != nil {
		CreateNotFound(ctx)
		return
	}

	if validToken != "true" {
		ctx.StatusCode(iris.StatusForbidden)
		return
	}

	storage.Redis.Del(bgContext, tokenStr)
	userID, parseErr := strconv.ParseUint(token.StandardClaims.Subject, 10, 32)
	if parseErr != nil {
		CreateInternalServerError(ctx)
		return
	}

	tokenPair, tokenPairErr := CreateTokenPair(uint(userID))
	if tokenPairErr != nil {
		CreateInternalServerError(ctx)
		return
	}

	SetRefreshTokenCookie(ctx, string(tokenPair.RefreshToken))
	ctx.JSON(iris.Map{
		"accessToken": string(tokenPair.AccessToken),
	})
}

type AccessToken struct {
	ID      uint `json:"ID"`
	IsStaff bool `json:"isStaff"`
}

type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken"`
}
