package main

import (
	"log"
	"os"

	"campsite-market-server/routes"
	"campsite-market-server/storage"
	"campsite-market-server/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kataras/iris/v12"
	"github.com/kataras/iris/v12/middleware/jwt"
)

func main() {
	// Only load .env in development
	if os.Getenv("RENDER") == "" {
		godotenv.Load()
	}

	// Initialize services
	storage.InitializeDB()
	storage.InitializeRedis()

	app := iris.New()
	app.Validator = validator.New()

	// CORS configuration
	app.AllowMethods(iris.MethodOptions)
	app.UseRouter(func(ctx iris.Context) {
		ctx.Header("Access-Control-Allow-Origin", ctx.GetHeader("Origin"))
		ctx.Header("Vary", "Origin")
		ctx.Header("Access-Control-Allow-Credentials", "true")
		ctx.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
		ctx.Header("Access-Control-Allow-Methods", "GET,POST,PATCH,PUT,DELETE,OPTIONS")
		if ctx.Method() == iris.MethodOptions {
			ctx.StatusCode(iris.StatusNoContent)
			return
		}
		ctx.Next()
	})

	app.Use(iris.Compression)

	// JWT verifiers
	accessTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("ACCESS_TOKEN_SECRET")))
	accessTokenVerifier.WithDefaultBlocklist()
	accessTokenVerifierMiddleware := accessTokenVerifier.Verify(func() interface{} {
		return new(utils.AccessToken)
	})

	refreshTokenVerifier := jwt.NewVerifier(jwt.HS256, []byte(os.Getenv("REFRESH_TOKEN_SECRET")))
	refreshTokenVerifier.WithDefaultBlocklist()
	refreshTokenVerifierMiddleware := refreshTokenVerifier.Verify(func() interface{} {
		return new(jwt.Claims)
	})

	// Refresh tokens arrive on the HttpOnly cookie; a JSON body field is
	// accepted as a fallback for non-browser clients.
	refreshTokenVerifier.Extractors = append(refreshTokenVerifier.Extractors, func(ctx iris.Context) string {
		if cookieToken := ctx.GetCookie(utils.RefreshTokenCookie); cookieToken != "" {
			return cookieToken
		}
		var tokenInput utils.RefreshTokenInput
		if err := ctx.ReadJSON(&tokenInput); err != nil {
			return ""
		}
		return tokenInput.RefreshToken
	})

	app.Get("/healthz/ready", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"status": "ok"})
	})

	api := app.Party("/api/v1")

	users := api.Party("/users")
	{
		users.Post("/register", routes.Register)
		users.Post("/login", routes.Login)
		users.Post("/refresh", refreshTokenVerifierMiddleware, utils.RefreshToken)
		users.Post("/logout", routes.Logout)
		users.Get("/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetMyInfo)
		users.Patch("/me", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateMyInfo)
	}

	campsites := api.Party("/campsites")
	{
		campsites.Get("/", routes.GetCampsites)
		campsites.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateCampsite)
		campsites.Get("/{id:uint}", routes.GetCampsite)
		campsites.Patch("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateCampsite)
		campsites.Delete("/{id:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteCampsite)

		campsites.Get("/{id:uint}/sites", routes.GetCampsiteSites)
		campsites.Post("/{id:uint}/sites", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateSite)
		campsites.Patch("/{id:uint}/sites/{siteID:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateSite)
		campsites.Delete("/{id:uint}/sites/{siteID:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteSite)

		campsites.Get("/{id:uint}/pricing-rules", routes.GetCampsitePricingRules)
		campsites.Post("/{id:uint}/pricing-rules", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreatePricingRule)
		campsites.Delete("/{id:uint}/pricing-rules/{ruleID:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeletePricingRule)
		campsites.Post("/{id:uint}/quote", routes.QuoteStay)

		campsites.Get("/{id:uint}/policy", routes.GetCampsitePolicy)
		campsites.Put("/{id:uint}/policy", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpsertCampsitePolicy)

		campsites.Get("/{id:uint}/amenities", routes.GetCampsiteAmenities)
		campsites.Put("/{id:uint}/amenities", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.SetCampsiteAmenities)

		campsites.Get("/{id:uint}/images", routes.GetCampsiteImages)
		campsites.Post("/{id:uint}/images", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.AddCampsiteImage)
		campsites.Delete("/{id:uint}/images/{imageID:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteCampsiteImage)

		campsites.Get("/{id:uint}/reviews", routes.GetCampsiteReviews)
		campsites.Post("/{id:uint}/reviews", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateCampsiteReview)
		campsites.Patch("/{id:uint}/reviews/{reviewID:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.UpdateCampsiteReview)
		campsites.Delete("/{id:uint}/reviews/{reviewID:uint}", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.DeleteCampsiteReview)
	}

	amenities := api.Party("/amenities")
	{
		amenities.Get("/", routes.GetAmenities)
		amenities.Post("/", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.CreateAmenity)
	}

	images := api.Party("/images")
	{
		images.Post("/upload-url", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.RequestUploadURL)
	}

	host := api.Party("/host")
	{
		host.Get("/campsites", accessTokenVerifierMiddleware, utils.UserIDFromTokenMiddleware, routes.GetHostCampsites)
	}

	admin := api.Party("/admin", accessTokenVerifierMiddleware, utils.StaffOnlyMiddleware)
	{
		admin.Get("/users", routes.AdminListUsers)
		admin.Delete("/reviews/{id:uint}", routes.AdminDeleteReview)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	addr := "0.0.0.0:" + port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
