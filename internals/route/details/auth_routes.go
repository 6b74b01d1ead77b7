package details

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "swaram_backend/internals/features/users/auth/controller"
	middlewares "swaram_backend/internals/middlewares"
	authMiddleware "swaram_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := &authController.AuthController{DB: db}

	auth := app.Group("/api/auth")

	// login endpoints sit behind the tighter limiter
	auth.Post("/register", middlewares.LoginRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login/google", middlewares.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/refresh", ctrl.Refresh)
	auth.Post("/logout", ctrl.Logout)

	me := app.Group("/api/auth",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)
	me.Get("/me", ctrl.Me)
}
