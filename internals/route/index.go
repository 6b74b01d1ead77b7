package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "swaram_backend/internals/middlewares/auth"
	routeDetails "swaram_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== GROUPS =====================

	// PRIVATE → any signed-in staff member
	log.Println("[INFO] Setting up PRIVATE group...")
	private := app.Group("/api/u",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ADMIN → admin and owner only
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a",
		authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
			Secret:              os.Getenv("JWT_SECRET"),
			AllowCookieFallback: true,
		}),
	)

	// ===================== FEATURES =====================
	log.Println("[INFO] Setting up HomeRoutes...")
	routeDetails.HomeRoutes(private, db)

	log.Println("[INFO] Setting up AcademicRoutes...")
	routeDetails.AcademicRoutes(private, admin, db)

	log.Println("[INFO] Setting up FinanceRoutes...")
	routeDetails.FinanceRoutes(app, private, admin, db)

	log.Println("✅ All routes registered")
}
