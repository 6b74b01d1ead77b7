package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	homeController "swaram_backend/internals/features/home/controller"
)

func HomeRoutes(private fiber.Router, db *gorm.DB) {
	ctrl := &homeController.HomeController{DB: db}
	private.Get("/home", ctrl.GetHome)
}
