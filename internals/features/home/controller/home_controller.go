package controller

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "swaram_backend/internals/middlewares/auth"

	helper "swaram_backend/internals/helpers"
)

type HomeController struct {
	DB *gorm.DB
}

type quickLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

var quickLinks = []quickLink{
	{Title: "Students", URL: "/students", Icon: "user"},
	{Title: "Courses", URL: "/courses", Icon: "book"},
	{Title: "Fees", URL: "/fees", Icon: "dollar-sign"},
}

// generateGreeting picks the salutation by local hour.
func generateGreeting(name string, hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return fmt.Sprintf("Good morning, %s", name)
	case hour >= 12 && hour < 18:
		return fmt.Sprintf("Good afternoon, %s", name)
	case hour >= 18 && hour < 22:
		return fmt.Sprintf("Good evening, %s", name)
	default:
		return fmt.Sprintf("Good night, %s", name)
	}
}

// GetHome (GET /home)
func (h *HomeController) GetHome(c *fiber.Ctx) error {
	name, _ := c.Locals(authMiddleware.LocUserName).(string)
	if name == "" {
		name = "there"
	}

	return helper.JsonOK(c, "", fiber.Map{
		"greeting":    generateGreeting(name, time.Now().Hour()),
		"subtitle":    "Here are some quick links to get you started.",
		"quick_links": quickLinks,
	})
}
