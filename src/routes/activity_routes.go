package routes

import (
	"Mergington-Activities/src/controllers"

	"github.com/gofiber/fiber/v2"
)

// activityRoutes กำหนดเส้นทางสำหรับ Activity API
func activityRoutes(app *fiber.App, ac *controllers.ActivityController) {
	activityRoutes := app.Group("/activities")
	activityRoutes.Get("/", ac.GetAllActivities)                       // ดึงกิจกรรมทั้งหมด
	activityRoutes.Post("/:activity_name/signup", ac.SignupForActivity) // ลงทะเบียนด้วย email
}
