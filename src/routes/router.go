package routes

import (
	"Backend-SecAssess/src/controllers"
	"Backend-SecAssess/src/middleware"

	"github.com/gofiber/fiber/v2"
)

// Router wires every controller onto the /api prefix. Built once in
// main with the shared database handle.
type Router struct {
	Auth        *controllers.AuthController
	Domains     *controllers.DomainController
	SubDomains  *controllers.SubDomainController
	Controls    *controllers.ControlController
	Metrics     *controllers.MetricController
	Questions   *controllers.QuestionController
	Assessments *controllers.AssessmentController
	Dashboard   *controllers.DashboardController
	Admin       *controllers.AdminController
	AuthMW      *middleware.AuthMiddleware
}

func (r *Router) InitRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Security Assessment API is running"})
	})

	r.authRoutes(api)
	r.catalogRoutes(api)
	r.assessmentRoutes(api)
	r.adminRoutes(api)
}
