package routes

import "github.com/gofiber/fiber/v2"

func (r *Router) assessmentRoutes(api fiber.Router) {
	assessments := api.Group("/assessments", r.AuthMW.RequireAuth)
	assessments.Post("/submit", r.Assessments.SubmitAssessment)
	assessments.Get("/my-assessments", r.Assessments.MyAssessments)

	dashboard := api.Group("/dashboard", r.AuthMW.RequireAuth)
	dashboard.Get("/stats/:assessmentId", r.Dashboard.AssessmentStats)
}
