package routes

import "github.com/gofiber/fiber/v2"

// Public questionnaire reads.
func (r *Router) catalogRoutes(api fiber.Router) {
	domains := api.Group("/domains")
	domains.Get("/", r.Domains.GetDomains)
	domains.Get("/:id/questions", r.Domains.GetDomainQuestions)
}
