package routes

import "github.com/gofiber/fiber/v2"

func (r *Router) adminRoutes(api fiber.Router) {
	admin := api.Group("/admin", r.AuthMW.RequireAuth, r.AuthMW.RequireAdmin)

	// User management
	admin.Get("/users", r.Admin.GetUsers)
	admin.Post("/users", r.Admin.CreateUser)
	admin.Put("/users/:id", r.Admin.UpdateUser)
	admin.Delete("/users/:id", r.Admin.DeleteUser)

	// Statistics
	admin.Get("/platform-stats", r.Admin.PlatformStats)
	admin.Get("/content-stats", r.Admin.ContentStats)

	// Catalog management
	admin.Get("/domains", r.Domains.GetDomains)
	admin.Post("/domains", r.Domains.CreateDomain)
	admin.Put("/domains/:id", r.Domains.UpdateDomain)
	admin.Delete("/domains/:id", r.Domains.DeleteDomain)

	admin.Get("/subdomains", r.SubDomains.GetSubDomains)
	admin.Post("/subdomains", r.SubDomains.CreateSubDomain)
	admin.Put("/subdomains/:id", r.SubDomains.UpdateSubDomain)
	admin.Delete("/subdomains/:id", r.SubDomains.DeleteSubDomain)

	admin.Get("/controls", r.Controls.GetControls)
	admin.Post("/controls", r.Controls.CreateControl)
	admin.Put("/controls/:id", r.Controls.UpdateControl)
	admin.Delete("/controls/:id", r.Controls.DeleteControl)

	admin.Get("/metrics", r.Metrics.GetMetrics)
	admin.Post("/metrics", r.Metrics.CreateMetric)
	admin.Put("/metrics/:id", r.Metrics.UpdateMetric)
	admin.Delete("/metrics/:id", r.Metrics.DeleteMetric)

	admin.Get("/questions", r.Questions.GetQuestions)
	admin.Post("/questions", r.Questions.CreateQuestion)
	admin.Put("/questions/:id", r.Questions.UpdateQuestion)
	admin.Delete("/questions/:id", r.Questions.DeleteQuestion)

	// Bulk data operations
	admin.Post("/init-data", r.Admin.InitData)
	admin.Post("/clear-data", r.Admin.ClearData)
}
