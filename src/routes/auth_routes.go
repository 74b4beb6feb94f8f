package routes

import "github.com/gofiber/fiber/v2"

func (r *Router) authRoutes(api fiber.Router) {
	auth := api.Group("/auth")
	auth.Post("/register", r.Auth.Register)
	auth.Post("/login", r.Auth.Login)
}
