package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "Backend-SecAssess/docs"
	"Backend-SecAssess/src/controllers"
	"Backend-SecAssess/src/database"
	"Backend-SecAssess/src/jobs"
	"Backend-SecAssess/src/middleware"
	"Backend-SecAssess/src/routes"
	"Backend-SecAssess/src/services"
	"Backend-SecAssess/src/services/assessments"
	"Backend-SecAssess/src/services/scoring"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
)

// @title           Security Assessment API
// @version         1.0
// @description     Survey/assessment backend with scored questionnaires and dashboards
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	ctx := context.Background()

	db, err := database.Connect(ctx)
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}
	log.Println("✅ MongoDB connected successfully")

	rdb := database.InitRedis(ctx)

	// Background worker for periodic maintenance tasks
	go jobs.StartWorker(db)

	// Services
	authService := services.NewAuthService(db, rdb)
	domainService := services.NewDomainService(db)
	subDomainService := services.NewSubDomainService(db)
	controlService := services.NewControlService(db)
	metricService := services.NewMetricService(db)
	questionService := services.NewQuestionService(db)
	assessmentService := assessments.NewService(db)
	scoringService := scoring.NewService(db)
	adminService := services.NewAdminService(db)

	router := &routes.Router{
		Auth:        controllers.NewAuthController(authService),
		Domains:     controllers.NewDomainController(domainService, questionService),
		SubDomains:  controllers.NewSubDomainController(subDomainService),
		Controls:    controllers.NewControlController(controlService),
		Metrics:     controllers.NewMetricController(metricService),
		Questions:   controllers.NewQuestionController(questionService),
		Assessments: controllers.NewAssessmentController(assessmentService),
		Dashboard:   controllers.NewDashboardController(assessmentService, scoringService),
		Admin:       controllers.NewAdminController(adminService, db),
		AuthMW:      middleware.NewAuthMiddleware(db),
	}

	app := fiber.New()

	allowOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowOrigins == "" {
		allowOrigins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	router.InitRoutes(app)

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8888"
	}

	// Release the Mongo client on shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down...")
		_ = app.Shutdown()
		if err := db.Disconnect(ctx); err != nil {
			log.Println("⚠️ Error disconnecting MongoDB:", err)
		}
	}()

	log.Println("Server is running on port " + port)
	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatal(err)
	}
}
