package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/studiokit/crewboard/internal/events"
	"github.com/studiokit/crewboard/internal/handlers"
	"github.com/studiokit/crewboard/internal/middleware"
	"github.com/studiokit/crewboard/internal/repositories"
	"github.com/studiokit/crewboard/internal/services"
	"github.com/studiokit/crewboard/internal/workers"
	"github.com/studiokit/crewboard/pkg/config"
	"github.com/studiokit/crewboard/pkg/database"
	"github.com/studiokit/crewboard/pkg/logger"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	// Initialize database
	if err := database.Init(config.AppConfig.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Change notification hub
	hub := events.NewHub()

	// Initialize dependencies
	userRepo := repositories.NewUserRepository(database.DB)
	userService := services.NewUserService(userRepo)
	clientRepo := repositories.NewClientRepository(database.DB)
	clientService := services.NewClientService(clientRepo)
	projectRepo := repositories.NewProjectRepository(database.DB)
	memberRepo := repositories.NewProjectMemberRepository(database.DB)
	projectService := services.NewProjectService(projectRepo, memberRepo)
	memberService := services.NewProjectMemberService(memberRepo, userRepo)

	// Scoring core
	criterionRepo := repositories.NewCriterionRepository(database.DB)
	criterionService := services.NewCriterionService(criterionRepo)
	evaluationRepo := repositories.NewEvaluationRepository(database.DB)
	scoreRepo := repositories.NewScoreRepository(database.DB)
	scoringService := services.NewScoringService(evaluationRepo, scoreRepo, userRepo, hub)
	evaluationService := services.NewEvaluationService(evaluationRepo, criterionRepo, scoringService, hub)

	// Seed the criteria catalog (no-op when already populated)
	if err := criterionService.Seed(os.Getenv("SEED_FORCE") == "true"); err != nil {
		log.Fatalf("Failed to seed criteria catalog: %v", err)
	}

	// Job and report services
	jobRepo := repositories.NewJobRepository(database.DB)
	reportService := services.NewReportService(jobRepo, projectRepo, scoringService, config.AppConfig.Reports.Dir)

	// Initialize worker manager
	workerManager := workers.NewWorkerManager(jobRepo, reportService)

	// Log score refreshes so ranking changes are traceable
	scoreEvents, unsubscribe := hub.Subscribe(events.TopicScoreUpdated)
	defer unsubscribe()
	go func() {
		for event := range scoreEvents {
			logger.WithField("project_id", event.ProjectID).
				WithField("user_id", event.UserID).
				Info("Score updated")
		}
	}()

	// Initialize router
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.SessionMiddleware())

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, userService, clientService, projectService, memberService,
		criterionService, evaluationService, scoringService, reportService)
	loadTemplates(router)

	// Start workers
	if err := workerManager.StartAll(); err != nil {
		log.Fatalf("Failed to start workers: %v", err)
	}
	defer workerManager.StopAll()

	// Setup server
	server := &http.Server{
		Addr:    ":" + config.AppConfig.Server.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Printf("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	log.Println("Server stopped")
}

func setupRoutes(router *gin.Engine, userService *services.UserService, clientService *services.ClientService,
	projectService *services.ProjectService, memberService *services.ProjectMemberService,
	criterionService *services.CriterionService, evaluationService *services.EvaluationService,
	scoringService *services.ScoringService, reportService *services.ReportService) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler()
	authHandler := handlers.NewAuthHandler(userService)
	dashboardHandler := handlers.NewDashboardHandler(userService, projectService, memberService)
	clientHandler := handlers.NewClientHandler(clientService, projectService)
	projectHandler := handlers.NewProjectHandler(projectService, clientService, userService, memberService, reportService)
	evaluationHandler := handlers.NewEvaluationHandler(projectService, memberService, userService,
		criterionService, evaluationService, scoringService)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Home page
	router.GET("/", homeHandler.Index)

	// Auth routes
	router.GET("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)
	router.GET("/auth/sso", authHandler.SSOLogin)
	router.GET("/auth/sso/callback", authHandler.SSOCallback)

	// Protected routes
	dashboard := router.Group("/dashboard")
	dashboard.Use(middleware.AuthRequired())
	{
		dashboard.GET("/", dashboardHandler.Dashboard)
	}

	clients := router.Group("/clients")
	clients.Use(middleware.AuthRequired())
	{
		clients.GET("/", clientHandler.ListClients)
		clients.GET("/create", clientHandler.CreateClientForm)
		clients.POST("/create", clientHandler.CreateClient)
		clients.GET("/:id", clientHandler.ViewClient)
		clients.POST("/:id/update", clientHandler.UpdateClient)
		clients.POST("/:id/archive", clientHandler.ArchiveClient)
	}

	projects := router.Group("/projects")
	projects.Use(middleware.AuthRequired())
	{
		projects.GET("/create", projectHandler.CreateProjectForm)
		projects.POST("/create", projectHandler.CreateProject)
		projects.GET("/:id", projectHandler.ViewProject)
		projects.POST("/:id/update", projectHandler.UpdateProject)
		projects.POST("/:id/advance-stage", projectHandler.AdvanceStage)
		projects.POST("/:id/delete", projectHandler.DeleteProject)
		projects.POST("/:id/members", projectHandler.AddMember)
		projects.POST("/:id/members/:user_id/remove", projectHandler.RemoveMember)
		projects.GET("/:id/evaluate/:user_id", evaluationHandler.EvaluateForm)
		projects.POST("/:id/evaluate/:user_id", evaluationHandler.SaveEvaluation)
		projects.GET("/:id/rankings", evaluationHandler.Rankings)
		projects.POST("/:id/reports", projectHandler.CreateRankingReport)
	}

	// Health check and metrics endpoints
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.NoRoute(notFoundHandler.NotFound)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/index.html"),
		filepath.Join(cwd, "web/templates/login.html"),
		filepath.Join(cwd, "web/templates/dashboard.html"),
		filepath.Join(cwd, "web/templates/404.html"),
		filepath.Join(cwd, "web/templates/clients/list.html"),
		filepath.Join(cwd, "web/templates/clients/create.html"),
		filepath.Join(cwd, "web/templates/clients/view.html"),
		filepath.Join(cwd, "web/templates/projects/create.html"),
		filepath.Join(cwd, "web/templates/projects/view.html"),
		filepath.Join(cwd, "web/templates/projects/evaluate.html"),
		filepath.Join(cwd, "web/templates/projects/rankings.html"),
	)
}
