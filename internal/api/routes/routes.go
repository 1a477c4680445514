package routes

import (
	"log"
	"time"

	"taskboard-backend/internal/api/handlers"
	"taskboard-backend/internal/api/middleware"
	"taskboard-backend/internal/auth"
	"taskboard-backend/internal/authz"
	"taskboard-backend/internal/config"
	"taskboard-backend/internal/database/models"
	"taskboard-backend/internal/repository"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	organizationRepo := repository.NewOrganizationRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(auditLogRepo)
	organizationService := service.NewOrganizationService(organizationRepo, membershipRepo, validator)
	taskService := service.NewTaskService(taskRepo, auditService, validator)
	invitationService := service.NewInvitationService(
		invitationRepo,
		membershipRepo,
		userRepo,
		auditService,
		time.Duration(cfg.InvitationExpiryHours)*time.Hour,
		validator,
	)
	userService := service.NewUserService(userRepo)

	// Initialize auth
	authConfig, err := auth.NewConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to build auth config: %v", err)
	}
	authService, err := auth.NewAuthService(authConfig, userRepo)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// The guard resolves the target organization, the caller's membership
	// in it, and checks the route's role requirement.
	guard := authz.NewGuard(membershipRepo, taskRepo, invitationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, auditService)
	taskHandler := handlers.NewTaskHandler(taskService, auditService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	userHandler := handlers.NewUserHandler(userService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes (public)
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authMiddleware.RequireAuth(), authHandler.ValidateToken)
	}

	// All routes below require an authenticated caller
	api := router.Group("/api/v1")
	api.Use(authMiddleware.RequireAuth())

	// Users
	api.GET("/users/me", userHandler.GetMe)

	// Organizations. Create and list need no organization context; the
	// detail family answers 404 to non-members inside the service.
	orgs := api.Group("/organizations")
	{
		orgs.POST("", organizationHandler.CreateOrganization)
		orgs.GET("", organizationHandler.ListOrganizations)
		orgs.GET("/:id", organizationHandler.GetOrganization)
		orgs.GET("/:id/members",
			guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromParam("id")),
			organizationHandler.ListMembers)
		orgs.GET("/:id/audit-logs",
			guard.Require(authz.MinimumRole(models.RoleAdmin), authz.OrgFromParam("id")),
			organizationHandler.GetAuditLogs)
	}

	// Tasks. Collection routes carry the organization in the payload or
	// query string; id routes resolve it from the stored task row so a
	// client-supplied organization id can never widen access.
	tasks := api.Group("/tasks")
	{
		tasks.POST("",
			guard.Require(authz.MinimumRole(models.RoleAdmin), authz.OrgFromBody("organization_id")),
			taskHandler.CreateTask)
		tasks.GET("",
			guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromQuery("organization_id")),
			taskHandler.ListTasks)
		tasks.GET("/:id",
			guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromTask("id")),
			taskHandler.GetTask)
		tasks.PUT("/:id",
			guard.Require(authz.MinimumRole(models.RoleViewer), authz.OrgFromTask("id")),
			taskHandler.UpdateTask)
		tasks.DELETE("/:id",
			guard.Require(authz.MinimumRole(models.RoleAdmin), authz.OrgFromTask("id")),
			taskHandler.DeleteTask)
		tasks.POST("/:id/restore",
			guard.Require(authz.MinimumRole(models.RoleAdmin), authz.OrgFromTask("id")),
			taskHandler.RestoreTask)
	}

	// Invitations. Invitation management is owner/admin; accepting only
	// needs an authenticated caller holding a valid token.
	invitations := api.Group("/invitations")
	{
		invitations.POST("",
			guard.Require(authz.AnyOf(models.RoleOwner, models.RoleAdmin), authz.OrgFromBody("organization_id")),
			invitationHandler.CreateInvitation)
		invitations.GET("",
			guard.Require(authz.AnyOf(models.RoleOwner, models.RoleAdmin), authz.OrgFromQuery("organization_id")),
			invitationHandler.ListInvitations)
		invitations.POST("/accept", invitationHandler.AcceptInvitation)
		invitations.DELETE("/:id",
			guard.Require(authz.AnyOf(models.RoleOwner, models.RoleAdmin), authz.OrgFromInvitation("id")),
			invitationHandler.RevokeInvitation)
		invitations.POST("/:id/resend",
			guard.Require(authz.AnyOf(models.RoleOwner, models.RoleAdmin), authz.OrgFromInvitation("id")),
			invitationHandler.ResendInvitation)
	}

	return router
}
