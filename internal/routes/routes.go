package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gestaodeatendimentos/crm-atendimentos/internal/audit"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/cep"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/config"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/handlers"
	infraRepo "github.com/gestaodeatendimentos/crm-atendimentos/internal/infra/repository"
	"github.com/gestaodeatendimentos/crm-atendimentos/internal/middleware"
	ucAtendimento "github.com/gestaodeatendimentos/crm-atendimentos/internal/usecase/atendimento"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	atendimentoRepo := infraRepo.NewAtendimentoGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	redisClient := cep.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword)
	cepClient := cep.NewClient(cfg.ViaCEPBaseURL, cfg.ViaCEPTimeout, redisClient, cfg.CEPCacheTTL)

	// ======================================================
	// USE CASES
	// ======================================================
	createAtendimentoUC := ucAtendimento.NewCreateAtendimento(
		atendimentoRepo,
		auditDispatcher,
	)

	updateAtendimentoUC := ucAtendimento.NewUpdateAtendimento(
		atendimentoRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db)

	clienteHandler := handlers.NewClienteHandler(db, cfg, atendimentoRepo, auditDispatcher)

	atendimentoHandler := handlers.NewAtendimentoHandler(
		db,
		auditDispatcher,
		createAtendimentoUC,
		updateAtendimentoUC,
	)

	cepHandler := handlers.NewCEPHandler(cepClient)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// API PRIVADA
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/dashboard", dashboardHandler.Summary)

			// ------------------------------
			// CLIENTES
			// ------------------------------
			secured.GET("/clientes", clienteHandler.List)
			secured.POST("/clientes", clienteHandler.Create)
			secured.GET("/clientes/:id", clienteHandler.Get)
			secured.PUT("/clientes/:id", clienteHandler.Update)
			secured.DELETE("/clientes/:id", clienteHandler.Delete)

			// ------------------------------
			// ATENDIMENTOS
			// ------------------------------
			secured.GET("/atendimentos", atendimentoHandler.List)
			secured.POST("/atendimentos", atendimentoHandler.Create)
			secured.GET("/atendimentos/:id", atendimentoHandler.Get)
			secured.PUT("/atendimentos/:id", atendimentoHandler.Update)
			secured.DELETE("/atendimentos/:id", atendimentoHandler.Delete)

			// ------------------------------
			// CEP
			// ------------------------------
			secured.GET("/cep/:cep", cepHandler.Lookup)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
