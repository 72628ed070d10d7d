package router

import (
	"time"

	"github.com/jbenteu/lance-pro-control/internal/config"
	"github.com/jbenteu/lance-pro-control/internal/handler"
	"github.com/jbenteu/lance-pro-control/internal/infra"
	"github.com/jbenteu/lance-pro-control/internal/middleware"
	"github.com/jbenteu/lance-pro-control/internal/repository"
	"github.com/jbenteu/lance-pro-control/internal/service"
	"github.com/jbenteu/lance-pro-control/internal/worker"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, storage infra.Storage) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	licitacaoRepo := repository.NewLicitacaoRepository(db)
	fornecedorRepo := repository.NewFornecedorRepository(db)
	orgaoRepo := repository.NewOrgaoRepository(db)
	anexoRepo := repository.NewAnexoRepository(db)
	relatorioRepo := repository.NewRelatorioRepository(db)

	// Worker dispatcher — injected into services that enqueue async jobs
	dispatcher := worker.NewDispatcher(rdb)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	licitacaoSvc := service.NewLicitacaoService(licitacaoRepo, orgaoRepo, fornecedorRepo, dispatcher)
	fornecedorSvc := service.NewFornecedorService(fornecedorRepo)
	orgaoSvc := service.NewOrgaoService(orgaoRepo)
	anexoSvc := service.NewAnexoService(anexoRepo, licitacaoRepo, storage)
	relatorioSvc := service.NewRelatorioService(relatorioRepo, licitacaoRepo, storage, dispatcher)
	dashboardSvc := service.NewDashboardService(licitacaoRepo, fornecedorRepo, orgaoRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(authSvc)
	licitacoesH := handler.NewLicitacoesHandler(licitacaoSvc)
	fornecedoresH := handler.NewFornecedoresHandler(fornecedorSvc)
	orgaosH := handler.NewOrgaosHandler(orgaoSvc)
	anexosH := handler.NewAnexosHandler(anexoSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Stored objects (anexos, relatórios) referenced by AnexoResponse.URL
	r.Static("/files", cfg.StoragePath)

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Perfis: operador, admin — declared per-endpoint
		v1.GET("/licitacoes/status-options", licitacoesH.StatusOptions)

		lic := v1.Group("/licitacoes")
		{
			lic.POST("", licitacoesH.Criar)
			lic.GET("", licitacoesH.Listar)
			lic.GET("/:id", licitacoesH.ObterPorID)
			lic.PUT("/:id", licitacoesH.Atualizar)
			lic.DELETE("/:id", middleware.RequireRole("admin"), licitacoesH.Excluir)
			lic.PATCH("/:id/status", licitacoesH.AtualizarStatus)

			lic.POST("/:id/itens", licitacoesH.AdicionarItem)
			lic.PUT("/:id/itens/:itemId", licitacoesH.AtualizarItem)
			lic.DELETE("/:id/itens/:itemId", licitacoesH.RemoverItem)

			lic.POST("/:id/itens/:itemId/cotacoes", licitacoesH.AdicionarCotacao)
			lic.PUT("/:id/itens/:itemId/cotacoes/:cotacaoId", licitacoesH.AtualizarCotacao)
			lic.DELETE("/:id/itens/:itemId/cotacoes/:cotacaoId", licitacoesH.RemoverCotacao)

			lic.POST("/:id/anexos", anexosH.Upload)
			lic.GET("/:id/anexos", anexosH.Listar)

			lic.POST("/:id/relatorios", relatoriosH.Solicitar)
			lic.GET("/:id/relatorios/ultimo", relatoriosH.ObterUltimo)
			lic.GET("/:id/relatorios/ultimo/download", relatoriosH.Download)
		}

		anexos := v1.Group("/anexos")
		{
			anexos.GET("/:anexoId/download", anexosH.Download)
			anexos.DELETE("/:anexoId", anexosH.Excluir)
		}

		// Directories — any authenticated profile can read, admin writes
		v1.GET("/fornecedores", fornecedoresH.Listar)
		v1.GET("/fornecedores/:id", fornecedoresH.ObterPorID)
		forn := v1.Group("/fornecedores", middleware.RequireRole("admin"))
		{
			forn.POST("", fornecedoresH.Criar)
			forn.PUT("/:id", fornecedoresH.Atualizar)
			forn.DELETE("/:id", fornecedoresH.Excluir)
		}

		v1.GET("/orgaos", orgaosH.Listar)
		v1.GET("/orgaos/:id", orgaosH.ObterPorID)
		orgaos := v1.Group("/orgaos", middleware.RequireRole("admin"))
		{
			orgaos.POST("", orgaosH.Criar)
			orgaos.PUT("/:id", orgaosH.Atualizar)
			orgaos.DELETE("/:id", orgaosH.Excluir)
		}

		usuarios := v1.Group("/usuarios", middleware.RequireRole("admin"))
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Desativar)
			usuarios.PATCH("/:id/reativar", usuariosH.Reativar)
		}

		v1.GET("/dashboard", dashboardH.Resumo)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
