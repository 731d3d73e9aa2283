package router

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/pedrodiniz00/sistema-obras/docs"
	"github.com/pedrodiniz00/sistema-obras/internal/config"
	"github.com/pedrodiniz00/sistema-obras/internal/handler"
	"github.com/pedrodiniz00/sistema-obras/internal/infra"
	"github.com/pedrodiniz00/sistema-obras/internal/middleware"
	"github.com/pedrodiniz00/sistema-obras/internal/repository"
	"github.com/pedrodiniz00/sistema-obras/internal/service"
	"github.com/pedrodiniz00/sistema-obras/internal/sessao"
)

// New wires all dependencies and returns a configured Gin engine. Background
// purges started here stop when ctx is done.
// Dependency graph: Handler ← Service ← Repository ← DB; session state in
// Redis when rdb is non-nil, otherwise in memory.
func New(ctx context.Context, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(ctx, 600, time.Minute)) // 600 req/min per IP

	// ── Infrastructure ───────────────────────────────────────────────────────
	ttl := time.Duration(cfg.SessionTTLMinutes) * time.Minute
	memoria := sessao.NewMemoryStore(ttl)
	memoria.IniciarPurga(ctx, 10*time.Minute)
	var sessoes sessao.Store = memoria
	if rdb != nil {
		// Redis behind a circuit breaker; memory takes over during outages.
		sessoes = sessao.NewStoreResiliente(
			sessao.NewRedisStore(rdb, ttl), sessoes, sessao.NewDisjuntor(sessao.ConfigDisjuntor{}),
		)
	}
	extrator := infra.NewExtratorPDF()

	// ── Repositories ─────────────────────────────────────────────────────────
	obraRepo := repository.NewObraRepository(db)
	etapaRepo := repository.NewEtapaRepository(db)
	custoRepo := repository.NewCustoRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(cfg, sessoes)
	obraSvc := service.NewObraService(obraRepo, sessoes)
	documentoSvc := service.NewDocumentoService(obraRepo, extrator, sessoes)
	cronogramaSvc := service.NewCronogramaService(etapaRepo, obraRepo, nil)
	custoSvc := service.NewCustoService(custoRepo, obraRepo, sessoes)
	painelSvc := service.NewPainelService(obraRepo, etapaRepo, custoRepo, sessoes, nil)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	obrasH := handler.NewObrasHandler(obraSvc, painelSvc)
	documentosH := handler.NewDocumentosHandler(documentoSvc, int64(cfg.MaxPDFSizeMB)<<20)
	cronogramaH := handler.NewCronogramaHandler(cronogramaSvc)
	custosH := handler.NewCustosHandler(custoSvc)
	relatoriosH := handler.NewRelatoriosHandler(painelSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	jwtMW := middleware.JWTAuth(cfg.JWTSecret)

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(ctx), authH.Login)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/logout", jwtMW, authH.Logout)
	}

	// Protected routes
	v1 := r.Group("/v1", jwtMW)
	{
		obras := v1.Group("/obras")
		{
			obras.GET("", obrasH.Listar)
			obras.POST("", obrasH.Criar)
			obras.GET("/:nome", obrasH.Obter)
			obras.PATCH("/:nome/status", obrasH.AtualizarStatus)
			obras.GET("/:nome/painel", obrasH.Painel)

			// Two-step delete: ask, then confirm with DELETE /:nome
			obras.POST("/:nome/exclusao", obrasH.SolicitarExclusao)
			obras.DELETE("/:nome/exclusao", obrasH.CancelarExclusao)
			obras.DELETE("/:nome", obrasH.Excluir)

			obras.PUT("/:nome/documento", documentosH.Enviar)
			obras.GET("/:nome/documento", documentosH.Baixar)
			obras.POST("/:nome/documento/leitura", documentosH.Ler)

			obras.GET("/:nome/cronograma", cronogramaH.Listar)
			obras.POST("/:nome/cronograma/gerar", cronogramaH.Gerar)
			obras.POST("/:nome/cronograma/etapas", cronogramaH.InserirEtapa)
			obras.GET("/:nome/cronograma/grafico", cronogramaH.Grafico)

			obras.GET("/:nome/custos", custosH.Listar)
			obras.POST("/:nome/custos", custosH.Registrar)

			obras.GET("/:nome/relatorio", relatoriosH.Obra)
		}

		etapas := v1.Group("/etapas")
		{
			etapas.PUT("/:id/datas", cronogramaH.AtualizarDatas)
			etapas.PATCH("/:id/progresso", cronogramaH.AtualizarProgresso)
			etapas.DELETE("/:id", cronogramaH.ExcluirEtapa)
		}

		calc := v1.Group("/calculadora")
		{
			calc.POST("/concreto", handler.Concreto)
			calc.POST("/reboco", handler.Reboco)
		}
	}

	// Swagger UI, only outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
