package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/academia-backoffice/internal/clock"
	domain "github.com/BruksfildServices01/academia-backoffice/internal/domain/mensalidade"
	"github.com/BruksfildServices01/academia-backoffice/internal/handlers"
	"github.com/BruksfildServices01/academia-backoffice/internal/logger"
	"github.com/BruksfildServices01/academia-backoffice/internal/middleware"
	ucMensalidade "github.com/BruksfildServices01/academia-backoffice/internal/usecase/mensalidade"
)

// Deps reúne o que as rotas precisam para montar handlers e use cases.
type Deps struct {
	DB       *gorm.DB
	Repo     domain.Repository
	Clock    clock.Clock
	Location *time.Location
	Log      *logger.Logger

	CORSOrigins []string
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.CORSOrigins...))
	r.Use(middleware.Metrics())

	// ======================================================
	// USE CASES - MENSALIDADES
	// ======================================================
	createFirstChargeUC := ucMensalidade.NewCreateFirstCharge(
		d.Repo,
		d.Clock,
		d.Location,
		d.Log,
	)

	registerPaymentUC := ucMensalidade.NewRegisterPayment(
		d.Repo,
		d.Clock,
		d.Log,
	)

	listMensalidadesUC := ucMensalidade.NewListMensalidades(
		d.Repo,
		d.Location,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	planoHandler := handlers.NewPlanoHandler(d.DB)
	formaPagamentoHandler := handlers.NewFormaPagamentoHandler(d.DB)
	clienteHandler := handlers.NewClienteHandler(d.DB, createFirstChargeUC, d.Clock, d.Location)
	mensalidadeHandler := handlers.NewMensalidadeHandler(
		d.Repo,
		listMensalidadesUC,
		registerPaymentUC,
		d.Location,
	)
	movimentoHandler := handlers.NewMovimentoCaixaHandler(d.DB, d.Location)
	relatorioHandler := handlers.NewRelatorioHandler(d.DB, d.Location)

	// ======================================================
	// INFRA
	// ======================================================
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		// ------------------------------
		// PLANOS
		// ------------------------------
		planos := api.Group("/planos")
		{
			planos.GET("", planoHandler.List)
			planos.POST("", planoHandler.Create)
			planos.GET("/:id", planoHandler.Get)
			planos.PUT("/:id", planoHandler.Update)
			planos.PATCH("/:id", planoHandler.Update)
			planos.DELETE("/:id", planoHandler.Delete)
		}

		// ------------------------------
		// FORMAS DE PAGAMENTO
		// ------------------------------
		formas := api.Group("/formas-pagamento")
		{
			formas.GET("", formaPagamentoHandler.List)
			formas.POST("", formaPagamentoHandler.Create)
			formas.GET("/:id", formaPagamentoHandler.Get)
			formas.PUT("/:id", formaPagamentoHandler.Update)
			formas.PATCH("/:id", formaPagamentoHandler.Update)
			formas.DELETE("/:id", formaPagamentoHandler.Delete)
		}

		// ------------------------------
		// CLIENTES
		// ------------------------------
		clientes := api.Group("/clientes")
		{
			clientes.GET("", clienteHandler.List)
			clientes.POST("", clienteHandler.Create)
			clientes.GET("/:id", clienteHandler.Get)
			clientes.PUT("/:id", clienteHandler.Update)
			clientes.PATCH("/:id", clienteHandler.Update)
			clientes.DELETE("/:id", clienteHandler.Delete)
			clientes.POST("/:id/contratar-plano", clienteHandler.ContratarPlano)
		}

		// ------------------------------
		// MENSALIDADES
		// ------------------------------
		mensalidades := api.Group("/mensalidades")
		{
			mensalidades.GET("", mensalidadeHandler.List)
			mensalidades.GET("/:id", mensalidadeHandler.Get)
			mensalidades.POST("/:id/registrar-pagamento", mensalidadeHandler.RegistrarPagamento)
		}

		// ------------------------------
		// MOVIMENTOS DE CAIXA
		// ------------------------------
		movimentos := api.Group("/movimentos-caixa")
		{
			movimentos.GET("", movimentoHandler.List)
			movimentos.POST("", movimentoHandler.Create)
			movimentos.GET("/:id", movimentoHandler.Get)
			movimentos.PUT("/:id", movimentoHandler.Update)
			movimentos.PATCH("/:id", movimentoHandler.Update)
			movimentos.DELETE("/:id", movimentoHandler.Delete)
		}

		// ------------------------------
		// RELATÓRIOS
		// ------------------------------
		api.GET("/relatorios/previsao-caixa", relatorioHandler.PrevisaoCaixa)
		api.GET("/relatorios/recebimentos", relatorioHandler.Recebimentos)
		api.GET("/dashboard/totalizadores", relatorioHandler.Totalizadores)
	}
}
