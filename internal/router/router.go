package router

import (
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/config"
	"github.com/jeffersonaandrade/pousada-backend/internal/handler"
	"github.com/jeffersonaandrade/pousada-backend/internal/middleware"
	"github.com/jeffersonaandrade/pousada-backend/internal/model"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"
	"github.com/jeffersonaandrade/pousada-backend/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	garcom  = string(model.CargoGarcom)
	gerente = string(model.CargoGerente)
	admin   = string(model.CargoAdmin)
	limpeza = string(model.CargoLimpeza)
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client, notifier service.Notifier, dispatcher *worker.Dispatcher) *gin.Engine {
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
	quartoRepo := repository.NewQuartoRepository(db)
	hospedeRepo := repository.NewHospedeRepository(db)
	produtoRepo := repository.NewProdutoRepository(db)
	pedidoRepo := repository.NewPedidoRepository(db)
	pagamentoRepo := repository.NewPagamentoRepository(db)
	caixaRepo := repository.NewCaixaRepository(db)
	financeiroRepo := repository.NewFinanceiroRepository(db)
	perdaRepo := repository.NewPerdaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	usuarioSvc := service.NewUsuarioService(usuarioRepo)
	authSvc := service.NewAuthService(usuarioSvc, cfg)
	quartoSvc := service.NewQuartoService(quartoRepo)
	produtoSvc := service.NewProdutoService(produtoRepo, rdb)
	caixaSvc := service.NewCaixaService(caixaRepo, usuarioRepo)
	hospedeSvc := service.NewHospedeService(hospedeRepo, quartoRepo, produtoRepo, pedidoRepo, pagamentoRepo, caixaSvc)
	pedidoSvc := service.NewPedidoService(pedidoRepo, produtoRepo, hospedeRepo, usuarioSvc, notifier)
	financeiroSvc := service.NewFinanceiroService(financeiroRepo, caixaSvc)
	estoqueSvc := service.NewEstoqueService(perdaRepo, produtoRepo)
	relatorioSvc := service.NewRelatorioService(dispatcher)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	usuariosH := handler.NewUsuariosHandler(usuarioSvc)
	quartosH := handler.NewQuartosHandler(quartoSvc)
	hospedesH := handler.NewHospedesHandler(hospedeSvc)
	produtosH := handler.NewProdutosHandler(produtoSvc)
	pedidosH := handler.NewPedidosHandler(pedidoSvc)
	caixaH := handler.NewCaixaHandler(caixaSvc)
	financeiroH := handler.NewFinanceiroHandler(financeiroSvc)
	estoqueH := handler.NewEstoqueHandler(estoqueSvc)
	relatoriosH := handler.NewRelatoriosHandler(relatorioSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
	}

	// Cardápio público do tablet — sem autenticação
	r.GET("/v1/cardapio", produtosH.Cardapio)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Hóspedes — check-in/checkout na recepção, consulta por todos
		v1.GET("/hospedes", middleware.RequireCargo(garcom, gerente, admin), hospedesH.Listar)
		v1.GET("/hospedes/:id", middleware.RequireCargo(garcom, gerente, admin), hospedesH.BuscarPorID)
		v1.GET("/hospedes/pulseira/:uid", middleware.RequireCargo(garcom, gerente, admin), hospedesH.BuscarPorPulseira)
		v1.GET("/hospedes/:id/pagamentos", middleware.RequireCargo(gerente, admin), hospedesH.ListarPagamentos)
		v1.POST("/hospedes/checkin", middleware.RequireCargo(garcom, gerente, admin), hospedesH.CheckIn)
		v1.POST("/hospedes/:id/checkout", middleware.RequireCargo(garcom, gerente, admin), hospedesH.Checkout)
		v1.PUT("/hospedes/:id", middleware.RequireCargo(gerente, admin), hospedesH.Atualizar)
		v1.POST("/hospedes/:id/zerar-divida", middleware.RequireCargo(admin), hospedesH.ZerarDivida)
		v1.POST("/hospedes/:id/desativar", middleware.RequireCargo(admin), hospedesH.Desativar)

		// Quartos — limpeza também atualiza status (LIMPEZA → LIVRE)
		v1.GET("/quartos", middleware.RequireCargo(garcom, gerente, admin, limpeza), quartosH.Listar)
		v1.GET("/quartos/:id", middleware.RequireCargo(garcom, gerente, admin, limpeza), quartosH.BuscarPorID)
		v1.PATCH("/quartos/:id/status", middleware.RequireCargo(gerente, admin, limpeza), quartosH.AtualizarStatus)
		quartos := v1.Group("/quartos", middleware.RequireCargo(admin))
		{
			quartos.POST("", quartosH.Criar)
			quartos.PUT("/:id", quartosH.Atualizar)
			quartos.DELETE("/:id", quartosH.Remover)
		}

		// Pedidos — garçom lança e movimenta; cancelamento exige PIN no corpo
		pedidos := v1.Group("/pedidos", middleware.RequireCargo(garcom, gerente, admin))
		{
			pedidos.POST("", pedidosH.Criar)
			pedidos.GET("", pedidosH.Listar)
			pedidos.GET("/:id", pedidosH.BuscarPorID)
			pedidos.PATCH("/:id/status", pedidosH.AtualizarStatus)
			pedidos.POST("/:id/cancelar", pedidosH.Cancelar)
		}

		// Produtos — leitura para operação, escrita restrita
		v1.GET("/produtos", middleware.RequireCargo(garcom, gerente, admin), produtosH.Listar)
		v1.GET("/produtos/:id", middleware.RequireCargo(garcom, gerente, admin), produtosH.BuscarPorID)
		v1.PATCH("/produtos/:id/estoque", middleware.RequireCargo(gerente, admin), produtosH.AdicionarEstoque)
		produtos := v1.Group("/produtos", middleware.RequireCargo(admin))
		{
			produtos.POST("", produtosH.Criar)
			produtos.PUT("/:id", produtosH.Atualizar)
			produtos.DELETE("/:id", produtosH.Remover)
		}

		// Estoque — perdas auditáveis
		estoque := v1.Group("/estoque", middleware.RequireCargo(gerente, admin))
		{
			estoque.POST("/perdas", estoqueH.RegistrarPerda)
			estoque.GET("/perdas", estoqueH.ListarPerdas)
		}

		// Caixa — sessão pessoal do operador autenticado
		caixa := v1.Group("/caixa", middleware.RequireCargo(garcom, gerente, admin))
		{
			caixa.POST("/abrir", caixaH.Abrir)
			caixa.POST("/fechar", caixaH.Fechar)
			caixa.POST("/sangria", caixaH.Sangria)
			caixa.POST("/suprimento", caixaH.Suprimento)
			caixa.GET("/status", caixaH.Status)
		}

		// Financeiro — contas a pagar/receber e dashboard
		fin := v1.Group("/financeiro", middleware.RequireCargo(gerente, admin))
		{
			fin.GET("/dashboard", financeiroH.Dashboard)

			fin.POST("/categorias", financeiroH.CriarCategoria)
			fin.GET("/categorias", financeiroH.ListarCategorias)
			fin.PUT("/categorias/:id", financeiroH.AtualizarCategoria)
			fin.DELETE("/categorias/:id", financeiroH.RemoverCategoria)

			fin.POST("/contas-pagar", financeiroH.CriarContaPagar)
			fin.GET("/contas-pagar", financeiroH.ListarContasPagar)
			fin.PUT("/contas-pagar/:id", financeiroH.AtualizarContaPagar)
			fin.DELETE("/contas-pagar/:id", financeiroH.RemoverContaPagar)
			fin.POST("/contas-pagar/:id/pagar", financeiroH.PagarConta)

			fin.POST("/contas-receber", financeiroH.CriarContaReceber)
			fin.GET("/contas-receber", financeiroH.ListarContasReceber)
			fin.PUT("/contas-receber/:id", financeiroH.AtualizarContaReceber)
			fin.DELETE("/contas-receber/:id", financeiroH.RemoverContaReceber)
			fin.POST("/contas-receber/:id/receber", financeiroH.ReceberConta)
		}

		// Relatórios — geração assíncrona via fila
		v1.POST("/relatorios/pedidos", middleware.RequireCargo(gerente, admin), relatoriosH.Solicitar)

		// Usuários — administração de operadores
		usuarios := v1.Group("/usuarios", middleware.RequireCargo(admin))
		{
			usuarios.POST("", usuariosH.Criar)
			usuarios.GET("", usuariosH.Listar)
			usuarios.GET("/:id", usuariosH.BuscarPorID)
			usuarios.PUT("/:id", usuariosH.Atualizar)
			usuarios.DELETE("/:id", usuariosH.Desativar)
		}
	}

	return r
}
