package router

import (
	"github.com/gofiber/fiber/v3"
)

// ============================================================================
// IMPORTANTE: BUG DO FIBER V3 - COMO REGISTRAR MIDDLEWARE
// ============================================================================
//
// O Fiber v3 tem um bug sério quando o middleware é registrado direto na
// rota. O middleware simplesmente NÃO é chamado!
//
// ERRADO (NÃO FUNCIONA):
//    router.Get("/path", middleware.GetAuthManager().Authenticate(), handler)
//    → O middleware é ignorado e a requisição passa sem autenticação!
//
// CERTO (OBRIGATÓRIO):
//    auth := middleware.GetAuthManager().Authenticate()
//    RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{auth}, handler)
//    → O middleware entra corretamente via .Use() no group
//
// Se alguma rota estiver usando o jeito direto router.Get/Post/Put/Delete
// com middleware no meio, TEM QUE ser trocada por RegisterRouteWithMiddleware.
//
// ============================================================================

// Router gerencia o roteamento da API
type Router struct {
	app *fiber.App
}

// RoutePrefix contém os prefixos base da API
type RoutePrefix struct {
	Base string // Prefixo base (/api)
	V1   string // Prefixo da versão 1 (/api/v1)
}

// NewRoutePrefix cria um RoutePrefix com os valores padrão
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// NewRouter cria uma nova instância do Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// RegisterRouteWithMiddleware registra a rota com middleware via .Use()
// (o jeito certo no Fiber v3 - ver o aviso no topo do arquivo).
//
// Exemplo:
//
//	auth := middleware.GetAuthManager().Authenticate()
//	RegisterRouteWithMiddleware(router, "/clients", "GET", "/", []fiber.Handler{auth}, handler)
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Cria o group com o prefixo; o middleware só vale para as rotas do group
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Registra a rota com o path relativo (o prefixo já está no group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc é a função de registro de rotas de um domain (exportada pelo
// router de cada domain).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// SetupRoutes monta todas as rotas da aplicação. O caller passa o Register
// de cada domain para evitar ciclo de import.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}
