package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tienda-api/internal/application/auth"
	"github.com/jhoicas/tienda-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	ProductUC *usecase.ProductUseCase
}

// Router registra las rutas de la API. Todas son públicas: no hay tokens ni
// sesiones en este servicio, login solo devuelve el registro del usuario.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	app.Post("/register", authHandler.Register)
	app.Post("/login", authHandler.Login)

	userHandler := NewUserHandler(deps.UserUC)
	app.Get("/users", userHandler.List)
	app.Get("/user/:id", userHandler.GetByID)
	app.Put("/user/:id", userHandler.Update)
	app.Delete("/user/:id", userHandler.Delete)

	productHandler := NewProductHandler(deps.ProductUC)
	app.Get("/products", productHandler.List)
	app.Post("/products", productHandler.Create)
	app.Get("/products/:id", productHandler.GetByID)
	app.Put("/products/:id", productHandler.Update)
	app.Delete("/products/:id", productHandler.Delete)
}
