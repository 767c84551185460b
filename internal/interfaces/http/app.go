package http

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/swaggo/swag"

	"github.com/jhoicas/sns-api/internal/application/dto"
	"github.com/jhoicas/sns-api/pkg/config"
	"github.com/jhoicas/sns-api/pkg/logger"
)

// NewApp construye la aplicación Fiber con middlewares, documentación y rutas.
func NewApp(cfg *config.Config, log *logger.Logger, deps RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(cors.New(corsConfig(cfg.HTTP.CORSOrigins)))
	app.Use(RequestLogger(log))

	// Swagger UI en /docs (solo si el swagger.json generado existe)
	if _, err := os.Stat(cfg.HTTP.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.DocsPath,
			Path:     "docs",
			Title:    cfg.App.Name,
		}))
	} else {
		log.Warn().Str("path", cfg.HTTP.DocsPath).Msg("swagger.json no encontrado, /docs deshabilitado")
	}
	app.Get("/openapi.json", openAPI)

	Router(app, deps)
	return app
}

func corsConfig(origins []string) cors.Config {
	allow := strings.Join(origins, ",")
	return cors.Config{
		AllowOrigins:     allow,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: allow != "*",
	}
}

func openAPI(c *fiber.Ctx) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "API docs not available"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.SendString(doc)
}

// errorHandler respuestas para errores que no pasaron por writeError (404 de ruta, 405, panics).
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := "internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(dto.ErrorResponse{Code: errorCode(code), Message: msg})
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	case fiber.StatusRequestEntityTooLarge:
		return "BODY_TOO_LARGE"
	default:
		return "INTERNAL"
	}
}
