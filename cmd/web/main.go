// Command web sirve el host web local: la UI del navegador consume esta superficie
// JSON/redirect y el host habla con el backend REST.
//
// @title        Mate Social
// @version      1.0
// @description  Host web local del cliente de dispensers de agua para mate.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/mate-social/docs"
	"github.com/jhoicas/mate-social/internal/application/auth"
	"github.com/jhoicas/mate-social/internal/application/dispenser"
	"github.com/jhoicas/mate-social/internal/application/report"
	"github.com/jhoicas/mate-social/internal/application/session"
	"github.com/jhoicas/mate-social/internal/application/suggestion"
	"github.com/jhoicas/mate-social/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/mate-social/internal/infrastructure/pdf"
	"github.com/jhoicas/mate-social/internal/infrastructure/telemetry"
	"github.com/jhoicas/mate-social/internal/infrastructure/tokenstore"
	httpRouter "github.com/jhoicas/mate-social/internal/interfaces/http"
	"github.com/jhoicas/mate-social/pkg/config"
	"github.com/jhoicas/mate-social/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("backend", cfg.API.BaseURL).
		Str("target", cfg.API.Target).
		Msg("iniciando host web")

	ctx := context.Background()
	shutdownTracing := telemetry.Setup(ctx, cfg.App.Name, cfg.Telemetry, log)

	tokens, closeTokens, err := tokenstore.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("token store")
	}
	defer func() {
		if err := closeTokens(); err != nil {
			log.Warn().Err(err).Msg("cerrar token store")
		}
	}()

	client := backend.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	sess := session.NewManager(tokens, client, log, session.Config{LogoutOn401: cfg.Session.LogoutOn401})

	// La sesión persistida se restaura en segundo plano: mientras tanto el gate responde PENDING.
	go func() {
		if err := sess.CheckAuth(ctx); err != nil {
			log.Warn().Err(err).Msg("sesión restaurada sin perfil")
		}
	}()

	authUC := auth.NewAuthUseCase(client, sess, log)
	dispenserCtrl := dispenser.NewController(client, sess, log)
	suggestionWf := suggestion.NewWorkflow(client, sess, log)
	reportUC := report.NewReportUseCase(client, client, infrapdf.NewMarotoReportGenerator(), sess, cfg.API.BaseURL, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout + 5*time.Second,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    httpRouter.BodyLimit,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Mate Social",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "backend": client.BaseURL()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Session:     sess,
		AuthUC:      authUC,
		Dispensers:  dispenserCtrl,
		Suggestions: suggestionWf,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dispenserCtrl.Close()
	suggestionWf.Close()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("cerrar exportador de trazas")
	}

	log.Info().Msg("host web detenido")
}
