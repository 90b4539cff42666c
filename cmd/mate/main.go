// Command mate es el cliente de línea de comandos: sesión, dispensers, solicitudes y
// administración contra el backend REST.
//
// Uso:
//
//	mate [-server URL] <comando> [flags]
//
// La URL del backend sale de API_BASE_URL / API_TARGET y se puede forzar con -server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jhoicas/mate-social/internal/application/auth"
	"github.com/jhoicas/mate-social/internal/application/dispenser"
	"github.com/jhoicas/mate-social/internal/application/report"
	"github.com/jhoicas/mate-social/internal/application/session"
	"github.com/jhoicas/mate-social/internal/application/suggestion"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/repository"
	"github.com/jhoicas/mate-social/internal/infrastructure/backend"
	infrapdf "github.com/jhoicas/mate-social/internal/infrastructure/pdf"
	"github.com/jhoicas/mate-social/internal/infrastructure/telemetry"
	"github.com/jhoicas/mate-social/internal/infrastructure/tokenstore"
	"github.com/jhoicas/mate-social/pkg/config"
	"github.com/jhoicas/mate-social/pkg/logger"
)

const usage = `Uso: mate [-server URL] <comando> [flags]

Comandos:
  login -u USUARIO -p CLAVE
  logout
  whoami
  register -u USUARIO -email EMAIL -p CLAVE -confirm CLAVE
  dispensers list
  dispensers create -name NOMBRE -lat LAT -lng LNG [-active] [-permanent] [-photo ARCHIVO]
  dispensers update -id ID [-name NOMBRE] [-lat LAT -lng LNG] [-active=BOOL] [-permanent=BOOL] [-photo ARCHIVO]
  dispensers delete -id ID
  request -lat LAT -lng LNG
  suggestions list
  suggestions accept -id UBICACION -name NOMBRE -photo ARCHIVO
  admin create-employee -u USUARIO -email EMAIL -p CLAVE -confirm CLAVE
  report [-out ARCHIVO]
`

func main() {
	server := flag.String("server", "", "URL del backend (ej. https://api.example.com)")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: configuración:", err)
		os.Exit(1)
	}
	if *server != "" {
		cfg.API.BaseURL = strings.TrimRight(*server, "/")
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Out: os.Stderr, Service: cfg.App.Name + "-cli"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing := telemetry.Setup(ctx, cfg.App.Name+"-cli", cfg.Telemetry, log)
	defer func() { _ = shutdownTracing(context.Background()) }()

	tokens, closeTokens, err := tokenstore.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error: almacenamiento del token:", err)
		os.Exit(1)
	}
	defer func() { _ = closeTokens() }()

	a := newApp(backend.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log), tokens, cfg, log)
	if err := a.run(ctx, flag.Args(), os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "Error:", message(err))
		os.Exit(1)
	}
}

// app componentes del cliente, armados una vez por invocación.
type app struct {
	sess        *session.Manager
	auth        *auth.AuthUseCase
	dispensers  *dispenser.Controller
	suggestions *suggestion.Workflow
	report      *report.ReportUseCase
	log         *logger.Logger
}

func newApp(client *backend.Client, tokens repository.TokenRepository, cfg *config.Config, log *logger.Logger) *app {
	if log == nil {
		log = logger.NewNop()
	}
	sess := session.NewManager(tokens, client, log, session.Config{LogoutOn401: cfg.Session.LogoutOn401})
	return &app{
		sess:        sess,
		auth:        auth.NewAuthUseCase(client, sess, log),
		dispensers:  dispenser.NewController(client, sess, log),
		suggestions: suggestion.NewWorkflow(client, sess, log),
		report:      report.NewReportUseCase(client, client, infrapdf.NewMarotoReportGenerator(), sess, client.BaseURL(), log),
		log:         log,
	}
}

var errUsage = errors.New("uso incorrecto")

// run restaura la sesión persistida y despacha el comando.
func (a *app) run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	if err := a.sess.CheckAuth(ctx); err != nil {
		// Un perfil que no carga no impide comandos públicos.
		a.log.Debug().Err(err).Msg("sesión restaurada sin perfil")
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "login":
		return a.login(ctx, rest, out)
	case "logout":
		return a.logout(ctx, out)
	case "whoami":
		return a.whoami(out)
	case "register":
		return a.register(ctx, rest, out)
	case "dispensers":
		return a.dispensersCmd(ctx, rest, out)
	case "request":
		return a.request(ctx, rest, out)
	case "suggestions":
		return a.suggestionsCmd(ctx, rest, out)
	case "admin":
		if len(rest) == 0 || rest[0] != "create-employee" {
			return errUsage
		}
		return a.createEmployee(ctx, rest[1:], out)
	case "report":
		return a.exportReport(ctx, rest, out)
	}
	return errUsage
}

// message texto para el usuario; cae al error crudo si no hay traducción.
func message(err error) string {
	if err == nil {
		return ""
	}
	if msg := domain.UserMessage(err); msg != "" && msg != "Ocurrió un error inesperado" {
		return msg
	}
	return err.Error()
}
