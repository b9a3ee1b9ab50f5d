package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alecthomas/kingpin/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"aivault-portal/internal/adapters/secondary/cache"
	"aivault-portal/internal/adapters/secondary/platform"
	"aivault-portal/internal/adapters/secondary/session"
	"aivault-portal/internal/config"
	"aivault-portal/internal/core/domain"
	ports "aivault-portal/internal/core/ports/output"
	"aivault-portal/internal/core/services"
)

const (
	appName = "aivault"
	appDesc = "Manage a business listing on the AiVault visibility platform"
)

// App is the aivault command line. Commands are registered on a kingpin application and run
// as parse actions once the global flags are known.
type App struct {
	app *kingpin.Application
	cfg *config.Config
	fs  afero.Fs
	out io.Writer
	ctx context.Context

	apiBase     *string
	sessionPath *string
	output      *string
	logLevel    *string
	stale       *bool

	api       ports.PlatformClient
	sessions  ports.SessionStore
	pages     *services.PageService
	accounts  *services.AccountService
	validator *services.JSONLDValidator
}

func New(cfg *config.Config, fs afero.Fs, out io.Writer) *App {
	a := &App{
		app: kingpin.New(appName, appDesc),
		cfg: cfg,
		fs:  fs,
		out: out,
	}
	a.app.UsageWriter(out)
	a.app.ErrorWriter(out)
	a.app.Terminate(nil)

	a.apiBase = a.app.Flag("api", "Platform API base URL").Default(cfg.API.BaseURL).String()
	a.sessionPath = a.app.Flag("session", "Session file").Default(cfg.Session.File).String()
	a.output = a.app.Flag("output", "Output format").Short('o').Default("json").Enum("json", "yaml")
	a.logLevel = a.app.Flag("log-level", "Log level").Default(cfg.Logger.Level).String()
	a.stale = a.app.Flag("stale", "Print cached page data before the fresh result").Bool()
	a.app.PreAction(a.setup)

	a.addAccountCommands()
	a.addBusinessCommands()
	a.addServiceCommands()
	a.addHoursCommands()
	a.addMediaCommands()
	a.addCouponCommands()
	a.addMetadataCommands()
	a.addJSONLDCommands()
	a.addVisibilityCommands()

	return a
}

// Run parses args and executes the selected command.
func (a *App) Run(ctx context.Context, args []string) error {
	a.ctx = ctx
	_, err := a.app.Parse(args)
	return err
}

func (a *App) setup(_ *kingpin.ParseContext) error {
	if level, err := log.ParseLevel(*a.logLevel); err == nil {
		log.SetLevel(level)
	}

	store, err := cache.New(a.ctx, &a.cfg.Cache)
	if err != nil {
		return fmt.Errorf("create response cache: %w", err)
	}
	validator, err := services.NewJSONLDValidator()
	if err != nil {
		return err
	}

	a.api = platform.NewClient(*a.apiBase, a.cfg.API.Timeout, store)
	a.sessions = session.NewFileStore(a.fs, *a.sessionPath)
	a.validator = validator
	a.pages = services.NewPageService(a.api, validator)
	a.accounts = services.NewAccountService(a.api, a.sessions)
	return nil
}

// owner loads the session and resolves the business a protected command acts on.
func (a *App) owner(explicit string) (uuid.UUID, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return uuid.Nil, err
	}
	if _, err := sess.RequireUser(); err != nil {
		return uuid.Nil, err
	}
	return sess.ResolveBusiness(explicit)
}

func (a *App) requireUser() error {
	sess, err := a.sessions.Load()
	if err != nil {
		return err
	}
	_, err = sess.RequireUser()
	return err
}

// business resolves a business for public commands, falling back to the session's.
func (a *App) business(explicit string) (uuid.UUID, error) {
	sess, err := a.sessions.Load()
	if err != nil {
		return uuid.Nil, err
	}
	return sess.ResolveBusiness(explicit)
}

// showPage prints a page, first from cache when --stale is set.
func showPage[T any](a *App, name string, load func(context.Context) (T, error)) error {
	if !*a.stale {
		page, err := load(a.ctx)
		if err != nil {
			return err
		}
		return a.print(page)
	}

	var printErr error
	err := services.Revalidate(a.ctx, load, func(page T, f services.Freshness) {
		log.WithFields(log.Fields{"page": name, "data": f.String()}).Info("rendering page")
		if err := a.print(page); err != nil && printErr == nil {
			printErr = err
		}
	})
	if err != nil {
		return err
	}
	return printErr
}

func parseID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidID
	}
	return id, nil
}

func opt(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
