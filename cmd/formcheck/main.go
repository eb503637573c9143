// Command formcheck validates a YAML form document with the form engine and
// prints one "field: message" line per invalid field.
//
//	formcheck -file signup.yaml
//
// It exits 0 when the form is valid, 1 when it is not and 2 on setup errors.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/redis"
	"github.com/dmitrymomot/formkit/pkg/sanitizer"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitSetup   = 2
)

// AppConfig holds process level settings.
type AppConfig struct {
	Env   string `env:"APP_ENV" envDefault:"development"`
	Name  string `env:"APP_NAME" envDefault:"formcheck"`
	Store string `env:"FORM_STORE" envDefault:"memory" validate:"oneof=memory redis"`
}

type runIDKey struct{}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("formcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	file := fs.String("file", "form.yaml", "path to the form document")
	envFile := fs.String("env", "", "optional .env file loaded before configuration")
	if err := fs.Parse(args); err != nil {
		return exitSetup
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			fmt.Fprintln(stderr, err)
			return exitSetup
		}
	}

	var appCfg AppConfig
	if err := config.Load(&appCfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitSetup
	}
	if err := structValidator.Struct(appCfg); err != nil {
		fmt.Fprintln(stderr, describeValidation(err))
		return exitSetup
	}
	var formCfg form.Config
	if err := config.Load(&formCfg); err != nil {
		fmt.Fprintln(stderr, err)
		return exitSetup
	}

	log := logger.New(
		logger.WithEnvironment(appCfg.Env, appCfg.Name),
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)
	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())

	doc, err := loadDocument(*file)
	if err != nil {
		log.ErrorContext(ctx, "failed to load form document", slog.String("file", *file), logger.Error(err))
		return exitSetup
	}

	repo, closeRepo, err := openRepository(ctx, appCfg.Store, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to open error repository", logger.Store(appCfg.Store), logger.Error(err))
		return exitSetup
	}
	defer closeRepo()

	return check(ctx, doc, repo, formCfg, log, stdout)
}

// openRepository returns the error repository selected by store and a func releasing it.
func openRepository(ctx context.Context, store string, log *slog.Logger) (form.ErrorRepository, func(), error) {
	if store != "redis" {
		return form.NewMemoryRepository(), func() {}, nil
	}

	var cfg redis.Config
	if err := config.Load(&cfg); err != nil {
		return nil, nil, err
	}
	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	repo := form.NewRedisRepository(redis.NewHashStorageWithConfig(client, cfg))
	if err := repo.Healthcheck(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	log.DebugContext(ctx, "connected to redis", logger.Store(store))

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.WarnContext(ctx, "failed to close redis client", logger.Error(err))
		}
	}
	return repo, closeFn, nil
}

// check sanitizes and submits doc through a form and writes its errors to out.
func check(ctx context.Context, doc Document, repo form.ErrorRepository, cfg form.Config, log *slog.Logger, out io.Writer) int {
	fields, validators, cleaners, err := compile(doc)
	if err != nil {
		log.ErrorContext(ctx, "invalid form document", logger.Error(err))
		return exitSetup
	}

	mgr, err := form.NewManager(repo,
		form.WithManagerLogger(log),
		form.WithDefaults(form.WithConfig(cfg)),
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to create form manager", logger.Error(err))
		return exitSetup
	}

	formID := doc.ID
	if formID == "" {
		formID = form.NewFormID()
	}
	f, err := mgr.Open(formID)
	if err != nil {
		log.ErrorContext(ctx, "failed to open form", logger.FormID(formID), logger.Error(err))
		return exitSetup
	}
	defer func() {
		if err := mgr.Close(ctx); err != nil {
			log.WarnContext(ctx, "failed to release form", logger.FormID(formID), logger.Error(err))
		}
	}()

	sanitized := sanitizer.SanitizeFields(fields, cleaners)

	valid, err := f.HandleSubmit(ctx, sanitized, validators, func(ctx context.Context, fields map[string]any) error {
		log.InfoContext(ctx, "form is valid", logger.FormID(formID), logger.FieldCount(len(fields)))
		return nil
	})
	if err != nil && !errors.Is(err, form.ErrSubmitFailed) {
		log.ErrorContext(ctx, "failed to validate form", logger.FormID(formID), logger.Error(err))
		return exitSetup
	}
	if valid {
		return exitValid
	}

	errs := f.GetAllErrors(ctx)
	for _, field := range slices.Sorted(maps.Keys(errs)) {
		fmt.Fprintf(out, "%s: %s\n", field, errs[field])
	}
	return exitInvalid
}
