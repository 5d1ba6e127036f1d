package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
	"github.com/dmitrymomot/fieldcheck/pkg/formapi"
	"github.com/dmitrymomot/fieldcheck/pkg/httpserver"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/requestid"
	"github.com/dmitrymomot/fieldcheck/pkg/rulemap"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

const serviceName = "fieldcheck"

type Config struct {
	Addr            string        `env:"FIELDCHECK_ADDR" envDefault:":8080"`
	RulesDir        string        `env:"FIELDCHECK_RULES_DIR" envDefault:"./rules"`
	Env             string        `env:"FIELDCHECK_ENV" envDefault:"production"`
	LogLevel        *slog.Level   `env:"FIELDCHECK_LOG_LEVEL"`
	ShutdownTimeout time.Duration `env:"FIELDCHECK_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	MaxBodySize     int64         `env:"FIELDCHECK_MAX_BODY_SIZE" envDefault:"1048576"`
	ValidateAbsent  bool          `env:"FIELDCHECK_VALIDATE_ABSENT" envDefault:"true"`
}

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != nil {
		opts = append(opts, logger.WithLevel(*cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("fieldcheck stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	forms, err := loadForms(cfg.RulesDir, cfg.ValidateAbsent, log)
	if err != nil {
		return err
	}
	log.Info("forms loaded", slog.Int("count", len(forms)), slog.String("dir", cfg.RulesDir))

	api := formapi.New(forms,
		formapi.WithLogger(log.With(logger.Component("formapi"))),
		formapi.WithMaxBodySize(cfg.MaxBodySize),
	)
	srv := httpserver.New(
		httpserver.WithAddr(cfg.Addr),
		httpserver.WithShutdownTimeout(cfg.ShutdownTimeout),
		httpserver.WithLogger(log.With(logger.Component("httpserver"))),
	)
	return srv.Run(ctx, api.Handler())
}

// loadForms builds one validator per rule-map file and rejects the whole set
// if any of them references an unknown rule or carries bad arguments.
func loadForms(dir string, validateAbsent bool, log *slog.Logger) (map[string]*validator.Validator, error) {
	ruleMaps, err := rulemap.LoadDir(dir)
	if err != nil {
		return nil, err
	}

	reg := validator.NewRegistry()
	base := []validator.Option{validator.WithRegistry(reg)}
	if validateAbsent {
		base = append(base, validator.WithAbsentFields())
	}

	forms := make(map[string]*validator.Validator, len(ruleMaps))
	var errs []error
	for name, rules := range ruleMaps {
		opts := append(slices.Clone(base),
			validator.WithLogger(log.With(logger.Component("validator"), logger.Form(name))),
		)
		v := validator.New(rules, opts...)
		if err := v.Verify(); err != nil {
			errs = append(errs, fmt.Errorf("form %q: %w", name, err))
			continue
		}
		forms[name] = v
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return forms, nil
}
