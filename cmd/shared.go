package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/viant/grocery/catalog"
	"github.com/viant/grocery/checkout"
	"github.com/viant/grocery/config"
)

var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var (
	cfgPath string

	sessionOnce sync.Once
	sessionInst *session
	sessionErr  error
)

// session holds what every sub-command needs: configuration, the catalog and
// the receipt formatter.
type session struct {
	config    *config.Config
	catalog   *catalog.Catalog
	formatter *checkout.Formatter
}

// setConfigPath remembers the CLI-level -f/--config parameter so that the
// session singleton can be created lazily by whichever sub-command runs.
func setConfigPath(p string) { cfgPath = p }

// sessionSingleton loads the configuration and catalog only once per CLI
// invocation.
func sessionSingleton() (*session, error) {
	sessionOnce.Do(func() {
		sessionInst, sessionErr = newSession(context.Background(), cfgPath)
	})
	return sessionInst, sessionErr
}

func newSession(ctx context.Context, path string) (*session, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	formatter, err := checkout.NewFormatter(cfg.Locale, cfg.Currency)
	if err != nil {
		return nil, err
	}
	cat, err := catalog.Load(ctx, cfg.CatalogURL)
	if err != nil {
		return nil, err
	}
	slog.Debug("session ready", "catalog", cat.Source(), "items", cat.Len(), "capacity", cfg.Capacity)
	return &session{config: cfg, catalog: cat, formatter: formatter}, nil
}
