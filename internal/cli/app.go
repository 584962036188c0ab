package cli

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/partsdesk/internal/logger"
	"github.com/mesh-intelligence/partsdesk/internal/metrics"
	"github.com/mesh-intelligence/partsdesk/internal/modal"
	"github.com/mesh-intelligence/partsdesk/internal/notify"
	partsstore "github.com/mesh-intelligence/partsdesk/pkg/store"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// app owns everything one CLI invocation needs.
type app struct {
	settings Settings
	log      *zap.Logger
	store    types.PartsStore // instrumented view of the backend
	closer   io.Closer        // nil for the memory backend
	metrics  *metrics.Collector
	registry *prometheus.Registry
}

// newApp builds the logger, store and metrics from settings. Log output
// goes to logOut.
func newApp(settings Settings, logOut io.Writer) (*app, error) {
	log, err := logger.New(settings.Log, logOut)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	store, closer, err := partsstore.Open(settings.Store)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	collector := metrics.New()
	if err := collector.Register(reg); err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	log.Debug("store opened",
		zap.String("backend", settings.Store.Backend),
		zap.Bool("seed", settings.Store.Seed))

	return &app{
		settings: settings,
		log:      log,
		store:    collector.Store(store),
		closer:   closer,
		metrics:  collector,
		registry: reg,
	}, nil
}

// newController wires a modal controller whose notifications are printed to
// out, logged and counted.
func (a *app) newController(out io.Writer) *modal.Controller {
	n := notify.Multi{
		notify.NewWriter(out),
		notify.NewLogger(logger.Named(a.log, "notify")),
	}
	return modal.New(a.store, a.metrics.Notifier(n), logger.Named(a.log, "modal"))
}

// Close releases the store and flushes the logger.
func (a *app) Close() error {
	_ = a.log.Sync()
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
