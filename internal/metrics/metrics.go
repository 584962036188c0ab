// Package metrics counts notifications and store mutations with Prometheus.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mesh-intelligence/partsdesk/internal/modal"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// Metric names.
const (
	MetricNotificationsTotal  = "partsdesk_notifications_total"
	MetricStoreMutationsTotal = "partsdesk_store_mutations_total"
)

// Mutation operations and outcomes used as label values.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"

	OutcomeOK         = "ok"
	OutcomeValidation = "validation_error"
	OutcomeNotFound   = "not_found"
	OutcomeError      = "error"
)

// Collector holds the counters. Register it on a registry with Register.
type Collector struct {
	notifications *prometheus.CounterVec
	mutations     *prometheus.CounterVec
}

// New creates the counters without registering them.
func New() *Collector {
	return &Collector{
		notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricNotificationsTotal,
			Help: "Notifications emitted by the modal controller, by kind.",
		}, []string{"kind"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricStoreMutationsTotal,
			Help: "Parts store mutations, by operation and outcome.",
		}, []string{"op", "outcome"}),
	}
}

// Register adds the counters to reg.
func (c *Collector) Register(reg prometheus.Registerer) error {
	if err := reg.Register(c.notifications); err != nil {
		return err
	}
	return reg.Register(c.mutations)
}

// Notifications returns the notification counter vector.
func (c *Collector) Notifications() *prometheus.CounterVec { return c.notifications }

// Mutations returns the mutation counter vector.
func (c *Collector) Mutations() *prometheus.CounterVec { return c.mutations }

// Notifier wraps next and counts each notification by kind.
func (c *Collector) Notifier(next modal.Notifier) modal.Notifier {
	return modal.NotifierFunc(func(n modal.Notification) {
		c.notifications.WithLabelValues(string(n.Kind)).Inc()
		if next != nil {
			next.Notify(n)
		}
	})
}

// Store wraps next and counts Add, Update and Remove calls by outcome.
// Reads pass through uncounted.
func (c *Collector) Store(next types.PartsStore) types.PartsStore {
	return &instrumentedStore{PartsStore: next, c: c}
}

type instrumentedStore struct {
	types.PartsStore
	c *Collector
}

func (s *instrumentedStore) observe(op string, err error) {
	s.c.mutations.WithLabelValues(op, outcome(err)).Inc()
}

func (s *instrumentedStore) Add(draft types.FormDraft) (types.PartRecord, error) {
	p, err := s.PartsStore.Add(draft)
	s.observe(OpAdd, err)
	return p, err
}

func (s *instrumentedStore) Update(id string, draft types.FormDraft) (types.PartRecord, error) {
	p, err := s.PartsStore.Update(id, draft)
	s.observe(OpUpdate, err)
	return p, err
}

func (s *instrumentedStore) Remove(id string) error {
	err := s.PartsStore.Remove(id)
	s.observe(OpRemove, err)
	return err
}

func outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, types.ErrValidation):
		return OutcomeValidation
	case errors.Is(err, types.ErrNotFound):
		return OutcomeNotFound
	default:
		return OutcomeError
	}
}
