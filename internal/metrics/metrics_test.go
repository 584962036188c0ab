package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/partsdesk/internal/memory"
	"github.com/mesh-intelligence/partsdesk/internal/modal"
	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

func TestStoreCountsMutations(t *testing.T) {
	c := New()
	base, err := memory.New(types.SeedParts())
	require.NoError(t, err)
	s := c.Store(base)

	_, err = s.Add(types.FormDraft{Department: "Cashier", ItemCode: "X", PartName: "Y"})
	require.NoError(t, err)
	_, err = s.Add(types.FormDraft{})
	require.Error(t, err)
	_, err = s.Update("missing", types.FormDraft{})
	require.Error(t, err)
	require.NoError(t, s.Remove("1"))

	m := c.Mutations()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithLabelValues(OpAdd, OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithLabelValues(OpAdd, OutcomeValidation)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithLabelValues(OpUpdate, OutcomeNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WithLabelValues(OpRemove, OutcomeOK)))

	// Reads pass through to the wrapped store.
	parts, err := s.List()
	require.NoError(t, err)
	assert.Len(t, parts, 1)
}

func TestNotifierCountsAndForwards(t *testing.T) {
	c := New()
	var got []modal.Notification
	n := c.Notifier(modal.NotifierFunc(func(n modal.Notification) { got = append(got, n) }))

	n.Notify(modal.Notification{Kind: modal.KindSuccess, Message: "a"})
	n.Notify(modal.Notification{Kind: modal.KindSuccess, Message: "b"})
	n.Notify(modal.Notification{Kind: modal.KindError, Message: "c"})

	assert.Len(t, got, 3)
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Notifications().WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Notifications().WithLabelValues("error")))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New()
	require.NoError(t, c.Register(reg))
	assert.Error(t, c.Register(reg), "double registration fails")

	c.Notifier(nil).Notify(modal.Notification{Kind: modal.KindError})
	count, err := testutil.GatherAndCount(reg, MetricNotificationsTotal)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
