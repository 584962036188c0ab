// Package modal implements the modal lifecycle that ties a staged form draft
// to parts store mutations and outward notifications.
package modal

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/partsdesk/pkg/types"
)

// State is the active modal.
type State int

// Modal states. Exactly one is active at a time.
const (
	Closed State = iota
	AddOpen
	EditOpen
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case AddOpen:
		return "add"
	case EditOpen:
		return "edit"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Controller coordinates one form draft with store mutations. It is not safe
// for concurrent use.
type Controller struct {
	store    types.PartsStore
	notifier Notifier
	logger   *zap.Logger

	state  State
	target string // part ID while EditOpen
	draft  types.FormDraft
}

// New creates a Closed controller. A nil notifier drops notifications and a
// nil logger logs nothing.
func New(store types.PartsStore, notifier Notifier, logger *zap.Logger) *Controller {
	if notifier == nil {
		notifier = NotifierFunc(func(Notification) {})
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{store: store, notifier: notifier, logger: logger}
}

// State returns the active state.
func (c *Controller) State() State { return c.state }

// Target returns the part being edited; ok is false unless EditOpen.
func (c *Controller) Target() (id string, ok bool) {
	return c.target, c.state == EditOpen
}

// Draft returns a copy of the staged values. It is empty while Closed.
func (c *Controller) Draft() types.FormDraft { return c.draft }

// transitionError reports a trigger that is illegal in the current state.
func (c *Controller) transitionError(trigger string) error {
	return fmt.Errorf("%s while %s: %w", trigger, c.state, types.ErrInvalidTransition)
}

// StartAdd opens the Add modal with an empty draft.
func (c *Controller) StartAdd() error {
	if c.state != Closed {
		return c.transitionError("start add")
	}
	c.state = AddOpen
	c.draft = types.FormDraft{}
	c.logger.Debug("modal opened", zap.Stringer("state", c.state))
	return nil
}

// StartEdit opens the Edit modal with a draft copied from the part. An
// unknown id leaves the controller Closed and emits an error notification.
func (c *Controller) StartEdit(id string) error {
	if c.state != Closed {
		return c.transitionError("start edit")
	}
	p, err := c.store.Get(id)
	if err != nil {
		c.fail(err, Message(err))
		return err
	}
	c.state = EditOpen
	c.target = id
	c.draft = types.DraftFromRecord(p)
	c.logger.Debug("modal opened", zap.Stringer("state", c.state), zap.String("part_id", id))
	return nil
}

// SetField applies one field update to the open draft.
func (c *Controller) SetField(name, value string) error {
	if c.state == Closed {
		return c.transitionError("set field")
	}
	if err := c.draft.Set(name, value); err != nil {
		return fmt.Errorf("field %q: %w", name, err)
	}
	return nil
}

// Confirm submits the draft. On success the modal closes and a success
// notification is emitted. On failure the modal and draft stay as they are,
// an error notification is emitted and the error is returned.
func (c *Controller) Confirm() (types.PartRecord, error) {
	var (
		p   types.PartRecord
		err error
		msg string
	)
	switch c.state {
	case AddOpen:
		p, err = c.store.Add(c.draft)
		msg = MsgAdded
	case EditOpen:
		p, err = c.store.Update(c.target, c.draft)
		msg = MsgUpdated
	default:
		return types.PartRecord{}, c.transitionError("confirm")
	}
	if err != nil {
		c.fail(err, Message(err))
		return types.PartRecord{}, err
	}

	c.logger.Info("part saved", zap.Stringer("modal", c.state), zap.String("part_id", p.ID))
	c.close()
	c.notifier.Notify(Notification{Kind: KindSuccess, Message: msg})
	return p, nil
}

// Cancel discards the draft and closes the modal without touching the store.
func (c *Controller) Cancel() error {
	if c.state == Closed {
		return c.transitionError("cancel")
	}
	c.logger.Debug("modal cancelled", zap.Stringer("state", c.state))
	c.close()
	return nil
}

// Delete removes a part. It is only available while no modal is open. The
// success notification is emitted even for an absent id.
func (c *Controller) Delete(id string) error {
	if c.state != Closed {
		return c.transitionError("delete")
	}
	if err := c.store.Remove(id); err != nil {
		c.fail(err, MsgDeleteFailed)
		return err
	}
	c.logger.Info("part deleted", zap.String("part_id", id))
	c.notifier.Notify(Notification{Kind: KindSuccess, Message: MsgDeleted})
	return nil
}

func (c *Controller) close() {
	c.state = Closed
	c.target = ""
	c.draft = types.FormDraft{}
}

// fail logs err and emits an error notification carrying msg.
func (c *Controller) fail(err error, msg string) {
	c.logger.Warn("modal action failed", zap.Stringer("state", c.state), zap.Error(err))
	c.notifier.Notify(Notification{Kind: KindError, Message: msg})
}

// Message returns the user-facing text for a failed start-edit or confirm.
func Message(err error) string {
	var ve *types.ValidationError
	switch {
	case errors.As(err, &ve) && !ve.HasMissing():
		return MsgInvalidDate
	case errors.Is(err, types.ErrValidation):
		return MsgRequiredFields
	case errors.Is(err, types.ErrNotFound):
		return MsgNotFound
	default:
		return MsgFailed
	}
}
