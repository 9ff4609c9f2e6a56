package bot

import (
	"context"
	"log/slog"
	"sync"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/bot/handlers"
	"github.com/zargram/pricebot/internal/conversation"
)

// Dispatcher routes plain text messages to the handler of the sender's
// current wizard step. Text from idle users, or at steps with no handler,
// is dropped without a reply so the bot ignores unrelated chatter.
type Dispatcher struct {
	machine      *conversation.Machine
	stepHandlers map[conversation.Step]handlers.Handler
	log          *slog.Logger
	mu           sync.RWMutex
}

// NewDispatcher creates a Dispatcher with an empty handlers registry.
func NewDispatcher(machine *conversation.Machine, log *slog.Logger) *Dispatcher {
	if log == nil {
		log = slog.Default()
	}

	return &Dispatcher{
		machine:      machine,
		stepHandlers: make(map[conversation.Step]handlers.Handler),
		log:          log,
	}
}

// RegisterStepHandler registers a handler for the provided wizard step.
func (d *Dispatcher) RegisterStepHandler(step conversation.Step, h handlers.Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stepHandlers[step] = h
}

// Dispatch routes the update based on the sender's current step. It returns
// the handler it selected, nil when the text is to be ignored.
func (d *Dispatcher) Dispatch(c telebot.Context) (handlers.Handler, error) {
	if c.Sender() == nil {
		d.log.Warn("cannot dispatch without sender information")
		return nil, nil
	}

	step, err := d.machine.Step(context.Background(), c.Sender().ID)
	if err != nil {
		return nil, err
	}

	handler := d.getHandler(step)
	if handler == nil {
		d.log.Debug("text ignored for step without handler",
			slog.String("step", string(step)), slog.Int64("user_id", c.Sender().ID))
		return nil, nil
	}

	return handler, nil
}

func (d *Dispatcher) getHandler(step conversation.Step) handlers.Handler {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stepHandlers[step]
}
