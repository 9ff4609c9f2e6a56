package bot

import (
	"log/slog"
	"strings"
	"sync"

	telebot "gopkg.in/telebot.v3"

	"github.com/zargram/pricebot/internal/bot/handlers"
)

// CallbackHandlers binds one handler to each member of the closed Action
// set. Every field must be populated when the router is built.
type CallbackHandlers struct {
	BeginEntry   handlers.Handler
	SendConfirm  handlers.Handler
	Cancel       handlers.Handler
	ReturnToMenu handlers.Handler
	DailyReport  handlers.Handler
}

// Router dispatches commands, inline-button actions, and step-aware text
// updates through the middleware chain.
type Router struct {
	mu          sync.RWMutex
	commands    map[string]handlers.Handler
	callbacks   CallbackHandlers
	dispatcher  *Dispatcher
	middlewares []handlers.Middleware
	log         *slog.Logger
}

// NewRouter builds a Router around the given dispatcher and callback set.
func NewRouter(dispatcher *Dispatcher, callbacks CallbackHandlers, log *slog.Logger) *Router {
	if log == nil {
		log = slog.Default()
	}

	return &Router{
		commands:   make(map[string]handlers.Handler),
		callbacks:  callbacks,
		dispatcher: dispatcher,
		log:        log,
	}
}

// RegisterCommand registers a handler for a bot command.
func (r *Router) RegisterCommand(cmd string, h handlers.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[cmd] = h
}

// Use appends a middleware to the chain.
func (r *Router) Use(mw handlers.Middleware) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.middlewares = append(r.middlewares, mw)
}

// Route directs the incoming update to the appropriate handler.
func (r *Router) Route(c telebot.Context) error {
	if c == nil {
		return nil
	}

	if callback := c.Callback(); callback != nil {
		return r.handleCallback(c, callback.Data)
	}

	return r.handleMessage(c)
}

func (r *Router) handleCallback(c telebot.Context, data string) error {
	action := ParseAction(data)

	var handler handlers.Handler
	switch action {
	case ActionBeginEntry:
		handler = r.callbacks.BeginEntry
	case ActionSendConfirm:
		handler = r.callbacks.SendConfirm
	case ActionCancel:
		handler = r.callbacks.Cancel
	case ActionReturnToMenu:
		handler = r.callbacks.ReturnToMenu
	case ActionDailyReport:
		handler = r.callbacks.DailyReport
	case ActionUnknown:
		r.log.Info("no handler for callback payload", slog.String("data", data))
		return nil
	}

	if handler == nil {
		r.log.Warn("callback action not wired", slog.String("action", action.String()))
		return nil
	}

	return r.executeHandler(handler, c)
}

func (r *Router) handleMessage(c telebot.Context) error {
	text := c.Text()

	if strings.HasPrefix(text, "/") {
		if handler := r.getCommandHandler(text); handler != nil {
			return r.executeHandler(handler, c)
		}
		return nil
	}

	handler, err := r.dispatcher.Dispatch(c)
	if err != nil {
		return err
	}
	if handler == nil {
		// Unrelated chatter: no reply, no mutation.
		return nil
	}

	return r.executeHandler(handler, c)
}

func (r *Router) executeHandler(h handlers.Handler, c telebot.Context) error {
	wrapped := r.applyMiddlewares(h)
	if wrapped == nil {
		return nil
	}
	return wrapped(c)
}

func (r *Router) getCommandHandler(cmd string) handlers.Handler {
	r.mu.RLock()
	handler := r.commands[cmd]
	r.mu.RUnlock()
	return handler
}

// applyMiddlewares wraps the handler with all registered middlewares.
func (r *Router) applyMiddlewares(h handlers.Handler) handlers.Handler {
	if h == nil {
		return nil
	}

	middlewares := r.middlewaresSnapshot()
	wrapped := h
	for i := len(middlewares) - 1; i >= 0; i-- {
		wrapped = middlewares[i](wrapped)
	}

	return wrapped
}

func (r *Router) middlewaresSnapshot() []handlers.Middleware {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.middlewares) == 0 {
		return nil
	}

	snapshot := make([]handlers.Middleware, len(r.middlewares))
	copy(snapshot, r.middlewares)
	return snapshot
}
