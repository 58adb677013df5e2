// Package handler lets the TUI try key handlers in priority order.
package handler

import tea "github.com/charmbracelet/bubbletea"

// Result is what a key handler did with a key.
type Result struct {
	Handled bool
	Cmd     tea.Cmd
}

// NotHandled passes the key on to the next handler.
var NotHandled = Result{}

// HandledNoCmd consumes the key without a follow-up command.
var HandledNoCmd = Result{Handled: true}

// Handled consumes the key and schedules cmd.
func Handled(cmd tea.Cmd) Result {
	return Result{Handled: true, Cmd: cmd}
}

// Handler attempts to handle key.
type Handler func(key string) Result

// Chain offers key to each handler in turn and stops at the first one that
// handles it.
func Chain(key string, handlers ...Handler) (bool, tea.Cmd) {
	for _, h := range handlers {
		if r := h(key); r.Handled {
			return true, r.Cmd
		}
	}
	return false, nil
}
