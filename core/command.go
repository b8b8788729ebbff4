package core

import (
	"errors"
	"strings"
	"sync"
)

// Handler processes one command's arguments and returns the reply payload.
// Handlers run in normal program flow only, never in interrupt context, so
// they may perform persistent-storage I/O.
type Handler func(args []string) (string, error)

// Command is one verb of the serial command set.
type Command struct {
	Name    string
	Usage   string // e.g. "set <ticks>"
	Handler Handler
}

// CommandRegistry holds all registered commands keyed by verb.
type CommandRegistry struct {
	mu       sync.RWMutex
	commands map[string]*Command
}

var globalRegistry = NewCommandRegistry()

// NewCommandRegistry creates an empty command registry.
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		commands: make(map[string]*Command),
	}
}

// RegisterCommand registers a command handler with the global registry.
func RegisterCommand(name, usage string, handler Handler) {
	globalRegistry.Register(name, usage, handler)
}

// Register adds a command to the registry. Re-registering a verb replaces
// the previous handler.
func (r *CommandRegistry) Register(name, usage string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands[name] = &Command{
		Name:    name,
		Usage:   usage,
		Handler: handler,
	}
}

// Lookup retrieves a command by verb.
func (r *CommandRegistry) Lookup(name string) (*Command, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cmd, ok := r.commands[name]
	return cmd, ok
}

// DispatchLine parses one received command line and returns the full reply
// line ("ok ..." or "error ..."). A line consisting of a bare non-negative
// integer is shorthand for "set <n>"; the serial channel has always
// accepted raw integer delay values.
func (r *CommandRegistry) DispatchLine(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}

	name := fields[0]
	args := fields[1:]
	if _, err := ParseUint(name); err == nil {
		args = fields
		name = "set"
	}

	cmd, ok := r.Lookup(name)
	if !ok {
		return "error unknown command " + name
	}

	reply, err := cmd.Handler(args)
	if err != nil {
		return "error " + err.Error()
	}
	if reply == "" {
		return "ok"
	}
	return "ok " + reply
}

// DispatchLine is a convenience function using the global registry.
func DispatchLine(line string) string {
	return globalRegistry.DispatchLine(line)
}

// GetGlobalRegistry returns the global command registry.
func GetGlobalRegistry() *CommandRegistry {
	return globalRegistry
}

// ErrUsage is returned by handlers when the argument list does not match
// the command's usage string.
var ErrUsage = errors.New("bad arguments")
