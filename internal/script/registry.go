package script

import (
	"sort"

	"github.com/Tivertoni/scripthookvdotnet/internal/native"
)

// Env is the set of host services handed to every script when it is built.
type Env struct {
	Invoker  native.Invoker
	Input    native.Input
	Notifier native.Notifier
}

// Constructor builds a fresh script instance against the host environment.
type Constructor func(env Env) Script

var registry = make(map[string]Constructor)

// Register makes a script constructor available by name. Script files call
// it from init.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Available returns the registered script names, sorted.
func Available() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create instantiates a registered script, or nil if the name is unknown.
func Create(name string, env Env) Script {
	if ctor, exists := registry[name]; exists {
		return ctor(env)
	}
	return nil
}
