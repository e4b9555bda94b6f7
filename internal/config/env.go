package config

import (
	"os"
	"strings"

	"github.com/samber/lo"
)

// Env is a read-only snapshot of environment variables
type Env map[string]string

// EnvFromOS snapshots the process environment
func EnvFromOS() Env {
	env := make(Env)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}
	return env
}

// Get returns the value for key and whether it was set
func (e Env) Get(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}

// Lookup returns the value for key or the empty string
func (e Env) Lookup(key string) string {
	return e[key]
}

// Underlay returns a new snapshot holding e with base filling in keys e does
// not define. Neither input is modified.
func (e Env) Underlay(base map[string]string) Env {
	return lo.Assign(map[string]string(base), map[string]string(e))
}

// Expand replaces ${VAR} and $VAR references in s using the snapshot
func (e Env) Expand(s string) string {
	return os.Expand(s, e.Lookup)
}
