package config

import (
	"os"
	"strings"
)

// Env is a Source drawing string values from process environment
// variables.
type Env struct {
	prefix  string
	environ func() []string
}

// FromEnv returns a source selecting environment variables by prefix.
// The prefix is stripped and the rest is lowercased into a dotted path,
// with underscores nesting: CHARIO_READER_BUFFER becomes "reader.buffer".
func FromEnv(prefix string) Env {
	return Env{prefix: prefix, environ: os.Environ}
}

// Apply implements Source.
func (src Env) Apply(tree Map) (err error) {
	for _, pair := range src.environ() {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || !strings.HasPrefix(key, src.prefix) {
			continue
		}
		key = strings.TrimPrefix(key, src.prefix)
		if key == "" {
			continue
		}
		path := strings.ToLower(strings.ReplaceAll(key, "_", "."))
		tree.Set(path, value)
	}
	return
}
