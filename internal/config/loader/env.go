package loader

import (
	"os"
	"strings"
)

// EnvLoader reads option assignments from environment variables. A
// variable WEBGROOM_WRAP=72 assigns "wrap: 72"; underscores in the
// remainder become the dashes option names use, so
// WEBGROOM_INDENT_SPACES maps to indent-spaces.
type EnvLoader struct {
	prefix  string
	environ func() []string
}

// NewEnvLoader creates a loader for variables with the given prefix,
// including the trailing underscore (e.g. "WEBGROOM_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: os.Environ}
}

// NewEnvLoaderWithEnviron creates a loader reading from a custom
// environment list, for testing.
func NewEnvLoaderWithEnviron(prefix string, environ func() []string) *EnvLoader {
	return &EnvLoader{prefix: prefix, environ: environ}
}

// OptionName converts an environment variable name, without prefix,
// to the option name it assigns.
func OptionName(envName string) string {
	return strings.ReplaceAll(strings.ToLower(envName), "_", "-")
}

// Load applies every matching variable to s. Returns the number of
// assignments the Setter rejected; unknown names count as rejected
// unless the Setter's fallback consumes them.
func (l *EnvLoader) Load(s Setter) (int, error) {
	rejected := 0
	for _, kv := range l.environ() {
		if !strings.HasPrefix(kv, l.prefix) {
			continue
		}
		eq := strings.IndexByte(kv, '=')
		if eq < 0 {
			continue
		}
		name := OptionName(kv[len(l.prefix):eq])
		if name == "" {
			continue
		}
		if err := s.ParseOption(name, kv[eq+1:]); err != nil {
			rejected++
		}
	}
	return rejected, nil
}
