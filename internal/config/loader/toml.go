package loader

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// TOMLLoader reads option assignments from a TOML file. Keys are
// canonical option names; values may be strings, integers, booleans
// or arrays of strings, which join into a comma separated list for
// the tag options.
type TOMLLoader struct {
	fs   FileSystem
	path string
}

// NewTOMLLoader creates a TOML loader for the given path.
func NewTOMLLoader(path string) *TOMLLoader {
	return &TOMLLoader{fs: DefaultFS(), path: path}
}

// NewTOMLLoaderWithFS creates a TOML loader with a custom file system.
func NewTOMLLoaderWithFS(fs FileSystem, path string) *TOMLLoader {
	return &TOMLLoader{fs: fs, path: path}
}

// Load reads the configured path and applies every assignment to s.
// A missing file is not an error. Returns the number of assignments
// the Setter rejected.
func (l *TOMLLoader) Load(s Setter) (int, error) {
	data, err := l.fs.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading config file %s: %w", l.path, err)
	}
	return l.apply(data, s)
}

// LoadFromReader reads TOML from r and applies it to s.
func (l *TOMLLoader) LoadFromReader(r io.Reader, s Setter) (int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("reading config: %w", err)
	}
	return l.apply(data, s)
}

func (l *TOMLLoader) apply(data []byte, s Setter) (int, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", l.path, err)
	}

	// sorted for a stable assignment order
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	rejected := 0
	for _, name := range names {
		val, err := stringify(raw[name])
		if err != nil {
			return rejected, fmt.Errorf("%s: key %q: %w", l.path, name, err)
		}
		if err := s.ParseOption(name, val); err != nil {
			rejected++
		}
	}
	return rejected, nil
}

// stringify renders a decoded TOML value in the form the option
// parsers accept.
func stringify(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case bool:
		if t {
			return "yes", nil
		}
		return "no", nil
	case int64:
		return strconv.FormatInt(t, 10), nil
	case float64:
		if t != float64(int64(t)) {
			return "", fmt.Errorf("fractional numbers are not valid option values")
		}
		return strconv.FormatInt(int64(t), 10), nil
	case []any:
		parts := make([]string, 0, len(t))
		for _, item := range t {
			str, ok := item.(string)
			if !ok {
				return "", fmt.Errorf("arrays may only contain strings")
			}
			parts = append(parts, str)
		}
		return strings.Join(parts, ", "), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", v)
	}
}
