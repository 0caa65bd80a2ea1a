package config

import (
	"strconv"

	"github.com/webgroom/webgroom/internal/config/notify"
	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/tags"
)

// FallbackFunc handles option names that have no descriptor. It
// receives the name and the raw remainder of the line and reports
// whether it consumed the option. Unconsumed names are counted as
// configuration errors.
type FallbackFunc func(name, value string) bool

// Option customizes a Config under construction.
type Option func(*Config)

// WithFallback installs a handler for unrecognized option names.
func WithFallback(fn FallbackFunc) Option {
	return func(c *Config) { c.fallback = fn }
}

// WithNotifier attaches a change notifier. Every successful value
// change is published to it.
func WithNotifier(n *notify.Notifier) Option {
	return func(c *Config) { c.notifier = n }
}

// WithErrorHandler installs a sink for per-option errors found while
// reading configuration files. Without one the errors are only
// counted.
func WithErrorHandler(fn func(error)) Option {
	return func(c *Config) { c.errh = fn }
}

// Config holds the current value of every option plus the custom tag
// declarations accumulated by the tag-list options.
//
// A Config is not safe for concurrent use; callers that share one
// across goroutines must serialize access themselves.
type Config struct {
	values   []value
	snapshot []value
	tags     *tags.Dictionary

	fallback FallbackFunc
	notifier *notify.Notifier
	errh     func(error)

	// errCount is the number of per-option errors seen since the
	// last ClearErrors, across files and API sets.
	errCount int
}

// New creates a Config with every option at its default.
func New(opts ...Option) *Config {
	c := &Config{
		values: make([]value, registry.Count()),
		tags:   tags.NewDictionary(),
	}
	for id := range c.values {
		c.values[id] = defaultValue(registry.ByID(registry.OptionID(id)))
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Tags exposes the custom tag declarations.
func (c *Config) Tags() *tags.Dictionary { return c.tags }

// ErrorCount reports the per-option errors seen so far.
func (c *Config) ErrorCount() int { return c.errCount }

// ClearErrors resets the per-option error count.
func (c *Config) ClearErrors() { c.errCount = 0 }

// Int returns the stored integer for id. Boolean and enumerated
// options report their ordinal. String options report zero.
func (c *Config) Int(id registry.OptionID) uint64 {
	if v, ok := c.slot(id); ok && v.kind == kindInteger {
		return v.n
	}
	return 0
}

// Bool reports whether id holds a non-zero value. For tri-state
// options both yes and auto read as true.
func (c *Config) Bool(id registry.OptionID) bool {
	return c.Int(id) != 0
}

// AutoBool returns the tri-state stored for id.
func (c *Config) AutoBool(id registry.OptionID) registry.TriState {
	return registry.TriState(c.Int(id))
}

// Str returns the stored string for id, empty when the option is at
// its default or is not a string option.
func (c *Config) Str(id registry.OptionID) string {
	if v, ok := c.slot(id); ok {
		return v.str()
	}
	return ""
}

// SetInt stores n for an integer-typed option.
func (c *Config) SetInt(id registry.OptionID, n uint64) error {
	opt := registry.ByID(id)
	if opt == nil {
		return &UnknownOptionError{Name: "#" + itoa(uint64(id))}
	}
	if opt.Type != registry.TypeInteger {
		return &BadArgumentError{Option: opt, Value: itoa(n), Message: "not an integer option"}
	}
	c.store(opt, integerValue(n), "api")
	return nil
}

// SetBool stores b for a boolean-typed option.
func (c *Config) SetBool(id registry.OptionID, b bool) error {
	opt := registry.ByID(id)
	if opt == nil {
		return &UnknownOptionError{Name: "#" + itoa(uint64(id))}
	}
	if opt.Type != registry.TypeBoolean {
		return &BadArgumentError{Option: opt, Message: "not a boolean option"}
	}
	var n uint64
	if b {
		n = 1
	}
	c.store(opt, integerValue(n), "api")
	return nil
}

// SetAutoBool stores a tri-state for an integer-typed option.
func (c *Config) SetAutoBool(id registry.OptionID, s registry.TriState) error {
	opt := registry.ByID(id)
	if opt == nil {
		return &UnknownOptionError{Name: "#" + itoa(uint64(id))}
	}
	if opt.Type != registry.TypeInteger {
		return &BadArgumentError{Option: opt, Message: "not a tri-state option"}
	}
	c.store(opt, integerValue(uint64(s)), "api")
	return nil
}

// SetStr assigns a string option by running the option's own value
// parser, so tag-list options declare their tags and the doctype
// option keeps its keyword handling. An empty string resets the
// option to its default.
func (c *Config) SetStr(id registry.OptionID, s string) error {
	opt := registry.ByID(id)
	if opt == nil {
		return &UnknownOptionError{Name: "#" + itoa(uint64(id))}
	}
	if s == "" {
		c.store(opt, stringValue(""), "api")
		return nil
	}
	return c.parseValue(opt, s, "api")
}

// ResetOption restores one option to its default.
func (c *Config) ResetOption(id registry.OptionID) error {
	opt := registry.ByID(id)
	if opt == nil {
		return &UnknownOptionError{Name: "#" + itoa(uint64(id))}
	}
	c.store(opt, defaultValue(opt), "reset")
	if isTagOption(opt.ID) {
		c.reparseTagDecls()
	}
	return nil
}

// ResetToDefault restores every option to its default and clears all
// custom tag declarations.
func (c *Config) ResetToDefault() {
	for id := range c.values {
		c.values[id] = defaultValue(registry.ByID(registry.OptionID(id)))
	}
	c.tags.Clear(tags.All)
	if c.notifier != nil {
		c.notifier.NotifyReload("reset")
	}
}

// DiffersFromDefault reports whether any option holds a non-default
// value.
func (c *Config) DiffersFromDefault() bool {
	for id, v := range c.values {
		if !v.isDefaultFor(registry.ByID(registry.OptionID(id))) {
			return true
		}
	}
	return false
}

func (c *Config) slot(id registry.OptionID) (value, bool) {
	if id < 0 || int(id) >= len(c.values) {
		return value{}, false
	}
	return c.values[id], true
}

// store writes a slot and publishes the change if the value moved.
func (c *Config) store(opt *registry.Option, v value, source string) {
	old := c.values[opt.ID]
	c.values[opt.ID] = v
	if c.notifier == nil || old.equal(v) {
		return
	}
	typ := notify.ChangeSet
	if v.isDefaultFor(opt) {
		typ = notify.ChangeReset
	}
	c.notifier.Notify(notify.Change{
		Option: opt.ID,
		Name:   opt.Name,
		Type:   typ,
		Old:    renderValue(opt, old),
		New:    renderValue(opt, v),
		Source: source,
	})
}

// reportError counts a per-option error and hands it to the handler.
func (c *Config) reportError(err error) {
	c.errCount++
	if c.errh != nil {
		c.errh(err)
	}
}

func itoa(n uint64) string { return strconv.FormatUint(n, 10) }
