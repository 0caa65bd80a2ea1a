package config

import (
	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/tags"
)

// TakeSnapshot records the current values so they can be restored
// after a document-local override. The configuration is made
// consistent first, so a restore brings back exactly what a parse
// would have produced.
func (c *Config) TakeSnapshot() {
	c.Adjust()
	if c.snapshot == nil {
		c.snapshot = make([]value, len(c.values))
	}
	copy(c.snapshot, c.values)
}

// RestoreSnapshot brings back the values stored by the last
// TakeSnapshot. Tag declarations are rebuilt for every tag-list
// option whose value moved since the snapshot. Without a prior
// snapshot every option returns to its default.
func (c *Config) RestoreSnapshot() {
	if c.snapshot == nil {
		c.ResetToDefault()
		return
	}
	changed := c.changedTagDecls(c.snapshot)
	copy(c.values, c.snapshot)
	c.reparseChanged(changed)
	if c.notifier != nil {
		c.notifier.NotifyReload("snapshot")
	}
}

// CopyFrom replaces this configuration with other's values. The
// previous values become the snapshot, and tag declarations are
// rebuilt where the tag-list options differ.
func (c *Config) CopyFrom(other *Config) {
	if c == other {
		return
	}
	changed := c.changedTagDecls(other.values)
	c.TakeSnapshot()
	copy(c.values, other.values)
	c.reparseChanged(changed)
	c.Adjust()
	if c.notifier != nil {
		c.notifier.NotifyReload("copy")
	}
}

// DiffersFromSnapshot reports whether any option moved since the last
// TakeSnapshot.
func (c *Config) DiffersFromSnapshot() bool {
	if c.snapshot == nil {
		return c.DiffersFromDefault()
	}
	for ix := range c.values {
		if !c.values[ix].equal(c.snapshot[ix]) {
			return true
		}
	}
	return false
}

// changedTagDecls compares the current values against next and
// returns the tag categories whose declaring option differs.
func (c *Config) changedTagDecls(next []value) tags.TagType {
	changed := tags.None
	for id, ttyp := range userTagTypes {
		if !c.values[id].equal(next[id]) {
			changed |= ttyp
		}
	}
	return changed
}

// reparseChanged rebuilds tag declarations for the changed categories
// by running the stored option strings back through the tag parser.
func (c *Config) reparseChanged(changed tags.TagType) {
	if changed == tags.None {
		return
	}
	for id, ttyp := range userTagTypes {
		if changed&ttyp == tags.None {
			continue
		}
		c.tags.Clear(ttyp)
		decl := c.Str(id)
		if decl == "" {
			continue
		}
		if err := c.parseValue(registry.ByID(id), decl, "reparse"); err != nil {
			c.reportError(err)
		}
	}
}

// reparseTagDecls rebuilds every tag category from the stored option
// strings, used when a tag option is reset directly.
func (c *Config) reparseTagDecls() {
	c.reparseChanged(tags.All)
}
