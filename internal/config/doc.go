// Package config implements the option engine: a fixed table of typed
// options, parsers for the classic "name: value" configuration file
// format, and the consistency rules that keep related options aligned.
//
// A Config starts with every option at its table default. Values come
// in through configuration files (ParseFile), single assignments by
// name (ParseOption) or typed setters, and every route runs the same
// per-option parser so spellings and side effects stay uniform. After
// a file is read, Adjust reconciles options that constrain each other,
// for example XML output forcing end tags.
//
// Snapshots support document-local overrides: TakeSnapshot captures
// the current values and RestoreSnapshot brings them back, rebuilding
// custom tag declarations when the tag-list options moved in between.
//
// Subpackages handle the surrounding machinery: registry holds the
// option table, scanner the character stream, loader alternate input
// formats, notify change delivery and watcher live reloading.
package config
