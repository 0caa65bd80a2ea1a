package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/webgroom/webgroom/internal/config/registry"
	"github.com/webgroom/webgroom/internal/htmlenc"
	"github.com/webgroom/webgroom/internal/tags"
)

func parseText(t *testing.T, c *Config, text string) int {
	t.Helper()
	problems, err := c.ParseReader(strings.NewReader(text), "test")
	if err != nil {
		t.Fatalf("ParseReader: %v", err)
	}
	return problems
}

func TestParseBasicProperties(t *testing.T) {
	c := New()
	problems := parseText(t, c, `// comment line
# another comment
wrap: 72
indent: auto
quiet: yes
alt-text: image of a chart
`)
	if problems != 0 {
		t.Fatalf("problems = %d, want 0", problems)
	}
	if got := c.Int(registry.WrapLen); got != 72 {
		t.Errorf("wrap = %d", got)
	}
	if c.AutoBool(registry.IndentContent) != registry.AutoState {
		t.Error("indent not auto")
	}
	if !c.Bool(registry.Quiet) {
		t.Error("quiet not set")
	}
	if got := c.Str(registry.AltText); got != "image of a chart" {
		t.Errorf("alt-text = %q", got)
	}
}

func TestParseNamesAreCaseInsensitive(t *testing.T) {
	c := New()
	if problems := parseText(t, c, "WRAP: 90\n"); problems != 0 {
		t.Fatalf("problems = %d", problems)
	}
	if got := c.Int(registry.WrapLen); got != 90 {
		t.Errorf("wrap = %d", got)
	}
}

func TestParseBoolSpellings(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1", true}, {"y", true}, {"t", true}, {"yes", true}, {"true", true}, {"TRUE", true},
		{"0", false}, {"n", false}, {"f", false}, {"no", false}, {"false", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := New()
			if problems := parseText(t, c, "quiet: "+tt.in+"\n"); problems != 0 {
				t.Fatalf("problems = %d", problems)
			}
			if got := c.Bool(registry.Quiet); got != tt.want {
				t.Errorf("quiet = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBadValuesAreCounted(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"bad bool", "quiet: maybe\n"},
		{"bad int", "wrap: wide\n"},
		{"bad encoding", "char-encoding: ebcdic\n"},
		{"bad doctype", "doctype: html6\n"},
		{"unknown name", "no-such-option: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if problems := parseText(t, c, tt.text); problems != 1 {
				t.Errorf("problems = %d, want 1", problems)
			}
		})
	}
}

func TestParseContinuesAfterBadProperty(t *testing.T) {
	c := New()
	problems := parseText(t, c, "wrap: wide\ntab-size: 3\n")
	if problems != 1 {
		t.Fatalf("problems = %d, want 1", problems)
	}
	if got := c.Int(registry.TabSize); got != 3 {
		t.Errorf("tab-size = %d, want 3", got)
	}
}

func TestParseQuotedString(t *testing.T) {
	c := New()
	parseText(t, c, "alt-text: 'spacer  graphic'\n")
	if got := c.Str(registry.AltText); got != "spacer  graphic" {
		t.Errorf("alt-text = %q", got)
	}
}

func TestParseDoctype(t *testing.T) {
	t.Run("keyword", func(t *testing.T) {
		c := New()
		parseText(t, c, "doctype: strict\n")
		if got := c.Int(registry.DoctypeMode); got != registry.DoctypeStrict {
			t.Errorf("doctype-mode = %d", got)
		}
		if c.Str(registry.Doctype) != "" {
			t.Error("keyword doctype should not fill the string slot")
		}
	})
	t.Run("alias", func(t *testing.T) {
		c := New()
		parseText(t, c, "doctype: loose\n")
		if got := c.Int(registry.DoctypeMode); got != registry.DoctypeLoose {
			t.Errorf("doctype-mode = %d", got)
		}
	})
	t.Run("user fpi", func(t *testing.T) {
		c := New()
		parseText(t, c, "doctype: \"-//ACME//DTD HTML 3.14159//EN\"\n")
		if got := c.Int(registry.DoctypeMode); got != registry.DoctypeUser {
			t.Errorf("doctype-mode = %d", got)
		}
		if got := c.Str(registry.Doctype); got != "-//ACME//DTD HTML 3.14159//EN" {
			t.Errorf("doctype = %q", got)
		}
	})
}

func TestParseTagNamesDeclares(t *testing.T) {
	c := New()
	parseText(t, c, "new-inline-tags: clause, verse epigraph\n")

	if got := c.Str(registry.InlineTags); got != "clause, verse, epigraph" {
		t.Errorf("stored list = %q", got)
	}
	for _, name := range []string{"clause", "verse", "epigraph"} {
		if !c.Tags().IsDeclared(tags.Inline, name) {
			t.Errorf("%s not declared inline", name)
		}
	}
}

func TestParseTagNamesContinuation(t *testing.T) {
	c := New()
	parseText(t, c, "new-blocklevel-tags: chapter,\n  section\nwrap: 72\n")

	if got := c.Str(registry.BlockTags); got != "chapter, section" {
		t.Errorf("stored list = %q", got)
	}
	if !c.Tags().IsDeclared(tags.Block, "section") {
		t.Error("continued line not parsed into declarations")
	}
	if got := c.Int(registry.WrapLen); got != 72 {
		t.Errorf("option after tag list lost: wrap = %d", got)
	}
}

func TestParseTagNamesReplacesPrior(t *testing.T) {
	c := New()
	parseText(t, c, "new-empty-tags: glyph\n")
	parseText(t, c, "new-empty-tags: sigil\n")

	if c.Tags().IsDeclared(tags.Empty, "glyph") {
		t.Error("earlier declaration survived a replacement")
	}
	if !c.Tags().IsDeclared(tags.Empty, "sigil") {
		t.Error("replacement declaration missing")
	}
	if got := c.Str(registry.EmptyTags); got != "sigil" {
		t.Errorf("stored list = %q", got)
	}
}

func TestParseCustomTagsUsesMode(t *testing.T) {
	c := New()
	parseText(t, c, "custom-tags: empty\nnew-custom-tags: wg-box\n")
	if !c.Tags().IsDeclared(tags.Empty, "wg-box") {
		t.Error("autodiscovered tag not declared under the custom mode")
	}
}

func TestParseCharEncodingAdjusts(t *testing.T) {
	tests := []struct {
		name    string
		enc     string
		in, out htmlenc.ID
	}{
		{"win1252 writes ascii", "win1252", htmlenc.Win1252, htmlenc.ASCII},
		{"mac writes ascii", "mac", htmlenc.Mac, htmlenc.ASCII},
		{"ascii reads latin1", "ascii", htmlenc.Latin1, htmlenc.ASCII},
		{"latin0 writes ascii", "latin0", htmlenc.Latin0, htmlenc.ASCII},
		{"utf8 is symmetric", "utf8", htmlenc.UTF8, htmlenc.UTF8},
		{"big5 is symmetric", "big5", htmlenc.Big5, htmlenc.Big5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			if problems := parseText(t, c, "char-encoding: "+tt.enc+"\n"); problems != 0 {
				t.Fatalf("problems = %d", problems)
			}
			if got := htmlenc.ID(c.Int(registry.InCharEncoding)); got != tt.in {
				t.Errorf("input-encoding = %v, want %v", got, tt.in)
			}
			if got := htmlenc.ID(c.Int(registry.OutCharEncoding)); got != tt.out {
				t.Errorf("output-encoding = %v, want %v", got, tt.out)
			}
		})
	}
}

func TestParseMimeAlias(t *testing.T) {
	c := New()
	if problems := parseText(t, c, "input-encoding: ISO-8859-1\n"); problems != 0 {
		t.Fatalf("problems = %d", problems)
	}
	if got := htmlenc.ID(c.Int(registry.InCharEncoding)); got != htmlenc.Latin1 {
		t.Errorf("input-encoding = %v", got)
	}
}

func TestParseTabs(t *testing.T) {
	c := New()
	parseText(t, c, "indent: yes\nindent-with-tabs: yes\n")
	if !c.Bool(registry.PPrintTabs) {
		t.Error("indent-with-tabs not set")
	}
	if got := c.Int(registry.IndentSpaces); got != 1 {
		t.Errorf("indent-spaces = %d, want 1", got)
	}
}

func TestParseTabsZeroedByIndentOff(t *testing.T) {
	c := New()
	parseText(t, c, "indent-with-tabs: yes\n")
	if !c.Bool(registry.PPrintTabs) {
		t.Error("indent-with-tabs not set")
	}
	if got := c.Int(registry.IndentSpaces); got != 0 {
		t.Errorf("indent-spaces = %d, want 0 while indent is off", got)
	}
}

func TestParseCSSPrefix(t *testing.T) {
	t.Run("valid gains dash", func(t *testing.T) {
		c := New()
		if problems := parseText(t, c, "css-prefix: groom\n"); problems != 0 {
			t.Fatalf("problems = %d", problems)
		}
		if got := c.Str(registry.CSSPrefix); got != "groom-" {
			t.Errorf("css-prefix = %q", got)
		}
	})
	t.Run("leading digit rejected", func(t *testing.T) {
		c := New()
		if problems := parseText(t, c, "css-prefix: 1col\n"); problems != 1 {
			t.Errorf("problems = %d, want 1", problems)
		}
	})
	t.Run("escaped digits allowed", func(t *testing.T) {
		c := New()
		if problems := parseText(t, c, `css-prefix: ab\555\444`+"\n"); problems != 0 {
			t.Errorf("problems = %d, want 0", problems)
		}
	})
}

func TestParseFallback(t *testing.T) {
	var names, values []string
	c := New(WithFallback(func(name, value string) bool {
		names = append(names, name)
		values = append(values, value)
		return name == "plugin-dir"
	}))

	problems := parseText(t, c, "plugin-dir: /opt/groom\nmystery: 42\n")
	if problems != 1 {
		t.Errorf("problems = %d, want 1 for the unconsumed name", problems)
	}
	if len(names) != 2 || names[0] != "plugin-dir" || values[0] != "/opt/groom" {
		t.Errorf("fallback saw %v %v", names, values)
	}
}

func TestParseValueTooLong(t *testing.T) {
	c := New()
	long := strings.Repeat("a", maxStringLen+10)
	err := c.ParseValue(registry.AltText, long)
	if !errors.Is(err, ErrValueTooLong) {
		t.Errorf("err = %v, want ErrValueTooLong", err)
	}
}

func TestParseReadOnlyOption(t *testing.T) {
	c := New()
	err := c.ParseValue(registry.DoctypeMode, "strict")
	if !errors.Is(err, ErrReadOnlyOption) {
		t.Errorf("err = %v, want ErrReadOnlyOption", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "groomrc")
	text := "wrap: 84\nnew-pre-tags: listing\n"
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	c := New()
	problems, err := c.ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if problems != 0 {
		t.Errorf("problems = %d", problems)
	}
	if got := c.Int(registry.WrapLen); got != 84 {
		t.Errorf("wrap = %d", got)
	}
	if !c.Tags().IsDeclared(tags.Pre, "listing") {
		t.Error("pre tag not declared")
	}
}

func TestParseFileMissing(t *testing.T) {
	c := New()
	_, err := c.ParseFile(filepath.Join(t.TempDir(), "absent"))
	if !errors.Is(err, ErrFileNotFound) {
		t.Errorf("err = %v, want ErrFileNotFound", err)
	}
}

func TestParseFileEncUnknownEncoding(t *testing.T) {
	c := New()
	_, err := c.ParseFileEnc("whatever", "klingon")
	var ferr *FileError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want *FileError", err)
	}
	if !errors.Is(err, ErrBadArgument) {
		t.Errorf("err = %v, want ErrBadArgument cause", err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rc")
	if FileExists(path) {
		t.Error("missing file reported as existing")
	}
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if !FileExists(path) {
		t.Error("existing file reported as missing")
	}
}
