// Package registry defines the immutable table of configuration option
// descriptors and the pick lists their values resolve against.
//
// The table is populated in OptionID order so an ID doubles as the index
// of its row. Lookups by name are linear case-insensitive scans; the
// table is small and static, so no index is maintained.
package registry

import (
	"runtime"
	"strings"

	"github.com/webgroom/webgroom/internal/htmlenc"
)

// Option is one immutable descriptor row: everything the engine knows
// about a configuration option apart from its current value.
type Option struct {
	// ID is the dense numeric identifier, equal to the row index.
	ID OptionID

	// Category groups the option for documentation.
	Category Category

	// Name is the canonical option name as written in configuration files.
	Name string

	// Type is the kind of value the option stores.
	Type Type

	// Default is the default value for integer and boolean options.
	// String options default to the shared empty sentinel.
	Default uint64

	// Parser selects the value-parsing routine. ParserNone marks an
	// option that cannot be set independently.
	Parser ParserKind

	// Picks is the pick list for enumerated options, nil otherwise.
	Picks PickList
}

// HasParser reports whether the option can be set independently.
func (o *Option) HasParser() bool { return o.Parser != ParserNone }

const (
	yes = 1
	no  = 0
)

var defaultNewline = func() uint64 {
	if runtime.GOOS == "windows" {
		return NewlineCRLF
	}
	return NewlineLF
}()

const (
	mu = CategoryMarkup
	dg = CategoryDiagnostics
	pp = CategoryPrettyPrint
	ce = CategoryEncoding
	ms = CategoryMisc
	ir = CategoryInternal
)

// options must stay in OptionID order; the invariant is checked by test.
var options = [optionCount]Option{
	{UnknownOption, ms, "unknown!", TypeInteger, 0, ParserNone, nil},
	{AccessibilityCheckLevel, dg, "accessibility-check", TypeInteger, 0, ParserPickList, accessPicks},
	{AltText, mu, "alt-text", TypeString, 0, ParserString, nil},
	{AnchorAsName, mu, "anchor-as-name", TypeBoolean, yes, ParserPickList, boolPicks},
	{AsciiChars, ce, "ascii-chars", TypeBoolean, no, ParserPickList, boolPicks},
	{BlockTags, mu, "new-blocklevel-tags", TypeString, 0, ParserTagNames, nil},
	{BodyOnly, mu, "show-body-only", TypeInteger, no, ParserPickList, autoBoolPicks},
	{BreakBeforeBR, pp, "break-before-br", TypeBoolean, no, ParserPickList, boolPicks},
	{CharEncoding, ce, "char-encoding", TypeInteger, uint64(htmlenc.UTF8), ParserCharEnc, charEncPicks},
	{CoerceEndTags, mu, "coerce-endtags", TypeBoolean, yes, ParserPickList, boolPicks},
	{CSSPrefix, mu, "css-prefix", TypeString, 0, ParserCSS1Selector, nil},
	{CustomTags, ir, "new-custom-tags", TypeString, 0, ParserTagNames, nil},
	{DecorateInferredUL, mu, "decorate-inferred-ul", TypeBoolean, no, ParserPickList, boolPicks},
	{Doctype, mu, "doctype", TypeString, 0, ParserDocType, doctypePicks},
	{DoctypeMode, ir, "doctype-mode", TypeInteger, DoctypeAuto, ParserNone, doctypePicks},
	{DropEmptyElems, mu, "drop-empty-elements", TypeBoolean, yes, ParserPickList, boolPicks},
	{DropEmptyParas, mu, "drop-empty-paras", TypeBoolean, yes, ParserPickList, boolPicks},
	{DropPropAttrs, mu, "drop-proprietary-attributes", TypeBoolean, no, ParserPickList, boolPicks},
	{DuplicateAttrs, mu, "repeated-attributes", TypeInteger, KeepLast, ParserPickList, repeatAttrPicks},
	{Emacs, ms, "gnu-emacs", TypeBoolean, no, ParserPickList, boolPicks},
	{EmacsFile, ir, "gnu-emacs-file", TypeString, 0, ParserString, nil},
	{EmptyTags, mu, "new-empty-tags", TypeString, 0, ParserTagNames, nil},
	{EncloseBlockText, mu, "enclose-block-text", TypeBoolean, no, ParserPickList, boolPicks},
	{EncloseBodyText, mu, "enclose-text", TypeBoolean, no, ParserPickList, boolPicks},
	{ErrFile, ms, "error-file", TypeString, 0, ParserString, nil},
	{EscapeCdata, mu, "escape-cdata", TypeBoolean, no, ParserPickList, boolPicks},
	{EscapeScripts, pp, "escape-scripts", TypeBoolean, yes, ParserPickList, boolPicks},
	{FixBackslash, mu, "fix-backslash", TypeBoolean, yes, ParserPickList, boolPicks},
	{FixComments, mu, "fix-bad-comments", TypeBoolean, yes, ParserPickList, boolPicks},
	{FixURI, mu, "fix-uri", TypeBoolean, yes, ParserPickList, boolPicks},
	{ForceOutput, ms, "force-output", TypeBoolean, no, ParserPickList, boolPicks},
	{GDocClean, mu, "gdoc", TypeBoolean, no, ParserPickList, boolPicks},
	{HideComments, mu, "hide-comments", TypeBoolean, no, ParserPickList, boolPicks},
	{HTMLOut, mu, "output-html", TypeBoolean, no, ParserPickList, boolPicks},
	{InCharEncoding, ce, "input-encoding", TypeInteger, uint64(htmlenc.UTF8), ParserCharEnc, charEncPicks},
	{IndentAttributes, pp, "indent-attributes", TypeBoolean, no, ParserPickList, boolPicks},
	{IndentCdata, mu, "indent-cdata", TypeBoolean, no, ParserPickList, boolPicks},
	{IndentContent, pp, "indent", TypeInteger, uint64(NoState), ParserPickList, autoBoolPicks},
	{IndentSpaces, pp, "indent-spaces", TypeInteger, 2, ParserInt, nil},
	{InlineTags, mu, "new-inline-tags", TypeString, 0, ParserTagNames, nil},
	{JoinClasses, mu, "join-classes", TypeBoolean, no, ParserPickList, boolPicks},
	{JoinStyles, mu, "join-styles", TypeBoolean, yes, ParserPickList, boolPicks},
	{KeepFileTimes, ms, "keep-time", TypeBoolean, no, ParserPickList, boolPicks},
	{LiteralAttribs, mu, "literal-attributes", TypeBoolean, no, ParserPickList, boolPicks},
	{LogicalEmphasis, mu, "logical-emphasis", TypeBoolean, no, ParserPickList, boolPicks},
	{LowerLiterals, mu, "lower-literals", TypeBoolean, yes, ParserPickList, boolPicks},
	{MakeBare, mu, "bare", TypeBoolean, no, ParserPickList, boolPicks},
	{MakeClean, mu, "clean", TypeBoolean, no, ParserPickList, boolPicks},
	{Mark, ms, "tidy-mark", TypeBoolean, yes, ParserPickList, boolPicks},
	{MergeDivs, mu, "merge-divs", TypeInteger, uint64(AutoState), ParserPickList, autoBoolPicks},
	{MergeEmphasis, mu, "merge-emphasis", TypeBoolean, yes, ParserPickList, boolPicks},
	{MergeSpans, mu, "merge-spans", TypeInteger, uint64(AutoState), ParserPickList, autoBoolPicks},
	{MetaCharset, ms, "add-meta-charset", TypeBoolean, no, ParserPickList, boolPicks},
	{NCR, mu, "ncr", TypeBoolean, yes, ParserPickList, boolPicks},
	{Newline, ce, "newline", TypeInteger, defaultNewline, ParserPickList, newlinePicks},
	{NumEntities, mu, "numeric-entities", TypeBoolean, no, ParserPickList, boolPicks},
	{OmitOptionalTags, mu, "omit-optional-tags", TypeBoolean, no, ParserPickList, boolPicks},
	{OutCharEncoding, ce, "output-encoding", TypeInteger, uint64(htmlenc.UTF8), ParserCharEnc, charEncPicks},
	{OutFile, ms, "output-file", TypeString, 0, ParserString, nil},
	{OutputBOM, ce, "output-bom", TypeInteger, uint64(AutoState), ParserPickList, autoBoolPicks},
	{PPrintTabs, pp, "indent-with-tabs", TypeBoolean, no, ParserTabs, boolPicks},
	{PreserveEntities, mu, "preserve-entities", TypeBoolean, no, ParserPickList, boolPicks},
	{PreTags, mu, "new-pre-tags", TypeString, 0, ParserTagNames, nil},
	{PunctWrap, pp, "punctuation-wrap", TypeBoolean, no, ParserPickList, boolPicks},
	{Quiet, ms, "quiet", TypeBoolean, no, ParserPickList, boolPicks},
	{QuoteAmpersand, mu, "quote-ampersand", TypeBoolean, yes, ParserPickList, boolPicks},
	{QuoteMarks, mu, "quote-marks", TypeBoolean, no, ParserPickList, boolPicks},
	{QuoteNbsp, mu, "quote-nbsp", TypeBoolean, yes, ParserPickList, boolPicks},
	{ReplaceColor, mu, "replace-color", TypeBoolean, no, ParserPickList, boolPicks},
	{ShowErrors, dg, "show-errors", TypeInteger, 6, ParserInt, nil},
	{ShowInfo, dg, "show-info", TypeBoolean, yes, ParserPickList, boolPicks},
	{ShowMarkup, pp, "markup", TypeBoolean, yes, ParserPickList, boolPicks},
	{ShowMetaChange, ms, "show-meta-change", TypeBoolean, no, ParserPickList, boolPicks},
	{ShowWarnings, dg, "show-warnings", TypeBoolean, yes, ParserPickList, boolPicks},
	{SkipNested, mu, "skip-nested", TypeBoolean, yes, ParserPickList, boolPicks},
	{SortAttributes, pp, "sort-attributes", TypeInteger, SortAttrNone, ParserPickList, sorterPicks},
	{StrictTagsAttr, mu, "strict-tags-attributes", TypeBoolean, no, ParserPickList, boolPicks},
	{StyleTags, mu, "fix-style-tags", TypeBoolean, yes, ParserPickList, boolPicks},
	{TabSize, pp, "tab-size", TypeInteger, 8, ParserInt, nil},
	{UpperCaseAttrs, mu, "uppercase-attributes", TypeInteger, UppercaseNo, ParserPickList, attributeCasePicks},
	{UpperCaseTags, mu, "uppercase-tags", TypeBoolean, no, ParserPickList, boolPicks},
	{UseCustomTags, mu, "custom-tags", TypeInteger, CustomNo, ParserPickList, customTagsPicks},
	{VertSpace, pp, "vertical-space", TypeInteger, no, ParserPickList, autoBoolPicks},
	{WarnPropAttrs, mu, "warn-proprietary-attributes", TypeBoolean, yes, ParserPickList, boolPicks},
	{Word2000, mu, "word-2000", TypeBoolean, no, ParserPickList, boolPicks},
	{WrapAsp, pp, "wrap-asp", TypeBoolean, yes, ParserPickList, boolPicks},
	{WrapAttVals, pp, "wrap-attributes", TypeBoolean, no, ParserPickList, boolPicks},
	{WrapJste, pp, "wrap-jste", TypeBoolean, yes, ParserPickList, boolPicks},
	{WrapLen, pp, "wrap", TypeInteger, 68, ParserInt, nil},
	{WrapPhp, pp, "wrap-php", TypeBoolean, yes, ParserPickList, boolPicks},
	{WrapScriptlets, pp, "wrap-script-literals", TypeBoolean, no, ParserPickList, boolPicks},
	{WrapSection, pp, "wrap-sections", TypeBoolean, yes, ParserPickList, boolPicks},
	{WriteBack, ms, "write-back", TypeBoolean, no, ParserPickList, boolPicks},
	{XhtmlOut, mu, "output-xhtml", TypeBoolean, no, ParserPickList, boolPicks},
	{XMLDecl, mu, "add-xml-decl", TypeBoolean, no, ParserPickList, boolPicks},
	{XMLOut, mu, "output-xml", TypeBoolean, no, ParserPickList, boolPicks},
	{XMLPIs, mu, "assume-xml-procins", TypeBoolean, no, ParserPickList, boolPicks},
	{XMLSpace, mu, "add-xml-space", TypeBoolean, no, ParserPickList, boolPicks},
	{XMLTags, mu, "input-xml", TypeBoolean, no, ParserPickList, boolPicks},
}

// Count returns the number of descriptor rows, including UnknownOption.
func Count() int { return int(optionCount) }

// LookupByName finds a descriptor by its canonical name. The match is
// case-insensitive and exact; pick-list spellings are not accepted here.
// Returns nil when the name is unknown.
func LookupByName(name string) *Option {
	for ix := range options {
		if strings.EqualFold(name, options[ix].Name) {
			return &options[ix]
		}
	}
	return nil
}

// ByID returns the descriptor for id, or nil when id is out of range.
func ByID(id OptionID) *Option {
	if id < 0 || id >= optionCount {
		return nil
	}
	return &options[id]
}

// All returns the descriptor table in ID order. Callers must treat the
// returned slice as read-only.
func All() []*Option {
	out := make([]*Option, optionCount)
	for ix := range options {
		out[ix] = &options[ix]
	}
	return out
}
