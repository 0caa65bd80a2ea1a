package registry

// OptionID identifies a configuration option. IDs are dense and double as
// the index of the option's row in the descriptor table.
type OptionID int

// Option identifiers, in descriptor-table order.
const (
	UnknownOption OptionID = iota
	AccessibilityCheckLevel
	AltText
	AnchorAsName
	AsciiChars
	BlockTags
	BodyOnly
	BreakBeforeBR
	CharEncoding
	CoerceEndTags
	CSSPrefix
	CustomTags
	DecorateInferredUL
	Doctype
	DoctypeMode
	DropEmptyElems
	DropEmptyParas
	DropPropAttrs
	DuplicateAttrs
	Emacs
	EmacsFile
	EmptyTags
	EncloseBlockText
	EncloseBodyText
	ErrFile
	EscapeCdata
	EscapeScripts
	FixBackslash
	FixComments
	FixURI
	ForceOutput
	GDocClean
	HideComments
	HTMLOut
	InCharEncoding
	IndentAttributes
	IndentCdata
	IndentContent
	IndentSpaces
	InlineTags
	JoinClasses
	JoinStyles
	KeepFileTimes
	LiteralAttribs
	LogicalEmphasis
	LowerLiterals
	MakeBare
	MakeClean
	Mark
	MergeDivs
	MergeEmphasis
	MergeSpans
	MetaCharset
	NCR
	Newline
	NumEntities
	OmitOptionalTags
	OutCharEncoding
	OutFile
	OutputBOM
	PPrintTabs
	PreserveEntities
	PreTags
	PunctWrap
	Quiet
	QuoteAmpersand
	QuoteMarks
	QuoteNbsp
	ReplaceColor
	ShowErrors
	ShowInfo
	ShowMarkup
	ShowMetaChange
	ShowWarnings
	SkipNested
	SortAttributes
	StrictTagsAttr
	StyleTags
	TabSize
	UpperCaseAttrs
	UpperCaseTags
	UseCustomTags
	VertSpace
	WarnPropAttrs
	Word2000
	WrapAsp
	WrapAttVals
	WrapJste
	WrapLen
	WrapPhp
	WrapScriptlets
	WrapSection
	WriteBack
	XhtmlOut
	XMLDecl
	XMLOut
	XMLPIs
	XMLSpace
	XMLTags

	optionCount
)

// Type is the value kind an option stores.
type Type uint8

const (
	// TypeInteger stores an unsigned integer, including enumerated and
	// tri-state values.
	TypeInteger Type = iota
	// TypeBoolean stores yes or no.
	TypeBoolean
	// TypeString stores an owned string.
	TypeString
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	default:
		return "unknown"
	}
}

// Category groups options for documentation purposes.
type Category uint8

const (
	// CategoryMarkup covers options that alter the emitted markup.
	CategoryMarkup Category = iota
	// CategoryDiagnostics covers reporting options.
	CategoryDiagnostics
	// CategoryPrettyPrint covers layout options.
	CategoryPrettyPrint
	// CategoryEncoding covers character-encoding options.
	CategoryEncoding
	// CategoryMisc covers everything else.
	CategoryMisc
	// CategoryInternal marks options not meant for user documentation.
	CategoryInternal
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryMarkup:
		return "markup"
	case CategoryDiagnostics:
		return "diagnostics"
	case CategoryPrettyPrint:
		return "print"
	case CategoryEncoding:
		return "encoding"
	case CategoryMisc:
		return "misc"
	case CategoryInternal:
		return "internal"
	default:
		return "unknown"
	}
}

// ParserKind selects the parsing routine for an option's value.
// ParserNone marks options that cannot be set independently.
type ParserKind uint8

const (
	// ParserNone marks an option with no parser.
	ParserNone ParserKind = iota
	// ParserInt parses an unsigned decimal integer.
	ParserInt
	// ParserString parses an optionally quoted, whitespace-collapsed string.
	ParserString
	// ParserCSS1Selector parses a CSS class prefix.
	ParserCSS1Selector
	// ParserTagNames parses a comma or space separated tag-name list.
	ParserTagNames
	// ParserCharEnc parses a character-encoding name.
	ParserCharEnc
	// ParserDocType parses a doctype keyword or quoted FPI.
	ParserDocType
	// ParserTabs parses the indent-with-tabs boolean.
	ParserTabs
	// ParserPickList parses any plain pick-list value.
	ParserPickList
)

// TriState is the auto/yes/no encoding stored by tri-state options.
type TriState uint64

// Tri-state values. The yes/no values double as boolean ordinals.
const (
	NoState TriState = iota
	YesState
	AutoState
)

// Doctype modes, in pick-list order.
const (
	DoctypeHTML5 = iota
	DoctypeOmit
	DoctypeAuto
	DoctypeStrict
	DoctypeLoose
	DoctypeUser
)

// Repeated-attribute modes, in pick-list order.
const (
	KeepFirst = iota
	KeepLast
)

// Newline styles, in pick-list order.
const (
	NewlineLF = iota
	NewlineCRLF
	NewlineCR
)

// Attribute-case modes, in pick-list order.
const (
	UppercaseNo = iota
	UppercaseYes
	UppercasePreserve
)

// Attribute-sort modes, in pick-list order.
const (
	SortAttrNone = iota
	SortAttrAlpha
)

// Custom-tag modes, in pick-list order.
const (
	CustomNo = iota
	CustomBlocklevel
	CustomEmpty
	CustomInline
	CustomPre
)
