package registry

import "strings"

// Pick is one canonical choice in a pick list: a display label plus the
// input spellings that select it.
type Pick struct {
	Label  string
	Inputs []string
}

// PickList is an ordered set of choices. A pick's position is its
// ordinal, which is the value stored for enumerated options, so the
// order of a list is part of the configuration contract.
type PickList []Pick

// Match resolves word against the accepted spellings of every pick,
// case-insensitively, and returns the ordinal of the first match.
func (pl PickList) Match(word string) (uint64, bool) {
	for ix, pick := range pl {
		for _, input := range pick.Inputs {
			if strings.EqualFold(word, input) {
				return uint64(ix), true
			}
		}
	}
	return 0, false
}

// Label returns the display label for a stored ordinal.
func (pl PickList) Label(ordinal uint64) (string, bool) {
	if ordinal >= uint64(len(pl)) {
		return "", false
	}
	return pl[ordinal].Label, true
}

var boolPicks = PickList{
	{"no", []string{"0", "n", "f", "no", "false"}},
	{"yes", []string{"1", "y", "t", "yes", "true"}},
}

var autoBoolPicks = PickList{
	{"no", []string{"0", "n", "f", "no", "false"}},
	{"yes", []string{"1", "y", "t", "yes", "true"}},
	{"auto", []string{"auto"}},
}

var repeatAttrPicks = PickList{
	{"keep-first", []string{"keep-first"}},
	{"keep-last", []string{"keep-last"}},
}

var accessPicks = PickList{
	{"0 (Classic)", []string{"0"}},
	{"1 (Priority 1 Checks)", []string{"1"}},
	{"2 (Priority 2 Checks)", []string{"2"}},
	{"3 (Priority 3 Checks)", []string{"3"}},
}

var charEncPicks = PickList{
	{"raw", []string{"raw"}},
	{"ascii", []string{"ascii"}},
	{"latin0", []string{"latin0"}},
	{"latin1", []string{"latin1"}},
	{"utf8", []string{"utf8"}},
	{"iso2022", []string{"iso2022"}},
	{"mac", []string{"mac"}},
	{"win1252", []string{"win1252"}},
	{"ibm858", []string{"ibm858"}},
	{"utf16le", []string{"utf16le"}},
	{"utf16be", []string{"utf16be"}},
	{"utf16", []string{"utf16"}},
	{"big5", []string{"big5"}},
	{"shiftjis", []string{"shiftjis"}},
}

var newlinePicks = PickList{
	{"LF", []string{"lf"}},
	{"CRLF", []string{"crlf"}},
	{"CR", []string{"cr"}},
}

var doctypePicks = PickList{
	{"html5", []string{"html5"}},
	{"omit", []string{"omit"}},
	{"auto", []string{"auto"}},
	{"strict", []string{"strict"}},
	{"transitional", []string{"loose", "transitional"}},
	{"user", []string{"user"}},
}

var sorterPicks = PickList{
	{"none", []string{"none"}},
	{"alpha", []string{"alpha"}},
}

var customTagsPicks = PickList{
	{"no", []string{"no", "n"}},
	{"blocklevel", []string{"blocklevel"}},
	{"empty", []string{"empty"}},
	{"inline", []string{"inline", "y", "yes"}},
	{"pre", []string{"pre"}},
}

var attributeCasePicks = PickList{
	{"no", []string{"0", "n", "f", "no", "false"}},
	{"yes", []string{"1", "y", "t", "yes", "true"}},
	{"preserve", []string{"preserve"}},
}
