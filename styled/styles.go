package styled

import (
	"fmt"
	"strings"
)

// --- Font traits -----------------------------------------------------------

// Trait is a symbolic font trait, e.g. bold or italic. The numeric value of
// a trait is its bit in the symbolic-traits encoding of font descriptors.
type Trait uint32

// Supported font traits. Values follow the font descriptor encoding of
// symbolic traits.
const (
	Italic       Trait = 1 << 0
	Bold         Trait = 1 << 1
	Expanded     Trait = 1 << 5
	Condensed    Trait = 1 << 6
	MonoSpace    Trait = 1 << 10
	Vertical     Trait = 1 << 11
	UIOptimized  Trait = 1 << 12
	TightLeading Trait = 1 << 15
	LooseLeading Trait = 1 << 16
)

var allTraits = [...]Trait{
	Italic, Bold, Expanded, Condensed, MonoSpace, Vertical,
	UIOptimized, TightLeading, LooseLeading,
}

var traitNames = map[Trait]string{
	Italic:       "italic",
	Bold:         "bold",
	Expanded:     "expanded",
	Condensed:    "condensed",
	MonoSpace:    "monospace",
	Vertical:     "vertical",
	UIOptimized:  "uioptimized",
	TightLeading: "tightleading",
	LooseLeading: "looseleading",
}

// AllTraits returns all supported traits, ordered by mask value.
func AllTraits() []Trait {
	t := allTraits
	return t[:]
}

// Mask returns the bit of t in the symbolic-traits encoding.
func (t Trait) Mask() uint32 {
	return uint32(t)
}

// Valid is true if t is one of the supported traits.
func (t Trait) Valid() bool {
	_, ok := traitNames[t]
	return ok
}

func (t Trait) String() string {
	if name, ok := traitNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Trait(%#x)", uint32(t))
}

// TraitByName finds a trait by its name. Matching is case-insensitive and
// accepts the platform spellings as well, i.e. "bold", "traitBold" and
// "UIFontDescriptorTraitBold" all denote Bold.
func TraitByName(name string) (Trait, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimPrefix(n, "uifontdescriptor")
	n = strings.TrimPrefix(n, "trait")
	if n == "" {
		return 0, false
	}
	for _, t := range allTraits {
		if traitNames[t] == n {
			return t, true
		}
	}
	return 0, false
}

// Traits is a set of font traits.
type Traits uint32

// Has is true if trait t is a member of the set.
func (ts Traits) Has(t Trait) bool {
	return t != 0 && uint32(ts)&uint32(t) == uint32(t)
}

// Add returns the set with trait t included.
func (ts Traits) Add(t Trait) Traits {
	return ts | Traits(t)
}

// Minus returns the set with trait t removed.
func (ts Traits) Minus(t Trait) Traits {
	return ts &^ Traits(t)
}

// Toggle flips membership of t.
func (ts Traits) Toggle(t Trait) Traits {
	return ts ^ Traits(t)
}

func (ts Traits) String() string {
	if ts == 0 {
		return "plain"
	}
	var names []string
	for _, t := range allTraits {
		if ts.Has(t) {
			names = append(names, t.String())
		}
	}
	if rest := ts &^ knownTraitBits(); rest != 0 {
		names = append(names, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(names, "+")
}

func knownTraitBits() Traits {
	var bits Traits
	for _, t := range allTraits {
		bits = bits.Add(t)
	}
	return bits
}

// --- Underline -------------------------------------------------------------

// Underline is the underline decoration of a run of text. A run is either
// underlined or it is not.
type Underline bool

// Underline states
const (
	UnderlineNone   Underline = false
	UnderlineSingle Underline = true
)

// IsSet is true for underlined text.
func (u Underline) IsSet() bool {
	return bool(u)
}

func (u Underline) String() string {
	if u {
		return "single"
	}
	return "none"
}

// --- Style -----------------------------------------------------------------

// Font describes the font of a run of text.
type Font struct {
	Family string
	Size   float64 // in points
	Traits Traits
}

func (f Font) String() string {
	return fmt.Sprintf("%s %gpt %s", f.Family, f.Size, f.Traits)
}

// Style represents a styling-format which can be applied to a run of text.
// Styles are comparable values.
type Style struct {
	Font      Font
	Underline Underline
	Color     string // color name or "#rrggbb"; empty for the default color
}

// Equals is true if both styles look the same.
func (sty Style) Equals(other Style) bool {
	return sty == other
}

// WithTrait returns a copy of sty with trait t set.
func (sty Style) WithTrait(t Trait) Style {
	sty.Font.Traits = sty.Font.Traits.Add(t)
	return sty
}

// WithoutTrait returns a copy of sty with trait t cleared.
func (sty Style) WithoutTrait(t Trait) Style {
	sty.Font.Traits = sty.Font.Traits.Minus(t)
	return sty
}

// WithUnderline returns a copy of sty with the underline replaced.
func (sty Style) WithUnderline(u Underline) Style {
	sty.Underline = u
	return sty
}

func (sty Style) String() string {
	var b strings.Builder
	b.WriteString(sty.Font.String())
	if sty.Underline.IsSet() {
		b.WriteString(" underline=")
		b.WriteString(sty.Underline.String())
	}
	if sty.Color != "" {
		b.WriteString(" color=")
		b.WriteString(sty.Color)
	}
	return b.String()
}
