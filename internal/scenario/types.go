package scenario

import "strings"

// Pattern type identifiers accepted in scenario documents.
const (
	PatternToggle        = "toggle"
	PatternDisclosure    = "disclosure"
	PatternSelection     = "selection"
	PatternChecked       = "checked"
	PatternLiveRegion    = "live_region"
	PatternDialogTrigger = "dialog_trigger"
	PatternFormField     = "form_field"
	PatternDescribedBy   = "described_by"
	PatternLabelledBy    = "labelled_by"
	PatternSkipLink      = "skip_link"
	PatternPreset        = "preset"
	PatternCurrent       = "current"
	PatternLabel         = "label"
	PatternHidden        = "hidden"
)

// Scenario is a document describing elements and the interaction patterns
// applied to each.
type Scenario struct {
	Version     string    `yaml:"version" validate:"required,semver"`
	Name        string    `yaml:"name" validate:"required,min=1,max=100"`
	Description string    `yaml:"description,omitempty"`
	Settings    Settings  `yaml:"settings,omitempty"`
	Elements    []Element `yaml:"elements" validate:"required,min=1,dive"`
}

// Settings holds document-wide evaluation switches.
type Settings struct {
	// Strict validates identifiers before mapping and every produced set after.
	Strict bool `yaml:"strict,omitempty"`
	// CheckRefs requires id references to name elements of the same document.
	CheckRefs bool `yaml:"check_refs,omitempty"`
	// Parallel bounds how many elements are evaluated at once.
	Parallel int `yaml:"parallel,omitempty" validate:"omitempty,min=1,max=64"`
}

// Element is one UI element. Patterns are applied in order; later patterns win
// on key collisions.
type Element struct {
	ID       string    `yaml:"id" validate:"required,element_id"`
	Tag      string    `yaml:"tag,omitempty" validate:"omitempty,lowercase,alphanum"`
	Text     string    `yaml:"text,omitempty"`
	Style    string    `yaml:"style,omitempty" validate:"omitempty,style_preset"`
	Patterns []Pattern `yaml:"patterns" validate:"required,min=1,dive"`
}

// TagName returns the element's tag, defaulting to div.
func (e Element) TagName() string {
	if strings.TrimSpace(e.Tag) == "" {
		return "div"
	}
	return e.Tag
}

// Pattern is a single interaction pattern. Which fields apply depends on Type.
type Pattern struct {
	Type string `yaml:"type" validate:"required,pattern_type"`

	Pressed  bool   `yaml:"pressed,omitempty"`
	Expanded bool   `yaml:"expanded,omitempty"`
	Selected bool   `yaml:"selected,omitempty"`
	Checked  string `yaml:"checked,omitempty" validate:"omitempty,oneof=true false mixed"`
	Controls string `yaml:"controls,omitempty"`
	Dialog   string `yaml:"dialog,omitempty"`
	Open     bool   `yaml:"open,omitempty"`
	Required bool   `yaml:"required,omitempty"`
	Invalid  bool   `yaml:"invalid,omitempty"`
	Ref      string `yaml:"ref,omitempty"`
	Target   string `yaml:"target,omitempty"`
	Preset   string `yaml:"preset,omitempty"`
	Current  string `yaml:"current,omitempty" validate:"omitempty,oneof=page step location date time true false"`
	Label    string `yaml:"label,omitempty"`
	Hidden   bool   `yaml:"hidden,omitempty"`

	Live *LiveOptions `yaml:"live,omitempty"`
}

// LiveOptions mirrors aria.LiveRegionOptions. Empty fields take the library defaults.
type LiveOptions struct {
	Politeness string   `yaml:"politeness,omitempty" validate:"omitempty,oneof=off polite assertive"`
	Relevant   []string `yaml:"relevant,omitempty"`
	Atomic     bool     `yaml:"atomic,omitempty"`
	Busy       bool     `yaml:"busy,omitempty"`
}

// References returns the element ids a pattern points at, keyed by field name.
func (p Pattern) References() map[string][]string {
	refs := make(map[string][]string)
	add := func(field, value string) {
		if ids := strings.Fields(value); len(ids) > 0 {
			refs[field] = ids
		}
	}

	switch p.Type {
	case PatternDisclosure:
		add("controls", p.Controls)
	case PatternDialogTrigger:
		add("dialog", p.Dialog)
	case PatternDescribedBy, PatternLabelledBy:
		add("ref", p.Ref)
	case PatternSkipLink:
		add("target", p.Target)
	}
	return refs
}
