// Package style holds fixed visual-hiding presets for content that must stay
// available to assistive technology.
package style

import (
	"sort"
	"strings"
)

// Declaration is a single CSS property/value pair.
type Declaration struct {
	Property string
	Value    string
}

// Preset is an ordered, read-only set of CSS declarations. Its contents cannot
// be changed after construction; accessors return copies.
type Preset struct {
	name  string
	decls []Declaration
}

var visuallyHidden = Preset{
	name: "visually_hidden",
	decls: []Declaration{
		{Property: "position", Value: "absolute"},
		{Property: "width", Value: "1px"},
		{Property: "height", Value: "1px"},
		{Property: "padding", Value: "0"},
		{Property: "margin", Value: "-1px"},
		{Property: "overflow", Value: "hidden"},
		{Property: "clip", Value: "rect(0, 0, 0, 0)"},
		{Property: "white-space", Value: "nowrap"},
		{Property: "border", Value: "0"},
	},
}

var visuallyHiddenUntilFocus = Preset{
	name: "visually_hidden_until_focus",
	decls: []Declaration{
		{Property: "position", Value: "absolute"},
		{Property: "width", Value: "auto"},
		{Property: "height", Value: "auto"},
		{Property: "padding", Value: "0.5rem 1rem"},
		{Property: "margin", Value: "0"},
		{Property: "overflow", Value: "visible"},
		{Property: "clip", Value: "auto"},
		{Property: "white-space", Value: "normal"},
		{Property: "border", Value: "0"},
	},
}

var registry = map[string]Preset{
	visuallyHidden.name:           visuallyHidden,
	visuallyHiddenUntilFocus.name: visuallyHiddenUntilFocus,
}

// VisuallyHidden removes an element from visual rendering while keeping it in
// the accessibility tree and reachable by keyboard.
func VisuallyHidden() Preset { return visuallyHidden }

// VisuallyHiddenUntilFocus is the revealed style for a visually hidden element
// that has received keyboard focus. Swapping styles on focus is up to the caller.
func VisuallyHiddenUntilFocus() Preset { return visuallyHiddenUntilFocus }

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered preset names in lexical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the preset's registered name.
func (p Preset) Name() string {
	return p.name
}

// IsZero reports whether p holds no declarations.
func (p Preset) IsZero() bool {
	return len(p.decls) == 0
}

// Get returns the value declared for property.
func (p Preset) Get(property string) (string, bool) {
	for _, d := range p.decls {
		if d.Property == property {
			return d.Value, true
		}
	}
	return "", false
}

// Declarations returns the declarations in order.
func (p Preset) Declarations() []Declaration {
	out := make([]Declaration, len(p.decls))
	copy(out, p.decls)
	return out
}

// Map returns the declarations keyed by property.
func (p Preset) Map() map[string]string {
	out := make(map[string]string, len(p.decls))
	for _, d := range p.decls {
		out[d.Property] = d.Value
	}
	return out
}

// CSS renders the declarations as inline style text.
func (p Preset) CSS() string {
	parts := make([]string, 0, len(p.decls))
	for _, d := range p.decls {
		parts = append(parts, d.Property+": "+d.Value)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "; ") + ";"
}
