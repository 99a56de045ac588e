package tui

import "github.com/riceharvest/a11yutils/pkg/aria"

// pattern is one row of the playground: a mapper plus the states it cycles through.
type pattern struct {
	name    string
	enabled bool
	state   int
	states  []string
	build   func(state int) aria.AttributeSet
}

func (p pattern) attributes() aria.AttributeSet {
	return p.build(p.state)
}

func (p pattern) stateLabel() string {
	if len(p.states) == 0 {
		return ""
	}
	return p.states[p.state]
}

func (p *pattern) cycle() {
	if len(p.states) == 0 {
		return
	}
	p.state = (p.state + 1) % len(p.states)
}

var onOff = []string{"false", "true"}

func defaultPatterns() []pattern {
	return []pattern{
		{
			name:    "toggle",
			enabled: true,
			states:  onOff,
			build:   func(s int) aria.AttributeSet { return aria.Toggle(s == 1) },
		},
		{
			name:   "disclosure",
			states: onOff,
			build:  func(s int) aria.AttributeSet { return aria.Disclosure(s == 1, "panel") },
		},
		{
			name:   "selection",
			states: onOff,
			build:  func(s int) aria.AttributeSet { return aria.Selection(s == 1) },
		},
		{
			name:   "checked",
			states: []string{"false", "true", "mixed"},
			build: func(s int) aria.AttributeSet {
				if s == 2 {
					return aria.Checked(aria.Mixed)
				}
				return aria.Checked(s == 1)
			},
		},
		{
			name:   "live region",
			states: []string{"polite", "assertive", "off"},
			build: func(s int) aria.AttributeSet {
				levels := []aria.Politeness{aria.Polite, aria.Assertive, aria.Off}
				return aria.LiveRegion(aria.LiveRegionOptions{Politeness: levels[s]})
			},
		},
		{
			name:   "dialog trigger",
			states: []string{"closed", "open"},
			build:  func(s int) aria.AttributeSet { return aria.DialogTrigger("dialog", s == 1) },
		},
		{
			name:   "form field",
			states: []string{"valid", "invalid"},
			build:  func(s int) aria.AttributeSet { return aria.FormField(true, s == 1) },
		},
		{
			name:   "described by",
			states: []string{"hint"},
			build:  func(int) aria.AttributeSet { return aria.DescribedBy("hint") },
		},
		{
			name:   "labelled by",
			states: []string{"heading"},
			build:  func(int) aria.AttributeSet { return aria.LabelledBy("heading") },
		},
		{
			name:   "skip link",
			states: []string{"main"},
			build:  func(int) aria.AttributeSet { return aria.SkipLink("main") },
		},
		{
			name:   "preset",
			states: aria.PresetNames(),
			build: func(s int) aria.AttributeSet {
				set, _ := aria.Preset(aria.PresetNames()[s])
				return set
			},
		},
	}
}
