package aria

// Toggle maps a toggle button's pressed state.
func Toggle(pressed bool) AttributeSet {
	return AttributeSet{KeyPressed: BoolOf(pressed)}
}

// Disclosure maps a disclosure widget's expanded state and the element it controls.
// controlledID is copied verbatim.
func Disclosure(expanded bool, controlledID string) AttributeSet {
	return AttributeSet{
		KeyExpanded: BoolOf(expanded),
		KeyControls: IDRef(controlledID),
	}
}

// Selection maps an option or tab's selected state.
func Selection(selected bool) AttributeSet {
	return AttributeSet{KeySelected: BoolOf(selected)}
}

// CheckedState is the input domain of Checked: a boolean or the Mixed literal.
type CheckedState interface {
	bool | Tristate
}

// Checked maps a tri-state checkbox. Tristate values pass through unchanged and
// booleans are mirrored as strings.
func Checked[T CheckedState](state T) AttributeSet {
	var value Tristate
	switch v := any(state).(type) {
	case Tristate:
		value = v
	case bool:
		value = Tristate(BoolOf(v))
	}
	return AttributeSet{KeyChecked: value}
}

// LiveRegionOptions configures LiveRegion. The zero value of every field selects
// its default: polite announcements, non-atomic updates, additions only, not busy.
type LiveRegionOptions struct {
	Atomic     bool
	Relevant   Relevant
	Busy       bool
	Politeness Politeness
}

// DefaultRelevant is the relevance category used when none is configured.
const DefaultRelevant = Additions

// DefaultPoliteness is the assertiveness used when none is configured.
const DefaultPoliteness = Polite

// LiveRegion maps live region options, applying defaults for unset fields.
// Called with no options it yields the default region; only the first options
// value is used.
func LiveRegion(options ...LiveRegionOptions) AttributeSet {
	var opts LiveRegionOptions
	if len(options) > 0 {
		opts = options[0]
	}

	politeness := opts.Politeness
	if politeness == "" {
		politeness = DefaultPoliteness
	}
	relevant := opts.Relevant
	if relevant == "" {
		relevant = DefaultRelevant
	}

	return AttributeSet{
		KeyLive:     politeness,
		KeyAtomic:   BoolOf(opts.Atomic),
		KeyRelevant: relevant,
		KeyBusy:     BoolOf(opts.Busy),
	}
}

// DialogTrigger maps a control that opens a dialog.
func DialogTrigger(dialogID string, isOpen bool) AttributeSet {
	return AttributeSet{
		KeyHasPopup: PopupDialog,
		KeyControls: IDRef(dialogID),
		KeyExpanded: BoolOf(isOpen),
	}
}

// FormField maps a form control's required and invalid states. invalid is
// optional and defaults to false. aria-invalid is only present when invalid is
// true; a valid field carries no invalid key at all.
func FormField(required bool, invalid ...bool) AttributeSet {
	attrs := AttributeSet{KeyRequired: BoolOf(required)}
	if len(invalid) > 0 && invalid[0] {
		attrs[KeyInvalid] = True
	}
	return attrs
}

// DescribedBy references the element that describes the target.
func DescribedBy(describedByID string) AttributeSet {
	return AttributeSet{KeyDescribedBy: IDRef(describedByID)}
}

// LabelledBy references the element that labels the target.
func LabelledBy(labelledByID string) AttributeSet {
	return AttributeSet{KeyLabelledBy: IDRef(labelledByID)}
}

// SkipLink maps a link that jumps to targetID. The target is always fragment
// prefixed and the link stays in the natural tab order.
func SkipLink(targetID string) AttributeSet {
	return AttributeSet{
		KeyHref:     Text("#" + targetID),
		KeyTabIndex: TabIndex(0),
	}
}

// CurrentItem marks the current item of a navigation set.
func CurrentItem(current Current) AttributeSet {
	return AttributeSet{KeyCurrent: current}
}

// Hidden maps whether an element is hidden from assistive technology.
func Hidden(hidden bool) AttributeSet {
	return AttributeSet{KeyHidden: BoolOf(hidden)}
}

// Disabled maps an element's disabled state without changing its tab order.
func Disabled(disabled bool) AttributeSet {
	return AttributeSet{KeyDisabled: BoolOf(disabled)}
}

// Busy maps whether an element is being updated.
func Busy(busy bool) AttributeSet {
	return AttributeSet{KeyBusy: BoolOf(busy)}
}

// Label sets an accessible name directly.
func Label(text string) AttributeSet {
	return AttributeSet{KeyLabel: Text(text)}
}
