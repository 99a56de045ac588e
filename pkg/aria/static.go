package aria

import "sort"

var (
	hiddenFromAT = AttributeSet{KeyHidden: True}

	disabledInteractive = AttributeSet{
		KeyDisabled: True,
		KeyTabIndex: Unreachable,
	}

	statusAnnouncement = AttributeSet{
		KeyRole: RoleStatus,
		KeyLive: Polite,
	}

	alertAnnouncement = AttributeSet{
		KeyRole: RoleAlert,
		KeyLive: Assertive,
	}

	presets = map[string]AttributeSet{
		"hidden":   hiddenFromAT,
		"disabled": disabledInteractive,
		"status":   statusAnnouncement,
		"alert":    alertAnnouncement,
	}
)

// HiddenFromAT removes an element from the accessibility tree.
func HiddenFromAT() AttributeSet { return hiddenFromAT.Clone() }

// DisabledInteractive marks a control disabled and takes it out of the tab order.
func DisabledInteractive() AttributeSet { return disabledInteractive.Clone() }

// StatusAnnouncement is a polite status region.
func StatusAnnouncement() AttributeSet { return statusAnnouncement.Clone() }

// AlertAnnouncement is an assertive alert region.
func AlertAnnouncement() AttributeSet { return alertAnnouncement.Clone() }

// Preset returns a copy of the static set registered under name: "hidden",
// "disabled", "status" or "alert".
func Preset(name string) (AttributeSet, bool) {
	set, ok := presets[name]
	if !ok {
		return nil, false
	}
	return set.Clone(), true
}

// PresetNames lists the registered static set names in lexical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
