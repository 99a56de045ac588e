package aria

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBooleanMirroringMappers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mapper func(bool) AttributeSet
		key    Key
	}{
		{name: "toggle", mapper: Toggle, key: KeyPressed},
		{name: "selection", mapper: Selection, key: KeySelected},
		{name: "hidden", mapper: Hidden, key: KeyHidden},
		{name: "disabled", mapper: Disabled, key: KeyDisabled},
		{name: "busy", mapper: Busy, key: KeyBusy},
		{name: "disclosure", mapper: func(b bool) AttributeSet { return Disclosure(b, "panel") }, key: KeyExpanded},
		{name: "dialog trigger", mapper: func(b bool) AttributeSet { return DialogTrigger("dialog", b) }, key: KeyExpanded},
		{name: "form field required", mapper: func(b bool) AttributeSet { return FormField(b, false) }, key: KeyRequired},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, b := range []bool{true, false} {
				attrs := tc.mapper(b)
				value, ok := attrs.Get(tc.key)
				require.True(t, ok)
				require.Equal(t, DomainBool, value.Domain())

				want := "false"
				if b {
					want = "true"
				}
				require.Equal(t, want, value.String())
			}
		})
	}
}

func TestToggle(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{KeyPressed: True}, Toggle(true))
	require.Equal(t, AttributeSet{KeyPressed: False}, Toggle(false))
}

func TestDisclosure(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{KeyExpanded: True, KeyControls: IDRef("panel-1")}, Disclosure(true, "panel-1"))
	require.Equal(t, AttributeSet{KeyExpanded: False, KeyControls: IDRef("panel-1")}, Disclosure(false, "panel-1"))
}

func TestCheckedTristate(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{KeyChecked: TristateTrue}, Checked(true))
	require.Equal(t, AttributeSet{KeyChecked: TristateFalse}, Checked(false))
	require.Equal(t, AttributeSet{KeyChecked: Mixed}, Checked(Mixed))
	require.Equal(t, "mixed", Checked(Mixed)[KeyChecked].String())
}

func TestLiveRegionDefaults(t *testing.T) {
	t.Parallel()

	got := LiveRegion(LiveRegionOptions{})
	require.Equal(t, map[string]string{
		"aria-live":     "polite",
		"aria-atomic":   "false",
		"aria-relevant": "additions",
		"aria-busy":     "false",
	}, got.Strings())
}

func TestLiveRegionWithoutOptions(t *testing.T) {
	t.Parallel()

	got := LiveRegion()
	require.Equal(t, AttributeSet{
		KeyLive:     Polite,
		KeyAtomic:   False,
		KeyRelevant: Additions,
		KeyBusy:     False,
	}, got)
	require.True(t, got.Equal(LiveRegion(LiveRegionOptions{})))
}

func TestLiveRegionUsesFirstOptions(t *testing.T) {
	t.Parallel()

	got := LiveRegion(LiveRegionOptions{Politeness: Assertive}, LiveRegionOptions{Politeness: Off, Busy: true})
	require.Equal(t, Assertive, got[KeyLive])
	require.Equal(t, False, got[KeyBusy])
}

func TestLiveRegionOverrides(t *testing.T) {
	t.Parallel()

	got := LiveRegion(LiveRegionOptions{
		Atomic:     true,
		Relevant:   AdditionsText,
		Busy:       true,
		Politeness: Assertive,
	})
	require.Equal(t, AttributeSet{
		KeyLive:     Assertive,
		KeyAtomic:   True,
		KeyRelevant: AdditionsText,
		KeyBusy:     True,
	}, got)
}

func TestDialogTrigger(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{
		KeyHasPopup: PopupDialog,
		KeyControls: IDRef("settings-dialog"),
		KeyExpanded: False,
	}, DialogTrigger("settings-dialog", false))
}

func TestFormFieldOmitsInvalidWhenValid(t *testing.T) {
	t.Parallel()

	valid := FormField(true, false)
	require.Equal(t, True, valid[KeyRequired])
	require.False(t, valid.Has(KeyInvalid), "a valid field must not carry aria-invalid at all")
	require.Len(t, valid, 1)

	invalid := FormField(true, true)
	require.Equal(t, AttributeSet{KeyRequired: True, KeyInvalid: True}, invalid)

	optional := FormField(false, false)
	require.Equal(t, AttributeSet{KeyRequired: False}, optional)
}

func TestFormFieldInvalidDefaultsFalse(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{KeyRequired: True}, FormField(true))
	require.Equal(t, AttributeSet{KeyRequired: False}, FormField(false))
	require.Equal(t, FormField(true, false), FormField(true))
}

func TestReferenceMappersCopyVerbatim(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{KeyDescribedBy: IDRef("hint-1 hint-2")}, DescribedBy("hint-1 hint-2"))
	require.Equal(t, AttributeSet{KeyLabelledBy: IDRef("heading")}, LabelledBy("heading"))
	require.Equal(t, AttributeSet{KeyLabel: Text("Close")}, Label("Close"))
}

func TestReferenceMappersPassThroughEmptyIDs(t *testing.T) {
	t.Parallel()

	require.Equal(t, IDRef(""), Disclosure(true, "")[KeyControls])
	require.Equal(t, IDRef(""), DescribedBy("")[KeyDescribedBy])
}

func TestSkipLink(t *testing.T) {
	t.Parallel()

	got := SkipLink("main")
	require.Equal(t, AttributeSet{KeyHref: Text("#main"), KeyTabIndex: TabIndex(0)}, got)
	require.Equal(t, "#main", got[KeyHref].String())
	require.Equal(t, "0", got[KeyTabIndex].String())
}

func TestCurrentItem(t *testing.T) {
	t.Parallel()

	require.Equal(t, AttributeSet{KeyCurrent: CurrentPage}, CurrentItem(CurrentPage))
}

func TestMappersReturnFreshSets(t *testing.T) {
	t.Parallel()

	first := Toggle(true)
	first[KeyPressed] = False

	require.Equal(t, True, Toggle(true)[KeyPressed])
}
