package aria

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	a11yerrors "github.com/riceharvest/a11yutils/pkg/errors"
)

func TestValidateID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{name: "simple id", id: "panel-1"},
		{name: "underscores and colons", id: "form:field_2"},
		{name: "empty", id: "", wantErr: true},
		{name: "whitespace only", id: "   ", wantErr: true},
		{name: "contains space", id: "panel 1", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateID("controls", tc.id)
			if !tc.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			require.True(t, errors.Is(err, a11yerrors.ErrInvalidArgument))

			var validationErr *a11yerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, "controls", validationErr.Field)
		})
	}
}

func TestValidatorCustomTags(t *testing.T) {
	t.Parallel()

	v := Validator()
	require.Same(t, v, Validator())

	require.NoError(t, v.Var("additions text", "relevant"))
	require.Error(t, v.Var("additions everything", "relevant"))
	require.NoError(t, v.Var("panel-1", "idref"))
	require.Error(t, v.Var("panel 1", "idref"))
	require.NoError(t, v.Var("hint-1 hint-2", "idrefs"))
	require.NoError(t, v.Var("status", "role"))
	require.Error(t, v.Var("Status!", "role"))
}

func TestMapperOutputsValidate(t *testing.T) {
	t.Parallel()

	sets := []AttributeSet{
		Toggle(true),
		Disclosure(false, "panel-1"),
		Selection(true),
		Checked(Mixed),
		LiveRegion(LiveRegionOptions{}),
		LiveRegion(LiveRegionOptions{Relevant: AdditionsText, Politeness: Off}),
		DialogTrigger("dialog", true),
		FormField(true, true),
		DescribedBy("hint-1 hint-2"),
		LabelledBy("title"),
		SkipLink("main"),
		CurrentItem(CurrentStep),
		Label("Close dialog"),
	}

	for _, set := range sets {
		require.NoError(t, set.Validate(), "%v", set.Strings())
	}
}

func TestValidateRejectsOutOfDomainValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		set   AttributeSet
		field string
	}{
		{name: "unknown key", set: AttributeSet{Key("aria-bogus"): True}, field: "aria-bogus"},
		{name: "wrong domain", set: AttributeSet{KeyPressed: Text("yes")}, field: "aria-pressed"},
		{name: "bad bool", set: AttributeSet{KeyPressed: Bool("yes")}, field: "aria-pressed"},
		{name: "bad tristate", set: AttributeSet{KeyChecked: Tristate("partial")}, field: "aria-checked"},
		{name: "bad politeness", set: AttributeSet{KeyLive: Politeness("rude")}, field: "aria-live"},
		{name: "bad relevant token", set: AttributeSet{KeyRelevant: Relevant("additions everything")}, field: "aria-relevant"},
		{name: "empty controls", set: Disclosure(true, ""), field: "aria-controls"},
		{name: "bad role", set: AttributeSet{KeyRole: Role("Status!")}, field: "role"},
		{name: "nil value", set: AttributeSet{KeyHidden: nil}, field: "aria-hidden"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.set.Validate()
			require.Error(t, err)
			require.True(t, errors.Is(err, a11yerrors.ErrInvalidArgument))

			var validationErr *a11yerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestVocabularyDomains(t *testing.T) {
	t.Parallel()

	keys := Vocabulary()
	require.Len(t, keys, 21)
	require.True(t, sort.SliceIsSorted(keys, func(i, j int) bool { return keys[i] < keys[j] }))

	domain, ok := KeyTabIndex.Domain()
	require.True(t, ok)
	require.Equal(t, DomainInteger, domain)
	require.Equal(t, "integer", domain.String())

	require.False(t, Key("data-test").Known())
}
