package style

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVisuallyHidden(t *testing.T) {
	t.Parallel()

	m := VisuallyHidden().Map()
	require.Equal(t, "absolute", m["position"])
	require.Equal(t, "1px", m["width"])
	require.Equal(t, "1px", m["height"])
	require.Equal(t, "hidden", m["overflow"])
	require.Equal(t, "0", m["padding"])
	require.Equal(t, "-1px", m["margin"])
	require.Equal(t, "rect(0, 0, 0, 0)", m["clip"])
	require.Equal(t, "nowrap", m["white-space"])
	require.Equal(t, "0", m["border"])
}

func TestVisuallyHiddenUntilFocus(t *testing.T) {
	t.Parallel()

	m := VisuallyHiddenUntilFocus().Map()
	require.Equal(t, "absolute", m["position"])
	require.Equal(t, "auto", m["width"])
	require.Equal(t, "auto", m["height"])
	require.Equal(t, "visible", m["overflow"])
	require.Equal(t, "auto", m["clip"])
	require.Equal(t, "normal", m["white-space"])
	require.NotEqual(t, "0", m["padding"])
}

func TestPresetAccessorsReturnCopies(t *testing.T) {
	t.Parallel()

	m := VisuallyHidden().Map()
	m["width"] = "100px"

	decls := VisuallyHidden().Declarations()
	decls[0].Value = "static"

	width, ok := VisuallyHidden().Get("width")
	require.True(t, ok)
	require.Equal(t, "1px", width)

	position, ok := VisuallyHidden().Get("position")
	require.True(t, ok)
	require.Equal(t, "absolute", position)
}

func TestPresetAccessorsAgreeWithLookup(t *testing.T) {
	t.Parallel()

	width, ok := VisuallyHidden().Get("width")
	require.True(t, ok)
	require.Equal(t, "1px", width)

	for _, preset := range []Preset{VisuallyHidden(), VisuallyHiddenUntilFocus()} {
		looked, ok := Lookup(preset.Name())
		require.True(t, ok)
		require.Equal(t, preset.CSS(), looked.CSS())
	}
}

func TestPresetCSS(t *testing.T) {
	t.Parallel()

	css := VisuallyHidden().CSS()
	require.Contains(t, css, "position: absolute;")
	require.Contains(t, css, "clip: rect(0, 0, 0, 0);")
	require.True(t, len(css) > 0 && css[len(css)-1] == ';')

	require.Empty(t, Preset{}.CSS())
	require.True(t, Preset{}.IsZero())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"visually_hidden", "visually_hidden_until_focus"}, Names())

	p, ok := Lookup("visually_hidden_until_focus")
	require.True(t, ok)
	require.Equal(t, "visually_hidden_until_focus", p.Name())

	_, ok = Lookup("offscreen")
	require.False(t, ok)

	_, ok = VisuallyHidden().Get("z-index")
	require.False(t, ok)
}
