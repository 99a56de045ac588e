package markup

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/riceharvest/a11yutils/pkg/aria"
	"github.com/riceharvest/a11yutils/pkg/style"
)

func TestRenderButton(t *testing.T) {
	t.Parallel()

	out, err := Render(Element{
		Tag:        "button",
		ID:         "menu_button",
		Text:       "Menu",
		Attributes: aria.Merge(aria.Toggle(true), aria.Disclosure(false, "menu_panel")),
	})
	require.NoError(t, err)
	require.Equal(t, `<button id="menu_button" aria-controls="menu_panel" aria-expanded="false" aria-pressed="true">Menu</button>`, out)
}

func TestRenderSkipLinkWithStyle(t *testing.T) {
	t.Parallel()

	out, err := Render(Element{
		Tag:        "a",
		Text:       "Skip to content",
		Attributes: aria.SkipLink("main"),
		Style:      style.VisuallyHidden(),
	})
	require.NoError(t, err)
	require.Contains(t, out, `href="#main"`)
	require.Contains(t, out, `tabindex="0"`)
	require.Contains(t, out, `style="position: absolute; width: 1px;`)
	require.Contains(t, out, `>Skip to content</a>`)
}

func TestRenderEscapesValues(t *testing.T) {
	t.Parallel()

	out, err := Render(Element{Tag: "button", Attributes: aria.Label(`Say "hi" & <leave>`), Text: "a < b"})
	require.NoError(t, err)
	require.Contains(t, out, `aria-label="Say &#34;hi&#34; &amp; &lt;leave&gt;"`)
	require.Contains(t, out, `a &lt; b`)
}

func TestRenderVoidElementDropsText(t *testing.T) {
	t.Parallel()

	out, err := Render(Element{Tag: "input", Attributes: aria.FormField(true), Text: "ignored"})
	require.NoError(t, err)
	require.Equal(t, `<input aria-required="true"/>`, out)
}

func TestRenderDefaultsToDiv(t *testing.T) {
	t.Parallel()

	out, err := Render(Element{Attributes: aria.StatusAnnouncement()})
	require.NoError(t, err)
	require.Equal(t, `<div aria-live="polite" role="status"></div>`, out)
}

func TestAttributes(t *testing.T) {
	t.Parallel()

	require.Equal(t, `aria-hidden="true"`, Attributes(aria.HiddenFromAT()))
	require.Equal(t, "", Attributes(aria.Merge()))
}
