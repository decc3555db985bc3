package widgetbot

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderEmbedUnconfigured(t *testing.T) {
	page, err := RenderEmbed(Unconfigured())
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, page.Status)
	body := string(page.Body)
	assert.Contains(t, body, NotConfiguredMessage)
	assert.Contains(t, body, "background:#020617")
	assert.NotContains(t, body, "<widgetbot")
}

func TestRenderEmbedConfigured(t *testing.T) {
	page, err := RenderEmbed(Configured(WidgetConfig{ServerID: "299881420891881473", ChannelID: "355719584830980096"}))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, page.Status)
	body := string(page.Body)
	assert.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"))
	assert.Contains(t, body, `server="299881420891881473"`)
	assert.Contains(t, body, `channel="355719584830980096"`)
	assert.Contains(t, body, `width="800"`)
	assert.Contains(t, body, `height="600"`)
	assert.Contains(t, body, `cdn.jsdelivr.net/npm/@widgetbot/html-embed`)
	assert.Contains(t, body, "async></script>")
}

func TestRenderEmbedEscapesAttributes(t *testing.T) {
	page, err := RenderEmbed(Configured(WidgetConfig{
		ServerID:  `123"><script>alert(1)</script>`,
		ChannelID: `2' onload='x`,
	}))
	require.NoError(t, err)

	body := string(page.Body)
	assert.NotContains(t, body, `"><script>`)
	assert.NotContains(t, body, `<script>alert`)
	assert.NotContains(t, body, `' onload='`)
	assert.Contains(t, body, "&lt;script&gt;")

	// Exactly one script element: the vendor bundle.
	assert.Equal(t, 1, strings.Count(body, "<script"))
}
