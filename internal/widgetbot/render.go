package widgetbot

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

// EmbedScriptURL is the vendor bundle that defines the <widgetbot> element.
const EmbedScriptURL = "https://cdn.jsdelivr.net/npm/@widgetbot/html-embed"

// CrateScriptURL is the vendor bundle that defines the Crate constructor.
const CrateScriptURL = "https://cdn.jsdelivr.net/npm/@widgetbot/crate@3"

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Page is a rendered HTML response.
type Page struct {
	Status int
	Body   []byte
}

type embedData struct {
	ServerID    string
	ChannelID   string
	EmbedScript string
}

// RenderEmbed renders the iframe-able embed page for res. An unconfigured
// resolution yields the error page with status 500.
func RenderEmbed(res Resolution) (Page, error) {
	cfg, err := res.Config()
	if err != nil {
		return render("not_configured.html", http.StatusInternalServerError, struct{ Message string }{NotConfiguredMessage})
	}
	// html/template escapes the IDs for the attribute context.
	return render("embed.html", http.StatusOK, embedData{
		ServerID:    cfg.ServerID,
		ChannelID:   cfg.ChannelID,
		EmbedScript: EmbedScriptURL,
	})
}

func render(name string, status int, data any) (Page, error) {
	var buf bytes.Buffer
	if err := pages.ExecuteTemplate(&buf, name, data); err != nil {
		return Page{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	return Page{Status: status, Body: buf.Bytes()}, nil
}
