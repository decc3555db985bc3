package widgetbot

import (
	_ "embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/widgetbot/internal/apiresponse"
)

// Public route paths. Neither route requires authentication so they can be
// loaded from third-party pages and iframes.
const (
	ConfigPath = "/api/public/widgetbot/config"
	EmbedPath  = "/widgetbot/embed"
	ScriptPath = "/widgetbot/widgetbot.js"
)

// Route names, as registered with the host panel.
const (
	ConfigRouteName = "widgetbot-config"
	EmbedRouteName  = "widgetbot-embed"
)

// LoadedMessage accompanies a successful configuration response.
const LoadedMessage = "WidgetBot configuration loaded"

//go:embed static/widgetbot.js
var clientScript []byte

// RegisterRoutes mounts the public WidgetBot routes.
func RegisterRoutes(r chi.Router, resolver *Resolver) {
	r.Get(ConfigPath, handleConfig(resolver))
	r.Get(EmbedPath, handleEmbed(resolver))
	r.Get(ScriptPath, handleScript)
}

func handleConfig(resolver *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := resolver.Resolve(r.Context()).Config()
		if err != nil {
			apiresponse.Error(w, r, NotConfiguredMessage, NotConfiguredCode, http.StatusInternalServerError)
			return
		}
		apiresponse.Success(w, r, cfg, LoadedMessage, http.StatusOK)
	}
}

func handleEmbed(resolver *Resolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := RenderEmbed(resolver.Resolve(r.Context()))
		if err != nil {
			zerolog.Ctx(r.Context()).Error().Err(err).Msg("rendering widgetbot embed")
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(page.Status)
		w.Write(page.Body)
	}
}

func handleScript(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(clientScript)
}
