package injector

import (
	"github.com/ziadkadry99/widgetbot/internal/dom"
	"github.com/ziadkadry99/widgetbot/internal/widgetbot"
)

// CrateScriptMarker identifies an already loaded Crate bundle.
const CrateScriptMarker = "@widgetbot/crate"

// BottomOffset replaces a "bottom" vertical location so the Crate button
// clears the panel's own floating controls.
const BottomOffset = 150

// CrateConstructor stands in for the vendor's global Crate class.
type CrateConstructor func(options map[string]any) any

// CrateOptions merges server, the optional channel and every fetched
// crate option into the options bag passed to the Crate constructor.
func CrateOptions(data ConfigData) map[string]any {
	opts := map[string]any{"server": data.ServerID}
	if data.ChannelID != "" {
		opts["channel"] = data.ChannelID
	}
	for k, v := range data.CrateOptions {
		opts[k] = v
	}
	if loc, ok := opts["location"]; ok {
		opts["location"] = NormalizeLocation(loc)
	}
	return opts
}

// NormalizeLocation rewrites a [vertical, horizontal] pair whose vertical
// part is "bottom" to [BottomOffset, horizontal]. Any other value is
// returned unchanged.
func NormalizeLocation(loc any) any {
	switch l := loc.(type) {
	case []any:
		if len(l) == 2 && l[0] == "bottom" {
			return []any{BottomOffset, l[1]}
		}
	case []string:
		if len(l) == 2 && l[0] == "bottom" {
			return []any{BottomOffset, l[1]}
		}
	case [2]string:
		if l[0] == "bottom" {
			return []any{BottomOffset, l[1]}
		}
	}
	return loc
}

// ensureCrateScript adds the deferred Crate bundle once.
func ensureCrateScript(doc *dom.Document) *dom.Element {
	return ensureScript(doc, CrateScriptMarker, widgetbot.CrateScriptURL, "defer")
}
