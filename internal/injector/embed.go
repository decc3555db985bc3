package injector

import (
	"github.com/ziadkadry99/widgetbot/internal/dom"
	"github.com/ziadkadry99/widgetbot/internal/widgetbot"
)

// Passive embed constants.
const (
	EmbedScriptMarker = "@widgetbot/html-embed"
	ContainerID       = "widgetbot-embed-container"
)

// containerStyle pins the container to the bottom-right corner.
var containerStyle = map[string]string{
	"position":      "fixed",
	"bottom":        "1.5rem",
	"right":         "1.5rem",
	"width":         "400px",
	"height":        "600px",
	"z-index":       "9999",
	"border-radius": "0.75rem",
	"overflow":      "hidden",
	"box-shadow":    "0 20px 40px rgba(0,0,0,0.45)",
}

// InjectEmbed places one <widgetbot> element for serverID/channelID in a
// fixed container. Repeated calls reuse the script tag and container.
func InjectEmbed(doc *dom.Document, serverID, channelID string) *dom.Element {
	ensureScript(doc, EmbedScriptMarker, widgetbot.EmbedScriptURL, "async")
	container := ensureContainer(doc)

	widget := doc.CreateElement("widgetbot")
	widget.SetAttribute("server", serverID)
	widget.SetAttribute("channel", channelID)
	widget.SetAttribute("width", "100%")
	widget.SetAttribute("height", "100%")
	container.AppendChild(widget)
	return widget
}

// ensureScript appends a script tag to the head unless one whose src
// contains marker already exists. loadAttr is "async" or "defer".
func ensureScript(doc *dom.Document, marker, src, loadAttr string) *dom.Element {
	if s := doc.ScriptWithSrc(marker); s != nil {
		return s
	}
	s := doc.CreateElement("script")
	s.SetAttribute("src", src)
	s.SetAttribute(loadAttr, "")
	doc.Head.AppendChild(s)
	return s
}

func ensureContainer(doc *dom.Document) *dom.Element {
	if c := doc.GetElementByID(ContainerID); c != nil {
		c.Clear()
		return c
	}
	c := doc.CreateElement("div")
	c.SetAttribute("id", ContainerID)
	for k, v := range containerStyle {
		c.SetStyle(k, v)
	}
	doc.Body.AppendChild(c)
	return c
}
