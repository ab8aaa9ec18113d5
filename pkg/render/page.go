package render

import (
	"fmt"
	"strings"
)

// PageData contains everything needed to assemble a complete HTML page
// around a rendered body.
type PageData struct {
	// Title is the page title.
	Title string

	// Body is the rendered HTML for the page content.
	Body string

	// LiveUpdates enables the small client script that connects to /ws
	// and replaces the body whenever the server pushes a re-render
	// (suspense regions settling).
	LiveUpdates bool

	// Lang is the language attribute for the html element.
	// Defaults to "en" if not specified.
	Lang string
}

// liveScript is the thin client: it swaps in server-pushed re-renders.
const liveScript = `<script>
(function () {
  var proto = location.protocol === "https:" ? "wss://" : "ws://";
  var ws = new WebSocket(proto + location.host + "/ws");
  ws.onmessage = function (ev) {
    document.getElementById("app").innerHTML = ev.data;
  };
})();
</script>`

// Page assembles a complete HTML document.
func Page(data PageData) string {
	lang := data.Lang
	if lang == "" {
		lang = "en"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n")
	fmt.Fprintf(&b, `<html lang="%s">`, escapeAttr(lang))
	b.WriteString("<head>")
	b.WriteString(`<meta charset="utf-8">`)
	fmt.Fprintf(&b, "<title>%s</title>", escapeHTML(data.Title))
	b.WriteString("</head>\n<body>")
	fmt.Fprintf(&b, `<div id="app">%s</div>`, data.Body)
	if data.LiveUpdates {
		b.WriteString("\n")
		b.WriteString(liveScript)
	}
	b.WriteString("</body></html>\n")
	return b.String()
}
