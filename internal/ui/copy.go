package ui

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// CopiedLabel replaces the copy button caption for two seconds after a
// successful copy. The swap is done by /static/js/app.js.
const CopiedLabel = "Copied!"

// CopyButton renders a button that copies code to the clipboard.
func CopyButton(code, label string) g.Node {
	return Button(ButtonOutline, SizeSm, "",
		h.Data("copy", ""),
		h.Data("code", code),
		h.Data("copied-label", CopiedLabel),
		Icon(IconCopy, "w-4 h-4 mr-2"),
		h.Span(h.Data("copy-label", ""), g.Text(label)),
	)
}
