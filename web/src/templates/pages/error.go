package pages

import (
	"strconv"

	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Error is the page shown for failed browser requests.
func Error(code int, message string) g.Node {
	return h.Section(h.Class("container mx-auto px-4 py-20 text-center"),
		h.P(h.Class("text-6xl font-bold text-muted-foreground"), g.Text(strconv.Itoa(code))),
		h.H1(h.Class("text-2xl font-semibold mt-4 mb-8"), g.Text(message)),
		ui.LinkButton("/components", ui.ButtonOutline, ui.SizeDefault, "",
			ui.Icon(ui.IconArrowLeft, "w-4 h-4 mr-2"), g.Text("Back to Components"),
		),
	)
}
