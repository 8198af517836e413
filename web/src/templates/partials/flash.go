package partials

import (
	"github.com/nfrund/cardshow/internal/ui"
	"github.com/nfrund/cardshow/internal/view"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	h "maragu.dev/gomponents/html"
)

// FeedbackID is the element action confirmations are swapped into.
const FeedbackID = "action-feedback"

// Flash renders the flash messages consumed by the current request.
func Flash(flash view.FlashData) g.Node {
	if flash.Empty() {
		return nil
	}
	return h.Div(h.ID("flash"), h.Class("container mx-auto px-4 pt-4 space-y-2"),
		g.Map(flash.Success, func(msg string) g.Node {
			return message("border-green-200 bg-green-50 text-green-800", ui.IconCheck, msg)
		}),
		g.Map(flash.Error, func(msg string) g.Node {
			return message("border-red-200 bg-red-50 text-red-800", ui.IconX, msg)
		}),
	)
}

func message(class, icon, text string) g.Node {
	return h.Div(h.Role("alert"),
		h.Class(ui.Classes("flex items-center gap-2 rounded-md border px-4 py-2 text-sm", class)),
		ui.Icon(icon, "w-4 h-4"),
		h.Span(g.Text(text)),
	)
}

// FeedbackRegion is the empty live region ActionFeedback replaces.
func FeedbackRegion() g.Node {
	return h.Div(h.ID(FeedbackID), h.Aria("live", "polite"),
		h.Class("fixed bottom-4 right-4 z-50"))
}

// FeedbackText is the confirmation shown after an action post. A non-empty
// message from the action replaces the default success text.
func FeedbackText(name, msg string, ok bool) string {
	switch {
	case !ok:
		return "Action failed: " + name
	case msg != "":
		return msg
	default:
		return "Action triggered: " + name
	}
}

// ActionFeedback is the out-of-band fragment returned for an htmx action post.
func ActionFeedback(name, msg string, ok bool) g.Node {
	class := "border-green-200 bg-green-50 text-green-800"
	icon := ui.IconCheck
	if !ok {
		class = "border-red-200 bg-red-50 text-red-800"
		icon = ui.IconX
	}
	text := FeedbackText(name, msg, ok)
	return h.Div(h.ID(FeedbackID), hx.SwapOOB("true"), h.Aria("live", "polite"),
		h.Class("fixed bottom-4 right-4 z-50"),
		h.Data("status", ui.Choose(ok, "ok", "error")),
		message(ui.Classes("shadow-lg bg-background", class), icon, text),
	)
}
