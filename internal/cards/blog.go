package cards

import (
	"strconv"

	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/ui"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// BlogVariant selects the image position and metadata density of a BlogCard.
type BlogVariant string

const (
	BlogDefault    BlogVariant = "default"
	BlogHorizontal BlogVariant = "horizontal"
	BlogMinimal    BlogVariant = "minimal"
)

// DefaultCategoryColor styles the category badge when no color is given.
const DefaultCategoryColor = "bg-gray-100 text-gray-800"

// BlogPost is the input of BlogCard.
type BlogPost struct {
	Title         string      `yaml:"title" validate:"required"`
	Excerpt       string      `yaml:"excerpt" validate:"required"`
	Author        string      `yaml:"author" validate:"required"`
	AuthorAvatar  string      `yaml:"author_avatar,omitempty"`
	Date          string      `yaml:"date" validate:"required,isodate"`
	ReadTime      string      `yaml:"read_time,omitempty"`
	Image         string      `yaml:"image,omitempty"`
	Href          string      `yaml:"href,omitempty"`
	Category      string      `yaml:"category,omitempty"`
	CategoryColor string      `yaml:"category_color,omitempty"`
	Likes         *int        `yaml:"likes,omitempty" validate:"omitempty,min=0"`
	Variant       BlogVariant `yaml:"variant,omitempty" validate:"omitempty,oneof=default horizontal minimal"`
	Class         string      `yaml:"class,omitempty"`

	Open actions.Handle `yaml:"-"`
}

// Likes is a convenience for filling BlogPost.Likes.
func Likes(n int) *int {
	return &n
}

// FormattedDate returns the post date as "Jan 15, 2024".
func (p BlogPost) FormattedDate() string {
	return FormatDate(p.Date)
}

// BlogCard renders a post summary in one of three layouts.
func BlogCard(p BlogPost) g.Node {
	switch p.Variant {
	case BlogHorizontal, BlogMinimal:
	default:
		p.Variant = BlogDefault
	}
	if p.CategoryColor == "" {
		p.CategoryColor = DefaultCategoryColor
	}

	card := ui.Card(ui.Classes(
		"group hover:shadow-lg transition-all duration-300 cursor-pointer overflow-hidden",
		ui.When(p.Variant == BlogHorizontal, "flex flex-row"),
		ui.When(p.Variant == BlogMinimal, "border-0 shadow-none hover:shadow-md"),
		p.Class,
	),
		h.Data("component", "blog-card"),
		h.Data("variant", string(p.Variant)),
		blogImage(p),
		blogContent(p),
	)

	if p.Href != "" {
		return h.A(h.Href(p.Href), ui.Class("no-underline", p.Class), trigger(p.Open), card)
	}
	return h.Div(ui.Class(p.Class), trigger(p.Open), card)
}

func blogImage(p BlogPost) g.Node {
	if p.Image == "" {
		return nil
	}
	return h.Div(ui.Class("relative overflow-hidden", ui.Choose(p.Variant == BlogHorizontal, "w-48 h-full", "w-full h-48")),
		h.Img(h.Src(p.Image), h.Alt(p.Title), h.Class("w-full h-full object-cover transition-transform duration-300 group-hover:scale-105")),
		g.If(p.Category != "", ui.Badge(ui.BadgeDefault, ui.Classes("absolute top-3 left-3", p.CategoryColor), g.Text(p.Category))),
	)
}

func blogContent(p BlogPost) g.Node {
	return h.Div(h.Class("flex flex-col flex-1"),
		ui.CardHeader("pb-3",
			g.If(p.Variant != BlogHorizontal && p.Category != "",
				ui.Badge(ui.BadgeDefault, ui.Classes("w-fit mb-2", p.CategoryColor), g.Text(p.Category))),
			ui.CardTitle("text-lg leading-tight line-clamp-2 group-hover:text-primary transition-colors", g.Text(p.Title)),
			ui.CardDescription("line-clamp-2 text-sm", g.Text(p.Excerpt)),
		),
		ui.CardContent("pt-0 mt-auto",
			h.Div(h.Class("flex items-center justify-between"),
				h.Div(h.Class("flex items-center space-x-3"),
					avatar(p.AuthorAvatar, p.Author, "w-8 h-8 rounded-full object-cover",
						h.Div(h.Class("w-8 h-8 rounded-full bg-gradient-to-br from-primary/20 to-primary/40 flex items-center justify-center"),
							ui.Icon(ui.IconUser, "w-4 h-4 text-primary"),
						),
					),
					h.Div(h.Class("flex flex-col"),
						h.Span(h.Class("text-sm font-medium"), g.Text(p.Author)),
						h.Div(h.Class("flex items-center space-x-2 text-xs text-muted-foreground"),
							ui.Icon(ui.IconCalendar, "w-3 h-3"),
							h.Span(h.Data("role", "date"), g.Attr("datetime", p.Date), g.Text(p.FormattedDate())),
							g.If(p.ReadTime != "", g.Group{
								h.Span(g.Text("•")),
								ui.Icon(ui.IconClock, "w-3 h-3"),
								h.Span(h.Data("role", "read-time"), g.Text(p.ReadTime)),
							}),
						),
					),
				),
				h.Div(h.Class("flex items-center space-x-2"),
					likes(p.Likes),
					g.If(p.Variant != BlogMinimal,
						ui.Button(ui.ButtonGhost, ui.SizeSm, "group",
							g.Text("Read More"),
							ui.Icon(ui.IconArrowRight, "w-4 h-4 ml-1 transition-transform group-hover:translate-x-1"),
						),
					),
				),
			),
		),
	)
}

func likes(n *int) g.Node {
	if n == nil {
		return nil
	}
	return h.Div(h.Class("flex items-center space-x-1 text-sm text-muted-foreground"), h.Data("role", "likes"),
		ui.Icon(ui.IconHeart, "w-4 h-4"),
		h.Span(g.Text(strconv.Itoa(*n))),
	)
}
