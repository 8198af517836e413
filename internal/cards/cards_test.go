package cards_test

import (
	"strings"
	"testing"

	"github.com/nfrund/cardshow/internal/actions"
	"github.com/nfrund/cardshow/internal/cards"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestStatisticsCard(t *testing.T) {
	tests := []struct {
		name        string
		stat        cards.Statistic
		contains    []string
		notContains []string
	}{
		{
			name: "total revenue",
			stat: cards.Statistic{Title: "Total Revenue", Value: cards.Number(45231), Prefix: "$", Change: cards.Change(20.1)},
			contains: []string{
				"Total Revenue", "$45,231", `data-trend="up"`, `data-lucide="trending-up"`,
				"+20.1% from last month", "text-green-600",
			},
		},
		{
			name:        "negative change keeps a single sign",
			stat:        cards.Statistic{Title: "Bounce", Value: cards.Number(42), Suffix: "%", Change: cards.Change(-3.2)},
			contains:    []string{"42%", `data-trend="down"`, "-3.2% from last month", "text-red-600", `data-lucide="trending-down"`},
			notContains: []string{"+-3.2"},
		},
		{
			name:     "zero change is flat",
			stat:     cards.Statistic{Title: "Churn", Value: cards.Number(0), Change: cards.Change(0), ChangePeriod: "since last week"},
			contains: []string{`data-trend="flat"`, `data-lucide="minus"`, "0% since last week", "text-gray-500"},
		},
		{
			name:        "no change has no trend line",
			stat:        cards.Statistic{Title: "Users", Value: cards.Text("2.4K")},
			contains:    []string{"2.4K"},
			notContains: []string{"data-trend", "from last month"},
		},
		{
			name:     "positive change",
			stat:     cards.Statistic{Title: "Sessions", Value: cards.Number(1200), Change: cards.Change(7.5)},
			contains: []string{"1,200", "+7.5% from last month"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			html := render(t, cards.StatisticsCard(tt.stat))
			for _, want := range tt.contains {
				assert.Contains(t, html, want)
			}
			for _, unwanted := range tt.notContains {
				assert.NotContains(t, html, unwanted)
			}
		})
	}
}

func TestStatistic_Helpers(t *testing.T) {
	s := cards.Statistic{Title: "Total Revenue", Value: cards.Number(45231), Prefix: "$", Change: cards.Change(20.1)}
	assert.Equal(t, "$45,231", s.DisplayValue())
	assert.Equal(t, cards.TrendUp, s.Trend())
	assert.Equal(t, "+20.1% from last month", s.ChangeText())

	s.Change = nil
	assert.Equal(t, "", s.ChangeText())
	assert.Equal(t, "text-muted-foreground", cards.TrendColor(s.Trend()))
}

func TestPricingCard_ProPlan(t *testing.T) {
	plan := cards.PricingPlan{
		Name:  "Pro Plan",
		Price: 29,
		Features: []cards.PricingFeature{
			{Text: "Unlimited projects", Included: true},
			{Text: "Custom integrations", Included: false},
		},
		Popular: true,
	}
	assert.Equal(t, "$29/month", plan.PriceText())

	html := render(t, cards.PricingCard(plan))
	assert.Contains(t, html, ">$29</span>")
	assert.Contains(t, html, ">/month</span>")
	assert.Contains(t, html, cards.PopularLabel)
	assert.Contains(t, html, "scale-105")
	assert.Contains(t, html, "Get Started")

	first := strings.Index(html, "Unlimited projects")
	second := strings.Index(html, "Custom integrations")
	require.True(t, first > 0 && second > first, "features must keep input order")

	// Each feature's glyph sits between its <li> and its label.
	liFirst := html[strings.LastIndex(html[:first], "<li"):first]
	assert.Contains(t, liFirst, `data-feature="included"`)
	assert.Contains(t, liFirst, `data-lucide="check"`)
	liSecond := html[strings.LastIndex(html[:second], "<li"):second]
	assert.Contains(t, liSecond, `data-feature="excluded"`)
	assert.Contains(t, liSecond, `data-lucide="x"`)
	assert.Contains(t, liSecond, "line-through")
}

func TestPricingCard_OrderAndExclusion(t *testing.T) {
	features := []cards.PricingFeature{
		{Text: "f0", Included: false},
		{Text: "f1", Included: true},
		{Text: "f2", Included: false},
		{Text: "f3", Included: true},
	}
	html := render(t, cards.PricingCard(cards.PricingPlan{Name: "Basic", Price: 9.99, Currency: "€", Period: "year", Features: features}))

	assert.Contains(t, html, ">€9.99</span>")
	assert.Contains(t, html, ">/year</span>")
	assert.NotContains(t, html, cards.PopularLabel)

	last := 0
	for _, f := range features {
		idx := strings.Index(html, ">"+f.Text+"<")
		require.Greater(t, idx, last, "feature %s out of order", f.Text)
		li := html[strings.LastIndex(html[:idx], "<li"):idx]
		if f.Included {
			assert.Contains(t, li, `data-lucide="check"`)
		} else {
			assert.Contains(t, li, `data-lucide="x"`)
		}
		last = idx
	}
}

func TestPricingCard_SelectAction(t *testing.T) {
	reg := actions.NewRegistry(nil)
	handle := reg.Register("pricing.pro", func() {})

	html := render(t, cards.PricingCard(cards.PricingPlan{Name: "Pro", Price: 29, Select: handle}))
	assert.Contains(t, html, `hx-post="`+handle.Path()+`"`)

	html = render(t, cards.PricingCard(cards.PricingPlan{Name: "Pro", Price: 29}))
	assert.NotContains(t, html, "hx-post")
}

func TestTestimonialCard_Stars(t *testing.T) {
	for rating := 0; rating <= cards.MaxRating; rating++ {
		html := render(t, cards.TestimonialCard(cards.Testimonial{Quote: "q", Author: "A", Rating: cards.Rating(rating)}))
		filled := strings.Count(html, `data-star="filled"`)
		empty := strings.Count(html, `data-star="empty"`)
		assert.Equal(t, rating, filled, "rating %d", rating)
		assert.Equal(t, cards.MaxRating-rating, empty, "rating %d", rating)
		assert.Equal(t, cards.MaxRating, filled+empty)

		// Filled stars come first.
		if filled > 0 && empty > 0 {
			assert.Less(t, strings.LastIndex(html, `data-star="filled"`), strings.Index(html, `data-star="empty"`))
		}
	}
}

func TestTestimonialCard_NoRating(t *testing.T) {
	withRating := render(t, cards.TestimonialCard(cards.Testimonial{Quote: "q", Author: "A", Rating: cards.Rating(5)}))
	assert.Equal(t, 5, strings.Count(withRating, `data-star="filled"`))

	without := render(t, cards.TestimonialCard(cards.Testimonial{Quote: "q", Author: "A"}))
	assert.Contains(t, without, `<blockquote class="text-lg font-medium leading-relaxed mb-6">“q”</blockquote>`)
	assert.NotContains(t, without, `data-role="rating"`)
	assert.NotContains(t, without, "data-star")
}

func TestStars_Clamps(t *testing.T) {
	assert.Nil(t, cards.Stars(nil))
	assert.Equal(t, []bool{true, true, true, true, true}, cards.Stars(cards.Rating(9)))
	assert.Equal(t, []bool{false, false, false, false, false}, cards.Stars(cards.Rating(-2)))
}

func TestTestimonialCard_Variants(t *testing.T) {
	tests := map[cards.TestimonialVariant]string{
		"":                        "hover:shadow-md transition-shadow duration-200",
		cards.TestimonialDefault:  "hover:shadow-md transition-shadow duration-200",
		cards.TestimonialBordered: "border-2 border-primary/20",
		cards.TestimonialElevated: "shadow-lg hover:shadow-xl transition-shadow duration-300",
		"neon":                    "hover:shadow-md transition-shadow duration-200",
	}
	for variant, class := range tests {
		html := render(t, cards.TestimonialCard(cards.Testimonial{Quote: "q", Author: "A", Variant: variant}))
		assert.Contains(t, html, class, "variant %q", variant)
	}
}

func TestTestimonialCard_Author(t *testing.T) {
	html := render(t, cards.TestimonialCard(cards.Testimonial{
		Quote: "Transformed how we work", Author: "Sarah Johnson", Role: "Product Manager", Company: "TechCorp",
	}))
	assert.Contains(t, html, "“Transformed how we work”")
	assert.Contains(t, html, `data-role="initial">S</span>`)
	assert.Contains(t, html, "Product Manager • TechCorp")

	html = render(t, cards.TestimonialCard(cards.Testimonial{Quote: "q", Author: "Émile", Avatar: "/a.jpg", Company: "Acme"}))
	assert.Contains(t, html, `src="/a.jpg"`)
	assert.NotContains(t, html, `data-role="initial"`)
	assert.Contains(t, html, ">Acme</div>")

	assert.Equal(t, "É", cards.Initial("Émile"))
	assert.Equal(t, "", cards.Initial(""))
}

func TestFeatureCard(t *testing.T) {
	reg := actions.NewRegistry(nil)
	cta := cards.NewAction("Learn More", reg.Register("feature.analytics", nil))

	vertical := render(t, cards.FeatureCard(cards.Feature{
		Title: "Advanced Analytics", Description: "Insights", Icon: "bar-chart-3", Badge: "Popular", CTA: cta,
	}))
	assert.Contains(t, vertical, `data-orientation="vertical"`)
	assert.Contains(t, vertical, "text-center")
	assert.Contains(t, vertical, `data-lucide="bar-chart-3"`)
	assert.Contains(t, vertical, `data-variant="secondary"`)
	assert.Contains(t, vertical, "Learn More")
	assert.Contains(t, vertical, `hx-post="`+cta.Handle.Path()+`"`)

	horizontal := render(t, cards.FeatureCard(cards.Feature{
		Title: "Sync", Description: "Realtime", Icon: "zap", Orientation: cards.Horizontal, NoHover: true,
	}))
	assert.Contains(t, horizontal, `data-orientation="horizontal"`)
	assert.Contains(t, horizontal, "flex-row items-center")
	assert.NotContains(t, horizontal, "hover:-translate-y-1")
	assert.NotContains(t, horizontal, `data-slot="badge"`)
	assert.NotContains(t, horizontal, `data-slot="button"`)
}

func TestBlogCard(t *testing.T) {
	post := cards.BlogPost{
		Title:    "Getting Started with Components",
		Excerpt:  "Learn how to build reusable components.",
		Author:   "Jane Smith",
		Date:     "2024-01-15",
		ReadTime: "5 min read",
		Category: "Go",
		Likes:    cards.Likes(42),
		Href:     "/blog/components",
	}

	html := render(t, cards.BlogCard(post))
	assert.Contains(t, html, "Jan 15, 2024")
	assert.Contains(t, html, "5 min read")
	assert.Contains(t, html, `data-role="likes"`)
	assert.Contains(t, html, ">42</span>")
	assert.Contains(t, html, "Read More")
	assert.Contains(t, html, `href="/blog/components"`)
	assert.Contains(t, html, cards.DefaultCategoryColor)
	assert.Contains(t, html, `data-lucide="user"`)

	post.Likes = nil
	post.Variant = cards.BlogMinimal
	post.Href = ""
	html = render(t, cards.BlogCard(post))
	assert.NotContains(t, html, `data-role="likes"`)
	assert.NotContains(t, html, "Read More")
	assert.Contains(t, html, "border-0 shadow-none")

	post.Likes = cards.Likes(0)
	html = render(t, cards.BlogCard(post))
	assert.Contains(t, html, `data-role="likes"`, "zero likes still shows the counter")
}

func TestBlogCard_HorizontalImage(t *testing.T) {
	html := render(t, cards.BlogCard(cards.BlogPost{
		Title: "T", Excerpt: "E", Author: "A", Date: "2024-02-01", Image: "/img.jpg",
		Category: "News", Variant: cards.BlogHorizontal,
	}))
	assert.Contains(t, html, "flex flex-row")
	assert.Contains(t, html, "w-48 h-full")
	assert.Equal(t, 1, strings.Count(html, ">News</span>"), "horizontal shows the category only on the image")
	assert.Less(t, strings.Index(html, `src="/img.jpg"`), strings.Index(html, `data-slot="card-header"`))
}

func TestBlogCard_InvalidDate(t *testing.T) {
	html := render(t, cards.BlogCard(cards.BlogPost{Title: "T", Excerpt: "E", Author: "A", Date: "not a date"}))
	assert.Contains(t, html, cards.InvalidDate)
}

func TestInteractiveCard(t *testing.T) {
	reg := actions.NewRegistry(nil)
	action := cards.NewAction("Learn More", reg.Register("interactive.sample", nil))

	html := render(t, cards.InteractiveCard(cards.CardContent{
		Title: "Sample Card", Description: "This is a sample interactive card",
		Badge: "New", Action: action,
		Children: []g.Node{h.P(h.Class("custom"), g.Text("Custom content goes here"))},
	}))
	assert.Contains(t, html, "Sample Card")
	assert.Contains(t, html, `data-variant="default"`)
	assert.Contains(t, html, `<p class="custom">Custom content goes here</p>`)
	assert.Contains(t, html, `hx-post="`+action.Handle.Path()+`"`)
	assert.Less(t, strings.Index(html, "Custom content"), strings.Index(html, "Learn More"))

	bare := render(t, cards.InteractiveCard(cards.CardContent{Title: "Bare", Description: "Nothing else"}))
	assert.NotContains(t, bare, `data-slot="card-content"`)
	assert.NotContains(t, bare, `data-slot="badge"`)
	assert.NotContains(t, bare, `data-slot="button"`)

	unbound := render(t, cards.InteractiveCard(cards.CardContent{
		Title: "T", Description: "D", Badge: "Premium", BadgeVariant: "secondary", Action: &cards.Action{Label: "Try"},
	}))
	assert.Contains(t, unbound, `data-variant="secondary"`)
	assert.Contains(t, unbound, "Try")
	assert.NotContains(t, unbound, "hx-post")
}
