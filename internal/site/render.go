package site

import (
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/riverfjs/articlemark"
	"github.com/riverfjs/articlemark/internal/markdown"
	"github.com/riverfjs/articlemark/internal/util"
)

// DefaultArticleURL is the card link pattern used by the static site.
const DefaultArticleURL = "article.html?id=%d"

// Renderer turns site data into HTML fragments.
type Renderer struct {
	SiteName string
	// ArticleURL is a fmt pattern receiving the article index.
	ArticleURL string
	// Options are passed to articlemark.Convert for text bodies.
	Options []articlemark.Option
}

// NewRenderer creates a Renderer with the default site name and links.
func NewRenderer(opts ...articlemark.Option) *Renderer {
	return &Renderer{
		SiteName:   DefaultSiteName,
		ArticleURL: DefaultArticleURL,
		Options:    opts,
	}
}

type cardView struct {
	Index       int
	Featured    bool
	Delay       string
	Href        string
	Image       string
	Title       string
	Description string
}

// RenderArticleCards renders the article grid. The first card is featured
// and is the only one showing its description.
func (r *Renderer) RenderArticleCards(w io.Writer, articles []Article) error {
	cards := make([]cardView, 0, len(articles))
	for i, a := range articles {
		card := cardView{
			Index:    i,
			Featured: i == 0,
			Delay:    strconv.FormatFloat(float64(i)/10, 'f', -1, 64),
			Href:     fmt.Sprintf(r.articleURL(), i),
			Image:    orDefault(a.Image, DefaultArticleImage),
			Title:    orDefault(a.Title, DefaultTitle),
		}
		if card.Featured {
			card.Description = a.Description
		}
		cards = append(cards, card)
	}
	return templates.ExecuteTemplate(w, "cards", struct{ Cards []cardView }{cards})
}

type galleryImage struct {
	Src string
	Alt string
}

type articleView struct {
	Title   string
	Gallery []galleryImage
	Body    template.HTML
	Link    string
}

// ArticleTitle returns the document title for a.
func (r *Renderer) ArticleTitle(a Article) string {
	return orDefault(a.Title, DefaultPageTitle) + " - " + r.SiteName
}

// ArticleBody converts the article body to HTML.
func (r *Renderer) ArticleBody(a Article) template.HTML {
	body := a.Body()
	if a.Format == FormatMarkdown {
		html, err := markdown.Render(body)
		if err == nil {
			return template.HTML(html)
		}
		articlemark.Logger.Printf("markdown render failed, falling back to text: %v", err)
	}
	return template.HTML(articlemark.Convert(body, r.Options...))
}

// RenderArticlePage renders a single article: title, gallery, body and
// the "read more" button.
func (r *Renderer) RenderArticlePage(w io.Writer, a Article) error {
	view := articleView{
		Title: orDefault(a.Title, DefaultTitle),
		Body:  r.ArticleBody(a),
	}
	for i, src := range a.Images {
		view.Gallery = append(view.Gallery, galleryImage{
			Src: src,
			Alt: fmt.Sprintf("%s - Hình %d", a.Title, i+1),
		})
	}
	if a.HasLink() {
		view.Link = a.Link
	}
	return templates.ExecuteTemplate(w, "article", view)
}

// RenderArticleError renders the fallback shown when an article cannot be
// displayed.
func (r *Renderer) RenderArticleError(w io.Writer, message string) error {
	return templates.ExecuteTemplate(w, "article_error", message)
}

type statView struct {
	Number  int
	Display string
	Label   string
}

// RenderAbout renders the about page sections and counters.
func (r *Renderer) RenderAbout(w io.Writer, about About) error {
	stats := make([]statView, 0, len(about.Stats))
	for _, s := range about.Stats {
		stats = append(stats, statView{
			Number:  s.Number,
			Display: FormatStat(s.Number),
			Label:   s.Label,
		})
	}
	view := struct {
		PageTitle string
		Intro     string
		Sections  []Section
		Stats     []statView
	}{about.PageTitle, about.Intro, about.Sections, stats}
	return templates.ExecuteTemplate(w, "about", view)
}

type slideView struct {
	Index       int
	Active      bool
	Style       template.CSS
	Title       string
	Description string
}

// cssURLReplacer percent-encodes characters that would end a quoted url().
var cssURLReplacer = strings.NewReplacer(
	"'", "%27", `"`, "%22", "(", "%28", ")", "%29", `\`, "%5C", "\n", "", "\r", "",
)

// backgroundStyle builds the slide background declaration.
func backgroundStyle(image string) template.CSS {
	image = strings.TrimSpace(image)
	if image == "" || util.IsDangerousURL(image) {
		image = DefaultSlideImage
	}
	return template.CSS("background-image: url('" + cssURLReplacer.Replace(image) + "');")
}

// RenderSliders renders the slides and their indicators. An empty feed
// renders a single placeholder slide.
func (r *Renderer) RenderSliders(w io.Writer, slides []Slide) error {
	views := make([]slideView, 0, len(slides))
	for i, s := range slides {
		views = append(views, slideView{
			Index:       i,
			Active:      i == 0,
			Style:       backgroundStyle(s.Image),
			Title:       orDefault(s.Title, DefaultTitle),
			Description: orDefault(s.Description, DefaultSlideText),
		})
	}
	return templates.ExecuteTemplate(w, "sliders", views)
}

// RenderSliderError renders the slider fallback.
func (r *Renderer) RenderSliderError(w io.Writer) error {
	return templates.ExecuteTemplate(w, "slider_error", nil)
}

// RenderDocument wraps a fragment in a minimal HTML page.
func (r *Renderer) RenderDocument(w io.Writer, title string, body template.HTML) error {
	return templates.ExecuteTemplate(w, "document", struct {
		Title string
		Body  template.HTML
	}{title, body})
}

func (r *Renderer) articleURL() string {
	if r.ArticleURL == "" {
		return DefaultArticleURL
	}
	return r.ArticleURL
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
