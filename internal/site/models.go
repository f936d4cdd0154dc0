package site

// Article body formats.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
)

// Article is one entry of articles.json.
type Article struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Content     string   `json:"content,omitempty"`
	Image       string   `json:"image,omitempty"`
	Images      []string `json:"images,omitempty"`
	Link        string   `json:"link,omitempty"`
	// Format selects the body renderer; empty means FormatText.
	Format string `json:"format,omitempty"`
}

// Body returns the text shown on the article page.
func (a Article) Body() string {
	if a.Content != "" {
		return a.Content
	}
	if a.Description != "" {
		return a.Description
	}
	return DefaultBody
}

// HasLink reports whether the "read more" button should be shown.
func (a Article) HasLink() bool {
	return a.Link != "" && a.Link != "#"
}

// ArticleFeed is the articles.json document.
type ArticleFeed struct {
	Articles []Article `json:"articles"`
}

// Section is an about page card.
type Section struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Stat is an about page counter.
type Stat struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
}

// About is the about.json document.
type About struct {
	PageTitle string    `json:"pageTitle,omitempty"`
	Intro     string    `json:"intro,omitempty"`
	Sections  []Section `json:"sections,omitempty"`
	Stats     []Stat    `json:"stats,omitempty"`
}

// Slide is one entry of sliders.json.
type Slide struct {
	Image       string `json:"image,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
}

// SliderFeed is the sliders.json document.
type SliderFeed struct {
	Sliders []Slide `json:"sliders"`
}

// Defaults used when a document leaves a field empty.
const (
	DefaultTitle        = "Không có tiêu đề"
	DefaultPageTitle    = "Bài Viết"
	DefaultBody         = "Không có nội dung"
	DefaultArticleImage = "assets/images/default-article.jpg"
	DefaultSlideImage   = "assets/images/slider1.jpg"
	DefaultSlideText    = "Không có mô tả"
	DefaultSiteName     = "Fiin Credit"
)

// Document file names under the data directory.
const (
	ArticlesFile = "articles.json"
	AboutFile    = "about.json"
	SlidersFile  = "sliders.json"
)
