package site

import "html/template"

const documentTemplate = `<!DOCTYPE html>
<html lang="vi">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
</head>
<body>
{{.Body}}
</body>
</html>
`

const cardsTemplate = `{{if not .Cards}}<p style="text-align: center; color: var(--text-gray);">Chưa có bài viết nào.</p>{{else}}{{range .Cards}}
<article class="article-card{{if .Featured}} featured{{end}}" data-index="{{.Index}}" style="animation-delay: {{.Delay}}s">
<a class="article-card-link" href="{{.Href}}">
<img src="{{.Image}}" alt="{{.Title}}" class="article-card-image" loading="lazy">
<div class="article-card-content">
<h3 class="article-card-title">{{.Title}}</h3>
{{if .Description}}<p class="article-card-description">{{.Description}}</p>{{end}}
</div>
</a>
</article>{{end}}{{end}}
`

const articleTemplate = `<article class="article-page">
<h1 id="articleTitle" class="article-title">{{.Title}}</h1>
{{if .Gallery}}<div id="articleGallery" class="article-gallery" style="display: grid">{{range .Gallery}}
<img src="{{.Src}}" alt="{{.Alt}}" class="article-gallery-image" loading="lazy">{{end}}
</div>
{{end}}<div id="articleContent" class="article-content">{{.Body}}</div>
{{if .Link}}<div id="articleLinkContainer"><a class="article-modal-link" href="{{.Link}}" target="_blank" rel="noopener noreferrer">🔗 Xem thêm</a></div>
{{end}}</article>
`

const articleErrorTemplate = `<article class="article-page">
<h1 id="articleTitle" class="article-title">Lỗi</h1>
<div id="articleContent" class="article-content">
<div style="text-align: center; padding: 2rem; color: var(--text-gray);">
<p>{{.}}</p>
<p><a href="index.html">← Quay lại trang chủ</a></p>
</div>
</div>
</article>
`

const aboutTemplate = `<section class="about-content">
{{if .PageTitle}}<h1 class="page-title">{{.PageTitle}}</h1>
{{end}}{{if .Intro}}<div class="about-intro"><p class="lead-text">{{.Intro}}</p></div>
{{end}}<div class="about-grid">{{range .Sections}}
<div class="about-card fade-in">
<div class="about-icon">{{.Icon}}</div>
<h3 class="about-card-title">{{.Title}}</h3>
<p class="about-card-text">{{.Content}}</p>
</div>{{end}}
</div>
<div class="about-stats">{{range .Stats}}
<div class="stat-item">
<div class="stat-number" data-target="{{.Number}}">{{.Display}}</div>
<div class="stat-label">{{.Label}}</div>
</div>{{end}}
</div>
</section>
`

const slidersTemplate = `<div id="sliderWrapper" class="slider-wrapper">{{if not .}}
<div class="slide active"><div class="slide-image" style="background: linear-gradient(135deg, var(--primary-color), var(--secondary-color));"></div></div>{{else}}{{range .}}
<div class="slide{{if .Active}} active{{end}}">
<div class="slide-image" style="{{.Style}}"></div>
<div class="slide-content">
<h2 class="slide-title">{{.Title}}</h2>
<p class="slide-description">{{.Description}}</p>
</div>
</div>{{end}}{{end}}
</div>
{{if .}}<div class="slider-indicators">{{range .}}<span class="indicator{{if .Active}} active{{end}}" data-slide="{{.Index}}"></span>{{end}}</div>
{{end}}`

const sliderErrorTemplate = `<div id="sliderWrapper" class="slider-wrapper">
<div class="slide active">
<div class="slide-image" style="background: linear-gradient(135deg, var(--primary-color), var(--secondary-color));"></div>
<div class="slide-content">
<h2 class="slide-title">Không thể tải slider</h2>
<p class="slide-description">Vui lòng thử lại sau.</p>
</div>
</div>
</div>
`

var templates = template.Must(template.New("document").Parse(documentTemplate))

func init() {
	template.Must(templates.New("cards").Parse(cardsTemplate))
	template.Must(templates.New("article").Parse(articleTemplate))
	template.Must(templates.New("article_error").Parse(articleErrorTemplate))
	template.Must(templates.New("about").Parse(aboutTemplate))
	template.Must(templates.New("sliders").Parse(slidersTemplate))
	template.Must(templates.New("slider_error").Parse(sliderErrorTemplate))
}
