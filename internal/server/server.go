// Package server is a small gin preview server for the converter and the
// site page renderers.
package server

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/riverfjs/articlemark"
	"github.com/riverfjs/articlemark/internal/site"
)

// 页面提示文案
const (
	msgArticleNotFound = "Không tìm thấy bài viết."
	msgArticleFailed   = "Không thể tải bài viết. Vui lòng thử lại sau."
	msgLoadFailed      = "Không thể tải dữ liệu. Vui lòng thử lại sau."
)

// Server serves rendered pages and the conversion API.
type Server struct {
	loader   *site.Loader
	renderer *site.Renderer
	options  []articlemark.Option
}

// New creates a Server. opts are used by the conversion API endpoints.
func New(loader *site.Loader, renderer *site.Renderer, opts ...articlemark.Option) *Server {
	return &Server{loader: loader, renderer: renderer, options: opts}
}

// ConvertRequest is the body of POST /api/convert and /api/tokenize.
type ConvertRequest struct {
	Text       string `json:"text"`
	ImagesOnly bool   `json:"images_only"`
}

// ConvertResponse is the body returned by POST /api/convert.
type ConvertResponse struct {
	HTML string `json:"html"`
}

// Router 配置HTTP路由
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/articles", s.articles)
	r.GET("/article", s.article)
	r.GET("/about", s.about)
	r.GET("/sliders", s.sliders)

	api := r.Group("/api")
	{
		api.POST("/convert", s.convert)
		api.POST("/tokenize", s.tokenize)
	}
	return r
}

// requestLogger 使用 articlemark.Logger 记录请求
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		articlemark.Logger.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// page 将片段包装成完整页面后写回
func (s *Server) page(c *gin.Context, status int, title string, render func(w *bytes.Buffer) error) {
	var body bytes.Buffer
	if err := render(&body); err != nil {
		articlemark.Logger.Printf("render %s: %v", c.Request.URL.Path, err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	var doc bytes.Buffer
	if err := s.renderer.RenderDocument(&doc, title, template.HTML(body.String())); err != nil {
		articlemark.Logger.Printf("render document %s: %v", c.Request.URL.Path, err)
		c.String(http.StatusInternalServerError, "render failed")
		return
	}
	c.Data(status, "text/html; charset=utf-8", doc.Bytes())
}

func (s *Server) articles(c *gin.Context) {
	title := site.DefaultPageTitle + " - " + s.renderer.SiteName
	articles, err := s.loader.LoadArticles(c.Request.Context())
	if err != nil {
		articlemark.Logger.Printf("load articles: %v", err)
		s.page(c, http.StatusBadGateway, title, func(w *bytes.Buffer) error {
			return s.renderer.RenderArticleError(w, msgArticleFailed)
		})
		return
	}
	s.page(c, http.StatusOK, title, func(w *bytes.Buffer) error {
		return s.renderer.RenderArticleCards(w, articles)
	})
}

func (s *Server) article(c *gin.Context) {
	errorTitle := "Lỗi - " + s.renderer.SiteName
	id, err := site.ParseArticleID(c.Query("id"))
	if err != nil {
		s.page(c, http.StatusNotFound, errorTitle, func(w *bytes.Buffer) error {
			return s.renderer.RenderArticleError(w, msgArticleNotFound)
		})
		return
	}

	a, err := s.loader.LoadArticle(c.Request.Context(), id)
	switch {
	case errors.Is(err, site.ErrArticleNotFound):
		s.page(c, http.StatusNotFound, errorTitle, func(w *bytes.Buffer) error {
			return s.renderer.RenderArticleError(w, msgArticleNotFound)
		})
	case err != nil:
		articlemark.Logger.Printf("load article %d: %v", id, err)
		s.page(c, http.StatusBadGateway, errorTitle, func(w *bytes.Buffer) error {
			return s.renderer.RenderArticleError(w, msgArticleFailed)
		})
	default:
		s.page(c, http.StatusOK, s.renderer.ArticleTitle(a), func(w *bytes.Buffer) error {
			return s.renderer.RenderArticlePage(w, a)
		})
	}
}

func (s *Server) about(c *gin.Context) {
	about, err := s.loader.LoadAbout(c.Request.Context())
	if err != nil {
		articlemark.Logger.Printf("load about: %v", err)
		c.String(http.StatusBadGateway, msgLoadFailed)
		return
	}
	title := s.renderer.SiteName
	if about.PageTitle != "" {
		title = about.PageTitle + " - " + title
	}
	s.page(c, http.StatusOK, title, func(w *bytes.Buffer) error {
		return s.renderer.RenderAbout(w, about)
	})
}

func (s *Server) sliders(c *gin.Context) {
	slides, err := s.loader.LoadSliders(c.Request.Context())
	if err != nil {
		articlemark.Logger.Printf("load sliders: %v", err)
		s.page(c, http.StatusBadGateway, s.renderer.SiteName, func(w *bytes.Buffer) error {
			return s.renderer.RenderSliderError(w)
		})
		return
	}
	s.page(c, http.StatusOK, s.renderer.SiteName, func(w *bytes.Buffer) error {
		return s.renderer.RenderSliders(w, slides)
	})
}

func (s *Server) convert(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	var html string
	if req.ImagesOnly {
		html = articlemark.ExpandImages(req.Text, s.options...)
	} else {
		html = articlemark.Convert(req.Text, s.options...)
	}
	c.JSON(http.StatusOK, ConvertResponse{HTML: html})
}

func (s *Server) tokenize(c *gin.Context) {
	var req ConvertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tokens": articlemark.Tokenize(req.Text, s.options...)})
}
