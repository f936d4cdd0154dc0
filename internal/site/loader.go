package site

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/riverfjs/articlemark"
	"github.com/riverfjs/articlemark/internal/fetch"
)

var (
	// ErrArticleNotFound is returned when the article index is out of range.
	ErrArticleNotFound = errors.New("article not found")
	// ErrInvalidArticleID is returned when the id is not an integer.
	ErrInvalidArticleID = errors.New("invalid article id")
)

// Loader reads the site's JSON documents from a directory or a base URL.
// Every load is a single attempt; validation problems are logged and the
// data is returned as-is unless Strict is set.
type Loader struct {
	// Source is a filesystem directory or an http(s) base URL.
	Source string
	// ArticlesDir, when set, replaces articles.json with a directory of
	// Markdown files carrying YAML frontmatter.
	ArticlesDir string
	// Strict turns validation problems into errors.
	Strict bool
	Client *http.Client
}

// NewLoader creates a Loader for source.
func NewLoader(source string, client *http.Client) *Loader {
	return &Loader{Source: source, Client: client}
}

// location 返回文档的完整路径或 URL
func (l *Loader) location(name string) string {
	if fetch.IsRemote(l.Source) {
		return strings.TrimRight(l.Source, "/") + "/" + name
	}
	return filepath.Join(l.Source, name)
}

func (l *Loader) load(ctx context.Context, name string, v any) error {
	return fetch.JSON(ctx, l.location(name), l.Client, v)
}

// check 校验文档；非 Strict 模式下只记录日志
func (l *Loader) check(name string, v interface{ Validate() error }) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	if l.Strict {
		return fmt.Errorf("%s: %w", name, err)
	}
	articlemark.Logger.Printf("%s: %v", name, err)
	return nil
}

// LoadArticles loads all articles.
func (l *Loader) LoadArticles(ctx context.Context) ([]Article, error) {
	if l.ArticlesDir != "" {
		articles, err := LoadArticleDir(l.ArticlesDir)
		if err != nil {
			return nil, err
		}
		if err := l.check(l.ArticlesDir, ArticleFeed{Articles: articles}); err != nil {
			return nil, err
		}
		return articles, nil
	}

	var feed ArticleFeed
	if err := l.load(ctx, ArticlesFile, &feed); err != nil {
		return nil, fmt.Errorf("load articles: %w", err)
	}
	if err := l.check(ArticlesFile, feed); err != nil {
		return nil, err
	}
	if feed.Articles == nil {
		feed.Articles = []Article{}
	}
	return feed.Articles, nil
}

// LoadArticle loads the article at index.
func (l *Loader) LoadArticle(ctx context.Context, index int) (Article, error) {
	articles, err := l.LoadArticles(ctx)
	if err != nil {
		return Article{}, err
	}
	if index < 0 || index >= len(articles) {
		return Article{}, fmt.Errorf("article %d: %w", index, ErrArticleNotFound)
	}
	return articles[index], nil
}

// LoadAbout loads about.json.
func (l *Loader) LoadAbout(ctx context.Context) (About, error) {
	var about About
	if err := l.load(ctx, AboutFile, &about); err != nil {
		return About{}, fmt.Errorf("load about: %w", err)
	}
	if err := l.check(AboutFile, about); err != nil {
		return About{}, err
	}
	return about, nil
}

// LoadSliders loads sliders.json.
func (l *Loader) LoadSliders(ctx context.Context) ([]Slide, error) {
	var feed SliderFeed
	if err := l.load(ctx, SlidersFile, &feed); err != nil {
		return nil, fmt.Errorf("load sliders: %w", err)
	}
	if err := l.check(SlidersFile, feed); err != nil {
		return nil, err
	}
	if feed.Sliders == nil {
		feed.Sliders = []Slide{}
	}
	return feed.Sliders, nil
}

// ParseArticleID parses the ?id= query value.
func ParseArticleID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidArticleID)
	}
	return id, nil
}
