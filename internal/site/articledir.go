package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
)

// articleMatter 文章文件的 frontmatter
type articleMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Image       string   `yaml:"image"`
	Images      []string `yaml:"images"`
	Link        string   `yaml:"link"`
	Format      string   `yaml:"format"`
	Draft       bool     `yaml:"draft"`
}

// LoadArticleDir reads every *.md file in dir, sorted by file name, and
// skips drafts. The body after the frontmatter becomes the article content.
func LoadArticleDir(dir string) ([]Article, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.md"))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	sort.Strings(paths)

	articles := make([]Article, 0, len(paths))
	for _, path := range paths {
		a, draft, err := parseArticleFile(path)
		if err != nil {
			return nil, err
		}
		if draft {
			continue
		}
		articles = append(articles, a)
	}
	return articles, nil
}

func parseArticleFile(path string) (Article, bool, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return Article{}, false, err
	}
	var meta articleMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return Article{}, false, fmt.Errorf("parse frontmatter %s: %w", path, err)
	}
	return Article{
		Title:       meta.Title,
		Description: meta.Description,
		Content:     strings.TrimSpace(string(body)),
		Image:       meta.Image,
		Images:      meta.Images,
		Link:        meta.Link,
		Format:      meta.Format,
	}, meta.Draft, nil
}
