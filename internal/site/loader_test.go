package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testArticles = `{
  "articles": [
    {"title": "Tin đầu", "description": "Mô tả", "content": "xem youtube https://youtu.be/x", "image": "assets/a.jpg"},
    {"title": "Tin hai", "images": ["assets/1.jpg", "assets/2.jpg"], "link": "#"}
  ]
}`

const testAbout = `{
  "pageTitle": "Về chúng tôi",
  "intro": "Giới thiệu",
  "sections": [{"icon": "🏦", "title": "Sứ mệnh", "content": "Hỗ trợ"}],
  "stats": [{"number": 12000, "label": "Khách hàng"}, {"number": 15, "label": "Năm"}]
}`

const testSliders = `{"sliders": [{"image": "assets/s1.jpg", "title": "Một"}, {"title": "Hai"}]}`

// writeDataDir 创建包含三个 JSON 文档的临时目录
func writeDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		ArticlesFile: testArticles,
		AboutFile:    testAbout,
		SlidersFile:  testSliders,
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}

func TestLoader_Files(t *testing.T) {
	l := NewLoader(writeDataDir(t), nil)
	ctx := context.Background()

	articles, err := l.LoadArticles(ctx)
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "Tin đầu", articles[0].Title)
	assert.Equal(t, []string{"assets/1.jpg", "assets/2.jpg"}, articles[1].Images)

	a, err := l.LoadArticle(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Tin hai", a.Title)
	assert.False(t, a.HasLink())

	about, err := l.LoadAbout(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Về chúng tôi", about.PageTitle)
	require.Len(t, about.Stats, 2)
	assert.Equal(t, 12000, about.Stats[0].Number)

	slides, err := l.LoadSliders(ctx)
	require.NoError(t, err)
	assert.Len(t, slides, 2)
}

func TestLoader_ArticleNotFound(t *testing.T) {
	l := NewLoader(writeDataDir(t), nil)

	for _, index := range []int{-1, 2, 100} {
		_, err := l.LoadArticle(context.Background(), index)
		assert.ErrorIs(t, err, ErrArticleNotFound, "index %d", index)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	l := NewLoader(t.TempDir(), nil)

	_, err := l.LoadArticles(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoader_BadJSON(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, SlidersFile), []byte("{not json"), 0o644))

	_, err := NewLoader(dir, nil).LoadSliders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode")
}

func TestLoader_Remote(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/data/"+AboutFile, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(testAbout))
	})
	mux.HandleFunc("/data/"+ArticlesFile, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	l := NewLoader(srv.URL+"/data/", srv.Client())

	about, err := l.LoadAbout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Giới thiệu", about.Intro)

	_, err = l.LoadArticles(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 500")
}

func TestLoader_Strict(t *testing.T) {
	dir := t.TempDir()
	body := `{"articles": [{"title": "x", "image": "javascript:alert(1)"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ArticlesFile), []byte(body), 0o644))

	// 非 Strict：只记录日志
	articles, err := NewLoader(dir, nil).LoadArticles(context.Background())
	require.NoError(t, err)
	assert.Len(t, articles, 1)

	l := NewLoader(dir, nil)
	l.Strict = true
	_, err = l.LoadArticles(context.Background())
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestParseArticleID(t *testing.T) {
	id, err := ParseArticleID(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	for _, s := range []string{"", "abc", "1.5"} {
		_, err := ParseArticleID(s)
		assert.ErrorIs(t, err, ErrInvalidArticleID, "id %q", s)
	}
}

func TestLoadArticleDir(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"02-second.md": "---\ntitle: Second\nformat: markdown\n---\n# Heading\n",
		"01-first.md":  "---\ntitle: First\nimages:\n  - assets/1.jpg\nlink: https://example.com\n---\n\nxem link https://example.com/a\n",
		"03-draft.md":  "---\ntitle: Draft\ndraft: true\n---\nhidden\n",
		"notes.txt":    "ignored",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	articles, err := LoadArticleDir(dir)
	require.NoError(t, err)
	require.Len(t, articles, 2)

	assert.Equal(t, "First", articles[0].Title)
	assert.Equal(t, "xem link https://example.com/a", articles[0].Content)
	assert.Equal(t, []string{"assets/1.jpg"}, articles[0].Images)
	assert.True(t, articles[0].HasLink())

	assert.Equal(t, "Second", articles[1].Title)
	assert.Equal(t, FormatMarkdown, articles[1].Format)
	assert.Equal(t, "# Heading", articles[1].Content)
}

func TestLoader_ArticlesDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("---\ntitle: A\n---\nbody\n"), 0o644))

	l := NewLoader(t.TempDir(), nil)
	l.ArticlesDir = dir

	a, err := l.LoadArticle(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, "A", a.Title)
	assert.Equal(t, "body", a.Content)
}
