package site

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticle_Validate(t *testing.T) {
	tests := []struct {
		name    string
		article Article
		wantErr bool
	}{
		{"title only", Article{Title: "a"}, false},
		{"content only", Article{Content: "body"}, false},
		{"description only", Article{Description: "desc"}, false},
		{"empty", Article{}, true},
		{"relative image", Article{Title: "a", Image: "assets/images/a.jpg"}, false},
		{"remote image", Article{Title: "a", Image: "https://cdn.example.com/a.jpg"}, false},
		{"script image", Article{Title: "a", Image: "javascript:alert(1)"}, true},
		{"empty gallery entry", Article{Title: "a", Images: []string{"a.jpg", ""}}, true},
		{"hash link", Article{Title: "a", Link: "#"}, false},
		{"remote link", Article{Title: "a", Link: "https://example.com/x"}, false},
		{"script link", Article{Title: "a", Link: "vbscript:x"}, true},
		{"markdown", Article{Title: "a", Format: FormatMarkdown}, false},
		{"unknown format", Article{Title: "a", Format: "rtf"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.article.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, IsValidationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAbout_Validate(t *testing.T) {
	assert.NoError(t, About{}.Validate())
	assert.NoError(t, About{Stats: []Stat{{Number: 0, Label: "x"}}}.Validate())
	assert.Error(t, About{Stats: []Stat{{Number: -1, Label: "x"}}}.Validate())
	assert.Error(t, About{Stats: []Stat{{Number: 1}}}.Validate())
	assert.Error(t, About{Sections: []Section{{Icon: "🏦"}}}.Validate())
}

func TestFeed_Validate(t *testing.T) {
	assert.NoError(t, ArticleFeed{}.Validate())
	assert.Error(t, ArticleFeed{Articles: []Article{{Title: "a"}, {}}}.Validate())
	assert.NoError(t, SliderFeed{Sliders: []Slide{{}, {Image: "assets/s.jpg"}}}.Validate())
	assert.Error(t, SliderFeed{Sliders: []Slide{{Image: "file:///etc/passwd"}}}.Validate())
}

func TestIsValidationError(t *testing.T) {
	assert.False(t, IsValidationError(nil))
	assert.False(t, IsValidationError(errors.New("io")))
	assert.False(t, IsValidationError(ErrArticleNotFound))
}
