package parser

import (
	"strings"
	"testing"

	"github.com/riverfjs/articlemark/internal/types"
)

// kinds 返回 token 种类序列，便于比较
func kinds(tokens []types.Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.Kind.String()
	}
	return strings.Join(parts, ",")
}

func TestTokenize_Coverage(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"xem youtube https://youtu.be/x và @https://a.com/b\nhttps://c.com",
		"![a](https://x.com/p.png) [image: q.jpg]\n  https://x.com/s.webp  \nnghe clip.mp3",
		"Latin tin https://x.com/a tin tức",
		"<b>đậm</b> https://a.com",
	}
	for _, in := range inputs {
		for _, trust := range []bool{false, true} {
			tokens := Tokenize(in, Options{TrustHTML: trust})
			var sb strings.Builder
			cursor := 0
			for _, tok := range tokens {
				if tok.Start != cursor {
					t.Fatalf("%q: token %v starts at %d, want %d", in, tok, tok.Start, cursor)
				}
				if in[tok.Start:tok.End] != tok.Raw {
					t.Fatalf("%q: token raw %q does not match span", in, tok.Raw)
				}
				sb.WriteString(tok.Raw)
				cursor = tok.End
			}
			if sb.String() != in {
				t.Errorf("%q: tokens reassemble to %q", in, sb.String())
			}
		}
	}
}

func TestTokenize_KeywordRetry(t *testing.T) {
	// "Latin" 中的 tin 被拒绝后，仍能找到后面的 tin
	tokens := Tokenize("Latin tin https://x.com/a", Options{})
	if got := kinds(tokens); got != "text,keyword-link" {
		t.Fatalf("kinds = %s", got)
	}
	if tokens[0].Raw != "Latin " {
		t.Errorf("text = %q", tokens[0].Raw)
	}
	if tokens[1].Keyword != "tin" || tokens[1].URL != "https://x.com/a" {
		t.Errorf("link = %+v", tokens[1])
	}
}

func TestTokenize_ProseTarget(t *testing.T) {
	in := "tin tức https://x.com"
	tokens := Tokenize(in, Options{})
	if got := kinds(tokens); got != "text,plain-link" {
		t.Fatalf("kinds = %s", got)
	}
	if want := len("tin tức "); tokens[1].Start != want {
		t.Errorf("link start = %d, want %d", tokens[1].Start, want)
	}

	cfg := types.DefaultRenderConfig()
	cfg.RequireLinkTarget = false
	tokens = Tokenize(in, Options{Config: cfg})
	if got := kinds(tokens); got != "keyword-link,text,plain-link" {
		t.Errorf("loose kinds = %s", got)
	}
}

func TestTokenize_ClaimedSpans(t *testing.T) {
	tokens := Tokenize("![a](https://x.com/p.png)", Options{})
	if got := kinds(tokens); got != "image" {
		t.Fatalf("kinds = %s", got)
	}
	if tokens[0].URL != "https://x.com/p.png" || tokens[0].Alt != "a" {
		t.Errorf("image = %+v", tokens[0])
	}

	// @URL 被占用后不再作为裸链接
	tokens = Tokenize("@https://a.com", Options{})
	if got := kinds(tokens); got != "at-link" || tokens[0].URL != "https://a.com" {
		t.Errorf("at-link = %s %+v", got, tokens)
	}
}

func TestTokenize_StandaloneImage(t *testing.T) {
	in := "  https://x.com/a.png?w=1  \nnext"
	tokens := Tokenize(in, Options{})
	if got := kinds(tokens); got != "image,text" {
		t.Fatalf("kinds = %s", got)
	}
	img := tokens[0]
	if img.Raw != "  https://x.com/a.png?w=1  " || img.URL != "https://x.com/a.png?w=1" {
		t.Errorf("image = %+v", img)
	}
	if img.Alt != "Article image" {
		t.Errorf("alt = %q", img.Alt)
	}
	if tokens[1].Raw != "\nnext" {
		t.Errorf("rest = %q", tokens[1].Raw)
	}

	// 同一行还有其他文字时不是独立图片
	tokens = Tokenize("xem https://x.com/a.png", Options{})
	if got := kinds(tokens); got != "text,plain-link" {
		t.Errorf("inline kinds = %s", got)
	}
}

func TestTokenize_AudioFile(t *testing.T) {
	tests := []struct {
		in   string
		want string
		url  string
	}{
		{"nghe clip.mp3", "text,audio-file", "clip.mp3"},
		{`nghe assets\audio\a.WAV ngay`, "text,audio-file,text", "assets/audio/a.WAV"},
		{"nghe clip.mp3x", "text", ""},
		{`nghe "clip.mp3"`, "text", ""},
		{"nghe javascript:alert(1)//.mp3", "text", ""},
		{"nghe\u00a0clip.mp3", "text,audio-file", "clip.mp3"},
	}
	for _, tt := range tests {
		tokens := Tokenize(tt.in, Options{})
		if got := kinds(tokens); got != tt.want {
			t.Errorf("%q: kinds = %s, want %s", tt.in, got, tt.want)
			continue
		}
		if tt.url != "" && tokens[1].URL != tt.url {
			t.Errorf("%q: url = %q, want %q", tt.in, tokens[1].URL, tt.url)
		}
	}
}

func TestTokenize_TrustHTML(t *testing.T) {
	in := `<img src="https://x.com/a.png"> https://a.com`
	if got := kinds(Tokenize(in, Options{})); got != "text,plain-link,text,plain-link" {
		t.Errorf("untrusted kinds = %s", got)
	}
	if got := kinds(Tokenize(in, Options{TrustHTML: true})); got != "html,text,plain-link" {
		t.Errorf("trusted kinds = %s", got)
	}
}

func TestTokenizeImages(t *testing.T) {
	tokens := TokenizeImages("a https://x.com [image: p.png]", nil)
	if got := kinds(tokens); got != "text,image" {
		t.Errorf("kinds = %s", got)
	}
	if TokenizeImages("", nil) != nil {
		t.Error("empty input should yield no tokens")
	}
}
