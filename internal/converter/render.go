package converter

import (
	"fmt"

	"github.com/riverfjs/articlemark/internal/buffer"
	"github.com/riverfjs/articlemark/internal/types"
	"github.com/riverfjs/articlemark/internal/util"
)

// Renderer 将 token 列表渲染为 HTML 片段
type Renderer struct {
	buf    *buffer.HTMLBuffer
	config *types.RenderConfig
}

// NewRenderer 创建新的 Renderer
func NewRenderer(config *types.RenderConfig) *Renderer {
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	if config.Classes == nil {
		c := *config
		c.Classes = types.DefaultClassNames()
		config = &c
	}
	return &Renderer{
		buf:    buffer.New(),
		config: config,
	}
}

// Render 渲染全部 token：文本转义并换行转 <br>，其余替换为对应元素
func (r *Renderer) Render(tokens []types.Token) string {
	r.buf.Reset()
	for _, t := range tokens {
		switch t.Kind {
		case types.KindText:
			r.buf.WriteText(t.Raw)
		case types.KindImage:
			r.buf.WriteRaw(r.Image(t))
		case types.KindHTML:
			r.buf.WriteRaw(t.Raw)
		default:
			if t.IsLink() {
				r.buf.WriteRaw(r.Link(t))
			} else {
				r.buf.WriteText(t.Raw)
			}
		}
	}
	return r.buf.String()
}

// RenderImagesOnly 只替换图片，其余文本原样保留（不转义）
func (r *Renderer) RenderImagesOnly(tokens []types.Token) string {
	r.buf.Reset()
	for _, t := range tokens {
		if t.Kind == types.KindImage {
			r.buf.WriteRaw(r.Image(t))
			continue
		}
		r.buf.WriteRaw(t.Raw)
	}
	return r.buf.String()
}

// Image 生成 <img> 元素
func (r *Renderer) Image(t types.Token) string {
	return fmt.Sprintf(`<img src="%s" alt="%s" class="%s" loading="lazy">`,
		attr(t.URL), attr(t.Alt), attr(r.config.Classes.Image))
}

// Link 生成链接或音频播放器
//
// 优先级：音频关键词或音频扩展名 → 词表关键词 → @URL → 裸 URL
func (r *Renderer) Link(t types.Token) string {
	if types.AudioKeywords[t.Keyword] || util.IsAudioURL(t.URL) {
		return r.audio(t.URL)
	}
	if kind, ok := r.config.Vocabulary.Lookup(t.Keyword); ok {
		return r.anchor(t.URL, kind.Icon+" "+kind.Label)
	}
	if t.Kind == types.KindAtLink {
		return r.anchor(t.URL, "🔗 "+t.URL)
	}
	return r.anchor(t.URL, t.URL)
}

func (r *Renderer) anchor(url, label string) string {
	return fmt.Sprintf(`<a href="%s" target="_blank" rel="noopener noreferrer" class="%s">%s</a>`,
		attr(url), attr(r.config.Classes.Link), buffer.Escape(label))
}

func (r *Renderer) audio(url string) string {
	return fmt.Sprintf(`<div class="%s"><audio controls preload="none" src="%s"></audio></div>`,
		attr(r.config.Classes.Audio), attr(url))
}

func attr(v string) string {
	return buffer.Escape(v)
}
