package articlemark

import (
	"github.com/riverfjs/articlemark/internal/converter"
	"github.com/riverfjs/articlemark/internal/parser"
	"github.com/riverfjs/articlemark/internal/sanitize"
)

// Convert 将文章正文转换为 HTML 片段
//
// 参数:
//   - raw: 原始正文
//   - opts: 可选配置，见 WithConfig、WithTrustedHTML
//
// 返回:
//   - string: HTML 片段；空输入返回空字符串
func Convert(raw string, opts ...Option) string {
	if raw == "" {
		return ""
	}
	options := applyOptions(opts...)
	return render(Tokenize(raw, opts...), options)
}

// ExpandImages 只执行图片替换，其余文本原样返回（不转义）
func ExpandImages(raw string, opts ...Option) string {
	if raw == "" {
		return ""
	}
	options := applyOptions(opts...)
	tokens := parser.TokenizeImages(raw, options.Config)
	return converter.NewRenderer(options.Config).RenderImagesOnly(tokens)
}

// Tokenize 将正文切分为有序 token；所有 token 首尾相接覆盖整个输入
func Tokenize(raw string, opts ...Option) []Token {
	options := applyOptions(opts...)
	return parser.Tokenize(raw, parser.Options{
		Config:    options.Config,
		TrustHTML: options.TrustHTML,
	})
}

// Render 将 Tokenize 的结果渲染为 HTML 片段
func Render(tokens []Token, opts ...Option) string {
	return render(tokens, applyOptions(opts...))
}

func render(tokens []Token, options *ConvertOptions) string {
	html := converter.NewRenderer(options.Config).Render(tokens)
	if options.TrustHTML {
		html = sanitize.Fragment(html)
	}
	return html
}
