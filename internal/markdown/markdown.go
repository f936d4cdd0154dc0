package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/riverfjs/articlemark/internal/sanitize"
)

// StandardOptions goldmark 扩展配置
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,      // GitHub Flavored Markdown (tables, strikethrough, tasklists, linkify)
		extension.Footnote, // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(), // 与纯文本正文一致：换行即 <br>
		html.WithUnsafe(),    // 原始 HTML 交给 bluemonday 清理
	),
}

var md = goldmark.New(StandardOptions...)

// Render 将 Markdown 正文渲染为经过清理的 HTML
func Render(body string) (string, error) {
	if body == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return sanitize.UGC(buf.String()), nil
}
