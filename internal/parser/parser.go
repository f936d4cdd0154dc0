package parser

import (
	"sort"
	"unicode/utf8"

	"github.com/riverfjs/articlemark/internal/types"
)

// Options 控制 Tokenize 的行为
type Options struct {
	Config *types.RenderConfig
	// TrustHTML 保留文本中已有的 HTML 标签
	TrustHTML bool
}

// Tokenize 将原始文本切分为有序的 token 列表
//
// 顺序：图片 → (受信任 HTML 标签) → 关键词链接 → @URL → 裸 URL → 音频文件。
// 每一轮只扫描尚未被占用的区间，已占用区间对后续各轮不可见。
// 返回的 token 首尾相接，覆盖整个输入。
func Tokenize(raw string, opts Options) []types.Token {
	if raw == "" {
		return nil
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}

	c := newClaims(raw)
	imagePasses(c, cfg)
	if opts.TrustHTML {
		htmlTagPass(c)
	}
	linkPasses(c, cfg)
	return c.fill()
}

// TokenizeImages 只执行图片识别
func TokenizeImages(raw string, config *types.RenderConfig) []types.Token {
	if raw == "" {
		return nil
	}
	if config == nil {
		config = types.DefaultRenderConfig()
	}
	c := newClaims(raw)
	imagePasses(c, config)
	return c.fill()
}

// claims 记录已被占用的区间（按 Start 排序、互不重叠）
type claims struct {
	src  string
	toks []types.Token
}

func newClaims(src string) *claims {
	return &claims{src: src, toks: make([]types.Token, 0)}
}

// span 原文中的一段 [start, end)
type span struct {
	start int
	end   int
}

// gaps 返回尚未被占用的区间
func (c *claims) gaps() []span {
	out := make([]span, 0, len(c.toks)+1)
	cursor := 0
	for _, t := range c.toks {
		if t.Start > cursor {
			out = append(out, span{cursor, t.Start})
		}
		cursor = t.End
	}
	if cursor < len(c.src) {
		out = append(out, span{cursor, len(c.src)})
	}
	return out
}

func (c *claims) overlaps(start, end int) bool {
	for _, t := range c.toks {
		if t.Start < end && start < t.End {
			return true
		}
	}
	return false
}

// add 插入新 token；调用方保证不与已有区间重叠
func (c *claims) add(tokens ...types.Token) {
	c.toks = append(c.toks, tokens...)
	sort.Slice(c.toks, func(i, j int) bool {
		return c.toks[i].Start < c.toks[j].Start
	})
}

// fill 用文本 token 填满空隙
func (c *claims) fill() []types.Token {
	out := make([]types.Token, 0, len(c.toks)*2+1)
	cursor := 0
	for _, t := range c.toks {
		if t.Start > cursor {
			out = append(out, c.text(cursor, t.Start))
		}
		out = append(out, t)
		cursor = t.End
	}
	if cursor < len(c.src) {
		out = append(out, c.text(cursor, len(c.src)))
	}
	return out
}

func (c *claims) text(start, end int) types.Token {
	return types.Token{
		Kind:  types.KindText,
		Raw:   c.src[start:end],
		Start: start,
		End:   end,
	}
}

// runeBefore 返回 pos 之前的字符；pos 为 0 时返回 utf8.RuneError, false
func (c *claims) runeBefore(pos int) (rune, bool) {
	if pos <= 0 {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeLastRuneInString(c.src[:pos])
	return r, true
}

// runeAt 返回 pos 处的字符；pos 越界时返回 utf8.RuneError, false
func (c *claims) runeAt(pos int) (rune, bool) {
	if pos >= len(c.src) {
		return utf8.RuneError, false
	}
	r, _ := utf8.DecodeRuneInString(c.src[pos:])
	return r, true
}
