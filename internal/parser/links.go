package parser

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/riverfjs/articlemark/internal/types"
	"github.com/riverfjs/articlemark/internal/util"
)

// 空白字符类：ASCII 空白之外还包括 NBSP、全角空格等 Unicode 空白
const (
	spaceClass    = `[\s\v\p{Zs}\x{85}\x{2028}\x{2029}\x{feff}]`
	nonSpaceClass = `[^\s\v\p{Zs}\x{85}\x{2028}\x{2029}\x{feff}]`
)

var (
	// @https://...
	atLinkRe = regexp.MustCompile(`(?i)@(https?://` + nonSpaceClass + `+)`)

	// https://...
	plainLinkRe = regexp.MustCompile(`(?i)https?://` + nonSpaceClass + `+`)

	// 以空白分隔的单词
	wordRe = regexp.MustCompile(nonSpaceClass + `+`)

	// 受信任模式下的 HTML 标签
	htmlTagRe = regexp.MustCompile(`<[^>]+>`)

	keywordRes = map[string]*regexp.Regexp{}
)

// keywordRe 返回关键词对应的模式：@?keyword 空白 @?target
func keywordRe(keyword string) *regexp.Regexp {
	if re, ok := keywordRes[keyword]; ok {
		return re
	}
	return compileKeyword(keyword)
}

func compileKeyword(keyword string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)@?` + regexp.QuoteMeta(keyword) + spaceClass + `+@?(` + nonSpaceClass + `+)`)
}

func init() {
	for _, k := range types.DefaultVocabulary() {
		keywordRes[k.Keyword] = compileKeyword(k.Keyword)
	}
}

// htmlTagPass 占用文本中已有的 HTML 标签
func htmlTagPass(c *claims) {
	c.scanGaps(htmlTagRe, func(loc []int) (types.Token, bool) {
		return types.Token{Kind: types.KindHTML}, true
	})
}

// linkPasses 按优先级识别链接与音频
func linkPasses(c *claims, cfg *types.RenderConfig) {
	for _, kind := range cfg.Vocabulary {
		keyword := strings.ToLower(kind.Keyword)
		c.scanGaps(keywordRe(keyword), func(loc []int) (types.Token, bool) {
			if r, ok := c.runeBefore(loc[0]); ok && isWordRune(r) {
				return types.Token{}, false
			}
			target := c.group(loc, 1)
			if !acceptTarget(target, cfg) {
				return types.Token{}, false
			}
			return types.Token{Kind: types.KindKeywordLink, Keyword: keyword, URL: target}, true
		})
	}

	c.scanGaps(atLinkRe, func(loc []int) (types.Token, bool) {
		return types.Token{Kind: types.KindAtLink, Keyword: types.KeywordAt, URL: c.group(loc, 1)}, true
	})

	c.scanGaps(plainLinkRe, func(loc []int) (types.Token, bool) {
		return types.Token{Kind: types.KindPlainLink, Keyword: types.KeywordPlain, URL: c.group(loc, 0)}, true
	})

	c.scanGaps(wordRe, func(loc []int) (types.Token, bool) {
		if r, ok := c.runeBefore(loc[0]); ok && !isSpace(r) {
			return types.Token{}, false
		}
		if r, ok := c.runeAt(loc[1]); ok && !isSpace(r) {
			return types.Token{}, false
		}
		word := c.group(loc, 0)
		if !util.IsAudioPath(word) || util.IsDangerousURL(word) {
			return types.Token{}, false
		}
		return types.Token{Kind: types.KindAudioFile, Keyword: types.KeywordAudioFile, URL: util.NormalizePath(word)}, true
	})
}

func acceptTarget(target string, cfg *types.RenderConfig) bool {
	if target == "" || util.IsDangerousURL(target) {
		return false
	}
	if cfg.RequireLinkTarget && !util.LooksLikeTarget(target) {
		return false
	}
	return true
}

// isSpace 与 spaceClass 一致
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || r == '\ufeff'
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
