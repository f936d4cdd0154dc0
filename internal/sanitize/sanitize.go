// Package sanitize holds the bluemonday policies applied to untrusted markup.
package sanitize

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	fragmentPolicy     *bluemonday.Policy
	fragmentPolicyOnce sync.Once

	ugcPolicy     *bluemonday.Policy
	ugcPolicyOnce sync.Once
)

// FragmentPolicy 只允许转换器自身输出的元素：a、img、audio、div、br
func FragmentPolicy() *bluemonday.Policy {
	fragmentPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowStandardURLs()
		// 转换器自己输出 rel="noopener noreferrer"，不追加 nofollow
		p.RequireNoFollowOnLinks(false)
		p.AllowElements("br", "div", "audio")
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a", "img", "div")
		p.AllowAttrs("href").OnElements("a")
		p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
		p.AllowAttrs("rel").Matching(bluemonday.SpaceSeparatedTokens).OnElements("a")
		p.AllowImages()
		p.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img")
		p.AllowAttrs("src").OnElements("audio")
		p.AllowAttrs("controls").Matching(regexp.MustCompile(`^(controls)?$`)).OnElements("audio")
		p.AllowAttrs("preload").Matching(regexp.MustCompile(`^(none|metadata|auto)$`)).OnElements("audio")
		fragmentPolicy = p
	})
	return fragmentPolicy
}

// UGCPolicy bluemonday 的 UGC 策略，额外允许懒加载图片和音频播放器
func UGCPolicy() *bluemonday.Policy {
	ugcPolicyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "img", "div")
		p.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img")
		p.AllowAttrs("src").OnElements("audio")
		p.AllowAttrs("controls").Matching(regexp.MustCompile(`^(controls)?$`)).OnElements("audio")
		p.AllowAttrs("preload").Matching(regexp.MustCompile(`^(none|metadata|auto)$`)).OnElements("audio")
		ugcPolicy = p
	})
	return ugcPolicy
}

// Fragment sanitizes a converter fragment produced in trusted-HTML mode.
func Fragment(html string) string {
	return FragmentPolicy().Sanitize(html)
}

// UGC sanitizes rendered user content such as Markdown bodies.
func UGC(html string) string {
	return UGCPolicy().Sanitize(html)
}
