package parser

import (
	"regexp"
	"strings"

	"github.com/riverfjs/articlemark/internal/types"
	"github.com/riverfjs/articlemark/internal/util"
)

var (
	// ![alt](url)
	markdownImageRe = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	// [image: url]
	bracketImageRe = regexp.MustCompile(`(?i)\[image:` + spaceClass + `*([^\]]+)\]`)

	// 独立一行的图片 URL（已去掉首尾空白）
	standaloneImageRe = regexp.MustCompile(`(?i)^https?://` + imageURLClass + `+\.(` +
		strings.Join(util.ImageExts, "|") + `)(\?` + imageURLClass + `*)?$`)
)

// imageURLClass 图片 URL 中允许的字符：非空白且不含尖括号
const imageURLClass = `[^\s\v\p{Zs}\x{85}\x{2028}\x{2029}\x{feff}<>]`

// imagePasses 依次识别三种图片写法
func imagePasses(c *claims, cfg *types.RenderConfig) {
	c.scanGaps(markdownImageRe, func(loc []int) (types.Token, bool) {
		url := strings.TrimFunc(c.group(loc, 2), isSpace)
		if url == "" || util.IsDangerousURL(url) {
			return types.Token{}, false
		}
		return types.Token{Kind: types.KindImage, URL: url, Alt: c.group(loc, 1)}, true
	})

	c.scanGaps(bracketImageRe, func(loc []int) (types.Token, bool) {
		url := strings.TrimFunc(c.group(loc, 1), isSpace)
		if url == "" || util.IsDangerousURL(url) {
			return types.Token{}, false
		}
		return types.Token{Kind: types.KindImage, URL: url}, true
	})

	standaloneImages(c, cfg)
}

// standaloneImages 整行只有一个图片 URL 时替换为图片；token 覆盖整行但不含换行符
func standaloneImages(c *claims, cfg *types.RenderConfig) {
	found := make([]types.Token, 0)
	start := 0
	for start <= len(c.src) {
		end := strings.IndexByte(c.src[start:], '\n')
		if end < 0 {
			end = len(c.src)
		} else {
			end += start
		}

		if end > start && !c.overlaps(start, end) {
			line := c.src[start:end]
			url := strings.TrimFunc(line, isSpace)
			if standaloneImageRe.MatchString(url) {
				found = append(found, types.Token{
					Kind:  types.KindImage,
					URL:   url,
					Alt:   cfg.StandaloneImageAlt,
					Raw:   line,
					Start: start,
					End:   end,
				})
			}
		}
		start = end + 1
	}
	if len(found) > 0 {
		c.add(found...)
	}
}
