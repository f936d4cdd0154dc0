package util

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/renderer/html"
)

// ImageExts 独立图片 URL 支持的扩展名
var ImageExts = []string{"jpg", "jpeg", "png", "gif", "webp", "svg"}

// AudioExts 音频扩展名
var AudioExts = []string{"mp3", "wav", "ogg", "m4a"}

var (
	// audioURLPattern 扩展名后可跟 ? 或 #
	audioURLPattern = regexp.MustCompile(`(?i)\.(` + strings.Join(AudioExts, "|") + `)([?#]|$)`)

	// audioPathPattern 无协议的音频文件路径
	audioPathPattern = regexp.MustCompile(`(?i)^[^<>"']+\.(` + strings.Join(AudioExts, "|") + `)$`)

	// mailto:a@b.com 之类；冒号后必须还有内容
	schemePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.\-]*:[^:\s]`)
)

// IsAudioURL reports whether url ends in an audio extension, optionally
// followed by a query or fragment.
func IsAudioURL(url string) bool {
	return audioURLPattern.MatchString(url)
}

// IsAudioPath reports whether word is a bare audio file path such as
// assets/audio/clip.mp3.
func IsAudioPath(word string) bool {
	return audioPathPattern.MatchString(word)
}

// NormalizePath converts Windows separators to forward slashes.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, `\`, "/")
}

// IsDangerousURL 拒绝 javascript:、vbscript:、file: 和非图片 data: URL
func IsDangerousURL(url string) bool {
	return html.IsDangerousURL([]byte(url))
}

// LooksLikeTarget reports whether s could be a link target rather than a
// plain word: it carries a scheme, starts with a path, or has a dotted
// host or extension. Words containing markup characters never qualify.
func LooksLikeTarget(s string) bool {
	if s == "" || strings.ContainsAny(s, `<>"`) {
		return false
	}
	if strings.Contains(s, "://") || schemePattern.MatchString(s) {
		return true
	}
	if strings.HasPrefix(s, "/") || strings.HasPrefix(s, "./") || strings.HasPrefix(s, "../") {
		return true
	}
	dot := strings.LastIndex(s, ".")
	return dot > 0 && dot < len(s)-1
}
