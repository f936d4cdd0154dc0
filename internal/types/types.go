package types

import "strings"

// TokenKind 标识 token 的种类
type TokenKind int

const (
	// KindText 普通文本，渲染时转义
	KindText TokenKind = iota
	// KindImage 图片（Markdown 图片、[image: url]、独立一行的图片 URL）
	KindImage
	// KindAudioFile 独立的音频文件路径
	KindAudioFile
	// KindKeywordLink 关键词 + URL
	KindKeywordLink
	// KindAtLink @URL
	KindAtLink
	// KindPlainLink 裸 URL
	KindPlainLink
	// KindHTML 受信任模式下保留的 HTML 标签
	KindHTML
)

// String returns the string representation of TokenKind.
func (k TokenKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindImage:
		return "image"
	case KindAudioFile:
		return "audio-file"
	case KindKeywordLink:
		return "keyword-link"
	case KindAtLink:
		return "at-link"
	case KindPlainLink:
		return "plain-link"
	case KindHTML:
		return "html"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name in JSON output.
func (k TokenKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Keyword 值：非词表 token 的类型标记
const (
	KeywordAt        = "at"
	KeywordPlain     = "plain"
	KeywordAudioFile = "audio-file"
)

// Token 是从原始文本中提取出的一段
//
// Start/End 是原始文本中的字节偏移，Raw 为该区间的原文。
type Token struct {
	Kind    TokenKind `json:"kind"`
	Keyword string    `json:"keyword,omitempty"`
	URL     string    `json:"url,omitempty"`
	Alt     string    `json:"alt,omitempty"`
	Raw     string    `json:"raw"`
	Start   int       `json:"start"`
	End     int       `json:"end"`
}

// IsLink reports whether the token renders as an anchor or audio player.
func (t Token) IsLink() bool {
	switch t.Kind {
	case KindKeywordLink, KindAtLink, KindPlainLink, KindAudioFile:
		return true
	}
	return false
}

// LinkKind 关键词链接的显示图标和文字
type LinkKind struct {
	Keyword string
	Icon    string
	Label   string
}

// Vocabulary 有序的关键词表，顺序即匹配顺序
type Vocabulary []LinkKind

// Lookup 按关键词查找，不区分大小写
func (v Vocabulary) Lookup(keyword string) (LinkKind, bool) {
	for _, k := range v {
		if strings.EqualFold(k.Keyword, keyword) {
			return k, true
		}
	}
	return LinkKind{}, false
}

// DefaultVocabulary 返回默认关键词表
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{Keyword: "youtobe", Icon: "📺", Label: "Xem video trên YouTube"},
		{Keyword: "youtube", Icon: "📺", Label: "Xem video trên YouTube"},
		{Keyword: "facebook", Icon: "📘", Label: "Xem trên Facebook"},
		{Keyword: "fb", Icon: "📘", Label: "Xem trên Facebook"},
		{Keyword: "bao", Icon: "📰", Label: "Đọc bài báo"},
		{Keyword: "news", Icon: "📰", Label: "Đọc bài báo"},
		{Keyword: "tin", Icon: "📰", Label: "Đọc tin tức"},
		{Keyword: "link", Icon: "🔗", Label: "Xem thêm"},
		{Keyword: "web", Icon: "🌐", Label: "Truy cập website"},
		{Keyword: "doc", Icon: "📄", Label: "Xem tài liệu"},
		{Keyword: "file", Icon: "📎", Label: "Tải file"},
		{Keyword: "audio", Icon: "🎧", Label: "Nghe audio"},
		{Keyword: "mp3", Icon: "🎧", Label: "Nghe audio"},
		{Keyword: "sound", Icon: "🎧", Label: "Nghe audio"},
	}
}

// AudioKeywords 渲染为音频播放器的关键词
var AudioKeywords = map[string]bool{
	"audio":          true,
	"mp3":            true,
	"sound":          true,
	KeywordAudioFile: true,
}

// ClassNames 输出元素使用的 CSS class
type ClassNames struct {
	Image string
	Link  string
	Audio string
}

// DefaultClassNames 返回默认 class 配置
func DefaultClassNames() *ClassNames {
	return &ClassNames{
		Image: "article-content-image",
		Link:  "article-link",
		Audio: "article-audio",
	}
}

// RenderConfig 渲染配置
type RenderConfig struct {
	Vocabulary Vocabulary
	Classes    *ClassNames
	// StandaloneImageAlt 独立一行的图片 URL 使用的 alt
	StandaloneImageAlt string
	// RequireLinkTarget 关键词后的目标必须像链接（含 ://、/ 或扩展名）
	RequireLinkTarget bool
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Vocabulary:         DefaultVocabulary(),
		Classes:            DefaultClassNames(),
		StandaloneImageAlt: "Article image",
		RequireLinkTarget:  true,
	}
}
