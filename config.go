package articlemark

import (
	"sync"

	"github.com/riverfjs/articlemark/internal/types"
)

// 导出类型别名
type (
	Token        = types.Token
	TokenKind    = types.TokenKind
	LinkKind     = types.LinkKind
	Vocabulary   = types.Vocabulary
	ClassNames   = types.ClassNames
	RenderConfig = types.RenderConfig
)

// Token kinds.
const (
	KindText        = types.KindText
	KindImage       = types.KindImage
	KindAudioFile   = types.KindAudioFile
	KindKeywordLink = types.KindKeywordLink
	KindAtLink      = types.KindAtLink
	KindPlainLink   = types.KindPlainLink
	KindHTML        = types.KindHTML
)

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
// Callers that need changes should start from NewConfig instead.
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultRenderConfig()
	})
	return defaultConfig
}

// NewConfig returns a fresh copy of the default configuration.
func NewConfig() *RenderConfig {
	return types.DefaultRenderConfig()
}

// DefaultVocabulary returns the built-in keyword table in match order.
func DefaultVocabulary() Vocabulary {
	return types.DefaultVocabulary()
}
