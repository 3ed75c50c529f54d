package msgstyle

import (
	"sync"

	"github.com/riverfjs/msgstyle-go/internal/types"
)

// 导出类型别名
type Config = types.Config

// DefaultEscapeChars are the marker characters a backslash neutralizes.
const DefaultEscapeChars = types.DefaultEscapeChars

var (
	defaultConfig     *Config
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default configuration (singleton).
//
// The returned value is shared; use WithConfig or the other options to
// change settings for a single call.
func DefaultConfig() *Config {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultConfig()
	})
	return defaultConfig
}
