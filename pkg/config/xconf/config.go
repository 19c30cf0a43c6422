package xconf

import "github.com/knadh/koanf/v2"

// Format 定义配置文件格式。
type Format string

// 支持的配置格式。
const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Config 定义配置接口。
// 只提供增值功能，按键读取请直接使用 Client() 返回的 koanf 实例。
type Config interface {
	// Client 返回当前配置快照对应的 koanf 实例。
	Client() *koanf.Koanf

	// Unmarshal 将指定路径的配置反序列化到目标结构体，path 为空时反序列化整个配置。
	// 实现了 encoding.TextUnmarshaler 的字段（如 xeui.Eui48）从字符串值解码。
	Unmarshal(path string, target any) error

	// Reload 重新读取配置文件并原子替换快照。
	// 从字节数据创建的 Config 调用返回 [ErrReloadUnsupported]。
	Reload() error

	// Path 返回配置文件路径，从字节数据创建时为空。
	Path() string

	// Format 返回配置格式。
	Format() Format
}

// MustUnmarshal 与 Config.Unmarshal 相同，但失败时 panic。
// 用于程序启动阶段的必要配置。
func MustUnmarshal(c Config, path string, target any) {
	if err := c.Unmarshal(path, target); err != nil {
		panic(err)
	}
}
