// Package xconf 提供基于 koanf 的配置加载：YAML/JSON，来自文件或字节数据。
//
// 定位为最小化加载器，只负责加载、反序列化和重载；默认值与必选项校验由调用方完成。
//
//	cfg, err := xconf.New("xeuictl.yaml", xconf.WithStrict())
//	if err != nil {
//	    return err
//	}
//	var c struct {
//	    Gateway xeui.Eui48 `koanf:"gateway"`
//	}
//	err = cfg.Unmarshal("", &c)
//
// # 字段解码
//
// Unmarshal 使用 mapstructure，允许弱类型转换（"8080" → 8080），
// 并对实现了 encoding.TextUnmarshaler 的字段调用 UnmarshalText，
// 因此 EUI 地址、time.Duration 等可直接写成字符串。
// 字段解码错误被包装在 [ErrUnmarshalFailed] 之下。
//
// YAML 中的纯数字地址（如 000000000000）会被解析为整数，应加引号。
//
// # 并发
//
// Client 与 Unmarshal 无锁读取当前快照；Reload 串行执行，解析成功后原子替换快照。
// Client 返回的实例在 Reload 后仍可使用，但内容是旧的，不要长期缓存。
package xconf
