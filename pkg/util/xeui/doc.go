// Package xeui 提供定宽硬件标识符类型 EUI-48（6 字节）与 EUI-64（8 字节）。
//
// 两种类型都是基于固定数组的不可变值类型，支持：
//
//   - 十六进制文本解析（无分隔符、短线分隔、冒号分隔，大小写不敏感）
//   - 规范文本输出（大写短线分隔）及多种格式（[Format]）
//   - 与大端整数互转、EUI-48 → EUI-64 映射
//   - Text/JSON/Binary/SQL/BSON/CBOR/msgpack 序列化钩子
//
// # 快速示例
//
//	e, err := xeui.ParseEui48("4d:7e:54:97:2e:ef")
//	fmt.Println(e)                 // 4D-7E-54-97-2E-EF
//	fmt.Printf("%x\n", e)          // 4d7e54972eef
//	fmt.Println(e.Uint64())        // 85204980412143
//	fmt.Println(e.ToEui64())       // 4D-7E-54-00-00-97-2E-EF
//
// # 文本格式
//
// 宽度为 N 字节时，输入长度必须是 2N（无分隔符）或 3N-1（每两个十六进制数字之间一个分隔符）。
// 分隔符只能是 ':' 或 '-'，同一输入中不能混用，且只能出现在每个完整字节之后。
// 解析不会去除空白，也不做任何宽松回退。
//
// # 错误处理
//
// 解析失败返回 [*ParseError]，通过 Kind 区分四类错误：
//
//	_, err := xeui.ParseEui48("ad7e54972eja")
//	var pe *xeui.ParseError
//	if errors.As(err, &pe) {
//	    fmt.Println(pe.Kind, string(pe.Char)) // InvalidChar j
//	}
//	errors.Is(err, xeui.ErrInvalidChar)       // true
//
// 失败时不会产生部分结果。编码永不失败。
//
// # 设计决策
//
//   - 使用 [6]byte/[8]byte 固定数组：值语义、可比较、栈分配
//   - 零值即全零地址，是合法值，不存在"无效地址"状态
//   - 解析与格式化只使用栈上定长缓冲区，成功路径除返回的 string 外零堆分配
//   - 不提供 EUI-64 → EUI-48 转换：中间两字节在一般情况下携带信息，截断策略未定义
//
// # 并发
//
// 所有操作都是纯函数，无全局可变状态，可在任意 goroutine 中并发调用。
package xeui
