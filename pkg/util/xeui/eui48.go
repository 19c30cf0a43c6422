package xeui

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// size48 是 EUI-48 的字节数。
const size48 = 6

// Eui48 表示 48 位扩展唯一标识符（EUI-48/MAC-48），大端字节序。
//
// Eui48 是不可变值类型：
//   - 零值为全零地址 00-00-00-00-00-00，是合法值
//   - 可直接比较（==）和用作 map key
//   - 并发安全，无需加锁
type Eui48 struct {
	b [size48]byte
}

// Eui48From6 从 6 字节数组创建地址。
func Eui48From6(b [6]byte) Eui48 {
	return Eui48{b: b}
}

// Eui48FromBytes 从字节切片创建地址，切片长度必须为 6。
func Eui48FromBytes(b []byte) (Eui48, error) {
	if len(b) != size48 {
		return Eui48{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, size48, len(b))
	}
	var e Eui48
	copy(e.b[:], b)
	return e, nil
}

// Eui48FromUint64 从整数的低 48 位创建地址，高 16 位被忽略。
func Eui48FromUint64(v uint64) Eui48 {
	// 没有原生 48 位整数类型，逐字节移位提取
	return Eui48{b: [size48]byte{
		byte(v >> 40),
		byte(v >> 32),
		byte(v >> 24),
		byte(v >> 16),
		byte(v >> 8),
		byte(v),
	}}
}

// ParseEui48 解析 EUI-48 文本。
//
// 接受的格式（十六进制大小写不敏感）：
//   - 无分隔符，12 字符：4D7E54972EEF
//   - 短线分隔，17 字符：4D-7E-54-97-2E-EF
//   - 冒号分隔，17 字符：4D:7E:54:97:2E:EF
//
// 不去除空白，不做任何宽松回退。失败时返回 [*ParseError]。
func ParseEui48(s string) (Eui48, error) {
	var e Eui48
	if err := decodeHex(e.b[:], s); err != nil {
		return Eui48{}, err
	}
	return e, nil
}

// MustParseEui48 类似 [ParseEui48]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParseEui48(s string) Eui48 {
	e, err := ParseEui48(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParseEui48(%q): %v", s, err))
	}
	return e
}

// Bytes 返回地址的字节数组副本。
func (e Eui48) Bytes() [6]byte {
	return e.b
}

// Uint64 返回地址的大端整数值，高 16 位为 0。
func (e Eui48) Uint64() uint64 {
	return uint64(e.b[0])<<40 |
		uint64(e.b[1])<<32 |
		uint64(e.b[2])<<24 |
		uint64(e.b[3])<<16 |
		uint64(e.b[4])<<8 |
		uint64(e.b[5])
}

// ToEui64 按 IEEE 映射约定转换为 EUI-64：
// 前 3 字节放在 EUI-64 前 3 字节，后 3 字节放在最后 3 字节，下标 3、4 补零。
//
// 没有反向转换：中间字节在一般情况下携带信息，截断策略未定义。
func (e Eui48) ToEui64() Eui64 {
	return Eui64{b: [size64]byte{
		e.b[0], e.b[1], e.b[2],
		0, 0,
		e.b[3], e.b[4], e.b[5],
	}}
}

// String 返回规范格式（大写短线分隔）：4D-7E-54-97-2E-EF。
func (e Eui48) String() string {
	return formatBytes(e.b[:], FormatCanonical)
}

// FormatString 按指定格式返回文本。
func (e Eui48) FormatString(f Format) string {
	return formatBytes(e.b[:], f)
}

// Format 实现 [fmt.Formatter]：%v/%s 为规范格式，%x/%X 为无分隔符十六进制。
func (e Eui48) Format(st fmt.State, verb rune) {
	formatVerb(st, verb, e.b[:], "xeui.Eui48")
}

// Compare 按大端字节序比较两个地址。
// 返回值：-1 (e < o), 0 (e == o), 1 (e > o)。
func (e Eui48) Compare(o Eui48) int {
	return compareBytes(e.b[:], o.b[:])
}

// IsZero 报告 e 是否为全零地址。
func (e Eui48) IsZero() bool {
	return e == Eui48{}
}

// OUI 返回前 3 字节的组织唯一标识符。
func (e Eui48) OUI() [3]byte {
	return [3]byte{e.b[0], e.b[1], e.b[2]}
}

// IsMulticast 报告第一字节最低位（I/G 位）是否为 1。
func (e Eui48) IsMulticast() bool {
	return e.b[0]&0x01 != 0
}

// IsLocallyAdministered 报告第一字节次低位（U/L 位）是否为 1。
func (e Eui48) IsLocallyAdministered() bool {
	return e.b[0]&0x02 != 0
}

// Hash 返回地址字节的 xxhash64 值，可用于分片或一致性哈希。
// 相等的地址哈希值相等。
func (e Eui48) Hash() uint64 {
	return xxhash.Sum64(e.b[:])
}
