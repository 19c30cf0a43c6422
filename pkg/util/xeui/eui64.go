package xeui

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// size64 是 EUI-64 的字节数。
const size64 = 8

// Eui64 表示 64 位扩展唯一标识符（EUI-64），大端字节序。
//
// 与 [Eui48] 相同，是可比较、并发安全的不可变值类型，零值为全零地址。
type Eui64 struct {
	b [size64]byte
}

// Eui64From8 从 8 字节数组创建地址。
func Eui64From8(b [8]byte) Eui64 {
	return Eui64{b: b}
}

// Eui64FromBytes 从字节切片创建地址，切片长度必须为 8。
func Eui64FromBytes(b []byte) (Eui64, error) {
	if len(b) != size64 {
		return Eui64{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidLength, size64, len(b))
	}
	var e Eui64
	copy(e.b[:], b)
	return e, nil
}

// Eui64FromUint64 从整数创建地址。
func Eui64FromUint64(v uint64) Eui64 {
	var e Eui64
	binary.BigEndian.PutUint64(e.b[:], v)
	return e
}

// ParseEui64 解析 EUI-64 文本。
//
// 接受的格式（十六进制大小写不敏感）：
//   - 无分隔符，16 字符：4D7E540000972EEF
//   - 短线分隔，23 字符：4D-7E-54-00-00-97-2E-EF
//   - 冒号分隔，23 字符：4D:7E:54:00:00:97:2E:EF
//
// 失败时返回 [*ParseError]。
func ParseEui64(s string) (Eui64, error) {
	var e Eui64
	if err := decodeHex(e.b[:], s); err != nil {
		return Eui64{}, err
	}
	return e, nil
}

// MustParseEui64 类似 [ParseEui64]，但解析失败时 panic。
func MustParseEui64(s string) Eui64 {
	e, err := ParseEui64(s)
	if err != nil {
		panic(fmt.Sprintf("xeui.MustParseEui64(%q): %v", s, err))
	}
	return e
}

// Bytes 返回地址的字节数组副本。
func (e Eui64) Bytes() [8]byte {
	return e.b
}

// Uint64 返回地址的大端整数值。
func (e Eui64) Uint64() uint64 {
	return binary.BigEndian.Uint64(e.b[:])
}

// String 返回规范格式：4D-7E-54-00-00-97-2E-EF。
func (e Eui64) String() string {
	return formatBytes(e.b[:], FormatCanonical)
}

// FormatString 按指定格式返回文本。
func (e Eui64) FormatString(f Format) string {
	return formatBytes(e.b[:], f)
}

// Format 实现 [fmt.Formatter]，规则同 [Eui48.Format]。
func (e Eui64) Format(st fmt.State, verb rune) {
	formatVerb(st, verb, e.b[:], "xeui.Eui64")
}

// Compare 按大端字节序比较两个地址。
func (e Eui64) Compare(o Eui64) int {
	return compareBytes(e.b[:], o.b[:])
}

// IsZero 报告 e 是否为全零地址。
func (e Eui64) IsZero() bool {
	return e == Eui64{}
}

// OUI 返回前 3 字节的组织唯一标识符。
func (e Eui64) OUI() [3]byte {
	return [3]byte{e.b[0], e.b[1], e.b[2]}
}

// IsMulticast 报告第一字节最低位（I/G 位）是否为 1。
func (e Eui64) IsMulticast() bool {
	return e.b[0]&0x01 != 0
}

// IsLocallyAdministered 报告第一字节次低位（U/L 位）是否为 1。
func (e Eui64) IsLocallyAdministered() bool {
	return e.b[0]&0x02 != 0
}

// Hash 返回地址字节的 xxhash64 值。
func (e Eui64) Hash() uint64 {
	return xxhash.Sum64(e.b[:])
}

func compareBytes(a, b []byte) int {
	for i := range a {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	return 0
}
