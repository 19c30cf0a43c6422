package xeui

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// 编解码钩子：任何序列化框架只需要两个操作：输出规范文本，以及按固定宽度解析文本。
// 以下各方法均是这两个操作在不同接口下的包装，解析失败返回与 Parse 相同的 [*ParseError]。

// =============================================================================
// Eui48
// =============================================================================

// AppendText 实现 [encoding.TextAppender]，追加规范格式。
func (e Eui48) AppendText(b []byte) ([]byte, error) {
	return appendCanonical(b, e.b[:]), nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出规范格式。
func (e Eui48) MarshalText() ([]byte, error) {
	return appendCanonical(make([]byte, 0, textLen(size48, sepDash)), e.b[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
// 接受 [ParseEui48] 支持的所有格式；空输入返回长度错误。
func (e *Eui48) UnmarshalText(text []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseEui48(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]，输出带引号的规范格式。
// 规范文本只含 [0-9A-F-]，无需 JSON 转义。
func (e Eui48) MarshalJSON() ([]byte, error) {
	return appendJSON(e.b[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]。
// null 设置为零值；其他非字符串 JSON 值返回 [ErrUnsupportedType]。
func (e *Eui48) UnmarshalJSON(data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, isNull, err := jsonString(data)
	if err != nil {
		return err
	}
	if isNull {
		*e = Eui48{}
		return nil
	}
	return e.UnmarshalText([]byte(s))
}

// AppendBinary 实现 [encoding.BinaryAppender]，追加 6 个原始字节。
func (e Eui48) AppendBinary(b []byte) ([]byte, error) {
	return append(b, e.b[:]...), nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]，输出 6 个原始字节。
func (e Eui48) MarshalBinary() ([]byte, error) {
	return e.AppendBinary(make([]byte, 0, size48))
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]，输入必须为 6 字节。
func (e *Eui48) UnmarshalBinary(data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	parsed, err := Eui48FromBytes(data)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Value 实现 [driver.Valuer]，写入规范格式字符串。
func (e Eui48) Value() (driver.Value, error) {
	return e.String(), nil
}

// Scan 实现 sql.Scanner。
// 支持 string、[]byte（文本或 6 字节二进制，适配 BINARY(6) 列）、nil（SQL NULL → 零值）。
func (e *Eui48) Scan(src any) error {
	if e == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*e = Eui48{}
		return nil
	case string:
		return e.UnmarshalText([]byte(v))
	case []byte:
		// 文本格式最短 12 字符，不会与 6 字节二进制冲突
		if len(v) == size48 {
			copy(e.b[:], v)
			return nil
		}
		return e.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}

// =============================================================================
// Eui64
// =============================================================================

// AppendText 实现 [encoding.TextAppender]，追加规范格式。
func (e Eui64) AppendText(b []byte) ([]byte, error) {
	return appendCanonical(b, e.b[:]), nil
}

// MarshalText 实现 [encoding.TextMarshaler]，输出规范格式。
func (e Eui64) MarshalText() ([]byte, error) {
	return appendCanonical(make([]byte, 0, textLen(size64, sepDash)), e.b[:]), nil
}

// UnmarshalText 实现 [encoding.TextUnmarshaler]。
func (e *Eui64) UnmarshalText(text []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	parsed, err := ParseEui64(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// MarshalJSON 实现 [json.Marshaler]。
func (e Eui64) MarshalJSON() ([]byte, error) {
	return appendJSON(e.b[:]), nil
}

// UnmarshalJSON 实现 [json.Unmarshaler]，规则同 [Eui48.UnmarshalJSON]。
func (e *Eui64) UnmarshalJSON(data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, isNull, err := jsonString(data)
	if err != nil {
		return err
	}
	if isNull {
		*e = Eui64{}
		return nil
	}
	return e.UnmarshalText([]byte(s))
}

// AppendBinary 实现 [encoding.BinaryAppender]，追加 8 个原始字节。
func (e Eui64) AppendBinary(b []byte) ([]byte, error) {
	return append(b, e.b[:]...), nil
}

// MarshalBinary 实现 [encoding.BinaryMarshaler]。
func (e Eui64) MarshalBinary() ([]byte, error) {
	return e.AppendBinary(make([]byte, 0, size64))
}

// UnmarshalBinary 实现 [encoding.BinaryUnmarshaler]，输入必须为 8 字节。
func (e *Eui64) UnmarshalBinary(data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	parsed, err := Eui64FromBytes(data)
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Value 实现 [driver.Valuer]。
func (e Eui64) Value() (driver.Value, error) {
	return e.String(), nil
}

// Scan 实现 sql.Scanner，支持 string、[]byte（文本或 8 字节二进制）、nil。
func (e *Eui64) Scan(src any) error {
	if e == nil {
		return ErrNilReceiver
	}
	switch v := src.(type) {
	case nil:
		*e = Eui64{}
		return nil
	case string:
		return e.UnmarshalText([]byte(v))
	case []byte:
		if len(v) == size64 {
			copy(e.b[:], v)
			return nil
		}
		return e.UnmarshalText(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, src)
	}
}

// =============================================================================
// 内部辅助函数
// =============================================================================

// appendJSON 直接构造带引号的规范文本，避免 json.Marshal 的反射开销。
func appendJSON(b []byte) []byte {
	buf := make([]byte, 0, textLen(len(b), sepDash)+2)
	buf = append(buf, '"')
	buf = appendCanonical(buf, b)
	return append(buf, '"')
}

// jsonString 将 JSON 值解码为字符串。null 时 isNull 为 true。
func jsonString(data []byte) (s string, isNull bool, err error) {
	if string(data) == "null" {
		return "", true, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return s, false, nil
}
