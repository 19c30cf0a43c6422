package xeui

import (
	"errors"
	"fmt"
	"strconv"
)

// 预定义错误变量，支持 errors.Is 判断。
//
// 解析失败时返回的具体错误为 [*ParseError]，其 Unwrap 返回下列哨兵之一，
// 因此既可以用 errors.Is 判断类别，也可以用 errors.As 取出负载（长度、字符）。
var (
	// ErrInvalidLength 表示输入长度不是目标宽度接受的两种长度之一，
	// 或原始字节长度与目标宽度不符。
	ErrInvalidLength = errors.New("xeui: invalid length")

	// ErrInvalidChar 表示输入包含既非十六进制数字也非分隔符的字符。
	ErrInvalidChar = errors.New("xeui: invalid character")

	// ErrInvalidSeparatorPlace 表示分隔符出现在开头、结尾或非每第三个字符的位置。
	ErrInvalidSeparatorPlace = errors.New("xeui: invalid separator place")

	// ErrMixedSeparators 表示同一输入中同时出现 ':' 与 '-'。
	ErrMixedSeparators = errors.New("xeui: only one separator type expected")

	// ErrNilReceiver 表示对 nil 指针调用反序列化方法。
	ErrNilReceiver = errors.New("xeui: nil receiver")

	// ErrUnsupportedType 表示 SQL/BSON 等来源的数据类型无法转换为地址。
	ErrUnsupportedType = errors.New("xeui: unsupported source type")
)

// Kind 标识解析错误的类别。
type Kind uint8

const (
	// KindInvalidLength 长度错误，负载为 [ParseError.Length]。
	KindInvalidLength Kind = iota + 1
	// KindInvalidChar 非法字符，负载为 [ParseError.Char]。
	KindInvalidChar
	// KindInvalidSeparatorPlace 分隔符位置错误，无负载。
	KindInvalidSeparatorPlace
	// KindMixedSeparators 混用分隔符，无负载。
	KindMixedSeparators
)

// String 返回类别名称。
func (k Kind) String() string {
	switch k {
	case KindInvalidLength:
		return "InvalidLength"
	case KindInvalidChar:
		return "InvalidChar"
	case KindInvalidSeparatorPlace:
		return "InvalidSeparatorPlace"
	case KindMixedSeparators:
		return "OnlyOneSeparatorTypeExpected"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindInvalidLength:
		return ErrInvalidLength
	case KindInvalidChar:
		return ErrInvalidChar
	case KindInvalidSeparatorPlace:
		return ErrInvalidSeparatorPlace
	case KindMixedSeparators:
		return ErrMixedSeparators
	default:
		return nil
	}
}

// ParseError 描述文本解码失败的原因。
//
// 调用方应检查 Kind（及对应负载）而不是解析错误消息：
//
//	var pe *xeui.ParseError
//	if errors.As(err, &pe) && pe.Kind == xeui.KindInvalidChar {
//	    log.Printf("bad char %q", pe.Char)
//	}
type ParseError struct {
	// Kind 错误类别。
	Kind Kind

	// Length 仅 KindInvalidLength 有效：观察到的输入长度。
	// 扫描中途发现越界时为扣除已见分隔符后的长度。
	Length int

	// Char 仅 KindInvalidChar 有效：出错位置的完整字符。
	Char rune
}

// Error 实现 error 接口。
func (e *ParseError) Error() string {
	switch e.Kind {
	case KindInvalidLength:
		return ErrInvalidLength.Error() + " " + strconv.Itoa(e.Length)
	case KindInvalidChar:
		return fmt.Sprintf("%s %q", ErrInvalidChar.Error(), e.Char)
	case KindInvalidSeparatorPlace, KindMixedSeparators:
		return e.Kind.sentinel().Error()
	default:
		return "xeui: parse error (" + e.Kind.String() + ")"
	}
}

// Unwrap 返回与 Kind 对应的哨兵错误，使 errors.Is 生效。
func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func lengthError(n int) error {
	return &ParseError{Kind: KindInvalidLength, Length: n}
}

func charError(r rune) error {
	return &ParseError{Kind: KindInvalidChar, Char: r}
}

func separatorPlaceError() error {
	return &ParseError{Kind: KindInvalidSeparatorPlace}
}

func mixedSeparatorsError() error {
	return &ParseError{Kind: KindMixedSeparators}
}
