package xeui

import "fmt"

// Format 定义地址的文本输出风格。
type Format uint8

const (
	// FormatCanonical 规范格式，短线分隔，大写：4D-7E-54-97-2E-EF。
	// 零值即规范格式。
	FormatCanonical Format = iota
	// FormatDash 短线分隔，小写：4d-7e-54-97-2e-ef
	FormatDash
	// FormatColon 冒号分隔，小写：4d:7e:54:97:2e:ef
	FormatColon
	// FormatColonUpper 冒号分隔，大写：4D:7E:54:97:2E:EF
	FormatColonUpper
	// FormatBare 无分隔符，小写：4d7e54972eef
	FormatBare
	// FormatBareUpper 无分隔符，大写：4D7E54972EEF
	FormatBareUpper
)

// String 返回格式名称，与 [ParseFormat] 互逆。
func (f Format) String() string {
	switch f {
	case FormatCanonical:
		return "canonical"
	case FormatDash:
		return "dash"
	case FormatColon:
		return "colon"
	case FormatColonUpper:
		return "colon-upper"
	case FormatBare:
		return "bare"
	case FormatBareUpper:
		return "bare-upper"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// ParseFormat 按名称解析格式，名称见 [Format.String]。
func ParseFormat(s string) (Format, error) {
	for f := FormatCanonical; f <= FormatBareUpper; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatCanonical, fmt.Errorf("xeui: unknown format %q", s)
}

// style 返回格式对应的分隔符和字符表。未知格式按规范格式处理。
func (f Format) style() (sep byte, table string) {
	switch f {
	case FormatDash:
		return sepDash, hexLower
	case FormatColon:
		return sepColon, hexLower
	case FormatColonUpper:
		return sepColon, hexUpper
	case FormatBare:
		return 0, hexLower
	case FormatBareUpper:
		return 0, hexUpper
	default:
		return sepDash, hexUpper
	}
}

// formatBytes 使用栈上定长缓冲区格式化，仅 string 转换产生一次分配。
func formatBytes(b []byte, f Format) string {
	var buf [maxTextLen]byte
	sep, table := f.style()
	return string(appendHex(buf[:0], b, sep, table))
}

// appendCanonical 以规范格式追加到 dst。
func appendCanonical(dst []byte, b []byte) []byte {
	return appendHex(dst, b, sepDash, hexUpper)
}

// formatVerb 实现两种地址共用的 fmt.Formatter 逻辑。
//
//	%v %s  规范格式
//	%q     带引号的规范格式
//	%x %X  无分隔符十六进制，# 标志加 0x 前缀
func formatVerb(st fmt.State, verb rune, b []byte, typeName string) {
	var buf [2 + maxTextLen + 2]byte
	out := buf[:0]
	switch verb {
	case 'v', 's':
		out = appendCanonical(out, b)
	case 'q':
		out = append(out, '"')
		out = appendCanonical(out, b)
		out = append(out, '"')
	case 'x', 'X':
		table := hexLower
		if verb == 'X' {
			table = hexUpper
		}
		if st.Flag('#') {
			out = append(out, '0', byte(verb))
		}
		out = appendHex(out, b, 0, table)
	default:
		fmt.Fprintf(st, "%%!%c(%s=%s)", verb, typeName, appendCanonical(out, b))
		return
	}
	_, _ = st.Write(out)
}
