package xeui

import "unicode/utf8"

// 十六进制字符表。
const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// 接受的两种分隔符。
const (
	sepColon = ':'
	sepDash  = '-'
)

// maxTextLen 是最长文本形式（EUI-64 带分隔符）的长度：8*3 - 1。
const maxTextLen = size64*3 - 1

// decodeHex 将 s 解码到 dst，len(dst) 即目标宽度 N（6 或 8）。
//
// s 的长度必须是 2N（无分隔符）或 3N-1（每字节之间一个分隔符）。
// 单次从左到右扫描，记录已见分隔符数 seps：十六进制数字的逻辑位置为 i-seps，
// 逻辑位置/2 是目标字节下标，偶数位写高半字节，奇数位或入低半字节。
// 分隔符因此无需单独的剔除过程。
//
// 失败时 dst 可能已被部分写入，调用方应解码到临时数组，成功后再拷贝。
func decodeHex(dst []byte, s string) error {
	n := len(dst)
	l := len(s)
	separated := l == 3*n-1
	if l != 2*n && !separated {
		return lengthError(l)
	}

	var sep byte
	seps := 0
	for i := 0; i < l; i++ {
		c := s[i]
		if v := hexValue(c); v >= 0 {
			pos := i - seps
			idx := pos / 2
			if idx >= n {
				// 仅当带分隔符长度的输入在分隔符位置放了数字时可达
				return lengthError(l - seps)
			}
			if pos%2 == 0 {
				dst[idx] = byte(v) << 4
			} else {
				dst[idx] |= byte(v)
			}
			continue
		}

		switch c {
		case sepColon, sepDash:
			// 设计决策: 2N 长度的输入不允许分隔符。否则 "4D:7E54972EEF"
			// 这类输入会通过位置检查，却让最后一个字节只写入高半字节。
			if !separated || i == 0 || i == l-1 || (i+1)%3 != 0 {
				return separatorPlaceError()
			}
			if sep == 0 {
				sep = c
			} else if c != sep {
				return mixedSeparatorsError()
			}
			seps++
		default:
			r, _ := utf8.DecodeRuneInString(s[i:])
			return charError(r)
		}
	}
	return nil
}

// appendHex 将 src 以两位十六进制每字节追加到 dst。
// sep 为 0 时不写分隔符；否则在相邻字节之间写 sep。
func appendHex(dst []byte, src []byte, sep byte, table string) []byte {
	for i, b := range src {
		if i > 0 && sep != 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, table[b>>4], table[b&0x0f])
	}
	return dst
}

// textLen 返回宽度 n 在给定分隔符下的文本长度。
func textLen(n int, sep byte) int {
	if sep == 0 {
		return 2 * n
	}
	return 3*n - 1
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
