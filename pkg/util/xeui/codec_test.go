package xeui

import (
	"errors"
	"strings"
	"testing"
)

// 85204980412143 == 0x4D7E54972EEF
var sample48 = [6]byte{0x4d, 0x7e, 0x54, 0x97, 0x2e, 0xef}

// 5583992946972634863 == 0x4D7E540000972EEF
var sample64 = [8]byte{0x4d, 0x7e, 0x54, 0x00, 0x00, 0x97, 0x2e, 0xef}

func TestDecodeHex48(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [6]byte
		wantErr *ParseError
	}{
		// 合法格式
		{"dash_upper", "4D-7E-54-97-2E-EF", sample48, nil},
		{"dash_lower", "4d-7e-54-97-2e-ef", sample48, nil},
		{"colon_upper", "4D:7E:54:97:2E:EF", sample48, nil},
		{"colon_lower", "4d:7e:54:97:2e:ef", sample48, nil},
		{"bare_upper", "4D7E54972EEF", sample48, nil},
		{"bare_lower", "4d7e54972eef", sample48, nil},
		{"mixed_case", "4d-7E-54-97-2e-Ef", sample48, nil},
		{"zero", "00-00-00-00-00-00", [6]byte{}, nil},
		{"all_ones", "ffffffffffff", [6]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, nil},

		// 长度
		{"empty", "", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 0}},
		{"len_10", "4d7e54972e", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 10}},
		{"len_16", "4d7e54972eefef4d", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 16}},
		{"len_17_bare", "4d7e54972eefef4dd", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 17}},
		{"len_13", "4d:7e54972eef", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 13}},
		{"eui64_text", "4D-7E-54-00-00-97-2E-EF", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 23}},
		// 分隔符槽位放了数字：扫描中途越界，长度扣除已见分隔符
		{"digit_in_separator_slot", "4d-7e-54-97-2e0ef", [6]byte{}, &ParseError{Kind: KindInvalidLength, Length: 13}},

		// 非法字符
		{"invalid_char_j", "ad7e54972eja", [6]byte{}, &ParseError{Kind: KindInvalidChar, Char: 'j'}},
		{"invalid_char_s", "ad7e54972esa", [6]byte{}, &ParseError{Kind: KindInvalidChar, Char: 's'}},
		{"leading_space", " 4d7e54972ee", [6]byte{}, &ParseError{Kind: KindInvalidChar, Char: ' '}},
		{"dot_separator", "4d.7e.54.97.2e.ef", [6]byte{}, &ParseError{Kind: KindInvalidChar, Char: '.'}},
		{"multibyte_rune", "4d7e54972eé", [6]byte{}, &ParseError{Kind: KindInvalidChar, Char: 'é'}},

		// 分隔符位置
		{"leading_separator", ":4d7e:54:97:2e:ef", [6]byte{}, &ParseError{Kind: KindInvalidSeparatorPlace}},
		{"trailing_separator", "4d:7e:54:97:2eef:", [6]byte{}, &ParseError{Kind: KindInvalidSeparatorPlace}},
		{"adjacent_separators", "4d::7e:54:97:2eef", [6]byte{}, &ParseError{Kind: KindInvalidSeparatorPlace}},
		{"misplaced_separator", "4d-7e-5-497-2e-ef", [6]byte{}, &ParseError{Kind: KindInvalidSeparatorPlace}},
		{"separator_in_bare_length", "4d:7e54972ee", [6]byte{}, &ParseError{Kind: KindInvalidSeparatorPlace}},

		// 混用分隔符
		{"mixed_separators", "4d:7e-54:97:2e:ef", [6]byte{}, &ParseError{Kind: KindMixedSeparators}},
		{"mixed_separators_late", "4d-7e-54-97-2e:ef", [6]byte{}, &ParseError{Kind: KindMixedSeparators}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [6]byte
			err := decodeHex(got[:], tt.input)
			if tt.wantErr != nil {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("decodeHex(%q) error = %v, want %+v", tt.input, err, tt.wantErr)
				}
				if *pe != *tt.wantErr {
					t.Errorf("decodeHex(%q) error = %+v, want %+v", tt.input, *pe, *tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeHex(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("decodeHex(%q) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeHex64(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [8]byte
		wantErr *ParseError
	}{
		{"dash", "4D-7E-54-00-00-97-2E-EF", sample64, nil},
		{"colon", "4d:7e:54:00:00:97:2e:ef", sample64, nil},
		{"bare", "4D7E540000972EEF", sample64, nil},
		{"bare_lower", "4d7e540000972eef", sample64, nil},

		{"len_12", "4d7e54972eaa", [8]byte{}, &ParseError{Kind: KindInvalidLength, Length: 12}},
		{"len_17", "4D-7E-54-97-2E-EF", [8]byte{}, &ParseError{Kind: KindInvalidLength, Length: 17}},
		{"len_18", "4d7e54972eefef4ddd", [8]byte{}, &ParseError{Kind: KindInvalidLength, Length: 18}},
		{"invalid_char", "ad7e54972ea721sa", [8]byte{}, &ParseError{Kind: KindInvalidChar, Char: 's'}},
		{"mixed_separators", "4d:7e-54:00:00:97:2e-ef", [8]byte{}, &ParseError{Kind: KindMixedSeparators}},
		{"trailing_separator", "4d:7e:54:00:00:97:2eef:", [8]byte{}, &ParseError{Kind: KindInvalidSeparatorPlace}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [8]byte
			err := decodeHex(got[:], tt.input)
			if tt.wantErr != nil {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("decodeHex(%q) error = %v, want %+v", tt.input, err, tt.wantErr)
				}
				if *pe != *tt.wantErr {
					t.Errorf("decodeHex(%q) error = %+v, want %+v", tt.input, *pe, *tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("decodeHex(%q) unexpected error = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("decodeHex(%q) = %x, want %x", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeHex_CaseInsensitive(t *testing.T) {
	inputs := []string{
		"ab-cd-ef-ab-cd-ef",
		"ab:cd:ef:ab:cd:ef",
		"abcdefabcdef",
	}
	for _, in := range inputs {
		var lower, upper [6]byte
		if err := decodeHex(lower[:], in); err != nil {
			t.Fatalf("decodeHex(%q): %v", in, err)
		}
		if err := decodeHex(upper[:], strings.ToUpper(in)); err != nil {
			t.Fatalf("decodeHex(%q): %v", strings.ToUpper(in), err)
		}
		if lower != upper {
			t.Errorf("case changed result: %x vs %x", lower, upper)
		}
	}
}

func TestAppendHex(t *testing.T) {
	tests := []struct {
		name  string
		src   []byte
		sep   byte
		table string
		want  string
	}{
		{"canonical_48", sample48[:], '-', hexUpper, "4D-7E-54-97-2E-EF"},
		{"canonical_64", sample64[:], '-', hexUpper, "4D-7E-54-00-00-97-2E-EF"},
		{"colon_lower", sample48[:], ':', hexLower, "4d:7e:54:97:2e:ef"},
		{"bare_lower", sample48[:], 0, hexLower, "4d7e54972eef"},
		{"bare_upper_64", sample64[:], 0, hexUpper, "4D7E540000972EEF"},
		{"empty", nil, '-', hexUpper, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(appendHex(nil, tt.src, tt.sep, tt.table))
			if got != tt.want {
				t.Errorf("appendHex() = %q, want %q", got, tt.want)
			}
			if len(tt.src) > 0 && len(got) != textLen(len(tt.src), tt.sep) {
				t.Errorf("len = %d, want %d", len(got), textLen(len(tt.src), tt.sep))
			}
		})
	}
}

// 编码结果总能被解码回原值。
func TestEncodeDecodeRoundTrip(t *testing.T) {
	for v := range 4096 {
		src := [8]byte{byte(v), byte(v >> 4), 0xff, byte(v * 7), 0, byte(v >> 8), 0x80, byte(v * 13)}
		for _, f := range []Format{FormatCanonical, FormatDash, FormatColon, FormatColonUpper, FormatBare, FormatBareUpper} {
			var got48 [6]byte
			text48 := formatBytes(src[:6], f)
			if err := decodeHex(got48[:], text48); err != nil {
				t.Fatalf("decode(%q): %v", text48, err)
			}
			if got48 != [6]byte(src[:6]) {
				t.Fatalf("round trip %q: got %x want %x", text48, got48, src[:6])
			}

			var got64 [8]byte
			text64 := formatBytes(src[:], f)
			if err := decodeHex(got64[:], text64); err != nil {
				t.Fatalf("decode(%q): %v", text64, err)
			}
			if got64 != src {
				t.Fatalf("round trip %q: got %x want %x", text64, got64, src)
			}
		}
	}
}

func TestHexValue(t *testing.T) {
	for c := range 256 {
		want := strings.IndexByte(hexLower, byte(c))
		if want < 0 {
			want = strings.IndexByte(hexUpper, byte(c))
		}
		if got := hexValue(byte(c)); got != want {
			t.Errorf("hexValue(%q) = %d, want %d", rune(c), got, want)
		}
	}
}
