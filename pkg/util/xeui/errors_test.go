package xeui

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"length", lengthError(10), "xeui: invalid length 10"},
		{"length_zero", lengthError(0), "xeui: invalid length 0"},
		{"char", charError('j'), "xeui: invalid character 'j'"},
		{"char_space", charError(' '), "xeui: invalid character ' '"},
		{"char_multibyte", charError('é'), "xeui: invalid character 'é'"},
		{"separator_place", separatorPlaceError(), "xeui: invalid separator place"},
		{"mixed", mixedSeparatorsError(), "xeui: only one separator type expected"},
		{"unknown_kind", &ParseError{Kind: 42}, "xeui: parse error (Kind(42))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"length", lengthError(3), ErrInvalidLength},
		{"char", charError('x'), ErrInvalidChar},
		{"separator_place", separatorPlaceError(), ErrInvalidSeparatorPlace},
		{"mixed", mixedSeparatorsError(), ErrMixedSeparators},
	}

	all := []error{ErrInvalidLength, ErrInvalidChar, ErrInvalidSeparatorPlace, ErrMixedSeparators}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range all {
				if got, want := errors.Is(tt.err, s), s == tt.sentinel; got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", tt.err, s, got, want)
				}
			}
		})
	}

	if (&ParseError{Kind: 42}).Unwrap() != nil {
		t.Error("unknown kind should unwrap to nil")
	}
}

func TestParseError_As(t *testing.T) {
	_, err := ParseEui48("ad7e54972esa")
	wrapped := fmt.Errorf("load device: %w", err)

	var pe *ParseError
	if !errors.As(wrapped, &pe) {
		t.Fatalf("errors.As failed for %v", wrapped)
	}
	if pe.Kind != KindInvalidChar || pe.Char != 's' {
		t.Errorf("ParseError = %+v, want InvalidChar 's'", *pe)
	}
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindInvalidLength, "InvalidLength"},
		{KindInvalidChar, "InvalidChar"},
		{KindInvalidSeparatorPlace, "InvalidSeparatorPlace"},
		{KindMixedSeparators, "OnlyOneSeparatorTypeExpected"},
		{Kind(0), "Kind(0)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", uint8(tt.kind), got, tt.want)
		}
	}
}
