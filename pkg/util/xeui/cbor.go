package xeui

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOR 中地址编码为文本字符串（major type 3），内容为规范格式。
// 显式实现 cbor.Marshaler，避免 fxamacker/cbor 默认按 BinaryMarshaler 编码为字节串。

// MarshalCBOR 实现 cbor.Marshaler。
func (e Eui48) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(e.String())
}

// UnmarshalCBOR 实现 cbor.Unmarshaler。CBOR null 设置为零值。
func (e *Eui48) UnmarshalCBOR(data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, isNull, err := cborString(data)
	if err != nil {
		return err
	}
	if isNull {
		*e = Eui48{}
		return nil
	}
	return e.UnmarshalText([]byte(s))
}

// MarshalCBOR 实现 cbor.Marshaler。
func (e Eui64) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(e.String())
}

// UnmarshalCBOR 实现 cbor.Unmarshaler。
func (e *Eui64) UnmarshalCBOR(data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, isNull, err := cborString(data)
	if err != nil {
		return err
	}
	if isNull {
		*e = Eui64{}
		return nil
	}
	return e.UnmarshalText([]byte(s))
}

// cborNull 是 CBOR simple value null（0xf6）。
const cborNull = 0xf6

func cborString(data []byte) (s string, isNull bool, err error) {
	if len(data) == 1 && data[0] == cborNull {
		return "", true, nil
	}
	if err := cbor.Unmarshal(data, &s); err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return s, false, nil
}
