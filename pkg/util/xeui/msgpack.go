package xeui

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// msgpack 中地址编码为 str，内容为规范格式。

var (
	_ msgpack.CustomEncoder = Eui48{}
	_ msgpack.CustomDecoder = (*Eui48)(nil)
	_ msgpack.CustomEncoder = Eui64{}
	_ msgpack.CustomDecoder = (*Eui64)(nil)
)

// EncodeMsgpack 实现 msgpack.CustomEncoder。
func (e Eui48) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(e.String())
}

// DecodeMsgpack 实现 msgpack.CustomDecoder。
func (e *Eui48) DecodeMsgpack(dec *msgpack.Decoder) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return e.UnmarshalText([]byte(s))
}

// EncodeMsgpack 实现 msgpack.CustomEncoder。
func (e Eui64) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(e.String())
}

// DecodeMsgpack 实现 msgpack.CustomDecoder。
func (e *Eui64) DecodeMsgpack(dec *msgpack.Decoder) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, err := dec.DecodeString()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}
	return e.UnmarshalText([]byte(s))
}
