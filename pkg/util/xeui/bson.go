package xeui

import (
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/x/bsonx/bsoncore"
)

// BSON 中地址以规范格式字符串存储，与 JSON/SQL 保持一致，便于在 MongoDB 中直接查询。

// MarshalBSONValue 实现 bson.ValueMarshaler。
func (e Eui48) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSONString(e.b[:])
}

// UnmarshalBSONValue 实现 bson.ValueUnmarshaler。
// 接受字符串和 null（零值）。
func (e *Eui48) UnmarshalBSONValue(typ byte, data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, isNull, err := unmarshalBSONString(typ, data)
	if err != nil {
		return err
	}
	if isNull {
		*e = Eui48{}
		return nil
	}
	return e.UnmarshalText([]byte(s))
}

// MarshalBSONValue 实现 bson.ValueMarshaler。
func (e Eui64) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSONString(e.b[:])
}

// UnmarshalBSONValue 实现 bson.ValueUnmarshaler。
func (e *Eui64) UnmarshalBSONValue(typ byte, data []byte) error {
	if e == nil {
		return ErrNilReceiver
	}
	s, isNull, err := unmarshalBSONString(typ, data)
	if err != nil {
		return err
	}
	if isNull {
		*e = Eui64{}
		return nil
	}
	return e.UnmarshalText([]byte(s))
}

func marshalBSONString(b []byte) (byte, []byte, error) {
	var buf [maxTextLen]byte
	return byte(bson.TypeString), bsoncore.AppendString(nil, string(appendCanonical(buf[:0], b))), nil
}

func unmarshalBSONString(typ byte, data []byte) (s string, isNull bool, err error) {
	switch bson.Type(typ) {
	case bson.TypeNull:
		return "", true, nil
	case bson.TypeString:
		s, _, ok := bsoncore.ReadString(data)
		if !ok {
			return "", false, fmt.Errorf("%w: malformed BSON string", ErrUnsupportedType)
		}
		return s, false, nil
	default:
		return "", false, fmt.Errorf("%w: BSON type %s", ErrUnsupportedType, bson.Type(typ))
	}
}
