package ads

import (
	"encoding/binary"
	"math"
	"reflect"
	"testing"
)

func TestTypeIsString(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		want bool
	}{
		{name: "single char", typ: PLCTypeString, want: true},
		{name: "string(80)", typ: StringType(80), want: true},
		{name: "char array of one", typ: ArrayOf(PLCTypeString, 1), want: true},
		{name: "bool", typ: PLCTypeBool, want: false},
		{name: "int16", typ: PLCTypeInt, want: false},
		{name: "lreal", typ: PLCTypeLReal, want: false},
		{name: "int array", typ: ArrayOf(PLCTypeDInt, 3), want: false},
		{name: "raw block", typ: RawType(16), want: false},
		{name: "nil", typ: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeIsString(tc.typ); got != tc.want {
				t.Fatalf("TypeIsString(%s) = %v, want %v", tc.typ, got, tc.want)
			}
		})
	}
}

func TestDecodeValueNilBuffer(t *testing.T) {
	for _, typ := range []*Type{PLCTypeBool, PLCTypeInt, StringType(10), ArrayOf(PLCTypeReal, 4), RawType(8), nil} {
		if got := DecodeValue(nil, typ); got != nil {
			t.Fatalf("DecodeValue(nil, %s) = %v, want nil", typ, got)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		length int
		want   string
	}{
		{name: "plain ascii", text: "hello plc", length: 80, want: "hello plc"},
		{name: "exact fit", text: "abc", length: 3, want: "abc"},
		{name: "truncated", text: "abcdef", length: 3, want: "abc"},
		{name: "empty", text: "", length: 8, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			typ := StringType(tc.length)
			wv, err := FromBuffer(typ, StringBuffer(tc.text, tc.length))
			if err != nil {
				t.Fatalf("FromBuffer: %v", err)
			}
			got := DecodeValue(wv, typ)
			s, ok := got.(string)
			if !ok {
				t.Fatalf("expected string, got %T", got)
			}
			if s != tc.want {
				t.Fatalf("got %q, want %q", s, tc.want)
			}
		})
	}
}

func TestDecodeFixedArray(t *testing.T) {
	typ := ArrayOf(PLCTypeInt, 3)
	buf := make([]byte, 6)
	for i, v := range []int16{1, 2, 3} {
		binary.LittleEndian.PutUint16(buf[i*2:], uint16(v))
	}

	wv, err := FromBuffer(typ, buf)
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}
	got := DecodeValue(wv, typ)
	want := []interface{}{int16(1), int16(2), int16(3)}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestDecodeScalars(t *testing.T) {
	b2 := func(v uint16) []byte { b := make([]byte, 2); binary.LittleEndian.PutUint16(b, v); return b }
	b4 := func(v uint32) []byte { b := make([]byte, 4); binary.LittleEndian.PutUint32(b, v); return b }
	b8 := func(v uint64) []byte { b := make([]byte, 8); binary.LittleEndian.PutUint64(b, v); return b }

	tests := []struct {
		name string
		typ  *Type
		buf  []byte
		want interface{}
	}{
		{name: "bool true", typ: PLCTypeBool, buf: []byte{1}, want: true},
		{name: "bool false", typ: PLCTypeBool, buf: []byte{0}, want: false},
		{name: "sint", typ: PLCTypeSInt, buf: []byte{0xFB}, want: int8(-5)},
		{name: "usint", typ: PLCTypeUSInt, buf: []byte{0xFB}, want: byte(251)},
		{name: "int", typ: PLCTypeInt, buf: b2(0xFFFE), want: int16(-2)},
		{name: "uint", typ: PLCTypeUInt, buf: b2(65534), want: uint16(65534)},
		{name: "dint", typ: PLCTypeDInt, buf: b4(0xFFFFFFFF), want: int32(-1)},
		{name: "udint", typ: PLCTypeUDInt, buf: b4(123456), want: uint32(123456)},
		{name: "lint", typ: PLCTypeLInt, buf: b8(42), want: int64(42)},
		{name: "ulint", typ: PLCTypeULInt, buf: b8(42), want: uint64(42)},
		{name: "real", typ: PLCTypeReal, buf: b4(math.Float32bits(1.5)), want: float32(1.5)},
		{name: "lreal", typ: PLCTypeLReal, buf: b8(math.Float64bits(-2.25)), want: float64(-2.25)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			wv, err := FromBuffer(tc.typ, tc.buf)
			if err != nil {
				t.Fatalf("FromBuffer: %v", err)
			}
			if got := DecodeValue(wv, tc.typ); got != tc.want {
				t.Fatalf("got %v (%T), want %v (%T)", got, got, tc.want, tc.want)
			}
		})
	}
}

func TestDecodeOpaquePassthrough(t *testing.T) {
	// Tanınmayan şekil hata üretmeden olduğu gibi geri verilmeli
	typ := RawType(8)
	wv, err := FromBuffer(typ, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}

	got := DecodeValue(wv, typ)
	if got != wv {
		t.Fatalf("expected buffer passed through unchanged, got %#v", got)
	}
}

func TestFromBufferShortBuffer(t *testing.T) {
	if _, err := FromBuffer(PLCTypeDInt, []byte{1, 2}); err == nil {
		t.Fatal("expected error for short buffer")
	}
	if _, err := FromBuffer(ArrayOf(PLCTypeInt, 3), []byte{1, 2, 3, 4}); err == nil {
		t.Fatal("expected error for short array buffer")
	}
}

func TestTypeForADST(t *testing.T) {
	tests := []struct {
		tag  uint32
		want *Type
	}{
		{tag: ADSTInt16, want: PLCTypeInt},
		{tag: ADSTReal64, want: PLCTypeLReal},
		{tag: ADSTString, want: PLCTypeString},
		{tag: ADSTBit, want: PLCTypeBool},
	}

	for _, tc := range tests {
		got, ok := TypeForADST(tc.tag)
		if !ok || !got.Equal(tc.want) {
			t.Fatalf("TypeForADST(%d) = %v, %v; want %v", tc.tag, got, ok, tc.want)
		}
	}

	if _, ok := TypeForADST(ADSTBigType); ok {
		t.Fatal("ADSTBigType must not resolve to a plain descriptor")
	}
}

func TestTypeSizeAndEqual(t *testing.T) {
	if got := StringType(81).Size(); got != 81 {
		t.Fatalf("StringType(81).Size() = %d", got)
	}
	if got := ArrayOf(PLCTypeLReal, 4).Size(); got != 32 {
		t.Fatalf("array size = %d, want 32", got)
	}
	if !StringType(10).Equal(StringType(10)) {
		t.Fatal("structurally equal descriptors reported unequal")
	}
	if StringType(10).Equal(StringType(11)) {
		t.Fatal("different lengths reported equal")
	}
	if ArrayOf(PLCTypeInt, 3).Equal(ArrayOf(PLCTypeDInt, 3)) {
		t.Fatal("different element types reported equal")
	}
}
