package ads

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// ─── Tel Değerleri ──────────────────────────────────────────────────────────────
//
// Bu dosya, ham byte tamponlarının tip tanımlayıcılarına göre çözülmesini
// ve çözülmüş tamponların uygulama değerlerine dönüştürülmesini içerir.
// Çok byte'lı tüm skalerler little-endian byte sıralaması kullanır.

// WireValue, bir tip tanımlayıcısına uygun olarak çözülmüş bir tampondur.
// FromBuffer tarafından üretilir, DecodeValue tarafından tüketilir ve
// hiçbir zaman değiştirilmez.
type WireValue struct {
	typ       *Type
	raw       []byte
	scalar    interface{}
	hasScalar bool
	elems     []*WireValue
}

// FromBuffer, ham bir byte tamponunu t tanımlayıcısına göre çözer.
// Tampon tanımlayıcının gerektirdiğinden kısaysa hata döner; fazlası
// yok sayılır.
func FromBuffer(t *Type, buf []byte) (*WireValue, error) {
	if t == nil {
		return nil, fmt.Errorf("tip tanımlayıcısı nil")
	}
	size := t.Size()
	if len(buf) < size {
		return nil, fmt.Errorf("%s için %d byte gerekli, %d var", t, size, len(buf))
	}

	v := &WireValue{typ: t}
	switch t.Kind {
	case KindChar:
		v.raw = buf[:1]

	case KindRaw:
		v.raw = buf[:size]

	case KindArray:
		// Karakter dizileri ham payload olarak tutulur; string çözümü
		// DecodeValue'ya kalır
		if t.Elem.Equal(PLCTypeString) {
			v.raw = buf[:size]
			return v, nil
		}
		es := t.Elem.Size()
		v.elems = make([]*WireValue, t.Count)
		for i := 0; i < t.Count; i++ {
			ev, err := FromBuffer(t.Elem, buf[i*es:(i+1)*es])
			if err != nil {
				return nil, fmt.Errorf("eleman %d: %w", i, err)
			}
			v.elems[i] = ev
		}

	default:
		v.scalar = decodeScalar(t.Kind, buf)
		v.hasScalar = true
	}
	return v, nil
}

// decodeScalar, tek bir skaler değeri little-endian olarak çözer.
func decodeScalar(k Kind, buf []byte) interface{} {
	switch k {
	case KindBool:
		return buf[0] != 0
	case KindInt8:
		return int8(buf[0])
	case KindUInt8:
		return buf[0]
	case KindInt16:
		return int16(binary.LittleEndian.Uint16(buf))
	case KindUInt16:
		return binary.LittleEndian.Uint16(buf)
	case KindInt32:
		return int32(binary.LittleEndian.Uint32(buf))
	case KindUInt32:
		return binary.LittleEndian.Uint32(buf)
	case KindInt64:
		return int64(binary.LittleEndian.Uint64(buf))
	case KindUInt64:
		return binary.LittleEndian.Uint64(buf)
	case KindReal32:
		return math.Float32frombits(binary.LittleEndian.Uint32(buf))
	case KindReal64:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf))
	default:
		return nil
	}
}

// Type, tamponun çözüldüğü tanımlayıcıyı döner.
func (v *WireValue) Type() *Type {
	return v.typ
}

// Scalar, tampon tek bir yerel değer sarıyorsa onu döner.
func (v *WireValue) Scalar() (interface{}, bool) {
	return v.scalar, v.hasScalar
}

// Bytes, karakter tamponları ve ham bloklar için ham payload'ı döner.
func (v *WireValue) Bytes() []byte {
	return v.raw
}

// Len, dizi tamponlarındaki eleman sayısını döner.
func (v *WireValue) Len() int {
	return len(v.elems)
}

// Elem, dizi tamponunun i'inci elemanını döner.
func (v *WireValue) Elem(i int) *WireValue {
	return v.elems[i]
}

// StringBuffer, s metnini n karakterlik sabit uzunluklu bir karakter
// tamponuna yerleştirir. Metin n'den uzunsa kesilir, kısaysa kalan
// byte'lar sıfırla doldurulur.
func StringBuffer(s string, n int) []byte {
	buf := make([]byte, n)
	copy(buf, s)
	return buf
}

// ─── Değer Çözme ────────────────────────────────────────────────────────────────

// TypeIsString, tanımlayıcının bir string'i temsil edip etmediğini döner.
// Tek karakterlik string tipi ve o tipin sabit boyutlu dizileri (tel
// üzerindeki STRING(n) temsili) string sayılır.
func TypeIsString(t *Type) bool {
	if t == nil {
		return false
	}
	if t.Equal(PLCTypeString) {
		return true
	}
	if t.Kind == KindArray && t.Elem.Equal(PLCTypeString) {
		return true
	}
	return false
}

// DecodeValue, çözülmüş bir tamponu t tanımlayıcısına göre uygulama
// değerine dönüştürür. Asla hata dönmez:
//
//   - v nil ise sonuç nil'dir.
//   - String tanımlayıcıları için ham payload UTF-8 metin olarak çözülür.
//   - Diziler için her eleman sırası korunarak çözülür ve []interface{}
//     döner.
//   - Skaler tamponlar sarılan yerel değeri döner.
//   - Tanınmayan şekiller (örneğin ham bloklar) olduğu gibi geri verilir;
//     yorumlama çağırana kalır.
//
// String denetimi dizi denetiminden önce yapılmalıdır: bir STRING(n) tel
// üzerinde karakter dizisidir ve önce dizi olarak ele alınsaydı her string
// tek karakterlik değerler listesine dönüşürdü.
func DecodeValue(v *WireValue, t *Type) interface{} {
	if v == nil {
		return nil
	}

	if TypeIsString(t) {
		return cstring(v.Bytes())
	}

	if t != nil && t.Kind == KindArray {
		out := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			out = append(out, DecodeValue(v.Elem(i), t.Elem))
		}
		return out
	}

	if s, ok := v.Scalar(); ok {
		return s
	}

	// Tanınmayan şekil: tamponu olduğu gibi geri ver, hata üretme
	return v
}

// cstring, null sonlandırıcıya kadar olan kısmı UTF-8 metin olarak döner.
func cstring(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
