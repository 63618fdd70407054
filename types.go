package ads

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ─── Protokol Sabitleri ─────────────────────────────────────────────────────────

const (
	// PortRemoteUDP, TwinCAT cihazlarının UDP keşif (discovery) portudur.
	// Identify ve AddRoute istekleri bu porta gönderilir.
	PortRemoteUDP = 48899

	// DefaultExchangeTimeout, UDP keşif yanıtı için varsayılan bekleme
	// süresidir. Cihazlar normalde yarım saniyenin altında yanıt verir;
	// 5 saniye yavaş ağlar için geniş bir paydır.
	DefaultExchangeTimeout = 5 * time.Second

	// discoveryReplyLength, keşif yanıtları için ayrılan tampon boyutudur.
	discoveryReplyLength = 2048
)

// ─── AMS Portları ───────────────────────────────────────────────────────────────

// AmsPort, TwinCAT runtime üzerindeki bir AMS hedef portunu temsil eder.
type AmsPort uint16

const (
	// PortRouter, AMS router'ın kendisidir.
	PortRouter AmsPort = 1

	// PortLogger, TwinCAT logger servisidir.
	PortLogger AmsPort = 100

	// PortEventLogger, TwinCAT event logger servisidir.
	PortEventLogger AmsPort = 110

	// PortTC2PLC1, TwinCAT 2 üzerindeki ilk PLC runtime'ıdır.
	PortTC2PLC1 AmsPort = 801

	// PortTC3PLC1 .. PortTC3PLC4, TwinCAT 3 PLC runtime portlarıdır.
	PortTC3PLC1 AmsPort = 851
	PortTC3PLC2 AmsPort = 852
	PortTC3PLC3 AmsPort = 853
	PortTC3PLC4 AmsPort = 854

	// PortSystemService, TwinCAT sistem servisidir. Keşif istekleri
	// varsayılan olarak bu portu hedefler.
	PortSystemService AmsPort = 10000
)

// ─── ADS Veri Tipi Etiketleri ───────────────────────────────────────────────────
//
// ADST_* sabitleri, sembol tablosunda ve ADS yanıtlarında geçen sayısal
// veri tipi etiketleridir. TypeForADST ile yerel tip tanımlayıcısına
// çevrilirler. ADSTString ve ADSTWString sembol katmanı tarafından ayrıca
// işlenir; burada yalnızca tabloda yer alırlar.

const (
	ADSTVoid    uint32 = 0
	ADSTInt16   uint32 = 2
	ADSTInt32   uint32 = 3
	ADSTReal32  uint32 = 4
	ADSTReal64  uint32 = 5
	ADSTInt8    uint32 = 16
	ADSTUInt8   uint32 = 17
	ADSTUInt16  uint32 = 18
	ADSTUInt32  uint32 = 19
	ADSTInt64   uint32 = 20
	ADSTUInt64  uint32 = 21
	ADSTString  uint32 = 30
	ADSTWString uint32 = 31
	ADSTReal80  uint32 = 32
	ADSTBit     uint32 = 33
	ADSTBigType uint32 = 65
)

// ─── Tip Tanımlayıcıları ────────────────────────────────────────────────────────

// Kind, bir tip tanımlayıcısının hangi kapalı varyanta ait olduğunu
// belirtir. Tüm dispatch bu etiket üzerinden yapılır; runtime tip adı
// incelemesi yoktur.
type Kind int

const (
	KindBool Kind = iota
	KindInt8
	KindUInt8
	KindInt16
	KindUInt16
	KindInt32
	KindUInt32
	KindInt64
	KindUInt64
	KindReal32
	KindReal64

	// KindChar, tek karakterlik string tipidir. Sabit uzunluklu PLC
	// STRING'leri bu tipin dizisi olarak temsil edilir (StringType).
	KindChar

	// KindArray, sabit boyutlu bir diziyi temsil eder (Elem + Count).
	KindArray

	// KindRaw, boyutu bilinen ama içi yorumlanmayan ham bir bloktur
	// (örneğin özel bir PLC struct'ı). Kod çözücü bu tampona dokunmaz.
	KindRaw
)

// String, Kind'ın okunabilir adını döner.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "BOOL"
	case KindInt8:
		return "SINT"
	case KindUInt8:
		return "USINT"
	case KindInt16:
		return "INT"
	case KindUInt16:
		return "UINT"
	case KindInt32:
		return "DINT"
	case KindUInt32:
		return "UDINT"
	case KindInt64:
		return "LINT"
	case KindUInt64:
		return "ULINT"
	case KindReal32:
		return "REAL"
	case KindReal64:
		return "LREAL"
	case KindChar:
		return "CHAR"
	case KindArray:
		return "ARRAY"
	case KindRaw:
		return "RAW"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Type, bir PLC değerinin yerel şeklini tanımlar. Tanımlayıcılar
// değişmezdir; paket başlatıldıktan sonra asla güncellenmez ve yapısal
// eşitlikle karşılaştırılır.
type Type struct {
	// Kind, varyant etiketidir.
	Kind Kind

	// Elem, KindArray için eleman tipidir; diğer varyantlarda nil.
	Elem *Type

	// Count, KindArray için eleman sayısı, KindRaw için byte boyutudur.
	Count int
}

// Skaler tipler için hazır tanımlayıcılar. pyads'ın PLCTYPE_* sabitlerinin
// karşılığıdır.
var (
	PLCTypeBool  = &Type{Kind: KindBool}
	PLCTypeSInt  = &Type{Kind: KindInt8}
	PLCTypeUSInt = &Type{Kind: KindUInt8}
	PLCTypeInt   = &Type{Kind: KindInt16}
	PLCTypeUInt  = &Type{Kind: KindUInt16}
	PLCTypeDInt  = &Type{Kind: KindInt32}
	PLCTypeUDInt = &Type{Kind: KindUInt32}
	PLCTypeLInt  = &Type{Kind: KindInt64}
	PLCTypeULInt = &Type{Kind: KindUInt64}
	PLCTypeReal  = &Type{Kind: KindReal32}
	PLCTypeLReal = &Type{Kind: KindReal64}

	// PLCTypeString, tek karakterlik string tipidir. Sabit uzunluklu bir
	// STRING(n) için StringType(n) kullanın.
	PLCTypeString = &Type{Kind: KindChar}
)

// ArrayOf, elem tipinden count elemanlı sabit boyutlu bir dizi
// tanımlayıcısı oluşturur.
func ArrayOf(elem *Type, count int) *Type {
	return &Type{Kind: KindArray, Elem: elem, Count: count}
}

// StringType, n karakterlik sabit uzunluklu bir PLC STRING tanımlayıcısı
// oluşturur. Tel üzerindeki temsiliyle aynıdır: tek karakter tipinin
// n elemanlı dizisi.
func StringType(n int) *Type {
	return ArrayOf(PLCTypeString, n)
}

// RawType, size byte'lık yorumlanmayan ham bir blok tanımlayıcısı
// oluşturur. Özel PLC struct'ları için kullanılır.
func RawType(size int) *Type {
	return &Type{Kind: KindRaw, Count: size}
}

// Size, tanımlayıcının tel üzerindeki byte boyutunu döner.
func (t *Type) Size() int {
	switch t.Kind {
	case KindBool, KindInt8, KindUInt8, KindChar:
		return 1
	case KindInt16, KindUInt16:
		return 2
	case KindInt32, KindUInt32, KindReal32:
		return 4
	case KindInt64, KindUInt64, KindReal64:
		return 8
	case KindArray:
		return t.Count * t.Elem.Size()
	case KindRaw:
		return t.Count
	default:
		return 0
	}
}

// Equal, iki tanımlayıcının yapısal olarak eşit olup olmadığını döner.
func (t *Type) Equal(o *Type) bool {
	if t == o {
		return true
	}
	if t == nil || o == nil {
		return false
	}
	if t.Kind != o.Kind || t.Count != o.Count {
		return false
	}
	if t.Kind == KindArray {
		return t.Elem.Equal(o.Elem)
	}
	return true
}

// String, tanımlayıcının okunabilir temsilini döner.
func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}
	switch t.Kind {
	case KindArray:
		return fmt.Sprintf("ARRAY[%d] OF %s", t.Count, t.Elem)
	case KindRaw:
		return fmt.Sprintf("RAW(%d)", t.Count)
	default:
		return t.Kind.String()
	}
}

// adsTypeTable, sayısal ADST etiketlerini yerel tip tanımlayıcılarına
// eşler. Paket başlatılırken bir kez kurulur, sonrasında salt okunur.
var adsTypeTable = map[uint32]*Type{
	ADSTInt16:  PLCTypeInt,
	ADSTInt32:  PLCTypeDInt,
	ADSTReal32: PLCTypeReal,
	ADSTReal64: PLCTypeLReal,
	ADSTInt8:   PLCTypeSInt,
	ADSTUInt8:  PLCTypeUSInt,
	ADSTUInt16: PLCTypeUInt,
	ADSTUInt32: PLCTypeUDInt,
	ADSTInt64:  PLCTypeLInt,
	ADSTUInt64: PLCTypeULInt,
	ADSTString: PLCTypeString,
	ADSTBit:    PLCTypeBool,
}

// TypeForADST, sayısal bir ADST etiketine karşılık gelen tanımlayıcıyı
// döner. Tabloda olmayan etiketler için ok=false döner; dizi ve string
// uzunluk bilgisi sembol katmanından gelir.
func TypeForADST(tag uint32) (*Type, bool) {
	t, ok := adsTypeTable[tag]
	return t, ok
}

// ─── AMS Adresleri ──────────────────────────────────────────────────────────────

// NetID, 6 byte'lık bir AMS Net ID'dir (örn. 192.168.0.50.1.1).
type NetID [6]byte

// String, NetID'nin noktalı temsilini döner.
func (n NetID) String() string {
	parts := make([]string, len(n))
	for i, b := range n {
		parts[i] = strconv.Itoa(int(b))
	}
	return strings.Join(parts, ".")
}

// ParseNetID, "a.b.c.d.e.f" biçimindeki bir metni NetID'ye çevirir.
func ParseNetID(s string) (NetID, error) {
	var id NetID
	parts := strings.Split(s, ".")
	if len(parts) != 6 {
		return id, fmt.Errorf("geçersiz AMS Net ID: %q", s)
	}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return id, fmt.Errorf("geçersiz AMS Net ID: %q: %w", s, err)
		}
		id[i] = byte(v)
	}
	return id, nil
}

// AmsAddr, bir AMS uç noktasını (Net ID + port) temsil eder.
type AmsAddr struct {
	NetID NetID
	Port  AmsPort
}

// String, adresin "netid:port" temsilini döner.
func (a AmsAddr) String() string {
	return fmt.Sprintf("%s:%d", a.NetID, a.Port)
}

// ─── Seçenek Yapıları ───────────────────────────────────────────────────────────

// ExchangeOption, UDP keşif çağrılarının yapılandırma seçeneklerini
// tanımlar. Functional Options pattern kullanılır.
type ExchangeOption func(*exchangeOptions)

type exchangeOptions struct {
	timeout time.Duration
	port    int
	logger  Logger
}

func defaultExchangeOptions() exchangeOptions {
	return exchangeOptions{
		timeout: DefaultExchangeTimeout,
		port:    PortRemoteUDP,
		logger:  nil,
	}
}

// WithTimeout, keşif yanıtı için bekleme süresini ayarlar.
//
//	resp, err := ads.IdentifyPLC("192.168.0.50", local,
//	    ads.WithTimeout(2 * time.Second),
//	)
func WithTimeout(d time.Duration) ExchangeOption {
	return func(o *exchangeOptions) {
		o.timeout = d
	}
}

// WithPort, hedef UDP portunu ayarlar. Varsayılan PortRemoteUDP'dir;
// esas olarak testlerde ve port yönlendirmeli kurulumlarda kullanılır.
func WithPort(port int) ExchangeOption {
	return func(o *exchangeOptions) {
		o.port = port
	}
}

// WithLogger, özel bir loglama arayüzü ayarlar.
// Varsayılan olarak loglama devre dışıdır.
func WithLogger(l Logger) ExchangeOption {
	return func(o *exchangeOptions) {
		o.logger = l
	}
}

// ─── Logger Arayüzü ─────────────────────────────────────────────────────────────

// Logger, paketin loglama arayüzüdür.
// stdlib log paketi veya zerolog/zap gibi kütüphanelerle uyumludur.
type Logger interface {
	// Printf, formatlanmış bir log mesajı yazar.
	Printf(format string, v ...interface{})
}
