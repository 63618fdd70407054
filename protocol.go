package ads

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ─── Keşif Paketi Oluşturma ─────────────────────────────────────────────────────
//
// Bu dosya, TwinCAT UDP keşif protokolü için düşük seviyeli paket oluşturma
// ve ayrıştırma fonksiyonlarını içerir. Tüm çok byte'lı alanlar little-endian
// byte sıralaması kullanır.
//
// Paket Genel Formatı:
//   [4 byte] Sihirli başlık: 03 66 14 71
//   [4 byte] Rezerve (0)
//   [4 byte] Servis kimliği (LE); yanıtlarda 0x80000000 biti set edilir
//   [6 byte] Gönderenin AMS Net ID'si
//   [2 byte] Gönderenin AMS portu (LE)
//   [4 byte] Blok sayısı (LE)
//   [N]      TLV blokları: [2B etiket][2B uzunluk][veri]

// discoveryMagic, her keşif paketinin başındaki sihirli byte dizisidir.
var discoveryMagic = []byte{0x03, 0x66, 0x14, 0x71}

// Servis kimlikleri.
const (
	// serviceIdentify, cihaz tanımlama (identify) isteğidir. Cihaz, ad,
	// TwinCAT versiyonu ve AMS adresi içeren bloklarla yanıt verir.
	serviceIdentify uint32 = 0x00000001

	// serviceAddRoute, cihaza kalıcı bir ADS rotası ekleme isteğidir.
	serviceAddRoute uint32 = 0x00000006

	// serviceResponseFlag, yanıt paketlerinde servis kimliğine eklenen bittir.
	serviceResponseFlag uint32 = 0x80000000
)

// TLV blok etiketleri.
const (
	tagStatus    uint16 = 0x0001 // 4 byte durum kodu (AddRoute yanıtı)
	tagPassword  uint16 = 0x0002 // null-sonlu şifre
	tagVersion   uint16 = 0x0003 // TwinCAT versiyonu (major, minor, build)
	tagHostName  uint16 = 0x0005 // null-sonlu cihaz adı
	tagNetID     uint16 = 0x0007 // 6 byte AMS Net ID (rota hedefi)
	tagRouteName uint16 = 0x000c // null-sonlu rota adı
	tagUserName  uint16 = 0x000d // null-sonlu kullanıcı adı
)

// discoveryHeaderLength, TLV bloklarından önceki sabit başlık boyutudur.
const discoveryHeaderLength = 4 + 4 + 4 + 6 + 2 + 4

// buildDiscoveryRequest, verilen servis için bir keşif isteği oluşturur.
// local, isteği gönderen istemcinin AMS adresidir; bloklar appendBlock ile
// sonradan eklenir ve blok sayısı alanı burada yazılır.
func buildDiscoveryRequest(service uint32, local AmsAddr, blockCount int) []byte {
	pkt := make([]byte, discoveryHeaderLength)
	copy(pkt[0:4], discoveryMagic)
	// [4:8] rezerve, sıfır kalır
	binary.LittleEndian.PutUint32(pkt[8:12], service)
	copy(pkt[12:18], local.NetID[:])
	binary.LittleEndian.PutUint16(pkt[18:20], uint16(local.Port))
	binary.LittleEndian.PutUint32(pkt[20:24], uint32(blockCount))
	return pkt
}

// appendBlock, pakete bir TLV bloğu ekler ve genişletilmiş paketi döner.
//
//	Blok Formatı:
//	  [2B] etiket (LE)
//	  [2B] veri uzunluğu (LE)
//	  [NB] veri
func appendBlock(pkt []byte, tag uint16, data []byte) []byte {
	hdr := make([]byte, 4)
	binary.LittleEndian.PutUint16(hdr[0:2], tag)
	binary.LittleEndian.PutUint16(hdr[2:4], uint16(len(data)))
	pkt = append(pkt, hdr...)
	return append(pkt, data...)
}

// appendStringBlock, null sonlandırıcılı bir metin bloğu ekler.
func appendStringBlock(pkt []byte, tag uint16, s string) []byte {
	data := append([]byte(s), 0)
	return appendBlock(pkt, tag, data)
}

// buildIdentifyRequest, cihaz tanımlama isteği oluşturur. İstek blok
// taşımaz; cihaz kendi bilgilerini bloklar halinde döner.
func buildIdentifyRequest(local AmsAddr) []byte {
	return buildDiscoveryRequest(serviceIdentify, local, 0)
}

// buildAddRouteRequest, cihaza rota ekleme isteği oluşturur.
//
// Bloklar sırasıyla: rota adı, rota hedefinin AMS Net ID'si, kullanıcı adı,
// şifre ve rota hedefinin ana makine adresi (IP veya isim).
func buildAddRouteRequest(local AmsAddr, routeName, username, password, hostAddr string) []byte {
	pkt := buildDiscoveryRequest(serviceAddRoute, local, 5)
	pkt = appendStringBlock(pkt, tagRouteName, routeName)
	pkt = appendBlock(pkt, tagNetID, local.NetID[:])
	pkt = appendStringBlock(pkt, tagUserName, username)
	pkt = appendStringBlock(pkt, tagPassword, password)
	pkt = appendStringBlock(pkt, tagHostName, hostAddr)
	return pkt
}

// ─── Keşif Yanıtı Ayrıştırma ────────────────────────────────────────────────────

// DiscoveryResponse, bir keşif yanıtının ayrıştırılmış halidir.
type DiscoveryResponse struct {
	// Service, yanıtın ait olduğu servis kimliğidir (yanıt biti temizlenmiş).
	Service uint32

	// Addr, yanıtı gönderen cihazın AMS adresidir.
	Addr AmsAddr

	// Blocks, yanıttaki TLV bloklarıdır. Aynı etiket birden fazla kez
	// geçerse son değer tutulur.
	Blocks map[uint16][]byte
}

// parseDiscoveryResponse, ham bir keşif yanıtını ayrıştırır. Sihirli
// başlık, yanıt biti ve blok sınırları doğrulanır; beklenenden kısa
// paketler hata döner.
func parseDiscoveryResponse(data []byte) (*DiscoveryResponse, error) {
	if len(data) < discoveryHeaderLength {
		return nil, fmt.Errorf("keşif yanıtı çok kısa: %d byte", len(data))
	}
	if !bytes.Equal(data[0:4], discoveryMagic) {
		return nil, fmt.Errorf("geçersiz keşif başlığı: % x", data[0:4])
	}

	service := binary.LittleEndian.Uint32(data[8:12])
	if service&serviceResponseFlag == 0 {
		return nil, fmt.Errorf("paket bir yanıt değil (servis 0x%08x)", service)
	}

	resp := &DiscoveryResponse{
		Service: service &^ serviceResponseFlag,
		Blocks:  make(map[uint16][]byte),
	}
	copy(resp.Addr.NetID[:], data[12:18])
	resp.Addr.Port = AmsPort(binary.LittleEndian.Uint16(data[18:20]))

	count := int(binary.LittleEndian.Uint32(data[20:24]))
	off := discoveryHeaderLength
	for i := 0; i < count; i++ {
		if off+4 > len(data) {
			return nil, fmt.Errorf("blok %d: başlık için veri kalmadı", i)
		}
		tag := binary.LittleEndian.Uint16(data[off : off+2])
		blen := int(binary.LittleEndian.Uint16(data[off+2 : off+4]))
		off += 4
		if off+blen > len(data) {
			return nil, fmt.Errorf("blok %d (etiket 0x%04x): %d byte bekleniyor, %d kaldı",
				i, tag, blen, len(data)-off)
		}
		resp.Blocks[tag] = data[off : off+blen]
		off += blen
	}

	return resp, nil
}

// HostName, yanıttaki cihaz adını döner. Blok yoksa boş string döner.
func (r *DiscoveryResponse) HostName() string {
	return cstring(r.Blocks[tagHostName])
}

// TwinCATVersion, yanıttaki TwinCAT versiyonunu (major, minor, build)
// döner. Versiyon bloğu yoksa ok=false döner.
func (r *DiscoveryResponse) TwinCATVersion() (major, minor uint8, build uint16, ok bool) {
	v := r.Blocks[tagVersion]
	if len(v) < 4 {
		return 0, 0, 0, false
	}
	return v[0], v[1], binary.LittleEndian.Uint16(v[2:4]), true
}

// Status, AddRoute yanıtındaki durum kodunu döner. Durum bloğu yoksa
// ok=false döner; 0 başarı anlamına gelir.
func (r *DiscoveryResponse) Status() (code uint32, ok bool) {
	v := r.Blocks[tagStatus]
	if len(v) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(v[0:4]), true
}
