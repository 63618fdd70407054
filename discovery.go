package ads

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// ─── UDP Keşif Alışverişi ───────────────────────────────────────────────────────

// ExchangeResult, tek bir UDP keşif alışverişinin sonucudur.
type ExchangeResult struct {
	// Payload, cihazdan gelen yanıt verisidir.
	Payload []byte

	// Addr, yanıtı gönderen uç noktanın adresidir.
	Addr *net.UDPAddr
}

// SendRawUDPMessage, hedef makineye tek bir UDP mesajı gönderir ve tek bir
// yanıt bekler. Her çağrı kendi soketini açar, işletim sisteminin atadığı
// geçici bir yerel porta bağlanır ve her çıkış yolunda soketi kapatır;
// çağrılar arasında hiçbir durum taşınmaz.
//
// Yanıt en fazla expectedLen byte olarak okunur. Süre sınırı (varsayılan
// DefaultExchangeTimeout) içinde yanıt gelmezse dönen hata
// errors.Is(err, ErrExchangeTimeout) ile ayırt edilebilir; yeniden deneme
// bu katmanda yapılmaz.
//
//	res, err := ads.SendRawUDPMessage("192.168.0.50", pkt, 1024)
//	if errors.Is(err, ads.ErrExchangeTimeout) {
//	    // cihaz yanıt vermedi
//	}
func SendRawUDPMessage(host string, message []byte, expectedLen int, options ...ExchangeOption) (*ExchangeResult, error) {
	opts := defaultExchangeOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// Hedef adresi çözümle
	raddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(host, strconv.Itoa(opts.port)))
	if err != nil {
		return nil, fmt.Errorf("hedef adres çözümlenemedi: %w", err)
	}

	// Geçici yerel portta soket aç; yanıt bu porta gelir
	conn, err := net.ListenUDP("udp", &net.UDPAddr{Port: 0})
	if err != nil {
		return nil, fmt.Errorf("UDP soketi açılamadı: %w", err)
	}
	defer conn.Close()

	opts.logf("UDP isteği gönderiliyor: %s (%d byte)", raddr, len(message))
	if _, err := conn.WriteToUDP(message, raddr); err != nil {
		return nil, fmt.Errorf("UDP mesajı gönderilemedi: %w", err)
	}

	conn.SetReadDeadline(time.Now().Add(opts.timeout))

	buf := make([]byte, expectedLen)
	n, addr, err := conn.ReadFromUDP(buf)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return nil, fmt.Errorf("%s %v içinde yanıt vermedi: %w", host, opts.timeout, ErrExchangeTimeout)
		}
		return nil, fmt.Errorf("UDP yanıtı okunamadı: %w", err)
	}

	opts.logf("UDP yanıtı alındı: %s (%d byte)", addr, n)
	return &ExchangeResult{Payload: buf[:n], Addr: addr}, nil
}

// ─── Keşif Komutları ────────────────────────────────────────────────────────────

// IdentifyPLC, hedef makinedeki TwinCAT cihazını tanımlar. local, isteği
// gönderen istemcinin AMS adresidir (genellikle kendi IP'si + ".1.1" ve
// PortSystemService).
//
//	resp, err := ads.IdentifyPLC("192.168.0.50", local)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Cihaz: %s (NetID %s)\n", resp.HostName(), resp.Addr.NetID)
func IdentifyPLC(host string, local AmsAddr, options ...ExchangeOption) (*DiscoveryResponse, error) {
	pkt := buildIdentifyRequest(local)
	res, err := SendRawUDPMessage(host, pkt, discoveryReplyLength, options...)
	if err != nil {
		return nil, err
	}

	resp, err := parseDiscoveryResponse(res.Payload)
	if err != nil {
		return nil, fmt.Errorf("tanımlama yanıtı ayrıştırılamadı: %w", err)
	}
	if resp.Service != serviceIdentify {
		return nil, fmt.Errorf("beklenmeyen servis yanıtı: 0x%08x", resp.Service)
	}
	return resp, nil
}

// AddRouteToPLC, hedef cihaza istemciyi gösteren kalıcı bir ADS rotası
// ekler. local istemcinin AMS adresi, hostAddr rotanın hedefleyeceği
// istemci IP'si veya makine adıdır. routeName boş bırakılırsa benzersiz
// bir geçici ad üretilir.
//
//	err := ads.AddRouteToPLC("192.168.0.50", local, "192.168.0.10",
//	    "Administrator", "1", "")
func AddRouteToPLC(host string, local AmsAddr, hostAddr, username, password, routeName string, options ...ExchangeOption) error {
	if routeName == "" {
		routeName = "route-" + uuid.NewString()[:8]
	}

	pkt := buildAddRouteRequest(local, routeName, username, password, hostAddr)
	res, err := SendRawUDPMessage(host, pkt, discoveryReplyLength, options...)
	if err != nil {
		return err
	}

	resp, err := parseDiscoveryResponse(res.Payload)
	if err != nil {
		return fmt.Errorf("rota yanıtı ayrıştırılamadı: %w", err)
	}
	if resp.Service != serviceAddRoute {
		return fmt.Errorf("beklenmeyen servis yanıtı: 0x%08x", resp.Service)
	}

	status, ok := resp.Status()
	if !ok {
		return fmt.Errorf("rota yanıtında durum bloğu yok")
	}
	if status != 0 {
		return fmt.Errorf("rota eklenemedi (durum kodu %d)", status)
	}
	return nil
}

// ─── Dahili Yardımcılar ─────────────────────────────────────────────────────────

// logf, yapılandırılmış logger varsa mesaj yazar.
func (o *exchangeOptions) logf(format string, v ...interface{}) {
	if o.logger != nil {
		o.logger.Printf("[ads] "+format, v...)
	}
}
