package ads

import (
	"errors"
	"fmt"
)

// ─── Hata Tipi ──────────────────────────────────────────────────────────────────

// ErrExchangeTimeout, bir UDP keşif çağrısının süre sınırı içinde yanıt
// alamadığını belirtir. SendRawUDPMessage'ın döndürdüğü hatalar
// errors.Is ile bu değere karşı test edilebilir; yeniden deneme kararı
// çağırana aittir.
var ErrExchangeTimeout = errors.New("keşif yanıtı zaman aşımına uğradı")

// Error, ADS protokol hatalarını temsil eden tek hata tipidir. Sayısal
// bir durum kodu taşıyabilir; kod biliniyorsa açıklaması standart tablodan
// çözülür. Oluşturulduktan sonra değiştirilmez.
type Error struct {
	// Code, ADS durum kodudur. Yalnızca HasCode true iken anlamlıdır.
	Code uint32

	// HasCode, hatanın sayısal bir kod taşıyıp taşımadığını belirtir.
	HasCode bool

	// Msg, koddan türetilen açıklama ve varsa serbest metindir.
	Msg string
}

// NewError, sayısal bir ADS durum kodundan hata oluşturur. Kod standart
// tabloda varsa mesaj "<açıklama> (<kod>). " biçiminde kurulur; yoksa
// "Unknown Error (<kod>). " kullanılır. text boş değilse mesajın sonuna
// eklenir.
func NewError(code uint32, text string) *Error {
	msg, ok := errorCodes[code]
	if ok {
		msg = fmt.Sprintf("%s (%d). ", msg, code)
	} else {
		msg = fmt.Sprintf("Unknown Error (%d). ", code)
	}
	return &Error{Code: code, HasCode: true, Msg: msg + text}
}

// NewTextError, durum kodu olmayan, yalnızca serbest metin taşıyan bir
// hata oluşturur.
func NewTextError(text string) *Error {
	return &Error{Msg: text}
}

// Error, hatanın metinsel temsilini döner.
func (e *Error) Error() string {
	return "ADSError: " + e.Msg
}

// ─── ADS Durum Kodları ──────────────────────────────────────────────────────────

// errorCodes, standart ADS durum kodlarını okunabilir açıklamalarına
// eşler. Açıklamalar Beckhoff dokümantasyonundaki İngilizce metinlerdir.
// Tablo paket başlatılırken bir kez kurulur, sonrasında salt okunur;
// tabloda olmayan kodlar hata üretmez, NewError genel bir mesaja düşer.
var errorCodes = map[uint32]string{
	// Genel hatalar
	0:  "No error",
	1:  "Internal error",
	2:  "No Rtime",
	3:  "Allocation locked memory error",
	4:  "Insert mailbox error",
	5:  "Wrong receive HMSG",
	6:  "Target port not found",
	7:  "Target machine not found",
	8:  "Unknown command ID",
	9:  "Bad task ID",
	10: "No IO",
	11: "Unknown ADS command",
	12: "Win 32 error",
	13: "Port not connected",
	14: "Invalid ADS length",
	15: "Invalid AMS Net ID",
	16: "Low installation level",
	17: "No debug available",
	18: "Port disabled",
	19: "Port already connected",
	20: "ADS Sync Win32 error",
	21: "ADS Sync timeout",
	22: "ADS Sync AMS error",
	23: "ADS Sync no index map",
	24: "Invalid ADS port",
	25: "No memory",
	26: "TCP send error",
	27: "Host unreachable",
	28: "Invalid AMS fragment",

	// Router hataları
	1280: "No locked memory can be allocated",
	1281: "The size of the router memory could not be changed",
	1282: "The mailbox has reached its maximum number of possible messages",
	1283: "The debug mailbox has reached its maximum number of possible messages",
	1284: "Unknown port type",
	1285: "Router is not initialized",
	1286: "The desired port number is already assigned",
	1287: "Port not registered",
	1288: "The maximum number of ports has been reached",
	1289: "Invalid port",
	1290: "TwinCAT Router not active",

	// Cihaz (server) hataları
	1792: "Error class <device error>",
	1793: "Service is not supported by server",
	1794: "Invalid index group",
	1795: "Invalid index offset",
	1796: "Reading/writing not permitted",
	1797: "Parameter size not correct",
	1798: "Invalid parameter value(s)",
	1799: "Device is not in a ready state",
	1800: "Device is busy",
	1801: "Invalid context (must be in Windows)",
	1802: "Out of memory",
	1803: "Invalid parameter value(s)",
	1804: "Not found (files, ...)",
	1805: "Syntax error in command or file",
	1806: "Objects do not match",
	1807: "Object already exists",
	1808: "Symbol not found",
	1809: "Symbol version invalid",
	1810: "Server is in invalid state",
	1811: "AdsTransMode not supported",
	1812: "Notification handle is invalid",
	1813: "Notification client not registered",
	1814: "No more notification handles",
	1815: "Size for watch too big",
	1816: "Device not initialized",
	1817: "Device has a timeout",
	1818: "Query interface failed",
	1819: "Wrong interface required",
	1820: "Class ID is invalid",
	1821: "Object ID is invalid",
	1822: "Request is pending",
	1823: "Request is aborted",
	1824: "Signal warning",
	1825: "Invalid array index",
	1826: "Symbol not active",
	1827: "Access denied",
	1828: "No license found",
	1829: "License expired",
	1830: "License exceeded",
	1831: "License invalid",
	1832: "License invalid system ID",
	1833: "License not time limited",
	1834: "License issue time in the future",
	1835: "License time period too long",
	1836: "Exception occurred during system start",
	1837: "License file read twice",
	1838: "Invalid signature",
	1839: "Invalid public key certificate",

	// İstemci hataları
	1856: "Error class <client error>",
	1857: "Invalid parameter at service",
	1858: "Polling list is empty",
	1859: "Var connection already in use",
	1860: "Invoke ID in use",
	1861: "Timeout elapsed",
	1862: "Error in Win32 subsystem",
	1863: "Invalid client timeout value",
	1864: "ADS port not opened",
	1872: "Internal error in ADS sync",
	1873: "Hash table overflow",
	1874: "Key not found in hash",
	1875: "No more symbols in cache",
	1876: "Invalid response received",
	1877: "Sync port is locked",
}
