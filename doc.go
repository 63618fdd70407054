// Package ads provides the core type-marshalling and transport primitives
// for talking to Beckhoff TwinCAT controllers over the ADS protocol.
//
// # Overview
//
// This package is the foundation layer of an ADS client. It contains three
// small, stateless building blocks:
//
//   - The ADS error type: couples a numeric ADS status code with the
//     standard Beckhoff description table and optional free-form context.
//   - The UDP discovery exchange: a one-shot request/response primitive
//     against the fixed TwinCAT discovery port (48899), used to identify
//     devices and to add ADS routes before any session exists.
//   - The value codec: converts decoded wire buffers into native Go values
//     (string, slice, or scalar) driven by a closed set of PLC type
//     descriptors.
//
// Higher layers (the full ADS command set, symbol handling, TCP session
// management) build on top of these primitives and are out of scope here.
//
// # Type Descriptors
//
// PLC values are described by *Type descriptors, a closed tagged set:
// scalar kinds (BOOL, SINT..ULINT, REAL, LREAL), the single-character
// string type, fixed-size arrays, and opaque raw blocks. Fixed-length PLC
// STRINGs are modeled the way they appear on the wire: as arrays of the
// single-character type, built with StringType(n).
//
// # Quick Start
//
//	// Identify a controller on the local network.
//	local := ads.AmsAddr{NetID: ads.NetID{192, 168, 0, 10, 1, 1}, Port: ads.PortSystemService}
//	resp, err := ads.IdentifyPLC("192.168.0.50", local)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(resp.HostName())
//
//	// Decode a STRING(80) read from the PLC.
//	typ := ads.StringType(80)
//	wv, _ := ads.FromBuffer(typ, raw)
//	value := ads.DecodeValue(wv, typ) // -> string
//
// # Thread Safety
//
// Everything in this package is stateless. The lookup tables are immutable
// after package initialization, the codec functions are pure, and every
// discovery exchange owns its own socket for the duration of one call, so
// all entry points may be used concurrently without synchronization.
package ads
