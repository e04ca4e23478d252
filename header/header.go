// Package header implements the 5-byte magic header that makes compressed
// values self-describing.
//
// Every compressed payload is framed as:
//
//	[4 magic bytes "GLID"][1 backend id byte][backend-native compressed bytes...]
//
// Detection is backend-local and keyed by the id byte, so payloads produced
// by different backends can coexist on the same connection: a backend only
// claims data framed with its own id and treats everything else as plain,
// uncompressed bytes.
package header

import "bytes"

// Size is the total header length: 4 magic bytes plus 1 backend id byte.
const Size = 5

// MagicBytes is the fixed prefix of every compressed payload ("GLID").
var MagicBytes = [4]byte{0x47, 0x4C, 0x49, 0x44}

// Has reports whether buf starts with the magic prefix and is long enough
// to carry a backend id.
func Has(buf []byte) bool {
	return len(buf) >= Size && bytes.Equal(buf[:4], MagicBytes[:])
}

// BackendID extracts the backend id byte from a framed payload.
// The second return value is false when buf does not carry a magic header.
func BackendID(buf []byte) (byte, bool) {
	if !Has(buf) {
		return 0, false
	}

	return buf[4], true
}

// Make builds the header for the given backend id.
func Make(backendID byte) [Size]byte {
	var h [Size]byte
	copy(h[:4], MagicBytes[:])
	h[4] = backendID

	return h
}
