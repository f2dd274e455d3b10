// Package yabase64 provides the raw base64 codec used by the PEM framing
// layer. A PEM body is nothing but a base64 alphabet wrapped at a fixed
// column width, so the reader and writer in the derpem package lean on this
// package instead of calling encoding/base64 directly, matching the rest of
// this module's habit of wrapping stdlib primitives behind a small yaXXX
// package with yaerrors-flavored error returns.
//
// Example:
//
//	b64 := yabase64.ToString([]byte{0x30, 0x82, 0x01, 0x0a})
//	raw, err := yabase64.ToBytes(b64)
package yabase64

import (
	"encoding/base64"
	"net/http"

	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// ToString encodes raw bytes to a base64 string (StdEncoding).
//
// Notes:
//   - It is stateless and threadsafe.
//   - Use when you already have []byte and just need a base64 string.
//
// Example:
//
//	data := []byte("hello world")
//	b64 := yabase64.ToString(data)
//	fmt.Println(b64) // aGVsbG8gd29ybGQ=
func ToString(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// ToBytes decodes a base64 string (StdEncoding) back to raw bytes.
//
// Returns:
//   - []byte on success
//   - yaerrors.Error on failure with HTTP 500 semantics
//
// Example:
//
//	b64 := "aGVsbG8gd29ybGQ="
//	bytes, err := yabase64.ToBytes(b64)
//	if err != nil {
//	    log.Fatalf("decode failed: %v", err)
//	}
//	fmt.Println(string(bytes)) // hello world
func ToBytes(data string) ([]byte, yaerrors.Error) {
	bytes, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, yaerrors.FromError(
			http.StatusInternalServerError,
			err,
			"failed to decode string to bytes",
		)
	}

	return bytes, nil
}
