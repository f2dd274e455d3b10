package derpem

import (
	"bytes"
	"net/http"
	"regexp"
	"strings"

	"github.com/rcauth-eu/privkeysplit/yabase64"
	"github.com/rcauth-eu/privkeysplit/yaerrors"
)

// Frame is a decoded PEM block: the label between BEGIN/END and its binary
// body (the base64-decoded content, not the DER structure itself).
type Frame struct {
	Label string
	Body  []byte
}

// RsaPrivateKeyLabel is the PEM label this module writes and expects to read
// for an unencrypted PKCS#1 RSA private key.
const RsaPrivateKeyLabel = "RSA PRIVATE KEY"

var pemPattern = regexp.MustCompile(`(?s)\A-----BEGIN ([A-Z ]+)-----\n(.*)\n-----END ([A-Z ]+)-----\n?\z`)

// pemPrefix is the literal byte sequence that marks input as (probably)
// PEM-framed, matching the source's own prefix sniff.
const pemPrefix = "-----BEGIN "

// LooksLikePem reports whether data begins with the PEM BEGIN marker.
func LooksLikePem(data []byte) bool {
	return bytes.HasPrefix(data, []byte(pemPrefix))
}

// DecodePEM parses PEM framing out of data. Begin and end labels must be
// byte-identical; the base64 body tolerates embedded newlines.
func DecodePEM(data []byte) (Frame, yaerrors.Error) {
	m := pemPattern.FindSubmatch(data)
	if m == nil {
		return Frame{}, yaerrors.FromError(http.StatusBadRequest, ErrBadPem, "derpem: input does not match PEM header/footer")
	}

	begin, bodyB64, end := string(m[1]), string(m[2]), string(m[3])
	if begin != end {
		return Frame{}, yaerrors.FromError(http.StatusBadRequest, ErrBadPem, "derpem: mismatched PEM begin/end labels")
	}

	flat := strings.ReplaceAll(bodyB64, "\n", "")

	body, err := yabase64.ToBytes(flat)
	if err != nil {
		return Frame{}, yaerrors.FromError(http.StatusBadRequest, ErrBase64, "derpem: failed to parse PEM body as base64")
	}

	return Frame{Label: begin, Body: body}, nil
}

// EncodePEM renders label and body as PEM text, wrapping the base64 body at
// 64 columns, matching RFC 7468's canonical form.
func EncodePEM(label string, body []byte) []byte {
	b64 := yabase64.ToString(body)

	var buf bytes.Buffer

	buf.WriteString("-----BEGIN ")
	buf.WriteString(label)
	buf.WriteString("-----\n")

	for i := 0; i < len(b64); i += 64 {
		end := i + 64
		if end > len(b64) {
			end = len(b64)
		}

		buf.WriteString(b64[i:end])
		buf.WriteString("\n")
	}

	buf.WriteString("-----END ")
	buf.WriteString(label)
	buf.WriteString("-----\n")

	return buf.Bytes()
}
