package payment

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Gateway parameter names shared by both directions of the protocol
const (
	paramSecureHash     = "vnp_SecureHash"
	paramSecureHashType = "vnp_SecureHashType"
	paramTxnRef         = "vnp_TxnRef"
	paramResponseCode   = "vnp_ResponseCode"
	paramAmount         = "vnp_Amount"
)

// responseCodeSuccess is the gateway's transaction response code for a
// completed payment; every other value is a failure or cancellation
const responseCodeSuccess = "00"

// componentReplacer adjusts Go's query escaping to the gateway's reference
// encoding: spaces become %20 rather than '+', and the characters
// ! * ' ( ) stay unescaped. QueryEscape emits uppercase hex and never
// produces a literal '+', so these replacements are unambiguous.
var componentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentReplacer.Replace(url.QueryEscape(s))
}

// sortedQueryString canonicalizes a parameter set: keys in byte order,
// percent-encoded key=value pairs joined by '&'. The gateway recomputes the
// signature over exactly this serialization, so the ordering and encoding
// must match bit for bit on both ends.
func sortedQueryString(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escapeComponent(k))
		b.WriteByte('=')
		b.WriteString(escapeComponent(params[k]))
	}
	return b.String()
}

// hmacSHA512Hex signs the UTF-8 bytes of data with the shared secret and
// returns the lowercase hex digest
func hmacSHA512Hex(secret, data string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

// signQuery returns the canonical query string for params and its signature
func signQuery(params map[string]string, secret string) (query, signature string) {
	query = sortedQueryString(params)
	signature = hmacSHA512Hex(secret, query)
	return query, signature
}

// verifySecureHash recomputes the signature of an inbound callback after
// stripping the hash fields and compares it against the received one.
// Once this fails no other field in the payload can be trusted.
func verifySecureHash(params map[string]string, secret string) bool {
	received, ok := params[paramSecureHash]
	if !ok || received == "" {
		return false
	}

	working := make(map[string]string, len(params))
	for k, v := range params {
		if k == paramSecureHash || k == paramSecureHashType {
			continue
		}
		working[k] = v
	}

	_, computed := signQuery(working, secret)
	return hmac.Equal([]byte(computed), []byte(received))
}
