package escape

import (
	"encoding/base64"

	"github.com/xy-planning-network/waypoint"
)

// Base64 encodes src with the standard base64 alphabet, padded.
func Base64(src []byte) string {
	return base64.StdEncoding.EncodeToString(src)
}

// Base64String encodes src with the standard base64 alphabet, padded.
func Base64String(src string) string {
	return Base64([]byte(src))
}

// Base64Decode reverses [Base64].
func Base64Decode(src string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(src)
	if err != nil {
		return nil, waypoint.InvalidArgument(err.Error())
	}

	return b, nil
}

// Base64DecodeString reverses [Base64String].
func Base64DecodeString(src string) (string, error) {
	b, err := Base64Decode(src)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// WebSafeBase64 encodes src with the URL-safe base64 alphabet,
// substituting "-" and "_" for "+" and "/", without padding.
func WebSafeBase64(src []byte) string {
	return base64.RawURLEncoding.EncodeToString(src)
}

// WebSafeBase64String encodes src with the URL-safe base64 alphabet, without padding.
func WebSafeBase64String(src string) string {
	return WebSafeBase64([]byte(src))
}

// WebSafeBase64Decode reverses [WebSafeBase64], accepting both padded
// and unpadded input.
func WebSafeBase64Decode(src string) ([]byte, error) {
	enc := base64.RawURLEncoding
	if len(src)%4 == 0 && len(src) > 0 && src[len(src)-1] == '=' {
		enc = base64.URLEncoding
	}

	b, err := enc.DecodeString(src)
	if err != nil {
		return nil, waypoint.InvalidArgument(err.Error())
	}

	return b, nil
}

// WebSafeBase64DecodeString reverses [WebSafeBase64String].
func WebSafeBase64DecodeString(src string) (string, error) {
	b, err := WebSafeBase64Decode(src)
	if err != nil {
		return "", err
	}

	return string(b), nil
}
