package credential

import (
	"bytes"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/rktclgh/fairplay-booth/internal/domain"
	"github.com/zeebo/blake3"
)

const (
	payloadVersion = 1
	macSize        = 16
	maxPayloadLen  = 512
)

var errShortKey = errors.New("signing key must be 32 bytes")

// qrClaims is what a QR code carries. The stored credential stays the
// authority on expiry and consumption; ExpiresAt only lets a scanner show
// "expired" without a round trip.
type qrClaims struct {
	Version       int    `cbor:"1,keyasint"`
	CredentialID  string `cbor:"2,keyasint"`
	ReservationID string `cbor:"3,keyasint"`
	ExpiresAt     int64  `cbor:"4,keyasint"`
}

type QRClaims struct {
	CredentialID  string
	ReservationID string
	ExpiresAt     time.Time
}

// Codec signs and verifies QR payloads.
type Codec struct {
	key     []byte
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCodec(key []byte) (*Codec, error) {
	if len(key) != 32 {
		return nil, errShortKey
	}
	enc, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("cbor enc mode: %w", err)
	}
	dec, err := cbor.DecOptions{MaxArrayElements: 16, MaxMapPairs: 16}.DecMode()
	if err != nil {
		return nil, fmt.Errorf("cbor dec mode: %w", err)
	}
	return &Codec{key: append([]byte(nil), key...), encMode: enc, decMode: dec}, nil
}

// NewCodecFromHex builds a Codec from a 64 character hex key.
func NewCodecFromHex(hexKey string) (*Codec, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("decode signing key: %w", err)
	}
	return NewCodec(key)
}

func (c *Codec) Encode(claims QRClaims) (string, error) {
	body, err := c.encMode.Marshal(qrClaims{
		Version:       payloadVersion,
		CredentialID:  claims.CredentialID,
		ReservationID: claims.ReservationID,
		ExpiresAt:     claims.ExpiresAt.Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("encode qr claims: %w", err)
	}

	mac, err := c.mac(body)
	if err != nil {
		return "", err
	}

	enc := base64.RawURLEncoding
	return enc.EncodeToString(body) + "." + enc.EncodeToString(mac), nil
}

// Decode verifies the payload. Garbage is ErrMalformedCode; a well formed
// payload with a bad signature was not issued here and is ErrCredentialNotFound.
func (c *Codec) Decode(payload string) (QRClaims, error) {
	if payload == "" || len(payload) > maxPayloadLen {
		return QRClaims{}, fmt.Errorf("%w: qr payload length", domain.ErrMalformedCode)
	}

	bodyPart, macPart, ok := strings.Cut(payload, ".")
	if !ok {
		return QRClaims{}, fmt.Errorf("%w: qr payload has no signature", domain.ErrMalformedCode)
	}

	enc := base64.RawURLEncoding
	body, err := enc.DecodeString(bodyPart)
	if err != nil {
		return QRClaims{}, fmt.Errorf("%w: qr body encoding", domain.ErrMalformedCode)
	}
	gotMAC, err := enc.DecodeString(macPart)
	if err != nil || len(gotMAC) != macSize {
		return QRClaims{}, fmt.Errorf("%w: qr signature encoding", domain.ErrMalformedCode)
	}

	var raw qrClaims
	if err = c.decMode.Unmarshal(body, &raw); err != nil {
		return QRClaims{}, fmt.Errorf("%w: qr body", domain.ErrMalformedCode)
	}
	if raw.Version != payloadVersion || raw.CredentialID == "" {
		return QRClaims{}, fmt.Errorf("%w: qr payload version", domain.ErrMalformedCode)
	}

	wantMAC, err := c.mac(body)
	if err != nil {
		return QRClaims{}, err
	}
	if subtle.ConstantTimeCompare(gotMAC, wantMAC) != 1 {
		return QRClaims{}, domain.ErrCredentialNotFound
	}

	return QRClaims{
		CredentialID:  raw.CredentialID,
		ReservationID: raw.ReservationID,
		ExpiresAt:     time.Unix(raw.ExpiresAt, 0).UTC(),
	}, nil
}

func (c *Codec) mac(body []byte) ([]byte, error) {
	h, err := blake3.NewKeyed(c.key)
	if err != nil {
		return nil, fmt.Errorf("init qr mac: %w", err)
	}
	h.Write(body)
	sum := h.Sum(nil)
	return bytes.Clone(sum[:macSize]), nil
}
