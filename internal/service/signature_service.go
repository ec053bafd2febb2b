package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"settlement-ledger/internal/core/ports"
)

// callbackTolerance bounds the clock skew accepted on signed callbacks.
const callbackTolerance = 5 * time.Minute

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
type HMACSignatureService struct {
	now func() time.Time
}

var _ ports.SignatureService = (*HMACSignatureService)(nil)

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{now: time.Now}
}

// Sign computes HMAC-SHA256 of payload using secretKey.
// Returns lowercase hex-encoded signature.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks if signature matches HMAC-SHA256(secretKey, payload).
// Uses constant-time comparison to prevent timing attacks.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// BuildCallbackPayload constructs the signed string for a gateway callback.
// Format: TIMESTAMP.BODY
func (s *HMACSignatureService) BuildCallbackPayload(timestamp int64, body []byte) string {
	return fmt.Sprintf("%d.%s", timestamp, body)
}

// VerifyCallback checks a callback signature and that its unix timestamp is
// within the accepted skew.
func (s *HMACSignatureService) VerifyCallback(secretKey, timestamp string, body []byte, signature string) bool {
	if secretKey == "" {
		return false
	}
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}
	skew := s.now().Sub(time.Unix(ts, 0))
	if skew > callbackTolerance || skew < -callbackTolerance {
		return false
	}
	return s.Verify(secretKey, s.BuildCallbackPayload(ts, body), signature)
}
