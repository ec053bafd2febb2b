package domain

import (
	"errors"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/bech32"
)

var (
	ErrInvalidMSISDN      = errors.New("phone number must be a Kenyan mobile number such as 0712345678")
	ErrInvalidCardToken   = errors.New("card token must be 8-64 letters, digits, '_' or '-'")
	ErrInvalidCryptoAddr  = errors.New("crypto address must be a valid bitcoin address")
	ErrInvalidBankAccount = errors.New("bank account must be 6-34 letters, digits or '-'")
)

var (
	msisdnRe    = regexp.MustCompile(`^254(7|1)[0-9]{8}$`)
	cardTokenRe = regexp.MustCompile(`^[A-Za-z0-9_\-]{8,64}$`)
	bankRe      = regexp.MustCompile(`^[A-Za-z0-9\-]{6,34}$`)
)

// NormalizeMSISDN converts 07XXXXXXXX, 7XXXXXXXX, +2547XXXXXXXX and
// 2547XXXXXXXX forms into the 2547XXXXXXXX form the mobile-money rail expects.
func NormalizeMSISDN(raw string) (string, error) {
	s := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "+")
	switch {
	case strings.HasPrefix(s, "0"):
		s = "254" + s[1:]
	case len(s) == 9:
		s = "254" + s
	}
	if !msisdnRe.MatchString(s) {
		return "", ErrInvalidMSISDN
	}
	return s, nil
}

// NormalizePayerAccount validates the payer reference for a gateway method and
// returns its canonical form. The wallet method needs no external account.
func NormalizePayerAccount(method PaymentMethod, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch method {
	case PaymentMethodMpesa:
		return NormalizeMSISDN(raw)
	case PaymentMethodCard:
		if !cardTokenRe.MatchString(raw) {
			return "", ErrInvalidCardToken
		}
		return raw, nil
	case PaymentMethodCrypto:
		return NormalizeBitcoinAddress(raw)
	}
	return "", nil
}

// Base58check version bytes: mainnet P2PKH and P2SH, testnet P2PKH and P2SH.
var legacyVersions = map[byte]bool{0x00: true, 0x05: true, 0x6f: true, 0xc4: true}

// NormalizeBitcoinAddress accepts legacy base58check addresses and segwit
// bech32 (v0) or bech32m (v1+) addresses on mainnet or testnet. Segwit
// addresses are returned lowercased.
func NormalizeBitcoinAddress(raw string) (string, error) {
	lower := strings.ToLower(raw)
	if !strings.HasPrefix(lower, "bc1") && !strings.HasPrefix(lower, "tb1") {
		payload, version, err := base58.CheckDecode(raw)
		if err != nil || len(payload) != 20 || !legacyVersions[version] {
			return "", ErrInvalidCryptoAddr
		}
		return raw, nil
	}

	hrp, data, encoding, err := bech32.DecodeGeneric(raw)
	if err != nil || (hrp != "bc" && hrp != "tb") || len(data) == 0 {
		return "", ErrInvalidCryptoAddr
	}
	witnessVersion := data[0]
	if witnessVersion > 16 || (witnessVersion == 0) != (encoding == bech32.Version0) {
		return "", ErrInvalidCryptoAddr
	}
	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil || len(program) < 2 || len(program) > 40 {
		return "", ErrInvalidCryptoAddr
	}
	if witnessVersion == 0 && len(program) != 20 && len(program) != 32 {
		return "", ErrInvalidCryptoAddr
	}
	return lower, nil
}

// NormalizePayoutDestination validates a withdrawal destination for its rail.
func NormalizePayoutDestination(method PayoutMethod, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	switch method {
	case PayoutMethodMpesa:
		return NormalizeMSISDN(raw)
	case PayoutMethodBank:
		if !bankRe.MatchString(raw) {
			return "", ErrInvalidBankAccount
		}
		return raw, nil
	}
	return "", errors.New("payout method must be mpesa or bank")
}
