// Package wallet holds account keys by role and seals them at rest.
//
// Sealed format: salt(16B) || nonce(12B) || AES-256-GCM(argon2id(password, salt), nonce, json||checksum)
package wallet

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/json"
	"fmt"

	"github.com/bsv-blockchain/go-sdk/compat/bip39"
	"golang.org/x/crypto/argon2"
)

const (
	// Mnemonic entropy sizes.
	Mnemonic12Words = 128 // 12-word mnemonic
	Mnemonic24Words = 256 // 24-word mnemonic

	// Argon2id parameters for key sealing.
	Argon2Time        = 3
	Argon2Memory      = 64 * 1024 // 64 MB
	Argon2Parallelism = 4
	Argon2KeyLen      = 32

	// Sealed format sizes.
	SaltLen     = 16
	NonceLen    = 12
	ChecksumLen = 4
)

// GenerateMnemonic creates a BIP39 mnemonic suitable as a master password
// for AccountFromPassword.
func GenerateMnemonic(entropyBits int) (string, error) {
	if entropyBits != Mnemonic12Words && entropyBits != Mnemonic24Words {
		return "", ErrInvalidEntropy
	}
	entropy, err := bip39.NewEntropy(entropyBits)
	if err != nil {
		return "", fmt.Errorf("wallet: failed to generate entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("wallet: failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks whether a mnemonic is valid BIP39.
func ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// SealKeys encrypts the account's keys under password.
func SealKeys(account *Account, password string) ([]byte, error) {
	if account == nil {
		return nil, ErrNilParam
	}
	plain, err := json.Marshal(account.sealed())
	if err != nil {
		return nil, fmt.Errorf("wallet: encode account: %w", err)
	}
	return seal(plain, password)
}

// OpenKeys decrypts a blob produced by SealKeys.
func OpenKeys(sealed []byte, password string) (*Account, error) {
	plain, err := open(sealed, password)
	if err != nil {
		return nil, err
	}
	var s sealedAccount
	if err := json.Unmarshal(plain, &s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return s.account()
}

func deriveKey(password string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(password),
		salt,
		Argon2Time,
		Argon2Memory,
		Argon2Parallelism,
		Argon2KeyLen,
	)
}

// seal appends SHA256(plain)[:4] to plain and encrypts the result.
func seal(plain []byte, password string) ([]byte, error) {
	sum := sha256.Sum256(plain)
	payload := make([]byte, len(plain)+ChecksumLen)
	copy(payload, plain)
	copy(payload[len(plain):], sum[:ChecksumLen])
	return encrypt(payload, password)
}

func encrypt(payload []byte, password string) ([]byte, error) {
	salt := make([]byte, SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("wallet: failed to generate salt: %w", err)
	}

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, fmt.Errorf("wallet: AES cipher creation failed: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("wallet: GCM creation failed: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("wallet: failed to generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, payload, nil)

	result := make([]byte, 0, SaltLen+NonceLen+len(ciphertext))
	result = append(result, salt...)
	result = append(result, nonce...)
	result = append(result, ciphertext...)
	return result, nil
}

// open reverses seal and verifies the checksum.
func open(sealed []byte, password string) ([]byte, error) {
	if len(sealed) < SaltLen+NonceLen+ChecksumLen {
		return nil, ErrDecryptionFailed
	}

	salt := sealed[:SaltLen]
	nonce := sealed[SaltLen : SaltLen+NonceLen]
	ciphertext := sealed[SaltLen+NonceLen:]

	block, err := aes.NewCipher(deriveKey(password, salt))
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	payload, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	if len(payload) < ChecksumLen {
		return nil, ErrDecryptionFailed
	}

	plain := payload[:len(payload)-ChecksumLen]
	sum := sha256.Sum256(plain)
	if subtle.ConstantTimeCompare(payload[len(payload)-ChecksumLen:], sum[:ChecksumLen]) != 1 {
		return nil, ErrChecksumMismatch
	}
	return plain, nil
}
