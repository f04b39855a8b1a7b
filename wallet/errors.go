package wallet

import "errors"

var (
	// ErrInvalidMnemonic indicates the mnemonic fails BIP39 validation.
	ErrInvalidMnemonic = errors.New("wallet: invalid BIP39 mnemonic")

	// ErrInvalidEntropy indicates entropy bits is not 128 or 256.
	ErrInvalidEntropy = errors.New("wallet: entropy bits must be 128 or 256")

	// ErrDecryptionFailed indicates wrong password or corrupted keystore data.
	ErrDecryptionFailed = errors.New("wallet: decryption failed (wrong password or corrupted data)")

	// ErrChecksumMismatch indicates checksum verification failed after decryption.
	ErrChecksumMismatch = errors.New("wallet: checksum mismatch")

	// ErrKeyNotFound indicates the account holds no key for the requested role.
	ErrKeyNotFound = errors.New("wallet: key not found")

	// ErrInvalidKey indicates a private key that is not a valid WIF or hex key.
	ErrInvalidKey = errors.New("wallet: invalid private key")

	// ErrInvalidRole indicates an unknown key role name.
	ErrInvalidRole = errors.New("wallet: invalid key role")

	// ErrInvalidUsername indicates a name that breaks the chain's account naming rules.
	ErrInvalidUsername = errors.New("wallet: invalid account name")

	// ErrIOFailure indicates a keystore file operation failed.
	ErrIOFailure = errors.New("wallet: I/O failure")

	// ErrAccountNotFound indicates the keystore has no entry for the account.
	ErrAccountNotFound = errors.New("wallet: account not found")

	// ErrNilParam indicates a required parameter is nil.
	ErrNilParam = errors.New("wallet: required parameter is nil")
)
