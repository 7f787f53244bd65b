package constants

const (
	// SompiPerCoin is the number of sompi in one coin.
	SompiPerCoin = 100_000_000

	// MaxTransactionVersion is the current latest supported transaction version.
	MaxTransactionVersion uint16 = 0

	// SchnorrPublicKeySize is the size of a serialized Schnorr public key, which
	// is the owner identity recorded on every output.
	SchnorrPublicKeySize = 32

	// SchnorrSignatureSize is the size of a serialized Schnorr signature.
	SchnorrSignatureSize = 64
)
