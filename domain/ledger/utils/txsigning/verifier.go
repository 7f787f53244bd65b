package txsigning

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/constants"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/hashes"
)

type schnorrVerifier struct{}

// NewSchnorrVerifier returns a model.SignatureVerifier that verifies Schnorr
// signatures over secp256k1. The message is hashed with the transaction
// signing hash writer before verification.
func NewSchnorrVerifier() model.SignatureVerifier {
	return schnorrVerifier{}
}

// Verify returns false for malformed public keys or signatures
func (schnorrVerifier) Verify(publicKey []byte, message []byte, signature []byte) bool {
	if len(publicKey) != constants.SchnorrPublicKeySize || len(signature) != constants.SchnorrSignatureSize {
		return false
	}

	schnorrPublicKey, err := secp256k1.DeserializeSchnorrPubKey(publicKey)
	if err != nil {
		return false
	}
	schnorrSignature, err := secp256k1.DeserializeSchnorrSignatureFromSlice(signature)
	if err != nil {
		return false
	}

	secpHash := messageHash(message)
	return schnorrPublicKey.SchnorrVerify(secpHash, schnorrSignature)
}

func messageHash(message []byte) *secp256k1.Hash {
	writer := hashes.NewTransactionSigningHashWriter()
	writer.InfallibleWrite(message)
	secpHash := secp256k1.Hash(*writer.Finalize().ByteArray())
	return &secpHash
}
