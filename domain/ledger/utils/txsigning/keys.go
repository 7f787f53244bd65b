package txsigning

import (
	"github.com/kaspanet/go-secp256k1"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/hashes"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// CreateMnemonic creates a new 24-word bip39 mnemonic
func CreateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", errors.WithStack(err)
	}
	return bip39.NewMnemonic(entropy)
}

// KeyPairFromMnemonic deterministically derives a Schnorr key pair from mnemonic
func KeyPairFromMnemonic(mnemonic string) (*secp256k1.SchnorrKeyPair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, errors.Wrap(err, "invalid mnemonic")
	}
	return KeyPairFromSeed(seed)
}

// KeyPairFromSeed deterministically derives a Schnorr key pair from seed
func KeyPairFromSeed(seed []byte) (*secp256k1.SchnorrKeyPair, error) {
	writer := hashes.NewKeyDerivationHashWriter()
	writer.InfallibleWrite(seed)
	privateKeyBytes := writer.Finalize().ByteSlice()

	keyPair, err := secp256k1.DeserializeSchnorrPrivateKeyFromSlice(privateKeyBytes)
	if err != nil {
		return nil, errors.Wrap(err, "failed deriving a private key from seed")
	}
	return keyPair, nil
}
