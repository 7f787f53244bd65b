package hashes

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/blake2b"
)

const (
	transactionIDDomain      = "TransactionID"
	transactionSigningDomain = "TransactionSigningHash"
	keyDerivationDomain      = "KeyDerivation"
)

// NewTransactionIDWriter returns a new HashWriter used for transaction IDs
func NewTransactionIDWriter() HashWriter {
	return newDomainWriter(transactionIDDomain)
}

// NewTransactionSigningHashWriter returns a new HashWriter used for hashing
// the signable payload of a transaction input before signing or verifying it
func NewTransactionSigningHashWriter() HashWriter {
	return newDomainWriter(transactionSigningDomain)
}

// NewKeyDerivationHashWriter returns a new HashWriter used for deriving
// private keys out of seeds
func NewKeyDerivationHashWriter() HashWriter {
	return newDomainWriter(keyDerivationDomain)
}

func newDomainWriter(domain string) HashWriter {
	blake, err := blake2b.New256([]byte(domain))
	if err != nil {
		panic(errors.Wrapf(err, "this should never happen. %s is less than 64 bytes", domain))
	}
	return HashWriter{blake}
}
