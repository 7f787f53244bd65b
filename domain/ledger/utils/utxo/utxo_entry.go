package utxo

import (
	"bytes"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
)

type utxoEntry struct {
	amount    int64
	publicKey []byte
}

// NewUTXOEntry creates a new utxoEntry representing the given txOut.
// publicKey is copied, so the caller may reuse it.
func NewUTXOEntry(amount int64, publicKey []byte) externalapi.UTXOEntry {
	publicKeyClone := make([]byte, len(publicKey))
	copy(publicKeyClone, publicKey)
	return &utxoEntry{
		amount:    amount,
		publicKey: publicKeyClone,
	}
}

// NewUTXOEntryFromOutput creates the entry that output becomes once its
// transaction is committed
func NewUTXOEntryFromOutput(output *externalapi.DomainTransactionOutput) externalapi.UTXOEntry {
	return NewUTXOEntry(output.Value, output.PublicKey)
}

func (u *utxoEntry) Amount() int64 {
	return u.amount
}

func (u *utxoEntry) PublicKey() []byte {
	publicKeyClone := make([]byte, len(u.publicKey))
	copy(publicKeyClone, u.publicKey)
	return publicKeyClone
}

// Equal returns whether entry equals to other
func (u *utxoEntry) Equal(other externalapi.UTXOEntry) bool {
	if u == nil || other == nil {
		return u == nil && other == nil
	}

	// If only the underlying value of other is nil it'll
	// make `other == nil` return false, so we check it
	// explicitly.
	downcastedOther := other.(*utxoEntry)
	if u == nil || downcastedOther == nil {
		return u == downcastedOther
	}

	return u.amount == downcastedOther.amount && bytes.Equal(u.publicKey, downcastedOther.publicKey)
}
