package externalapi

// UTXOEntry houses details about an individual unspent transaction output:
// how much it pays and the public key of its owner.
// UTXOEntry is immutable once created.
type UTXOEntry interface {
	Amount() int64     // Utxo amount in sompi
	PublicKey() []byte // The public key of the owner. The returned slice is a copy.
	Equal(other UTXOEntry) bool
}

// OutpointAndUTXOEntryPair is an outpoint along with its
// respective UTXO entry
type OutpointAndUTXOEntryPair struct {
	Outpoint  *DomainOutpoint
	UTXOEntry UTXOEntry
}
