package txjson

// Transaction is the JSON representation of a DomainTransaction. ID is
// informational: it is filled when encoding and ignored when decoding.
type Transaction struct {
	ID      string    `json:"id,omitempty"`
	Version uint16    `json:"version"`
	Inputs  []*Input  `json:"inputs"`
	Outputs []*Output `json:"outputs"`
}

// Input is the JSON representation of a DomainTransactionInput
type Input struct {
	TransactionID string `json:"transactionId"`
	Index         uint32 `json:"index"`
	Signature     string `json:"signature"`
}

// Output is the JSON representation of a DomainTransactionOutput
type Output struct {
	Value     int64  `json:"value"`
	PublicKey string `json:"publicKey"`
}

// UTXO is the JSON representation of one pool entry
type UTXO struct {
	TransactionID string `json:"transactionId"`
	Index         uint32 `json:"index"`
	Amount        int64  `json:"amount"`
	PublicKey     string `json:"publicKey"`
}

// Pool is the JSON representation of a UTXO pool
type Pool struct {
	Commitment string  `json:"commitment"`
	UTXOs      []*UTXO `json:"utxos"`
}
