package utxo

import (
	"bytes"
	"io"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/serialization"
	"github.com/pkg/errors"
)

// SerializeUTXO returns the byte-slice representation for given UTXOEntry-outpoint pair
func SerializeUTXO(entry externalapi.UTXOEntry, outpoint *externalapi.DomainOutpoint) ([]byte, error) {
	w := &bytes.Buffer{}

	err := serializeOutpoint(w, outpoint)
	if err != nil {
		return nil, err
	}

	err = serializeUTXOEntry(w, entry)
	if err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// DeserializeUTXO deserializes the given byte slice to UTXOEntry-outpoint pair
func DeserializeUTXO(utxoBytes []byte) (entry externalapi.UTXOEntry, outpoint *externalapi.DomainOutpoint, err error) {
	r := bytes.NewReader(utxoBytes)
	outpoint, err = deserializeOutpoint(r)
	if err != nil {
		return nil, nil, err
	}

	entry, err = deserializeUTXOEntry(r)
	if err != nil {
		return nil, nil, err
	}

	if r.Len() != 0 {
		return nil, nil, errors.Errorf("%d trailing bytes after UTXO", r.Len())
	}

	return entry, outpoint, nil
}

// SerializeOutpoint returns the byte-slice representation of outpoint
func SerializeOutpoint(outpoint *externalapi.DomainOutpoint) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serializeOutpoint(w, outpoint)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DeserializeOutpoint deserializes an outpoint serialized by SerializeOutpoint
func DeserializeOutpoint(outpointBytes []byte) (*externalapi.DomainOutpoint, error) {
	r := bytes.NewReader(outpointBytes)
	outpoint, err := deserializeOutpoint(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Errorf("%d trailing bytes after outpoint", r.Len())
	}
	return outpoint, nil
}

// SerializeUTXOEntry returns the byte-slice representation of entry
func SerializeUTXOEntry(entry externalapi.UTXOEntry) ([]byte, error) {
	w := &bytes.Buffer{}
	err := serializeUTXOEntry(w, entry)
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DeserializeUTXOEntry deserializes an entry serialized by SerializeUTXOEntry
func DeserializeUTXOEntry(entryBytes []byte) (externalapi.UTXOEntry, error) {
	r := bytes.NewReader(entryBytes)
	entry, err := deserializeUTXOEntry(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errors.Errorf("%d trailing bytes after UTXO entry", r.Len())
	}
	return entry, nil
}

func serializeOutpoint(w io.Writer, outpoint *externalapi.DomainOutpoint) error {
	return serialization.WriteElements(w, &outpoint.TransactionID, outpoint.Index)
}

func deserializeOutpoint(r io.Reader) (*externalapi.DomainOutpoint, error) {
	outpoint := &externalapi.DomainOutpoint{}
	err := serialization.ReadElements(r, &outpoint.TransactionID, &outpoint.Index)
	if err != nil {
		return nil, err
	}
	return outpoint, nil
}

func serializeUTXOEntry(w io.Writer, entry externalapi.UTXOEntry) error {
	err := serialization.WriteElement(w, entry.Amount())
	if err != nil {
		return err
	}
	return serialization.WriteVarBytes(w, entry.PublicKey())
}

func deserializeUTXOEntry(r io.Reader) (externalapi.UTXOEntry, error) {
	var amount int64
	err := serialization.ReadElement(r, &amount)
	if err != nil {
		return nil, err
	}
	publicKey, err := serialization.ReadVarBytes(r)
	if err != nil {
		return nil, err
	}
	return NewUTXOEntry(amount, publicKey), nil
}
