package serialization

import (
	"bytes"
	"testing"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
)

func TestReadVarBytesRejectsOversizedLength(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteElement(buf, uint64(MaxVarBytesLength+1))
	if err != nil {
		t.Fatalf("WriteElement: %+v", err)
	}

	_, err = ReadVarBytes(buf)
	if !IsMalformedError(err) {
		t.Fatalf("TestReadVarBytesRejectsOversizedLength: expected a malformed error but got %v", err)
	}
}

func TestTruncatedInputIsMalformed(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteVarBytes(buf, []byte{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("WriteVarBytes: %+v", err)
	}
	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-1])

	_, err = ReadVarBytes(truncated)
	if !IsMalformedError(err) {
		t.Fatalf("TestTruncatedInputIsMalformed: expected a malformed error but got %v", err)
	}
}

func TestUnsupportedType(t *testing.T) {
	err := WriteElement(&bytes.Buffer{}, "a string")
	if err == nil {
		t.Fatalf("TestUnsupportedType: expected an error when writing an unsupported type")
	}

	var transactionID externalapi.DomainTransactionID
	err = ReadElement(bytes.NewReader(make([]byte, externalapi.DomainHashSize)), &transactionID)
	if err != nil {
		t.Fatalf("TestUnsupportedType: unexpected error reading a transaction ID: %+v", err)
	}
}
