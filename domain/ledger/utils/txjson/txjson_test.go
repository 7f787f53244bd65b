package txjson_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/processes/transactionvalidator"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/testutils"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txjson"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
	"github.com/pkg/errors"
)

func TestBatchRoundTripKeepsSignaturesValid(t *testing.T) {
	alice := testutils.NewTestKey(t, 1)
	bob := testutils.NewTestKey(t, 2)
	pool := testutils.NewPool(
		testutils.UTXO{Outpoint: testutils.Outpoint(1, 0), Amount: testutils.Coins(10), Owner: alice},
		testutils.UTXO{Outpoint: testutils.Outpoint(1, 1), Amount: testutils.Coins(5), Owner: alice},
	)
	transactions := []*externalapi.DomainTransaction{
		testutils.SignedTransaction(t, alice, testutils.Outpoints(testutils.Outpoint(1, 0), testutils.Outpoint(1, 1)),
			testutils.Output(testutils.Coins(12), bob), testutils.Output(testutils.Coins(3), alice)),
	}

	data, err := txjson.MarshalBatch(transactions)
	if err != nil {
		t.Fatalf("MarshalBatch: %+v", err)
	}
	decoded, err := txjson.UnmarshalBatch(data)
	if err != nil {
		t.Fatalf("UnmarshalBatch: %+v", err)
	}
	if len(decoded) != 1 || !decoded[0].Equal(transactions[0]) {
		t.Fatalf("TestBatchRoundTripKeepsSignaturesValid: decoded batch differs. Want: %s, got: %s",
			spew.Sdump(transactions), spew.Sdump(decoded))
	}

	validator := transactionvalidator.New(txsigning.NewSchnorrVerifier())
	err = validator.ValidateTransaction(decoded[0], pool)
	if err != nil {
		t.Fatalf("TestBatchRoundTripKeepsSignaturesValid: decoded transaction is invalid: %+v", err)
	}
}

func TestUnmarshalBatch(t *testing.T) {
	const transactionID = "0100000000000000000000000000000000000000000000000000000000000000"
	tests := []struct {
		name                 string
		data                 string
		expectedTransactions int
		expectedErr          bool
	}{
		{
			name:                 "empty batch",
			data:                 `[]`,
			expectedTransactions: 0,
		},
		{
			name: "single transaction object",
			data: `{"version": 0, "inputs": [{"transactionId": "` + transactionID + `", "index": 1, "signature": "00"}],
				"outputs": [{"value": 5, "publicKey": "ab"}]}`,
			expectedTransactions: 1,
		},
		{
			name:        "malformed transaction ID",
			data:        `[{"inputs": [{"transactionId": "zz", "index": 1, "signature": ""}], "outputs": []}]`,
			expectedErr: true,
		},
		{
			name: "malformed signature",
			data: `[{"inputs": [{"transactionId": "` + transactionID + `", "index": 1, "signature": "0"}],
				"outputs": []}]`,
			expectedErr: true,
		},
		{
			name:        "not JSON",
			data:        `batch`,
			expectedErr: true,
		},
		{
			name:        "null transaction",
			data:        `[null]`,
			expectedErr: true,
		},
		{
			name:        "null input",
			data:        `[{"inputs": [null], "outputs": []}]`,
			expectedErr: true,
		},
		{
			name:        "null output",
			data:        `{"inputs": [], "outputs": [null]}`,
			expectedErr: true,
		},
	}

	for _, test := range tests {
		transactions, err := txjson.UnmarshalBatch([]byte(test.data))
		if test.expectedErr {
			if err == nil {
				t.Errorf("TestUnmarshalBatch: %s: expected an error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("TestUnmarshalBatch: %s: unexpected error: %+v", test.name, err)
			continue
		}
		if len(transactions) != test.expectedTransactions {
			t.Errorf("TestUnmarshalBatch: %s: expected %d transactions, got %d",
				test.name, test.expectedTransactions, len(transactions))
		}
	}
}

func TestPoolJSON(t *testing.T) {
	alice := testutils.NewTestKey(t, 1)
	pool := testutils.NewPool(
		testutils.UTXO{Outpoint: testutils.Outpoint(2, 0), Amount: testutils.Coins(1), Owner: alice},
		testutils.UTXO{Outpoint: testutils.Outpoint(1, 4), Amount: testutils.Coins(2), Owner: alice},
	)

	data, err := txjson.MarshalPool(pool)
	if err != nil {
		t.Fatalf("MarshalPool: %+v", err)
	}
	decoded, err := txjson.UnmarshalPool(data)
	if err != nil {
		t.Fatalf("UnmarshalPool: %+v", err)
	}
	if !decoded.Commitment().Equal(pool.Commitment()) {
		t.Fatalf("TestPoolJSON: decoded pool has a different commitment")
	}

	tampered := strings.Replace(string(data), `"amount": 100000000`, `"amount": 100000001`, 1)
	if tampered == string(data) {
		t.Fatalf("TestPoolJSON: failed tampering with the encoded pool: %s", data)
	}
	_, err = txjson.UnmarshalPool([]byte(tampered))
	if err == nil {
		t.Fatalf("TestPoolJSON: expected a commitment mismatch error")
	}
}

func TestUnmarshalPoolRejectsMalformedUTXOs(t *testing.T) {
	const transactionID = "0100000000000000000000000000000000000000000000000000000000000000"
	tests := []struct {
		name        string
		data        string
		expectedErr error
	}{
		{
			name: "null UTXO",
			data: `{"utxos": [null]}`,
		},
		{
			name: "negative amount",
			data: `{"utxos": [{"transactionId": "` + transactionID + `", "index": 0, "amount": -1,
				"publicKey": "ab"}]}`,
			expectedErr: ruleerrors.ErrNegativeTxOutValue,
		},
	}

	for _, test := range tests {
		_, err := txjson.UnmarshalPool([]byte(test.data))
		if err == nil {
			t.Errorf("TestUnmarshalPoolRejectsMalformedUTXOs: %s: expected an error", test.name)
			continue
		}
		if test.expectedErr != nil && !errors.Is(err, test.expectedErr) {
			t.Errorf("TestUnmarshalPoolRejectsMalformedUTXOs: %s: expected error %s, got: %+v",
				test.name, test.expectedErr, err)
		}
	}
}
