package main

import (
	"encoding/hex"
	"math/big"
	"strconv"
	"strings"

	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/constants"
	"github.com/pkg/errors"
)

var sompiPerCoin = big.NewRat(constants.SompiPerCoin, 1)

// parseCoins parses a decimal amount of coins, such as 10.0001, into sompi
// without going through floating point
func parseCoins(amount string) (int64, error) {
	coins, ok := new(big.Rat).SetString(amount)
	if !ok {
		return 0, errors.Errorf("'%s' is not a valid amount", amount)
	}
	if coins.Sign() < 0 {
		return 0, errors.Errorf("'%s' is negative", amount)
	}
	sompi := coins.Mul(coins, sompiPerCoin)
	if !sompi.IsInt() {
		return 0, errors.Errorf("'%s' is more precise than one sompi", amount)
	}
	if !sompi.Num().IsInt64() {
		return 0, errors.Errorf("'%s' is out of range", amount)
	}
	return sompi.Num().Int64(), nil
}

// formatCoins formats an amount of sompi as a decimal amount of coins
func formatCoins(sompi int64) string {
	return formatBigCoins(big.NewInt(sompi))
}

func formatBigCoins(sompi *big.Int) string {
	return new(big.Rat).SetFrac(sompi, big.NewInt(constants.SompiPerCoin)).FloatString(8)
}

// parseOutpoint parses an outpoint in the form <transaction ID>:<index>
func parseOutpoint(outpoint string) (*externalapi.DomainOutpoint, error) {
	parts := strings.Split(outpoint, ":")
	if len(parts) != 2 {
		return nil, errors.Errorf("outpoint '%s' is not in the form <transaction ID>:<index>", outpoint)
	}
	transactionID, err := externalapi.NewDomainTransactionIDFromString(parts[0])
	if err != nil {
		return nil, errors.Wrapf(err, "outpoint '%s' has a malformed transaction ID", outpoint)
	}
	index, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "outpoint '%s' has a malformed index", outpoint)
	}
	return externalapi.NewDomainOutpoint(transactionID, uint32(index)), nil
}

// parseOutput parses an output in the form <public key hex>:<amount in coins>
func parseOutput(output string) (*externalapi.DomainTransactionOutput, error) {
	parts := strings.Split(output, ":")
	if len(parts) != 2 {
		return nil, errors.Errorf("output '%s' is not in the form <public key hex>:<amount in coins>", output)
	}
	publicKey, err := hex.DecodeString(parts[0])
	if err != nil {
		return nil, errors.Wrapf(err, "output '%s' has a malformed public key", output)
	}
	value, err := parseCoins(parts[1])
	if err != nil {
		return nil, err
	}
	return &externalapi.DomainTransactionOutput{
		Value:     value,
		PublicKey: publicKey,
	}, nil
}

func parseOutputs(outputs []string) ([]*externalapi.DomainTransactionOutput, error) {
	parsed := make([]*externalapi.DomainTransactionOutput, len(outputs))
	for i, output := range outputs {
		var err error
		parsed[i], err = parseOutput(output)
		if err != nil {
			return nil, err
		}
	}
	return parsed, nil
}
