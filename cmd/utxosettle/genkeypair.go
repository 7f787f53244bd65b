package main

import (
	"encoding/hex"
	"fmt"

	"github.com/kaspanet/utxosettle/domain/ledger/utils/txsigning"
)

func genKeyPair(conf *genKeyPairConfig) error {
	mnemonic := conf.Mnemonic
	if mnemonic == "" {
		var err error
		mnemonic, err = txsigning.CreateMnemonic()
		if err != nil {
			return err
		}
	}

	keyPair, err := txsigning.KeyPairFromMnemonic(mnemonic)
	if err != nil {
		return err
	}
	publicKey, err := txsigning.PublicKey(keyPair)
	if err != nil {
		return err
	}

	fmt.Printf("Mnemonic (keep it secret): %s\n", mnemonic)
	fmt.Printf("Public key: %s\n", hex.EncodeToString(publicKey))
	return nil
}
