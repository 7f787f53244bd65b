package ledger

import (
	"sync"

	"github.com/kaspanet/utxosettle/domain/ledger/datastructures/utxopoolstore"
	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/kaspanet/utxosettle/domain/ledger/model/externalapi"
	"github.com/kaspanet/utxosettle/domain/ledger/ruleerrors"
	"github.com/kaspanet/utxosettle/domain/ledger/utils/utxopool"
	"github.com/pkg/errors"
)

// Ledger binds the settlement core to a stored UTXO pool
type Ledger interface {
	Init(genesisOutputs []*externalapi.DomainTransactionOutput) (*externalapi.DomainHash, error)
	Pool() (model.UTXOPool, error)
	ValidateTransaction(transaction *externalapi.DomainTransaction) error
	SettleBatch(transactions []*externalapi.DomainTransaction) (*SettlementResult, error)
}

// SettlementResult describes the outcome of settling one batch
type SettlementResult struct {
	Accepted   []*externalapi.DomainTransaction
	Rejected   []*model.RejectedTransaction
	Commitment *externalapi.DomainHash
}

// ErrAlreadyInitialized indicates an attempt to initialize a ledger that
// already has a stored pool
var ErrAlreadyInitialized = errors.New("ledger is already initialized")

type ledger struct {
	lock sync.Mutex

	transactionValidator model.TransactionValidator
	batchSettler         model.BatchSettler
	utxoPoolStore        *utxopoolstore.UTXOPoolStore
}

// Init stores the genesis pool paying genesisOutputs, and returns its
// commitment
func (l *ledger) Init(genesisOutputs []*externalapi.DomainTransactionOutput) (*externalapi.DomainHash, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	for i, output := range genesisOutputs {
		if output.Value < 0 {
			return nil, errors.Wrapf(ruleerrors.ErrNegativeTxOutValue, "genesis output %d "+
				"has negative value of %d", i, output.Value)
		}
	}

	exists, err := l.utxoPoolStore.Exists()
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.WithStack(ErrAlreadyInitialized)
	}

	pool := utxopool.NewGenesisPool(genesisOutputs)
	err = l.utxoPoolStore.Save(pool)
	if err != nil {
		return nil, err
	}
	log.Infof("Initialized a ledger with %d genesis UTXOs and commitment %s", pool.Len(), pool.Commitment())
	return pool.Commitment(), nil
}

// Pool loads the stored pool. The returned pool is owned by the caller.
func (l *ledger) Pool() (model.UTXOPool, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	return l.utxoPoolStore.Load()
}

// ValidateTransaction validates transaction against the stored pool
func (l *ledger) ValidateTransaction(transaction *externalapi.DomainTransaction) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	pool, err := l.utxoPoolStore.Load()
	if err != nil {
		return err
	}
	return l.transactionValidator.ValidateTransaction(transaction, pool)
}

// SettleBatch settles transactions into the stored pool and saves the result.
// Nothing is saved if saving fails midway.
func (l *ledger) SettleBatch(transactions []*externalapi.DomainTransaction) (*SettlementResult, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	pool, err := l.utxoPoolStore.Load()
	if err != nil {
		return nil, err
	}

	accepted, rejected := l.batchSettler.SettleBatchWithRejections(transactions, pool)
	if len(accepted) > 0 {
		err = l.utxoPoolStore.Save(pool)
		if err != nil {
			return nil, err
		}
	}
	log.Infof("Settled a batch of %d transactions: %d accepted, %d rejected. Pool commitment: %s",
		len(transactions), len(accepted), len(rejected), pool.Commitment())

	return &SettlementResult{
		Accepted:   accepted,
		Rejected:   rejected,
		Commitment: pool.Commitment(),
	}, nil
}
