package selectionpolicy

import (
	"sort"

	"github.com/kaspanet/utxosettle/domain/ledger/model"
	"github.com/pkg/errors"
)

// DefaultPolicyName is the name of the policy used when none is configured
const DefaultPolicyName = firstComeFirstServedName

var constructors = map[string]func() model.SelectionPolicy{
	firstComeFirstServedName: NewFirstComeFirstServed,
}

// ByName returns a new instance of the selection policy registered under name
func ByName(name string) (model.SelectionPolicy, error) {
	constructor, ok := constructors[name]
	if !ok {
		return nil, errors.Errorf("unknown selection policy '%s'. Available policies: %v", name, Names())
	}
	return constructor(), nil
}

// Names returns the names of all the registered selection policies, sorted
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
