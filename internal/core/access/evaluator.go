package access

import (
	"github.com/rs/zerolog"

	"github.com/finhub/console/internal/core/domain"
)

// Decision is the outcome of a single capability check.
type Decision struct {
	Role       domain.Role
	Capability Capability
	Allowed    bool
	// Known is false when the capability has no table entry.
	Known bool
}

// DecisionObserver is told about every decision. It cannot change the outcome.
type DecisionObserver interface {
	Observe(d Decision)
}

// ObserverFunc adapts a function to DecisionObserver.
type ObserverFunc func(d Decision)

func (f ObserverFunc) Observe(d Decision) { f(d) }

// Evaluator is the single decision point used by gates and route middleware.
type Evaluator struct {
	table     *Table
	observers []DecisionObserver
}

// NewEvaluator returns an Evaluator over table. A nil table denies everything.
func NewEvaluator(table *Table, observers ...DecisionObserver) *Evaluator {
	return &Evaluator{table: table, observers: observers}
}

// Table exposes the underlying read-only table.
func (e *Evaluator) Table() *Table { return e.table }

// Decide evaluates role against c and notifies observers.
func (e *Evaluator) Decide(role domain.Role, c Capability) Decision {
	d := Decision{
		Role:       role,
		Capability: c,
		Allowed:    e.table.IsAllowed(role, c),
		Known:      e.table.Has(c),
	}
	for _, o := range e.observers {
		o.Observe(d)
	}
	return d
}

// IsAllowed is Decide reduced to its boolean.
func (e *Evaluator) IsAllowed(role domain.Role, c Capability) bool {
	return e.Decide(role, c).Allowed
}

// LogUnknown returns an observer that warns about keys missing from the table.
// Those are programming errors in a page, not user errors.
func LogUnknown(log zerolog.Logger) DecisionObserver {
	return ObserverFunc(func(d Decision) {
		if d.Known {
			return
		}
		log.Warn().
			Str("capability", d.Capability.String()).
			Str("role", d.Role.String()).
			Msg("capability not in table, denying")
	})
}
