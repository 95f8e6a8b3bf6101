package memory

import (
	"context"

	"parking-engine/internal/pkg/errs"
)

var ErrNestedTransaction = errs.New("nested transaction")

type txKey struct{}

type txBuffer struct {
	ops []func()
}

// Transactor stages writes made inside Within and applies them together
// once fn returns nil. On error the staged writes are dropped.
type Transactor struct {
	s *Store
}

func (s *Store) Transactor() Transactor { return Transactor{s} }

func (t Transactor) Within(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*txBuffer); ok {
		return ErrNestedTransaction
	}

	tx := &txBuffer{}
	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}

	t.s.mu.Lock()
	defer t.s.mu.Unlock()
	for _, op := range tx.ops {
		op()
	}
	return nil
}
