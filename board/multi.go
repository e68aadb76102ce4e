package board

import (
	"context"
	"errors"
)

// Multi writes to every board in order. All boards are attempted even if one fails;
// the failures are joined.
type Multi []Board

func (m Multi) RecordScore(ctx context.Context, player string, sum, progress int) error {
	var errs []error
	for _, b := range m {
		if err := b.RecordScore(ctx, player, sum, progress); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (m Multi) Clear(ctx context.Context) error {
	var errs []error
	for _, b := range m {
		if err := b.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
