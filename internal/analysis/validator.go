package analysis

import (
	"fmt"

	"StockScope/internal/model"
)

// ValidateSeries checks that a series is usable by the indicator
// engine: non-empty, every bar structurally valid, and timestamps
// strictly increasing. It is the only gate that can fail a whole
// analysis; everything downstream degrades gracefully instead.
func ValidateSeries(s model.Series) error {
	if s.Len() == 0 {
		return fmt.Errorf("%w: empty series for %q", ErrInsufficientData, s.Symbol)
	}
	for i, b := range s.Bars {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("%w: bar %d: %v", ErrMalformedBar, i, err)
		}
		if i > 0 && !s.Bars[i-1].Time.Before(b.Time) {
			return fmt.Errorf("%w: bar %d: timestamp %s not after previous %s",
				ErrMalformedBar, i,
				b.Time.Format("2006-01-02"), s.Bars[i-1].Time.Format("2006-01-02"))
		}
	}
	return nil
}
