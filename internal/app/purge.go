package app

import (
	"context"
	"log/slog"
	"os"
)

type purger interface {
	Purge()
	Len() int
}

// purgeOnSignal empties the factor cache each time sig fires, so a newly
// published factor version is served without waiting for entries to expire.
// It returns when ctx is done.
func purgeOnSignal(ctx context.Context, logger *slog.Logger, cache purger, sig <-chan os.Signal) {
	for {
		select {
		case <-ctx.Done():
			return
		case s := <-sig:
			dropped := cache.Len()
			cache.Purge()
			logger.InfoContext(ctx, "factor cache purged",
				slog.String("signal", s.String()),
				slog.Int("entries", dropped),
			)
		}
	}
}
