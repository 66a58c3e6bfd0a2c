package emitter

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/yairfalse/onevision/pkg/resource"
)

// LogEmitter writes one log event per inventory change. The first
// snapshot only establishes the baseline and logs nothing.
type LogEmitter struct {
	log      zerolog.Logger
	baseline bool
}

// NewLogEmitter creates a change logger.
func NewLogEmitter(log zerolog.Logger) *LogEmitter {
	return &LogEmitter{log: log}
}

// Emit logs the snapshot's changes.
func (e *LogEmitter) Emit(_ context.Context, snap Snapshot) error {
	if !e.baseline {
		e.baseline = true
		return nil
	}

	for _, diff := range snap.Changes {
		b := diff.Resource.Common()
		ev := e.log.Info().
			Str("id", b.ID).
			Str("type", string(b.Type)).
			Str("account", b.AccountID).
			Str("region", b.Region).
			Str("change", string(diff.Type))

		if diff.Type == resource.DiffModified {
			for field, change := range diff.Changes {
				ev = ev.
					Str(field+".from", change.Previous).
					Str(field+".to", change.Current)
			}
		}
		ev.Msg("resource changed")
	}
	return nil
}

// Close is a no-op for the log emitter.
func (e *LogEmitter) Close() error {
	return nil
}
