package stats

import "github.com/openpitch/statsbomb-api/internal/domain/event"

// reduce scans events left to right and folds them into one aggregate per
// key. Events whose key extractor returns "" are skipped entirely. A key seen
// for the first time gets a zero-valued aggregate seeded with identity fields
// from that event; apply then dispatches the metric rules for the event type.
// Unknown event types register the key and update nothing else.
func reduce[T any](
	events []event.Event,
	key func(event.Event) string,
	seed func(event.Event) T,
	apply func(*T, event.Event),
) map[string]T {
	out := make(map[string]T)
	for _, ev := range events {
		k := key(ev)
		if k == "" {
			continue
		}
		agg, ok := out[k]
		if !ok {
			agg = seed(ev)
		}
		apply(&agg, ev)
		out[k] = agg
	}
	return out
}
