package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/nvasanth/candex/ent"
	"github.com/nvasanth/candex/ent/answerevent"
	"github.com/nvasanth/candex/ent/apirequestevent"
	"github.com/nvasanth/candex/ent/attemptevent"
	"github.com/nvasanth/candex/ent/violationevent"
)

// RecentEvents merges the per-type event tables into a single feed ordered
// by sequence, newest first. Each table is queried with the same limit and
// the merged result is truncated, so the feed is exact even when one type
// dominates.
func (r *eventRepo) RecentEvents(ctx context.Context, opts QueryOpts) ([]EventRecord, error) {
	var records []EventRecord

	apiEvents, err := r.client.APIRequestEvent.Query().
		Where(apirequestevent.SequenceGT(opts.After)).
		Order(ent.Desc(apirequestevent.FieldSequence)).
		Limit(limitOf(opts)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query api request events: %w", err)
	}
	for _, e := range apiEvents {
		outcome := "ok"
		if !e.Success {
			outcome = "failed"
		}
		records = append(records, EventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "api_request",
			Summary:   fmt.Sprintf("%s %s -> %d (%s, %d attempts, %dms)", e.Method, e.Path, e.StatusCode, outcome, e.Attempts, e.LatencyMs),
		})
	}

	violations, err := r.client.ViolationEvent.Query().
		Where(violationevent.SequenceGT(opts.After)).
		Order(ent.Desc(violationevent.FieldSequence)).
		Limit(limitOf(opts)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query violation events: %w", err)
	}
	for _, e := range violations {
		records = append(records, EventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "violation",
			Summary:   fmt.Sprintf("%s: %s", e.ViolationType, e.Details),
		})
	}

	answers, err := r.client.AnswerEvent.Query().
		Where(answerevent.SequenceGT(opts.After)).
		Order(ent.Desc(answerevent.FieldSequence)).
		Limit(limitOf(opts)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	for _, e := range answers {
		records = append(records, EventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "answer",
			Summary:   fmt.Sprintf("%s q%d (%s)", e.Round, e.QuestionID, e.AnswerKind),
		})
	}

	attempts, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SequenceGT(opts.After)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(limitOf(opts)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt events: %w", err)
	}
	for _, e := range attempts {
		summary := e.Action
		if e.Round != "" {
			summary = fmt.Sprintf("%s %s", e.Action, e.Round)
		}
		records = append(records, EventRecord{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			Kind:      "attempt",
			Summary:   summary,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Sequence > records[j].Sequence
	})
	if opts.Limit > 0 && len(records) > opts.Limit {
		records = records[:opts.Limit]
	}
	return records, nil
}

func limitOf(opts QueryOpts) int {
	if opts.Limit > 0 {
		return opts.Limit
	}
	// SQLite treats a negative LIMIT as unlimited.
	return -1
}
