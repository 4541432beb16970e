package store

import (
	"context"
	"fmt"

	"github.com/nvasanth/candex/ent/violationevent"
)

func (r *eventRepo) AppendViolation(ctx context.Context, data ViolationEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ViolationEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetProctorSessionID(data.ProctorSessionID).
		SetViolationType(data.ViolationType).
		SetDetails(data.Details).
		SetReported(data.Reported).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save violation event: %w", err)
	}
	return nil
}

func (r *eventRepo) ViolationCount(ctx context.Context, attemptID string) (int, error) {
	n, err := r.client.ViolationEvent.Query().
		Where(violationevent.AttemptID(attemptID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count violations: %w", err)
	}
	return n, nil
}
