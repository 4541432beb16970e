package store

import (
	"context"
	"fmt"

	"github.com/nvasanth/candex/ent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendAPIRequest(ctx context.Context, data APIRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.APIRequestEvent.Create().
		SetSequence(seqNum).
		SetMethod(data.Method).
		SetPath(data.Path).
		SetStatusCode(data.StatusCode).
		SetAttempts(data.Attempts).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save api request event: %w", err)
	}

	return nil
}
