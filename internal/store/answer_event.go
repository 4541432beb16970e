package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.AnswerEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(data.AttemptID).
		SetRound(data.Round).
		SetQuestionID(data.QuestionID).
		SetAnswerKind(data.AnswerKind).
		SetAnswerValue(data.AnswerValue).
		SetSubmitted(data.Submitted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}
