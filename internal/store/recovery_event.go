package store

import (
	"context"
	"fmt"
	"time"

	"github.com/tmaru/lexiquest/ent"
	"github.com/tmaru/lexiquest/ent/recoveryevent"
)

func (r *eventRepo) AppendRecoveryEvent(ctx context.Context, data RecoveryEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.RecoveryEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetReason(data.Reason)

	if !data.Timestamp.IsZero() {
		builder = builder.SetTimestamp(data.Timestamp)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save recovery event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecoveryEventsBetween(ctx context.Context, from, to time.Time) ([]RecoveryEventRow, error) {
	events, err := r.client.RecoveryEvent.Query().
		Where(
			recoveryevent.TimestampGTE(from),
			recoveryevent.TimestampLT(to),
		).
		Order(ent.Asc(recoveryevent.FieldTimestamp)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recovery events: %w", err)
	}

	rows := make([]RecoveryEventRow, len(events))
	for i, e := range events {
		rows[i] = RecoveryEventRow{
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
			SessionID: e.SessionID,
			Action:    e.Action,
			Reason:    e.Reason,
		}
	}
	return rows, nil
}
