package kafka

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.New().String(),
		AggregateType: "payroll_record",
		AggregateID:   uuid.New().String(),
		EventType:     "payroll.record.created",
		Topic:         "payroll.record.created.v1",
		Payload:       []byte(`{"payroll_record_id":"x"}`),
		Status:        OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, ValidateOutboxEvent(validEvent()))

	missingID := validEvent()
	missingID.ID = ""
	assert.Error(t, ValidateOutboxEvent(missingID))

	missingTopic := validEvent()
	missingTopic.Topic = ""
	assert.Error(t, ValidateOutboxEvent(missingTopic))

	missingPayload := validEvent()
	missingPayload.Payload = nil
	assert.Error(t, ValidateOutboxEvent(missingPayload))

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.Error(t, ValidateOutboxEvent(badStatus))
}

func TestOutboxRepository_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)

	event := validEvent()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType,
			event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsInvalidEvent(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	repo := NewOutboxRepository(db)

	event := validEvent()
	event.Topic = ""

	// Tidak ada ekspektasi exec: event invalid ditolak sebelum menyentuh DB
	assert.Error(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}
