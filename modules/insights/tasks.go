package insights

import (
	"context"
	"encoding/json"
	"fmt"

	"bookpicker/core/logger"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TypeEventFinish closes out an event registration with the insights service
// in the background. It is enqueued when a synchronous finish attempt failed,
// and as the compensating action when a link was issued but the subject write
// did not go through; asynq's retry policy absorbs transient failures.
const TypeEventFinish = "insights:event_finish"

type eventFinishPayload struct {
	EventID uuid.UUID `json:"event_id"`
}

func NewEventFinishTask(eventID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(eventFinishPayload{EventID: eventID})
	if err != nil {
		return nil, fmt.Errorf("encode task payload: %w", err)
	}
	return asynq.NewTask(TypeEventFinish, payload, asynq.MaxRetry(5)), nil
}

// Worker handles insights background tasks.
type Worker struct {
	client Client
}

func NewWorker(client Client) *Worker {
	return &Worker{client: client}
}

func (w *Worker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(TypeEventFinish, w.HandleEventFinishTask)
}

func (w *Worker) HandleEventFinishTask(ctx context.Context, t *asynq.Task) error {
	var payload eventFinishPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode task payload: %v: %w", err, asynq.SkipRetry)
	}

	if err := w.client.FinishEvent(ctx, payload.EventID); err != nil {
		return fmt.Errorf("finish event %s: %w", payload.EventID, err)
	}

	logger.Info("insights event finished", "event_id", payload.EventID)
	return nil
}
