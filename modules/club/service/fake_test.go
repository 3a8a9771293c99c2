package service

import (
	"context"
	"errors"
	"fmt"

	"bookpicker/modules/club/entity"
	"bookpicker/modules/club/repository"
	insightsdto "bookpicker/modules/insights/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// FakeRepository implements the store contract with overridable funcs.
type FakeRepository struct {
	CreateClubFunc          func(ctx context.Context, chatID int64) error
	CreateEventFunc         func(ctx context.Context, event *entity.Event) error
	LatestActiveEventFunc   func(ctx context.Context, chatID int64) (*entity.Event, error)
	CreateSuggestionFunc    func(ctx context.Context, suggestion *entity.Suggestion) error
	AchieveEventFunc        func(ctx context.Context, chatID int64, eventID uuid.UUID) error
	SuggestionsForEventFunc func(ctx context.Context, eventID uuid.UUID) ([]string, error)
	SetSubjectFunc          func(ctx context.Context, eventID uuid.UUID, subject string, insightsLink *string) error
	SetInsightsFunc         func(ctx context.Context, eventID uuid.UUID, enabled bool) error
}

func (f *FakeRepository) CreateClub(ctx context.Context, chatID int64) error {
	if f.CreateClubFunc != nil {
		return f.CreateClubFunc(ctx, chatID)
	}
	return nil
}

func (f *FakeRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	if f.CreateEventFunc != nil {
		return f.CreateEventFunc(ctx, event)
	}
	return nil
}

func (f *FakeRepository) LatestActiveEvent(ctx context.Context, chatID int64) (*entity.Event, error) {
	if f.LatestActiveEventFunc != nil {
		return f.LatestActiveEventFunc(ctx, chatID)
	}
	return nil, nil
}

func (f *FakeRepository) CreateSuggestion(ctx context.Context, suggestion *entity.Suggestion) error {
	if f.CreateSuggestionFunc != nil {
		return f.CreateSuggestionFunc(ctx, suggestion)
	}
	return nil
}

func (f *FakeRepository) AchieveEvent(ctx context.Context, chatID int64, eventID uuid.UUID) error {
	if f.AchieveEventFunc != nil {
		return f.AchieveEventFunc(ctx, chatID, eventID)
	}
	return nil
}

func (f *FakeRepository) SuggestionsForEvent(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	if f.SuggestionsForEventFunc != nil {
		return f.SuggestionsForEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (f *FakeRepository) SetSubject(ctx context.Context, eventID uuid.UUID, subject string, insightsLink *string) error {
	if f.SetSubjectFunc != nil {
		return f.SetSubjectFunc(ctx, eventID, subject, insightsLink)
	}
	return nil
}

func (f *FakeRepository) SetInsights(ctx context.Context, eventID uuid.UUID, enabled bool) error {
	if f.SetInsightsFunc != nil {
		return f.SetInsightsFunc(ctx, eventID, enabled)
	}
	return nil
}

// FakeInsights implements the insights client with overridable funcs.
type FakeInsights struct {
	RegisterEventFunc func(ctx context.Context, req insightsdto.RegisterEventRequest) (string, error)
	StartEventFunc    func(ctx context.Context, eventID uuid.UUID) (string, error)
	FinishEventFunc   func(ctx context.Context, eventID uuid.UUID) error

	FinishedEvents []uuid.UUID
}

func (f *FakeInsights) RegisterEvent(ctx context.Context, req insightsdto.RegisterEventRequest) (string, error) {
	if f.RegisterEventFunc != nil {
		return f.RegisterEventFunc(ctx, req)
	}
	return "https://insights.test/link", nil
}

func (f *FakeInsights) StartEvent(ctx context.Context, eventID uuid.UUID) (string, error) {
	if f.StartEventFunc != nil {
		return f.StartEventFunc(ctx, eventID)
	}
	return "https://insights.test/summary", nil
}

func (f *FakeInsights) FinishEvent(ctx context.Context, eventID uuid.UUID) error {
	f.FinishedEvents = append(f.FinishedEvents, eventID)
	if f.FinishEventFunc != nil {
		return f.FinishEventFunc(ctx, eventID)
	}
	return nil
}

// FakeEnqueuer records enqueued tasks.
type FakeEnqueuer struct {
	Tasks      []*asynq.Task
	EnqueueErr error
}

func (f *FakeEnqueuer) Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.EnqueueErr != nil {
		return nil, f.EnqueueErr
	}
	f.Tasks = append(f.Tasks, task)
	return &asynq.TaskInfo{}, nil
}

// memoryRepository is a stateful in-memory store for end-to-end scenarios.
// It mirrors the Postgres implementation's semantics: one club per chat,
// write-time enforcement of the one-active-event pointer, absent events
// reported as nil.
type memoryRepository struct {
	clubs       map[int64]*entity.Club
	events      map[uuid.UUID]*entity.Event
	suggestions []*entity.Suggestion
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		clubs:  make(map[int64]*entity.Club),
		events: make(map[uuid.UUID]*entity.Event),
	}
}

func (m *memoryRepository) CreateClub(_ context.Context, chatID int64) error {
	if _, ok := m.clubs[chatID]; ok {
		return fmt.Errorf("club_chat_id_key: %w", repository.ErrConflict)
	}
	m.clubs[chatID] = &entity.Club{ChatID: chatID}
	return nil
}

func (m *memoryRepository) CreateEvent(_ context.Context, event *entity.Event) error {
	clubRow, ok := m.clubs[event.ChatID]
	if !ok {
		return errors.New("club not found")
	}
	if clubRow.ActiveEvent != nil {
		return fmt.Errorf("active event pointer already claimed: %w", repository.ErrConflict)
	}
	stored := *event
	m.events[event.ID] = &stored
	id := event.ID
	date := event.EventDate
	clubRow.ActiveEvent = &id
	clubRow.NextEvent = &date
	return nil
}

func (m *memoryRepository) LatestActiveEvent(_ context.Context, chatID int64) (*entity.Event, error) {
	clubRow, ok := m.clubs[chatID]
	if !ok || clubRow.ActiveEvent == nil {
		return nil, nil
	}
	event := *m.events[*clubRow.ActiveEvent]
	return &event, nil
}

func (m *memoryRepository) CreateSuggestion(_ context.Context, suggestion *entity.Suggestion) error {
	stored := *suggestion
	m.suggestions = append(m.suggestions, &stored)
	return nil
}

func (m *memoryRepository) AchieveEvent(_ context.Context, chatID int64, eventID uuid.UUID) error {
	if event, ok := m.events[eventID]; ok {
		event.Active = false
	}
	if clubRow, ok := m.clubs[chatID]; ok {
		clubRow.ActiveEvent = nil
		clubRow.NextEvent = nil
	}
	return nil
}

func (m *memoryRepository) SuggestionsForEvent(_ context.Context, eventID uuid.UUID) ([]string, error) {
	var texts []string
	for _, s := range m.suggestions {
		if s.EventID == eventID {
			texts = append(texts, s.Suggestion)
		}
	}
	return texts, nil
}

func (m *memoryRepository) SetSubject(_ context.Context, eventID uuid.UUID, subject string, insightsLink *string) error {
	event, ok := m.events[eventID]
	if !ok {
		return errors.New("event not found")
	}
	event.Subject = &subject
	event.InsightsLink = insightsLink
	return nil
}

func (m *memoryRepository) SetInsights(_ context.Context, eventID uuid.UUID, enabled bool) error {
	event, ok := m.events[eventID]
	if !ok {
		return errors.New("event not found")
	}
	event.WithInsights = enabled
	return nil
}
