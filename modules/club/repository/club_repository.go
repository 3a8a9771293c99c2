package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"bookpicker/core/database"
	"bookpicker/core/logger"
	"bookpicker/modules/club/entity"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// ErrConflict reports a uniqueness violation: a second club row for the same
// chat, or a second active event claiming the club's active-event pointer.
var ErrConflict = errors.New("uniqueness conflict")

const pqUniqueViolation = "23505"

// ClubRepositoryInterface is the persistence contract for the event
// lifecycle. CreateEvent and AchieveEvent span the events and club tables and
// must be atomic. LatestActiveEvent returns nil when the club has no active
// event.
type ClubRepositoryInterface interface {
	CreateClub(ctx context.Context, chatID int64) error
	CreateEvent(ctx context.Context, event *entity.Event) error
	LatestActiveEvent(ctx context.Context, chatID int64) (*entity.Event, error)
	CreateSuggestion(ctx context.Context, suggestion *entity.Suggestion) error
	AchieveEvent(ctx context.Context, chatID int64, eventID uuid.UUID) error
	SuggestionsForEvent(ctx context.Context, eventID uuid.UUID) ([]string, error)
	SetSubject(ctx context.Context, eventID uuid.UUID, subject string, insightsLink *string) error
	SetInsights(ctx context.Context, eventID uuid.UUID, enabled bool) error
}

type ClubRepository struct {
	db database.IDatabase
}

func NewClubRepository(db database.IDatabase) *ClubRepository {
	return &ClubRepository{db: db}
}

func (r *ClubRepository) CreateClub(ctx context.Context, chatID int64) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO club (chat_id) VALUES ($1)`, chatID)
	if err != nil {
		return mapConflict("ClubRepository:CreateClub", err)
	}
	return nil
}

// CreateEvent inserts the event row and claims the club's active-event
// pointer in one transaction. The pointer is only claimed when it is still
// empty, so two racing schedule calls cannot both succeed: the loser sees a
// zero-row update and the whole transaction rolls back with ErrConflict.
func (r *ClubRepository) CreateEvent(ctx context.Context, event *entity.Event) error {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO events (id, chat_id, event_date, active, with_insights)
		 VALUES ($1, $2, $3, true, false)`,
		event.ID, event.ChatID, event.EventDate)
	if err != nil {
		return mapConflict("ClubRepository:CreateEvent:Insert", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE club SET active_event = $1, next_event = $2
		 WHERE chat_id = $3 AND active_event IS NULL`,
		event.ID, event.EventDate, event.ChatID)
	if err != nil {
		logger.Error("ClubRepository:CreateEvent:ClaimPointer", "error", err)
		return fmt.Errorf("claim active event pointer: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return fmt.Errorf("active event pointer already claimed: %w", ErrConflict)
	}

	return tx.Commit()
}

func (r *ClubRepository) LatestActiveEvent(ctx context.Context, chatID int64) (*entity.Event, error) {
	var event entity.Event
	err := r.db.GetContext(ctx, &event,
		`SELECT id, chat_id, event_date, active, subject, with_insights, insights_link, achieved_on
		 FROM events WHERE chat_id = $1 AND active = true`,
		chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.Error("ClubRepository:LatestActiveEvent", "error", err)
		return nil, fmt.Errorf("fetch latest active event: %w", err)
	}
	return &event, nil
}

func (r *ClubRepository) CreateSuggestion(ctx context.Context, suggestion *entity.Suggestion) error {
	_, err := r.db.NamedExecContext(ctx,
		`INSERT INTO suggestions (event_id, chat_id, user_id, suggestion)
		 VALUES (:event_id, :chat_id, :user_id, :suggestion)`,
		suggestion)
	if err != nil {
		logger.Error("ClubRepository:CreateSuggestion", "error", err)
		return fmt.Errorf("write suggestion: %w", err)
	}
	return nil
}

// AchieveEvent retires the event and releases the club's pointer in one
// transaction, stamping the completion and last-event times.
func (r *ClubRepository) AchieveEvent(ctx context.Context, chatID int64, eventID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE events SET active = false, achieved_on = now() WHERE id = $1`,
		eventID)
	if err != nil {
		logger.Error("ClubRepository:AchieveEvent:Event", "error", err)
		return fmt.Errorf("achieve event: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE club SET active_event = NULL, next_event = NULL, last_event = now()
		 WHERE chat_id = $1`,
		chatID)
	if err != nil {
		logger.Error("ClubRepository:AchieveEvent:Club", "error", err)
		return fmt.Errorf("release active event pointer: %w", err)
	}

	return tx.Commit()
}

func (r *ClubRepository) SuggestionsForEvent(ctx context.Context, eventID uuid.UUID) ([]string, error) {
	var suggestions []string
	err := r.db.SelectContext(ctx, &suggestions,
		`SELECT suggestion FROM suggestions WHERE event_id = $1`,
		eventID)
	if err != nil {
		logger.Error("ClubRepository:SuggestionsForEvent", "error", err)
		return nil, fmt.Errorf("fetch suggestions: %w", err)
	}
	return suggestions, nil
}

func (r *ClubRepository) SetSubject(ctx context.Context, eventID uuid.UUID, subject string, insightsLink *string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE events SET subject = $1, insights_link = $2 WHERE id = $3`,
		subject, insightsLink, eventID)
	if err != nil {
		logger.Error("ClubRepository:SetSubject", "error", err)
		return fmt.Errorf("write picked subject: %w", err)
	}
	return nil
}

func (r *ClubRepository) SetInsights(ctx context.Context, eventID uuid.UUID, enabled bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE events SET with_insights = $1 WHERE id = $2`,
		enabled, eventID)
	if err != nil {
		logger.Error("ClubRepository:SetInsights", "error", err)
		return fmt.Errorf("toggle insights: %w", err)
	}
	return nil
}

func mapConflict(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		return fmt.Errorf("%s: %w", pqErr.Constraint, ErrConflict)
	}
	logger.Error(op, "error", err)
	return fmt.Errorf("store write: %w", err)
}
