package service

import (
	"context"
	stderrors "errors"
	"fmt"
	"math/rand"
	"time"

	"bookpicker/core/constants"
	"bookpicker/core/errors"
	"bookpicker/core/logger"
	"bookpicker/modules/club/entity"
	"bookpicker/modules/club/repository"
	"bookpicker/modules/insights"
	insightsdto "bookpicker/modules/insights/dto"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the slice of asynq.Client the service needs.
type TaskEnqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ClubService owns the event lifecycle rules. It keeps no state between
// calls: every operation re-reads the latest event so it never acts on stale
// data, and the one-active-event invariant is enforced by the store's
// write-time pointer claim rather than any lock here.
type ClubService struct {
	repo     repository.ClubRepositoryInterface
	insights insights.Client
	tasks    TaskEnqueuer
}

// ClubServiceInterface defines the service contract.
type ClubServiceInterface interface {
	RegisterClub(ctx context.Context, chatID int64) *errors.AppError
	ScheduleEvent(ctx context.Context, chatID int64, dateText string) (string, *errors.AppError)
	SubmitSuggestion(ctx context.Context, chatID, userID int64, text string) *errors.AppError
	ToggleInsights(ctx context.Context, chatID int64) (string, *errors.AppError)
	PickSubject(ctx context.Context, chatID int64) (string, *errors.AppError)
	StartEvent(ctx context.Context, chatID int64) (string, *errors.AppError)
	CompleteEvent(ctx context.Context, chatID int64) (string, *errors.AppError)
	DescribeCurrentEvent(ctx context.Context, chatID int64) (string, *errors.AppError)
}

func NewClubService(repo repository.ClubRepositoryInterface, insightsClient insights.Client, tasks TaskEnqueuer) ClubServiceInterface {
	return &ClubService{
		repo:     repo,
		insights: insightsClient,
		tasks:    tasks,
	}
}

// RegisterClub creates the club row for a chat. A second registration for
// the same chat is refused, never duplicated.
func (s *ClubService) RegisterClub(ctx context.Context, chatID int64) *errors.AppError {
	if err := s.repo.CreateClub(ctx, chatID); err != nil {
		if stderrors.Is(err, repository.ErrConflict) {
			return errors.NewAppError(errors.ErrDuplicateClub, "You've already started a club", err)
		}
		return errors.NewAppError(errors.ErrInternalServer, "Failed to register club", err)
	}
	return nil
}

// ScheduleEvent creates the club's next event from a "2006.01.02 15:04" UTC
// date string and returns the human-formatted date.
func (s *ClubService) ScheduleEvent(ctx context.Context, chatID int64, dateText string) (string, *errors.AppError) {
	eventDate, err := time.ParseInLocation(constants.EventDateLayout, dateText, time.UTC)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInvalidDateFormat, "Wrong format, sorry", err)
	}
	if !eventDate.After(time.Now().UTC()) {
		return "", errors.NewAppError(errors.ErrEventInPast, "Unfortunately, you can't go forward to the past", nil)
	}

	latest, err := s.repo.LatestActiveEvent(ctx, chatID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to check active event", err)
	}
	if latest != nil {
		return "", errors.NewAppError(errors.ErrActiveEventExists,
			fmt.Sprintf("Already have an active event on %s", beautifyDate(latest.EventDate)), nil)
	}

	event := &entity.Event{
		ID:        uuid.New(),
		ChatID:    chatID,
		EventDate: eventDate,
		Active:    true,
	}
	if err := s.repo.CreateEvent(ctx, event); err != nil {
		// A concurrent schedule call can win the pointer claim between our
		// check above and this write; the store reports that as a conflict.
		if stderrors.Is(err, repository.ErrConflict) {
			return "", errors.NewAppError(errors.ErrActiveEventExists, "Already have an active event", err)
		}
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	return beautifyDate(eventDate), nil
}

// SubmitSuggestion records a member's candidate subject for the active
// event. Suggestions close as soon as a subject is picked.
func (s *ClubService) SubmitSuggestion(ctx context.Context, chatID, userID int64, text string) *errors.AppError {
	latest, appErr := s.activeEvent(ctx, chatID)
	if appErr != nil {
		return appErr
	}
	if latest.HasSubject() {
		return errors.NewAppError(errors.ErrSubjectAlreadyPicked,
			fmt.Sprintf("Already picked %s", *latest.Subject), nil)
	}

	suggestion := &entity.Suggestion{
		EventID:    latest.ID,
		ChatID:     chatID,
		UserID:     userID,
		Suggestion: escapeMarkup(text),
	}
	if err := s.repo.CreateSuggestion(ctx, suggestion); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to save suggestion", err)
	}
	return nil
}

// ToggleInsights flips the insights flag for the active event. Once a
// subject is picked the mode is locked in and the call becomes a no-op.
func (s *ClubService) ToggleInsights(ctx context.Context, chatID int64) (string, *errors.AppError) {
	latest, appErr := s.activeEvent(ctx, chatID)
	if appErr != nil {
		return "", appErr
	}
	if latest.HasSubject() {
		return "Unable to toggle insights because subject is already picked", nil
	}

	if err := s.repo.SetInsights(ctx, latest.ID, !latest.WithInsights); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to toggle insights", err)
	}

	if latest.WithInsights {
		return "Turned off insights for current event", nil
	}
	return "Turned on insights for current event", nil
}

// PickSubject selects uniformly at random among the submitted suggestions
// and persists the choice. With insights enabled it also registers the
// subject with the insights service and stores the issued link.
func (s *ClubService) PickSubject(ctx context.Context, chatID int64) (string, *errors.AppError) {
	latest, appErr := s.activeEvent(ctx, chatID)
	if appErr != nil {
		return "", appErr
	}
	if latest.HasSubject() {
		return "", errors.NewAppError(errors.ErrSubjectAlreadyPicked,
			fmt.Sprintf("Already picked %s", *latest.Subject), nil)
	}

	suggestions, err := s.repo.SuggestionsForEvent(ctx, latest.ID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to fetch suggestions", err)
	}
	if len(suggestions) == 0 {
		return "", errors.NewAppError(errors.ErrNoSuggestions, "No suggestions found", nil)
	}

	subject := unescapeMarkup(suggestions[rand.Intn(len(suggestions))])

	if !latest.WithInsights {
		if err := s.repo.SetSubject(ctx, latest.ID, subject, nil); err != nil {
			return "", errors.NewAppError(errors.ErrInternalServer, "Failed to save picked subject", err)
		}
		return fmt.Sprintf("Randomly picked\n%s", subject), nil
	}

	link, err := s.insights.RegisterEvent(ctx, insightsdto.RegisterEventRequest{
		EventID:      latest.ID,
		EventSubject: subject,
		ClubID:       chatID,
	})
	if err != nil {
		return "", errors.NewAppError(errors.ErrExternalFailure, "Insights service is unavailable, try again later", err)
	}

	if err := s.repo.SetSubject(ctx, latest.ID, subject, &link); err != nil {
		// The link is issued but not recorded; void the registration in the
		// background so nothing dangles, and let the caller retry the pick.
		s.enqueueEventFinish(latest.ID)
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to save picked subject", err)
	}

	return fmt.Sprintf("Randomly picked\n%s\n\nAnd here is your insights link: %s", subject, link), nil
}

// StartEvent stops further insights edits and fetches the summary link.
// Only meaningful for events configured with insights.
func (s *ClubService) StartEvent(ctx context.Context, chatID int64) (string, *errors.AppError) {
	latest, appErr := s.activeEvent(ctx, chatID)
	if appErr != nil {
		return "", appErr
	}
	if !latest.WithInsights {
		return "", errors.NewAppError(errors.ErrEventWithoutInsights,
			"Event was configured without insights, no need to start it", nil)
	}

	summaryLink, err := s.insights.StartEvent(ctx, latest.ID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrExternalFailure, "Insights service is unavailable, try again later", err)
	}

	return fmt.Sprintf("Here is your insights summary: %s\nHave a great club!", summaryLink), nil
}

// CompleteEvent marks the active event achieved and releases the club for
// the next one. The store write is authoritative; notifying insights is
// best-effort and retried in the background when it fails.
func (s *ClubService) CompleteEvent(ctx context.Context, chatID int64) (string, *errors.AppError) {
	latest, appErr := s.activeEvent(ctx, chatID)
	if appErr != nil {
		return "", appErr
	}

	if err := s.repo.AchieveEvent(ctx, chatID, latest.ID); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to complete event", err)
	}

	if latest.WithInsights && latest.HasSubject() {
		if err := s.insights.FinishEvent(ctx, latest.ID); err != nil {
			logger.Warn("insights finish failed, enqueueing retry", "event_id", latest.ID, "error", err)
			s.enqueueEventFinish(latest.ID)
		}
	}

	return beautifyDate(latest.EventDate), nil
}

// DescribeCurrentEvent summarizes the active event: date, subject when
// picked, and the insights link when the event carries one.
func (s *ClubService) DescribeCurrentEvent(ctx context.Context, chatID int64) (string, *errors.AppError) {
	latest, appErr := s.activeEvent(ctx, chatID)
	if appErr != nil {
		return "", appErr
	}

	formattedDate := beautifyDate(latest.EventDate)
	if !latest.HasSubject() {
		return fmt.Sprintf("The next event is on %s.\nThe subject hasn't been picked yet", formattedDate), nil
	}

	message := fmt.Sprintf("The next event is on %s.\nThe subject is - %s", formattedDate, *latest.Subject)
	if latest.WithInsights && latest.InsightsLink != nil {
		message = fmt.Sprintf("%s\nHere is the insights link: %s", message, *latest.InsightsLink)
	}
	return message, nil
}

// activeEvent fetches the club's active event, translating absence into the
// NoActiveEvent failure every operation shares.
func (s *ClubService) activeEvent(ctx context.Context, chatID int64) (*entity.Event, *errors.AppError) {
	latest, err := s.repo.LatestActiveEvent(ctx, chatID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch active event", err)
	}
	if latest == nil {
		return nil, errors.NewAppError(errors.ErrNoActiveEvent, "No active event found", nil)
	}
	return latest, nil
}

func (s *ClubService) enqueueEventFinish(eventID uuid.UUID) {
	task, err := insights.NewEventFinishTask(eventID)
	if err != nil {
		logger.Error("failed to build finish task", "event_id", eventID, "error", err)
		return
	}
	if _, err := s.tasks.Enqueue(task); err != nil {
		logger.Error("failed to enqueue finish task", "event_id", eventID, "error", err)
	}
}
