// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the native helper through port
// interfaces.
package app

import (
	"context"
	"log/slog"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/app/fanout"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
	"github.com/treinberger/mcp-server-apple-events-sub000/internal/ports"
)

// Compile-time check that RemindersService implements ports.RemindersService.
var _ ports.RemindersService = (*RemindersService)(nil)

// bulkCompleteWorkers bounds concurrent helper invocations during a bulk
// complete. The helper serializes EventKit access internally, so more
// workers than this just queue.
const bulkCompleteWorkers = 4

// RemindersService implements ports.RemindersService by orchestrating calls
// to the native helper through the EventClient port. It handles validation,
// structured logging, and multi-step coordination but contains no business
// logic.
type RemindersService struct {
	events ports.EventClient
	logger *slog.Logger
}

// NewRemindersService creates a RemindersService. The client port provides
// access to the native helper for reminder operations. The logger is used
// for structured request/error logging.
func NewRemindersService(client ports.EventClient, logger *slog.Logger) *RemindersService {
	return &RemindersService{
		events: client,
		logger: logger,
	}
}

// ListReminderLists returns the names of all reminder lists.
func (s *RemindersService) ListReminderLists(ctx context.Context) ([]domain.ReminderList, error) {
	s.logger.InfoContext(ctx, "listing reminder lists")

	lists, err := s.events.ListReminderLists(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reminder lists",
			slog.String("operation", "ListReminderLists"),
			slog.Any("error", err),
		)
		return nil, err
	}

	return lists, nil
}

// CreateReminderList validates and creates a new reminder list.
func (s *RemindersService) CreateReminderList(ctx context.Context, list *domain.ReminderList) (*domain.ReminderList, error) {
	s.logger.InfoContext(ctx, "creating reminder list", slog.String("name", list.Name))

	if err := list.Validate(); err != nil {
		return nil, err
	}

	created, err := s.events.CreateReminderList(ctx, list)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create reminder list",
			slog.String("operation", "CreateReminderList"),
			slog.String("name", list.Name),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// ListReminders returns reminders matching the given filter.
func (s *RemindersService) ListReminders(ctx context.Context, filter domain.ReminderFilter) ([]domain.Reminder, error) {
	s.logger.InfoContext(ctx, "listing reminders", slog.String("list", filter.List))

	if err := filter.Validate(); err != nil {
		return nil, err
	}

	reminders, err := s.events.ListReminders(ctx, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list reminders",
			slog.String("operation", "ListReminders"),
			slog.String("list", filter.List),
			slog.Any("error", err),
		)
		return nil, err
	}

	return reminders, nil
}

// CreateReminder validates and creates a new reminder, returning the
// created entity with its native identifier assigned.
func (s *RemindersService) CreateReminder(ctx context.Context, reminder *domain.Reminder) (*domain.Reminder, error) {
	s.logger.InfoContext(ctx, "creating reminder", slog.String("title", reminder.Title))

	if err := reminder.Validate(); err != nil {
		return nil, err
	}

	created, err := s.events.CreateReminder(ctx, reminder)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create reminder",
			slog.String("operation", "CreateReminder"),
			slog.String("title", reminder.Title),
			slog.Any("error", err),
		)
		return nil, err
	}

	return created, nil
}

// UpdateReminder applies a partial update to the reminder matching title.
// Field presence in update is preserved through to the helper: nil fields
// are untouched, explicitly cleared fields are emptied.
func (s *RemindersService) UpdateReminder(ctx context.Context, title string, update *domain.ReminderUpdate) (*domain.Reminder, error) {
	s.logger.InfoContext(ctx, "updating reminder", slog.String("title", title))

	if title == "" {
		return nil, &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.events.UpdateReminder(ctx, title, update)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update reminder",
			slog.String("operation", "UpdateReminder"),
			slog.String("title", title),
			slog.Any("error", err),
		)
		return nil, err
	}

	return updated, nil
}

// DeleteReminder deletes the reminder matching title and optional list.
func (s *RemindersService) DeleteReminder(ctx context.Context, title, list string) error {
	s.logger.InfoContext(ctx, "deleting reminder",
		slog.String("title", title),
		slog.String("list", list),
	)

	if title == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}

	if err := s.events.DeleteReminder(ctx, title, list); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete reminder",
			slog.String("operation", "DeleteReminder"),
			slog.String("title", title),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// CompleteReminder marks the matching reminder as completed.
func (s *RemindersService) CompleteReminder(ctx context.Context, title, list string) error {
	s.logger.InfoContext(ctx, "completing reminder",
		slog.String("title", title),
		slog.String("list", list),
	)

	if title == "" {
		return &domain.ValidationError{Fields: map[string]string{"title": domain.MsgRequired}}
	}

	if err := s.events.CompleteReminder(ctx, title, list); err != nil {
		s.logger.ErrorContext(ctx, "failed to complete reminder",
			slog.String("operation", "CompleteReminder"),
			slog.String("title", title),
			slog.Any("error", err),
		)
		return err
	}

	return nil
}

// CompleteReminders marks multiple reminders as completed concurrently with
// partial success semantics: each completion succeeds or fails
// independently, and per-item failures are collected rather than aborting
// the batch.
func (s *RemindersService) CompleteReminders(ctx context.Context, list string, titles []string) (*ports.BulkCompleteResult, error) {
	s.logger.InfoContext(ctx, "completing reminders in bulk",
		slog.String("list", list),
		slog.Int("count", len(titles)),
	)

	for _, title := range titles {
		if title == "" {
			return nil, &domain.ValidationError{Fields: map[string]string{"titles": "must not contain empty titles"}}
		}
	}

	results := fanout.Run(ctx, bulkCompleteWorkers, titles,
		func(ctx context.Context, title string) (string, error) {
			if err := s.events.CompleteReminder(ctx, title, list); err != nil {
				return "", err
			}
			return title, nil
		})

	out := &ports.BulkCompleteResult{}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkCompleteError{Title: titles[i], Err: r.Err})
			continue
		}
		out.Completed = append(out.Completed, r.Value)
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk complete finished with failures",
			slog.String("operation", "CompleteReminders"),
			slog.Int("completed", len(out.Completed)),
			slog.Int("failed", len(out.Errors)),
		)
	}

	return out, nil
}
