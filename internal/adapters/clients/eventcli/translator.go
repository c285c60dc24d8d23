package eventcli

import (
	"time"

	"github.com/treinberger/mcp-server-apple-events-sub000/internal/domain"
)

// cliTimeLayout is the timestamp format on the helper wire. All values are
// RFC 3339 in the local timezone.
const cliTimeLayout = time.RFC3339

func toDomainReminder(dto *reminderDTO) (*domain.Reminder, error) {
	r := &domain.Reminder{
		ID:        dto.ID,
		Title:     dto.Title,
		Notes:     dto.Notes,
		List:      dto.List,
		URL:       dto.URL,
		Completed: dto.IsCompleted,
	}

	if dto.DueDate != "" {
		due, err := time.Parse(cliTimeLayout, dto.DueDate)
		if err != nil {
			return nil, domain.NewSystemError("invalid due date %q in CLI response: %v", dto.DueDate, err)
		}
		r.DueDate = &due
	}

	return r, nil
}

func toDomainReminderList(dtos []reminderDTO) ([]domain.Reminder, error) {
	out := make([]domain.Reminder, 0, len(dtos))
	for i := range dtos {
		r, err := toDomainReminder(&dtos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, nil
}

func toDomainEvent(dto *eventDTO) (*domain.CalendarEvent, error) {
	start, err := time.Parse(cliTimeLayout, dto.StartDate)
	if err != nil {
		return nil, domain.NewSystemError("invalid start date %q in CLI response: %v", dto.StartDate, err)
	}
	end, err := time.Parse(cliTimeLayout, dto.EndDate)
	if err != nil {
		return nil, domain.NewSystemError("invalid end date %q in CLI response: %v", dto.EndDate, err)
	}

	return &domain.CalendarEvent{
		ID:        dto.ID,
		Title:     dto.Title,
		StartDate: start,
		EndDate:   end,
		Calendar:  dto.Calendar,
		Location:  dto.Location,
		Notes:     dto.Notes,
		URL:       dto.URL,
		IsAllDay:  dto.IsAllDay,
	}, nil
}

func toDomainEventList(dtos []eventDTO) ([]domain.CalendarEvent, error) {
	out := make([]domain.CalendarEvent, 0, len(dtos))
	for i := range dtos {
		e, err := toDomainEvent(&dtos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, nil
}
