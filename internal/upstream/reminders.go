package upstream

import (
	"context"
	"net/http"
)

// ReminderTask is a checklist entry inside a dated reminder.
type ReminderTask struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	IsChecked   bool   `json:"is_checked"`
}

// Reminder is one admin's checklist for a given date (YYYY-MM-DD).
type Reminder struct {
	ID      int            `json:"id"`
	AdminID int            `json:"admin_id"`
	Date    string         `json:"date"`
	Tasks   []ReminderTask `json:"tasks"`
}

type reminderCreate struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

// ListReminders fetches every reminder for the signed-in admin.
func (c *Client) ListReminders(ctx context.Context) ([]Reminder, error) {
	env, err := c.do(ctx, http.MethodGet, "/reminders", nil, nil)
	if err != nil {
		return nil, err
	}
	var out []Reminder
	if err := env.Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateReminder adds a task under the given date, creating the day's
// reminder when needed.
func (c *Client) CreateReminder(ctx context.Context, date, description string) (*Envelope, error) {
	return c.do(ctx, http.MethodPost, "/reminders", nil, reminderCreate{Date: date, Description: description})
}

// RemindersByDate regroups reminders into a date → tasks map, which is the
// shape the calendar view consumes.
func RemindersByDate(reminders []Reminder) map[string][]ReminderTask {
	out := make(map[string][]ReminderTask, len(reminders))
	for _, r := range reminders {
		out[r.Date] = append(out[r.Date], r.Tasks...)
	}
	return out
}
