package domain

import "time"

// Reminder is a task the user asked to be reminded about.
// The Time field is kept as the spoken phrase ("5pm", "tomorrow morning");
// parsing it into a clock time is a dispatcher concern, not a slot concern.
type Reminder struct {
	// ID is the unique identifier.
	ID string

	// Task is what to be reminded of.
	Task string

	// Time is the spoken time phrase.
	Time string

	// CreatedAt is when the reminder was set.
	CreatedAt time.Time

	// Done marks completed reminders.
	Done bool
}

// Turn is one processed exchange, recorded for conversation history.
type Turn struct {
	// ID is the unique identifier.
	ID string

	// Query is the raw user query.
	Query string

	// Intent is the selected intent name.
	Intent string

	// Confidence is the selection score.
	Confidence float64

	// Entities are the extracted slot values.
	Entities map[string]string

	// Reply is the assistant's response message.
	Reply string

	// CreatedAt is when the turn was processed.
	CreatedAt time.Time
}
