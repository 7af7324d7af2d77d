package entity

import "time"

// Channel is the notification channel a candidate opted into.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

// IsValid reports whether c is a known notification channel.
func (c Channel) IsValid() bool {
	return c == ChannelEmail || c == ChannelSMS
}

// TimelineEntry is one stage transition in a candidate's history.
type TimelineEntry struct {
	Stage     Stage     `json:"stage"`     // Stage entered at this point.
	Timestamp time.Time `json:"timestamp"` // When the transition happened.
}

// Candidate is a pipeline record as held by the store. The name fields are
// already masked: the full name is consumed at ingestion and never stored.
type Candidate struct {
	ID       string          `json:"id"`       // Opaque unique identifier, immutable.
	Name     string          `json:"name"`     // Masked display name, e.g. "Ada L.".
	Initials string          `json:"initials"` // Initials of the masked name, e.g. "AL".
	Role     string          `json:"role"`     // Free-text job title, immutable.
	Stage    Stage           `json:"stage"`    // Current pipeline stage. The only mutable field.
	Channel  Channel         `json:"channel"`  // Notification channel (email, sms).
	Timeline []TimelineEntry `json:"timeline"` // Append-only stage history, oldest first, never empty.
}

// Projection is the masked candidate shape returned to any caller; the
// recruiter list view and both tracker views all see exactly this.
type Projection struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Initials string  `json:"initials"`
	Role     string  `json:"role"`
	Stage    Stage   `json:"stage"`
	Channel  Channel `json:"channel"`
}

// Project strips the timeline from the record.
func (c *Candidate) Project() Projection {
	return Projection{
		ID:       c.ID,
		Name:     c.Name,
		Initials: c.Initials,
		Role:     c.Role,
		Stage:    c.Stage,
		Channel:  c.Channel,
	}
}

// Clone returns a deep copy so callers can't mutate the store's timeline
// slice through a returned record.
func (c *Candidate) Clone() *Candidate {
	clone := *c
	clone.Timeline = make([]TimelineEntry, len(c.Timeline))
	copy(clone.Timeline, c.Timeline)

	return &clone
}
