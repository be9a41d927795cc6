package models

import "time"

// ContactStatus is the per-recipient delivery state. Transitions are
// forward-only along pending → sending → (sent → delivered → read), or
// sideways into failed/skipped.
type ContactStatus string

// Contact statuses.
const (
	ContactPending   ContactStatus = "pending"
	ContactSending   ContactStatus = "sending"
	ContactSent      ContactStatus = "sent"
	ContactDelivered ContactStatus = "delivered"
	ContactRead      ContactStatus = "read"
	ContactFailed    ContactStatus = "failed"
	ContactSkipped   ContactStatus = "skipped"
)

// statusRank orders the delivery ladder. failed and skipped are terminal
// side-states; they rank above everything so nothing overwrites them.
var statusRank = map[ContactStatus]int{
	ContactPending:   0,
	ContactSending:   1,
	ContactSent:      2,
	ContactDelivered: 3,
	ContactRead:      4,
	ContactFailed:    5,
	ContactSkipped:   5,
}

// StatusRank returns the forward-only rank of a contact status.
func StatusRank(s ContactStatus) int {
	return statusRank[s]
}

// WebhookStatus is a provider status signal for a message id.
type WebhookStatus string

// Webhook statuses.
const (
	WebhookSent      WebhookStatus = "sent"
	WebhookDelivered WebhookStatus = "delivered"
	WebhookRead      WebhookStatus = "read"
	WebhookFailed    WebhookStatus = "failed"
)

// ContactStatusOf maps a webhook status onto the contact ladder.
func ContactStatusOf(s WebhookStatus) ContactStatus {
	switch s {
	case WebhookSent:
		return ContactSent
	case WebhookDelivered:
		return ContactDelivered
	case WebhookRead:
		return ContactRead
	case WebhookFailed:
		return ContactFailed
	}
	return ""
}

// StatusTimestamps is the subset of campaign_contacts timestamps touched
// by status projection.
type StatusTimestamps struct {
	SentAt      *time.Time
	DeliveredAt *time.Time
	ReadAt      *time.Time
}

// Projection is the decision computed by ProjectStatus: the status the row
// should hold after an event, and which timestamps to stamp. Stamps carry
// only newly-set values; nil means leave untouched.
type Projection struct {
	Status      ContactStatus
	SentAt      *time.Time
	DeliveredAt *time.Time
	ReadAt      *time.Time
	Changed     bool
}

// ProjectStatus applies one webhook status event to a row's current state
// and returns the resulting projection. The rules make events idempotent
// and commutative across duplicates and reordering:
//
//   - the row's status only moves up the ladder, never back;
//   - each event stamps its own timestamp if still unset, even when the
//     status transition itself is a no-op (a late `delivered` after `read`
//     still fills delivered_at);
//   - entering read backfills delivered_at so that delivered_at is always
//     set whenever status ∈ {delivered, read}.
func ProjectStatus(current ContactStatus, ts StatusTimestamps, event WebhookStatus, at time.Time) Projection {
	p := Projection{Status: current}
	target := ContactStatusOf(event)
	if target == "" {
		return p
	}

	if target == ContactFailed {
		// failed is a side-branch off the ladder: it may only claim rows
		// that never reached delivered, and it never overwrites a later
		// delivery fact.
		switch current {
		case ContactPending, ContactSending, ContactSent:
			p.Status = ContactFailed
			p.Changed = true
		}
	} else if StatusRank(target) > StatusRank(current) {
		p.Status = target
		p.Changed = true
	}

	switch event {
	case WebhookSent:
		if ts.SentAt == nil {
			p.SentAt = &at
		}
	case WebhookDelivered:
		if ts.DeliveredAt == nil {
			p.DeliveredAt = &at
		}
	case WebhookRead:
		if ts.ReadAt == nil {
			p.ReadAt = &at
		}
		if ts.DeliveredAt == nil {
			p.DeliveredAt = &at
		}
	case WebhookFailed:
		// failed carries no ladder timestamp; the caller records the error.
	}

	if p.SentAt != nil || p.DeliveredAt != nil || p.ReadAt != nil {
		p.Changed = true
	}
	return p
}
