package newsletter

import (
	"time"

	"github.com/google/uuid"
)

// Letter is one newsletter issue as delivered to every subscriber.
type Letter struct {
	IssueID    uuid.UUID `json:"issue_id"`
	Newsletter string    `json:"newsletter"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
}
