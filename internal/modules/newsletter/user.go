package newsletter

import (
	"fmt"
	"io"

	"github.com/reusedev/newsletter-hub/internal/modules/logs"
)

// User is a newsletter subscriber that prints each letter it receives.
type User struct {
	name  string
	out   io.Writer
	inbox *Inbox
}

// NewUser returns a subscriber writing to out. inbox may be nil.
func NewUser(name string, out io.Writer, inbox *Inbox) *User {
	return &User{name: name, out: out, inbox: inbox}
}

func (u *User) Name() string {
	return u.name
}

func (u *User) String() string {
	return "user:" + u.name
}

func (u *User) Receive(letter Letter) {
	fmt.Fprintf(u.out, "User %s received email: %s\n", u.name, letter.Content)
	if u.inbox == nil {
		return
	}
	if err := u.inbox.Put(u.name, letter); err != nil {
		logs.Logger.Warn().Err(err).Str("user", u.name).Str("issue_id", letter.IssueID.String()).
			Msg("Failed to keep letter in inbox")
	}
}
