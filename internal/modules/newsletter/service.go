package newsletter

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/reusedev/newsletter-hub/internal/modules/logs"
	"github.com/reusedev/newsletter-hub/internal/modules/observer"
)

type Service interface {
	Subscribe(user *User) error
	Unsubscribe(user *User)
	NotifySubscribers(content string) error
}

// YoutubeNewsletter sends every issue to its subscribers in the order they joined.
type YoutubeNewsletter struct {
	name    string
	subject *observer.Subject[Letter]
	now     func() time.Time
}

var _ Service = (*YoutubeNewsletter)(nil)

func NewYoutubeNewsletter(name string, opts ...observer.Option) *YoutubeNewsletter {
	return &YoutubeNewsletter{
		name:    name,
		subject: observer.NewSubject[Letter](opts...),
		now:     time.Now,
	}
}

func (n *YoutubeNewsletter) Subscribe(user *User) error {
	if err := n.subject.Subscribe(user); err != nil {
		return errors.Wrapf(err, "newsletter %s", n.name)
	}
	logs.Logger.Debug().Str("newsletter", n.name).Str("user", user.Name()).
		Int("subscribers", n.subject.Len()).Msg("User subscribed")
	return nil
}

// Unsubscribe removes one subscription of user and clears its inbox.
func (n *YoutubeNewsletter) Unsubscribe(user *User) {
	if user == nil {
		return
	}
	n.subject.Unsubscribe(user)
	logs.Logger.Debug().Str("newsletter", n.name).Str("user", user.Name()).
		Int("subscribers", n.subject.Len()).Msg("User unsubscribed")
	if user.inbox == nil {
		return
	}
	if err := user.inbox.Forget(user.Name()); err != nil {
		logs.Logger.Warn().Err(err).Str("user", user.Name()).Msg("Failed to clear inbox")
	}
}

func (n *YoutubeNewsletter) NotifySubscribers(content string) error {
	if content == "" {
		return errors.Wrapf(observer.ErrInvalidArgument, "newsletter %s: empty content", n.name)
	}
	letter := Letter{
		IssueID:    uuid.New(),
		Newsletter: n.name,
		Content:    content,
		SentAt:     n.now(),
	}
	logs.Logger.Info().Str("newsletter", n.name).Str("issue_id", letter.IssueID.String()).
		Int("subscribers", n.subject.Len()).Str("fault_policy", n.subject.FaultPolicy().String()).
		Msg("Sending newsletter issue")
	if err := n.subject.Notify(letter); err != nil {
		logs.Logger.Error().Err(err).Str("newsletter", n.name).Str("issue_id", letter.IssueID.String()).
			Msg("Newsletter issue delivered with faults")
		return errors.Wrapf(err, "newsletter %s", n.name)
	}
	return nil
}

func (n *YoutubeNewsletter) Subscribers() int {
	return n.subject.Len()
}
