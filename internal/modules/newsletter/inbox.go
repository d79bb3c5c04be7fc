package newsletter

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/reusedev/newsletter-hub/internal/modules/cache"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Inbox keeps the most recent letter of each user for a limited time.
type Inbox struct {
	store *cache.Manager[string]
	ttl   time.Duration
}

func NewInbox(store *cache.Manager[string], ttl time.Duration) *Inbox {
	return &Inbox{store: store, ttl: ttl}
}

func (i *Inbox) Put(owner string, letter Letter) error {
	raw, err := json.MarshalToString(letter)
	if err != nil {
		return errors.Wrapf(err, "inbox: encode letter for %s", owner)
	}
	return errors.Wrapf(i.store.SetWithExpiration(inboxKey(owner), raw, i.ttl), "inbox: store letter for %s", owner)
}

func (i *Inbox) Last(owner string) (Letter, bool, error) {
	var letter Letter
	raw, found, err := i.store.Lookup(inboxKey(owner))
	if err != nil {
		return letter, false, errors.Wrapf(err, "inbox: lookup %s", owner)
	}
	if !found {
		return letter, false, nil
	}
	if err := json.UnmarshalFromString(raw, &letter); err != nil {
		return letter, false, errors.Wrapf(err, "inbox: decode letter for %s", owner)
	}
	return letter, true, nil
}

func (i *Inbox) Forget(owner string) error {
	return errors.Wrapf(i.store.Delete(inboxKey(owner)), "inbox: forget %s", owner)
}

func inboxKey(owner string) string {
	return "inbox:" + owner
}
