package consts

const (
	DefaultNewsletterName = "Youtube"
	DefaultMessage        = "Welcome to our Youtube Newsletter!"
	DefaultInboxTTL       = "10m"
)

// DefaultSubscribers returns a fresh copy so callers may modify it.
func DefaultSubscribers() []string {
	return []string{"Alice", "Bob"}
}
