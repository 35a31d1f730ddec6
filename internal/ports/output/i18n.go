package output

// Translator renders user-facing messages (error texts, notifier labels).
type Translator interface {
	// T renders the message identified by key for the given locale.
	// data fills template placeholders and may be nil.
	T(locale, key string, data map[string]any) string
	// Locale picks the best supported locale for an Accept-Language value.
	Locale(acceptLanguage string) string
}
