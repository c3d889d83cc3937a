package ports

// Notifier surfaces short transient messages to the user. Both success and
// failure of a report run are reported through it.
type Notifier interface {
	Notify(msg string)
	NotifyError(msg string)
}
