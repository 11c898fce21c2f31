package ports

// Shell renders platform-specific command text for the generated script.
type Shell interface {
	// Quote quotes s so that the shell passes it through as a single word.
	Quote(s string) string
	// Copy returns a command copying from to to.
	Copy(from, to string) string
	// Delete returns a command removing path.
	Delete(path string) string
}
