package driven

// NormaliserRegistry dispatches files to normalisers by extension.
type NormaliserRegistry interface {
	// Register adds a normaliser for each of its extensions.
	// A later registration for the same extension replaces the earlier one.
	Register(normaliser Normaliser)

	// Lookup returns the normaliser for path's extension.
	// Returns domain.ErrUnsupportedType when no normaliser handles it.
	Lookup(path string) (Normaliser, error)

	// Extensions returns every registered extension, sorted.
	Extensions() []string
}
