package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// PromptContextPlaceholder is replaced by the retrieved context in system
// prompt templates.
const PromptContextPlaceholder = "{context}"

// SystemPromptName returns the prompt name of the system prompt for a
// language code ("system_fr").
func SystemPromptName(lang string) string {
	return "system_" + lang
}

// PromptStoreAware is an optional interface for services that can use custom prompts.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable prompts.
	// If not set, the service uses its built-in prompts.
	SetPromptStore(store PromptStore)
}
