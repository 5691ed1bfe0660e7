// Package file provides file-based implementations of driven port interfaces.
// These adapters read configuration from the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML configuration overlaid with .env and process environment
//   - PromptStore: user-editable system prompts with embedded defaults
package file
