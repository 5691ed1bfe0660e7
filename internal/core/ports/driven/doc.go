// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - Normaliser: Extracts documents from one knowledge base file format
//   - NormaliserRegistry: Selects the normaliser for a file extension
//   - PostProcessorPipeline: Turns documents into chunks
//   - CorpusStore: Insertion-ordered chunk storage with live stats
//   - SessionStore: Conversation storage keyed by session id
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PageExtractor: PDF text extraction. Without it, PDF files yield no chunks.
//   - LLMService: Chat completion. Without it, replies are a fixed fallback text.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
