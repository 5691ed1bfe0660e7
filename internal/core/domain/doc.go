// Package domain defines the core entities of the ACL chatbot retrieval engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Document: Text extracted from one knowledge base file (or one page of it)
//   - Chunk: The atomic retrieval unit held by the corpus
//   - Session: A bounded, expiring conversation keyed by an opaque id
//   - SearchResult: A chunk paired with its lexical score
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
