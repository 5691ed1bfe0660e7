// Package normalisers provides implementations of the Normaliser interface
// for the knowledge base file formats. Each normaliser knows how to extract
// text from files with specific extensions:
//
//   - tabular: .csv, one document per row
//   - plaintext: .txt, one document per file
//   - pdf: .pdf, one document per non-blank page
//
// Normalisers are registered with the NormaliserRegistry at startup.
// This package holds the text decoding helpers they share.
package normalisers
