package domain

// FileOutcome records what ingestion did with one file.
type FileOutcome struct {
	// Path is the file location on disk.
	Path string

	// Name is the file's base name.
	Name string

	// Folder is the name of the containing directory.
	Folder string

	// Format is the name of the normaliser that handled the file.
	Format string

	// Chunks is the number of chunks the file contributed.
	Chunks int

	// Err is the failure that stopped the file, if any. A failed file
	// contributes no chunks and does not abort the walk.
	Err error
}

// OK reports whether the file was ingested without error.
func (o FileOutcome) OK() bool {
	return o.Err == nil
}

// IngestSummary aggregates the outcome of one knowledge base walk.
type IngestSummary struct {
	// Root is the directory that was walked.
	Root string

	// RootMissing is true when Root did not exist or was not a directory.
	RootMissing bool

	// Files lists one outcome per supported file, in walk order.
	Files []FileOutcome

	// TotalChunks is the number of chunks added to the corpus.
	TotalChunks int
}

// FilesLoaded counts files that contributed at least one chunk.
func (s *IngestSummary) FilesLoaded() int {
	n := 0
	for _, f := range s.Files {
		if f.Chunks > 0 {
			n++
		}
	}
	return n
}

// Failed returns the outcomes that carry an error.
func (s *IngestSummary) Failed() []FileOutcome {
	var failed []FileOutcome
	for _, f := range s.Files {
		if !f.OK() {
			failed = append(failed, f)
		}
	}
	return failed
}
