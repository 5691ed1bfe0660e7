package domain

// CorpusStats aggregates the contents of the corpus.
type CorpusStats struct {
	// TotalChunks is the number of chunks held.
	TotalChunks int `json:"total_chunks"`

	// FilesLoaded is the number of distinct source files with at least one chunk.
	FilesLoaded int `json:"files_loaded"`

	// FileDetails maps source file name to its chunk count.
	FileDetails map[string]int `json:"file_details"`
}

// ComputeCorpusStats derives stats from a chunk sequence.
// Stores that maintain stats incrementally must always agree with it.
func ComputeCorpusStats(chunks []Chunk) CorpusStats {
	details := make(map[string]int)
	for _, c := range chunks {
		details[c.SourceFile]++
	}
	return CorpusStats{
		TotalChunks: len(chunks),
		FilesLoaded: len(details),
		FileDetails: details,
	}
}

// Clone returns a deep copy so callers cannot mutate store-owned maps.
func (s CorpusStats) Clone() CorpusStats {
	details := make(map[string]int, len(s.FileDetails))
	for k, v := range s.FileDetails {
		details[k] = v
	}
	s.FileDetails = details
	return s
}

// SessionStats aggregates the session store.
type SessionStats struct {
	// TotalSessions is the number of sessions currently stored.
	TotalSessions int `json:"total_sessions"`

	// ActiveSessions counts sessions whose last activity is within the TTL.
	ActiveSessions int `json:"active_sessions"`

	// TotalMessages sums every session's all-time message counter.
	TotalMessages int `json:"total_messages"`
}
