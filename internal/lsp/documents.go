package lsp

import "sync"

// document is one open document revision with the analysis derived from it.
type document struct {
	content  string
	analysis *AnalysisResult
}

// DocumentStore holds the open documents keyed by URI. Each entry pairs the
// document text with the analysis of exactly that text, so a handler never
// reads a result computed from a stale revision.
type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]document)}
}

// Set stores a document revision together with its analysis, replacing any
// previous revision.
func (s *DocumentStore) Set(uri, content string, analysis *AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[uri] = document{content: content, analysis: analysis}
}

// Close removes a document and its analysis.
func (s *DocumentStore) Close(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, uri)
}

// Content returns the current text of an open document.
func (s *DocumentStore) Content(uri string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[uri]
	return doc.content, ok
}

// Analysis returns the analysis of the document's current revision, or nil
// if the document is not open.
func (s *DocumentStore) Analysis(uri string) *AnalysisResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[uri].analysis
}
