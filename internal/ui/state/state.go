package state

import (
	"legalsearch/internal/domain"
)

// ViewState contains everything the search view owns. It lives only as long as
// the view; nothing here is persisted.
type ViewState struct {
	QueryText string // mirrors the query box

	// Last completed search. LastRaw is always the body LastResult was decoded from.
	LastResult *domain.SearchResult
	LastRaw    []byte
	LastSeq    uint64 // submission that produced LastResult

	RawPanelVisible bool

	LastError error // most recent failed search; cleared by the next submit or success
	InFlight  int   // searches dispatched but not yet completed
}

// NewViewState creates an empty view state with the inspector hidden
func NewViewState() *ViewState {
	return &ViewState{}
}

// HasResult reports whether any search has completed
func (s *ViewState) HasResult() bool {
	return s.LastResult != nil
}

// BeginSearch records a dispatched submission
func (s *ViewState) BeginSearch() {
	s.InFlight++
	s.LastError = nil
}

// CompleteSearch replaces the displayed result. The result is stored as given,
// never merged with the previous one.
func (s *ViewState) CompleteSearch(seq uint64, result domain.SearchResult, raw []byte) {
	s.finish()
	s.LastResult = &result
	s.LastRaw = raw
	s.LastSeq = seq
	s.LastError = nil
}

// FailSearch records a failed search without touching the displayed result
func (s *ViewState) FailSearch(err error) {
	s.finish()
	s.LastError = err
}

// DiscardSearch accounts for a response that was dropped as stale
func (s *ViewState) DiscardSearch() {
	s.finish()
}

// IsStale reports whether a response for seq is older than the displayed result
func (s *ViewState) IsStale(seq uint64) bool {
	return s.LastResult != nil && seq < s.LastSeq
}

// ToggleRawPanel flips inspector visibility and returns the new value
func (s *ViewState) ToggleRawPanel() bool {
	s.RawPanelVisible = !s.RawPanelVisible
	return s.RawPanelVisible
}

func (s *ViewState) finish() {
	if s.InFlight > 0 {
		s.InFlight--
	}
}
