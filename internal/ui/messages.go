package ui

import (
	"legalsearch/internal/domain"
	"legalsearch/internal/search"
)

// searchCompletedMsg carries a successful response back onto the update loop
type searchCompletedMsg struct {
	submission domain.Submission
	response   *search.Response
}

// searchFailedMsg carries a failed search back onto the update loop
type searchFailedMsg struct {
	submission domain.Submission
	err        error
}

// pagerClosedMsg is sent when the raw payload pager exits
type pagerClosedMsg struct {
	err error
}
