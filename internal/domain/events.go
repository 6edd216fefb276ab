package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted    EventType = "SearchStarted"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventSearchDiscarded  EventType = "SearchDiscarded"
	EventInspectorToggled EventType = "InspectorToggled"
	EventSignOutRequested EventType = "SignOutRequested"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a submission is dispatched to the search service
type SearchStartedEvent struct {
	Submission Submission
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a response has replaced the displayed result
type SearchCompletedEvent struct {
	Submission Submission
	RequestID  string
	Citations  int
	Elapsed    time.Duration
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a search could not produce a result
type SearchFailedEvent struct {
	Submission Submission
	Err        error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// SearchDiscardedEvent is emitted when a response older than the displayed one is dropped
type SearchDiscardedEvent struct {
	Submission Submission
	Displayed  uint64
}

func (e SearchDiscardedEvent) Type() EventType { return EventSearchDiscarded }

// InspectorToggledEvent is emitted when the raw payload panel is shown or hidden
type InspectorToggledEvent struct {
	Visible bool
}

func (e InspectorToggledEvent) Type() EventType { return EventInspectorToggled }

// SignOutRequestedEvent is emitted when the header's sign-out action is used
type SignOutRequestedEvent struct{}

func (e SignOutRequestedEvent) Type() EventType { return EventSignOutRequested }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path     string
	Endpoint string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
