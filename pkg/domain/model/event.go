package model

import (
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/goerr/v2"

	"github.com/kusaridev/skoot/pkg/domain/types"
)

// CDEvents repository.created constants. The context version is the CDEvents
// schema version, not the application version.
const (
	EventSource         = "skoot.github.creator"
	EventContextType    = "dev.cdevents.repository.created.0.1.1"
	EventContextVersion = "0.3.0"
	EventSubjectType    = "repository"
)

// RepositoryCreatedEvent is a CDEvents-shaped lifecycle record describing a
// repository creation, emitted for audit and telemetry consumers. Build it
// with NewRepositoryCreatedEvent; fields are validated there and the value is
// not mutated afterwards.
type RepositoryCreatedEvent struct {
	Context RepositoryCreatedContext `json:"context"`
	Subject RepositoryCreatedSubject `json:"subject"`
}

// RepositoryCreatedContext carries the event envelope metadata
type RepositoryCreatedContext struct {
	Version   *semver.Version `json:"version"`
	ID        string          `json:"id"`
	Source    string          `json:"source"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}

// RepositoryCreatedSubject identifies the repository the event is about
type RepositoryCreatedSubject struct {
	ID      string                          `json:"id"`
	Source  string                          `json:"source"`
	Type    string                          `json:"type"`
	Content RepositoryCreatedSubjectContent `json:"content"`
}

// RepositoryCreatedSubjectContent describes the created repository
type RepositoryCreatedSubjectContent struct {
	Name    string `json:"name"`
	Owner   string `json:"owner,omitempty"`
	URL     string `json:"url"`
	ViewURL string `json:"viewUrl,omitempty"`
}

// NewRepositoryCreatedEvent builds the lifecycle event for a confirmed
// creation. Every formatted field is validated here; a failure aborts event
// construction rather than producing a malformed record.
func NewRepositoryCreatedEvent(repo InitializedGithubRepo) (*RepositoryCreatedEvent, error) {
	id := repo.Organization.Name + "/" + repo.Name

	if err := validateEventID(id); err != nil {
		return nil, err
	}
	if err := validateSubjectName(repo.Name); err != nil {
		return nil, err
	}

	fullURL := repo.FullURL()
	if err := validateEventURL(fullURL); err != nil {
		return nil, err
	}

	version, err := semver.NewVersion(EventContextVersion)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid event schema version",
			goerr.V("version", EventContextVersion), goerr.T(types.ErrTagValidation))
	}

	return &RepositoryCreatedEvent{
		Context: RepositoryCreatedContext{
			Version:   version,
			ID:        id,
			Source:    EventSource,
			Type:      EventContextType,
			Timestamp: time.Now().UTC(),
		},
		Subject: RepositoryCreatedSubject{
			ID:     id,
			Source: EventSource,
			Type:   EventSubjectType,
			Content: RepositoryCreatedSubjectContent{
				Name:    repo.Name,
				Owner:   repo.Organization.Name,
				URL:     fullURL,
				ViewURL: fullURL,
			},
		},
	}, nil
}

func validateEventID(id string) error {
	if id == "" || strings.ContainsAny(id, " \t\n") {
		return goerr.New("invalid event id", goerr.V("id", id), goerr.T(types.ErrTagValidation))
	}
	return nil
}

func validateSubjectName(name string) error {
	if name == "" {
		return goerr.New("repository name must not be empty", goerr.T(types.ErrTagValidation))
	}
	return nil
}

func validateEventURL(rawURL string) error {
	u, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return goerr.Wrap(err, "invalid repository URL",
			goerr.V("url", rawURL), goerr.T(types.ErrTagValidation))
	}
	if u.Scheme != "https" && u.Scheme != "http" {
		return goerr.New("repository URL must be HTTP(S)",
			goerr.V("url", rawURL), goerr.T(types.ErrTagValidation))
	}
	return nil
}
