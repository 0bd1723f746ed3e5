package model

import "fmt"

// Provider identifies a repository hosting provider
type Provider string

const (
	ProviderGithub Provider = "github"
)

// GithubUserKind discriminates between a personal account and an
// organization. The kind alone decides which API endpoint receives the
// creation request; the name string is never inspected.
type GithubUserKind string

const (
	GithubUserKindUser         GithubUserKind = "user"
	GithubUserKindOrganization GithubUserKind = "organization"
)

// GithubUser is the account that will own a repository
type GithubUser struct {
	Kind GithubUserKind `json:"kind"`
	Name string         `json:"name"`
}

// NewGithubUser returns a personal-account owner
func NewGithubUser(name string) GithubUser {
	return GithubUser{Kind: GithubUserKindUser, Name: name}
}

// NewGithubOrg returns an organization owner
func NewGithubOrg(name string) GithubUser {
	return GithubUser{Kind: GithubUserKindOrganization, Name: name}
}

// IsOrganization reports whether the owner is an organization
func (u GithubUser) IsOrganization() bool {
	return u.Kind == GithubUserKindOrganization
}

// RepoParams carries provider-specific creation parameters. Implementations
// form a closed set; Initialize dispatches on the provider tag.
type RepoParams interface {
	Provider() Provider
}

// GithubRepoParams are the creation parameters for a GitHub repository
type GithubRepoParams struct {
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Organization GithubUser `json:"organization"`
}

// Provider returns the GitHub provider tag
func (p GithubRepoParams) Provider() Provider { return ProviderGithub }

// FullURL returns the canonical HTTPS URL the repository will have once
// created
func (p GithubRepoParams) FullURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", p.Organization.Name, p.Name)
}

// InitializedRepo proves that a remote repository exists: values are only
// constructed after the provider confirmed creation, never speculatively.
type InitializedRepo interface {
	Provider() Provider
}

// InitializedGithubRepo is the creation result for a GitHub repository
type InitializedGithubRepo struct {
	Name         string     `json:"name"`
	Organization GithubUser `json:"organization"`
}

// Provider returns the GitHub provider tag
func (r InitializedGithubRepo) Provider() Provider { return ProviderGithub }

// FullURL returns the canonical HTTPS clone URL
func (r InitializedGithubRepo) FullURL() string {
	return fmt.Sprintf("https://github.com/%s/%s", r.Organization.Name, r.Name)
}

// InitializedSource describes a local working copy produced by a clone
type InitializedSource struct {
	// Path is "{target_dir}/{repo_name}", matching the directory git
	// creates. Computed, not read back from the filesystem.
	Path string `json:"path"`
}
