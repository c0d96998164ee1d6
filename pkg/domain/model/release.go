package model

// Release represents a single published release of a monitored repository.
// Immutable once fetched; the ID is assigned by the release source and is
// unique within a repository.
type Release struct {
	ID          int64  `json:"id"`
	TagName     string `json:"tag_name"`
	Name        string `json:"name"`
	PublishedAt string `json:"published_at"`
	HTMLURL     string `json:"html_url"`
	Body        string `json:"body,omitempty"`
}

// DisplayName returns the release name, falling back to the tag when the
// source did not set one.
func (r *Release) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.TagName
}

// NewRelease represents a release discovered during a poll cycle, together
// with the repository it belongs to. This is the unit handed to the
// enrich/notify pipeline.
type NewRelease struct {
	Owner   string
	Repo    string
	Release Release
}
