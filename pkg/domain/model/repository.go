package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// RepoSpec identifies a repository to monitor.
type RepoSpec struct {
	Owner string
	Repo  string
}

// String returns the canonical "owner/repo" form.
func (s RepoSpec) String() string {
	return s.Owner + "/" + s.Repo
}

// ParseRepoSpec parses an "owner/repo" specifier.
func ParseRepoSpec(spec string) (RepoSpec, error) {
	parts := strings.Split(spec, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return RepoSpec{}, goerr.New("repository specifier must be in the form 'owner/repo'", goerr.V("spec", spec))
	}
	return RepoSpec{Owner: parts[0], Repo: parts[1]}, nil
}

// ParseRepoSpecs parses a list of specifiers, skipping invalid entries.
// The second return value lists the specifiers that failed to parse.
func ParseRepoSpecs(specs []string) ([]RepoSpec, []string) {
	var parsed []RepoSpec
	var invalid []string
	for _, s := range specs {
		spec, err := ParseRepoSpec(s)
		if err != nil {
			invalid = append(invalid, s)
			continue
		}
		parsed = append(parsed, spec)
	}
	return parsed, invalid
}
