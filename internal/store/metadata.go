package store

import (
	"sort"
	"strconv"

	"github.com/qcforge/basisset/internal/basis"
)

// Metadata is the decoded name index: internal (normalized) basis set
// name -> entry.
type Metadata map[string]*MetadataEntry

// MetadataEntry describes one basis set across all of its versions.
type MetadataEntry struct {
	// DisplayName is the canonical presentation name.
	DisplayName string `json:"display_name"`

	// Family groups related sets.
	Family string `json:"family"`

	// Role is the wire form of the set's primary role.
	Role string `json:"role"`

	// Description is a one-line summary.
	Description string `json:"description"`

	// LatestVersion is the version selected when none is requested.
	LatestVersion string `json:"latest_version"`

	// Auxiliaries maps a role to the name of the auxiliary basis set
	// recommended for that role.
	Auxiliaries map[string]string `json:"auxiliaries,omitempty"`

	// Versions maps a version string to that version's details.
	Versions map[string]*VersionInfo `json:"versions"`
}

// VersionInfo describes one version of a basis set.
type VersionInfo struct {
	// TablePath is the table record path for this version.
	TablePath string `json:"file"`

	// RevisionDescription says what changed in this version.
	RevisionDescription string `json:"revision_description"`

	// Elements lists the atomic number keys this version defines.
	Elements []string `json:"elements"`
}

// Version resolves a version selector against the entry: "" or "latest"
// selects LatestVersion. The returned string is the resolved version.
func (e *MetadataEntry) Version(selector string) (string, *VersionInfo, error) {
	v := selector
	if v == "" || v == "latest" {
		v = e.LatestVersion
	}
	vi, ok := e.Versions[v]
	if !ok {
		return "", nil, basis.NewNotFound("version %s of basis set %q not found", v, e.DisplayName)
	}
	return v, vi, nil
}

// VersionList returns the entry's versions sorted numerically where
// possible, lexically otherwise.
func (e *MetadataEntry) VersionList() []string {
	vs := make([]string, 0, len(e.Versions))
	for v := range e.Versions {
		vs = append(vs, v)
	}
	sort.Slice(vs, func(i, j int) bool {
		ni, erri := strconv.Atoi(vs[i])
		nj, errj := strconv.Atoi(vs[j])
		if erri == nil && errj == nil {
			return ni < nj
		}
		return vs[i] < vs[j]
	})
	return vs
}

// Names returns the internal names in the index, sorted.
func (m Metadata) Names() []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
