// Package engine discovers Unreal Engine installations on the host and
// resolves which installation a project should build with. Discovery runs a
// set of host-gated source probes, deduplicates their output by normalized
// path, loads version metadata per candidate, and matches the project's
// EngineAssociation against the candidate set with a version-ranked
// fallback.
package engine

// Installation is one discovered engine install. Probes create it with
// Version unset; the version loader sets Version and refines DisplayName
// exactly once. It is never mutated after that.
type Installation struct {
	// Path is the filesystem root of the install tree, unique per
	// normalized path within a candidate set.
	Path string `json:"path"`

	// AssociationID is the opaque identifier a project can bind to: a
	// registry GUID, a launcher app name, or a synthetic ENV_<var> tag.
	AssociationID string `json:"associationId"`

	DisplayName   string       `json:"displayName"`
	InstalledDate string       `json:"installedDate,omitempty"`
	Version       *VersionInfo `json:"version,omitempty"`
}

// EngineAssociation is a project's declared pointer to the engine it
// expects to build with, read from its .uproject descriptor. The raw
// descriptor string serves as both GUID and Name; no format validation is
// performed.
type EngineAssociation struct {
	GUID string `json:"guid"`
	Name string `json:"name"`
}

// ResolutionResult is the outcome of one resolution call. A populated
// Engine or a populated Error is the success signal; Warnings may accompany
// either. Engine and Error are never both set.
type ResolutionResult struct {
	Engine         *Installation      `json:"engine,omitempty"`
	UProjectEngine *EngineAssociation `json:"uprojectEngine,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
	Error          string             `json:"error,omitempty"`
}
