package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/unrealkit/uekit/internal/logging"
)

// productLabel prefixes regenerated display names.
const productLabel = "Unreal Engine"

// VersionInfo is the structured version record of one engine install.
// A nil *VersionInfo is the distinct "unknown version" state, not zero.
type VersionInfo struct {
	Major                uint   `json:"major"`
	Minor                uint   `json:"minor"`
	Patch                uint   `json:"patch"`
	Changelist           int    `json:"changelist"`
	CompatibleChangelist int    `json:"compatibleChangelist"`
	IsLicenseeVersion    bool   `json:"isLicenseeVersion"`
	IsPromotedBuild      bool   `json:"isPromotedBuild"`
	BranchName           string `json:"branchName"`
	BuildID              string `json:"buildId"`
}

// String returns the dotted major.minor.patch form.
func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// CompareVersions orders two optional version records: major, then minor,
// then patch, then changelist. A nil version sorts strictly below any known
// version; two nils are equal, leaving their relative order to the stable
// sort that calls this.
func CompareVersions(a, b *VersionInfo) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if d := int(a.Major) - int(b.Major); d != 0 {
		return d
	}
	if d := int(a.Minor) - int(b.Minor); d != 0 {
		return d
	}
	if d := int(a.Patch) - int(b.Patch); d != 0 {
		return d
	}
	return a.Changelist - b.Changelist
}

// buildVersionFile is the JSON layout of the engine's version descriptors
// (Engine/Build/Build.version and the per-platform editor .version file).
// The promotion and licensee flags are serialized as integers.
type buildVersionFile struct {
	MajorVersion         uint   `json:"MajorVersion"`
	MinorVersion         uint   `json:"MinorVersion"`
	PatchVersion         uint   `json:"PatchVersion"`
	Changelist           int    `json:"Changelist"`
	CompatibleChangelist int    `json:"CompatibleChangelist"`
	IsLicenseeVersion    int    `json:"IsLicenseeVersion"`
	IsPromotedBuild      int    `json:"IsPromotedBuild"`
	BranchName           string `json:"BranchName"`
	BuildID              string `json:"BuildId"`
}

// parseVersionDescriptor parses the JSON contents of a version descriptor
// file into a VersionInfo.
func parseVersionDescriptor(data []byte) (*VersionInfo, error) {
	var f buildVersionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing version descriptor: %w", err)
	}
	return &VersionInfo{
		Major:                f.MajorVersion,
		Minor:                f.MinorVersion,
		Patch:                f.PatchVersion,
		Changelist:           f.Changelist,
		CompatibleChangelist: f.CompatibleChangelist,
		IsLicenseeVersion:    f.IsLicenseeVersion != 0,
		IsPromotedBuild:      f.IsPromotedBuild != 0,
		BranchName:           f.BranchName,
		BuildID:              f.BuildID,
	}, nil
}

// pathVersionPattern extracts a version-like token from an install path: a
// major-version marker (5 or 4), optionally preceded by a "UE" tag and
// optionally followed by a separator and a dotted or underscored numeric
// sequence, e.g. "UE_5.3", "4_27", "5.1.0".
var pathVersionPattern = regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(?:UE[_\- ]?)?([45])(?:[._\-](\d+(?:[._]\d+)*))?`)

// extractVersionFromPath attempts the path heuristic. On success it returns
// a VersionInfo carrying major/minor/patch only and the normalized token the
// display name should be regenerated from. Unparsable numeric segments fall
// back to major 5, minor and patch 0.
func extractVersionFromPath(path string) (*VersionInfo, string, bool) {
	m := pathVersionPattern.FindStringSubmatch(path)
	if m == nil {
		return nil, "", false
	}

	token := m[1]
	if m[2] != "" {
		token += "." + strings.ReplaceAll(m[2], "_", ".")
	}

	v, err := semver.NewVersion(token)
	if err != nil {
		return &VersionInfo{Major: 5}, token, true
	}

	return &VersionInfo{
		Major: uint(v.Major()),
		Minor: uint(v.Minor()),
		Patch: uint(v.Patch()),
	}, token, true
}

// versionStrategy is one step of the loader's ordered fallback chain. It
// returns the loaded version, the display name to adopt, and whether it
// matched. Strategies report no-match instead of failing.
type versionStrategy struct {
	name string
	load func(ctx context.Context, h Host, install *Installation) (*VersionInfo, string, bool)
}

// versionStrategies returns the loader chain in fixed order: the
// per-platform editor descriptor, the generic build descriptor, then the
// path heuristic.
func versionStrategies(h Host) []versionStrategy {
	// UE5 and UE4 name the editor descriptor differently.
	editorPaths := []string{
		filepath.Join("Engine", "Binaries", h.binariesDir(), "UnrealEditor.version"),
		filepath.Join("Engine", "Binaries", h.binariesDir(), "UE4Editor.version"),
	}
	buildPath := filepath.Join("Engine", "Build", "Build.version")

	readDescriptor := func(rels ...string) func(context.Context, Host, *Installation) (*VersionInfo, string, bool) {
		return func(ctx context.Context, h Host, install *Installation) (*VersionInfo, string, bool) {
			for _, rel := range rels {
				data, err := h.ReadFile(filepath.Join(install.Path, rel))
				if err != nil {
					continue
				}
				v, parseErr := parseVersionDescriptor(data)
				if parseErr != nil {
					logging.FromContext(ctx).Debug().
						Str("component", "versionloader").
						Str("path", install.Path).
						Str("descriptor", rel).
						Err(parseErr).
						Msg("unparsable version descriptor")
					continue
				}
				return v, fmt.Sprintf("%s %s", productLabel, v), true
			}
			return nil, "", false
		}
	}

	return []versionStrategy{
		{name: "editor-descriptor", load: readDescriptor(editorPaths...)},
		{name: "build-descriptor", load: readDescriptor(buildPath)},
		{name: "path-heuristic", load: func(_ context.Context, _ Host, install *Installation) (*VersionInfo, string, bool) {
			v, token, ok := extractVersionFromPath(install.Path)
			if !ok {
				return nil, "", false
			}
			return v, fmt.Sprintf("%s %s", productLabel, token), true
		}},
	}
}

// loadVersion runs the strategy chain over one candidate, setting Version
// and DisplayName on the first match. Total failure leaves the installation
// untouched; the loader never aborts the outer resolution.
func loadVersion(ctx context.Context, h Host, install *Installation) {
	for _, s := range versionStrategies(h) {
		v, displayName, ok := s.load(ctx, h, install)
		if !ok {
			continue
		}
		install.Version = v
		install.DisplayName = displayName
		logging.FromContext(ctx).Debug().
			Str("component", "versionloader").
			Str("path", install.Path).
			Str("strategy", s.name).
			Str("version", v.String()).
			Msg("loaded engine version")
		return
	}
}
