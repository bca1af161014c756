package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/unrealkit/uekit/internal/logging"
)

// launcherManifestPaths are the fixed locations of the Epic launcher's
// installation manifest, checked in order; the first readable one is used.
func launcherManifestPaths(h Host) []string {
	switch h.GOOS {
	case "windows":
		return []string{
			`C:\ProgramData\Epic\UnrealEngineLauncher\LauncherInstalled.dat`,
		}
	case "darwin":
		return []string{
			"/Users/Shared/Epic Games/UnrealEngineLauncher/LauncherInstalled.dat",
		}
	default:
		return nil
	}
}

// engineAppTags are the app-name prefixes marking a manifest entry as an
// engine installation rather than a game or tool.
var engineAppTags = []string{"UE_5", "UE_4"}

// launcherManifest is the subset of LauncherInstalled.dat this probe reads.
type launcherManifest struct {
	InstallationList []launcherEntry `json:"InstallationList"`
}

type launcherEntry struct {
	AppName         string `json:"AppName"`
	InstallLocation string `json:"InstallLocation"`
	DisplayName     string `json:"DisplayName"`
	AppVersion      string `json:"AppVersion"`
	InstalledDate   string `json:"InstalledDate"`
}

// isEngineApp reports whether an app name carries one of the recognized
// engine tags.
func isEngineApp(appName string) bool {
	for _, tag := range engineAppTags {
		if appName == tag || strings.HasPrefix(appName, tag+".") || strings.HasPrefix(appName, tag+"_") {
			return true
		}
	}
	return false
}

// probeLauncherManifest reads the launcher's installation manifest and keeps
// only engine entries. A missing manifest is a normal empty result; a
// corrupt one is debug-logged and contributes nothing.
func probeLauncherManifest(ctx context.Context, h Host) ([]Installation, error) {
	for _, manifestPath := range launcherManifestPaths(h) {
		data, err := h.ReadFile(manifestPath)
		if err != nil {
			continue
		}

		var manifest launcherManifest
		if unmarshalErr := json.Unmarshal(data, &manifest); unmarshalErr != nil {
			logging.FromContext(ctx).Debug().
				Str("component", "probe.launcher").
				Str("manifest", manifestPath).
				Err(unmarshalErr).
				Msg("unparsable launcher manifest")
			continue
		}

		var installs []Installation
		for _, entry := range manifest.InstallationList {
			if !isEngineApp(entry.AppName) || entry.InstallLocation == "" {
				continue
			}
			displayName := entry.DisplayName
			if displayName == "" {
				displayName = fmt.Sprintf("%s %s", productLabel, entry.AppVersion)
			}
			installs = append(installs, Installation{
				Path:          entry.InstallLocation,
				AssociationID: entry.AppName,
				DisplayName:   displayName,
				InstalledDate: entry.InstalledDate,
			})
		}
		return installs, nil
	}

	return nil, nil
}
