package engine

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// registryBuildsKey holds per-user source-build registrations: one value per
// build, named by association GUID, with the install path as data.
const registryBuildsKey = `HKCU\Software\Epic Games\Unreal Engine\Builds`

// registryValueMarker separates the value name from its data in reg.exe
// query output.
const registryValueMarker = "REG_SZ"

// probeRegistry queries the registry builds key through the host's command
// runner and parses each value into an Installation. A missing key (reg.exe
// exiting non-zero) is a normal empty result.
func probeRegistry(ctx context.Context, h Host) ([]Installation, error) {
	stdout, stderr, err := h.Runner.Run(ctx, "reg", "query", registryBuildsKey)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// The key not existing is the usual cause; treat as no candidates.
		_ = stderr
		return nil, nil
	}
	return parseRegistryOutput(string(stdout)), nil
}

// parseRegistryOutput extracts (GUID, path) pairs from reg.exe query output.
// Two layouts occur in the wild and both are accepted: value name and data
// on one line
//
//	{GUID}    REG_SZ    C:\Engines\UE_5.3
//
// or the value name alone with the data wrapped onto the following line. A
// name-only line is carried forward until a line carrying the REG_SZ marker
// supplies its path.
func parseRegistryOutput(out string) []Installation {
	var installs []Installation
	var pendingName string

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "HKEY_") {
			pendingName = ""
			continue
		}

		if idx := strings.Index(line, registryValueMarker); idx >= 0 {
			name := strings.TrimSpace(line[:idx])
			if name == "" {
				name = pendingName
			}
			path := strings.TrimSpace(line[idx+len(registryValueMarker):])
			pendingName = ""
			if name == "" || path == "" {
				continue
			}
			installs = append(installs, Installation{
				Path:          path,
				AssociationID: name,
				DisplayName:   fmt.Sprintf("%s (%s)", productLabel, name),
			})
			continue
		}

		// No marker on this line: remember the token as a carry-forward
		// value name for the next line that carries one.
		pendingName = line
	}

	return installs
}
