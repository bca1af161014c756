package engine

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
)

// uprojectExt is the project descriptor extension.
const uprojectExt = ".uproject"

// uprojectFile is the subset of the project descriptor this package reads;
// every other field belongs to other tooling and is passed through opaquely.
type uprojectFile struct {
	EngineAssociation string `json:"EngineAssociation"`
}

// ReadProjectAssociation extracts the declared engine association from a
// project directory or a direct .uproject path. It never fails: every
// expected problem (no descriptor, unreadable file, bad JSON, missing
// field) yields a nil association plus a warning string.
func ReadProjectAssociation(h Host, projectPath string) (*EngineAssociation, []string) {
	descriptorPath, warnings := locateProjectDescriptor(h, projectPath)
	if descriptorPath == "" {
		return nil, warnings
	}

	data, err := h.ReadFile(descriptorPath)
	if err != nil {
		return nil, append(warnings, fmt.Sprintf("could not read project descriptor %s: %v", descriptorPath, err))
	}

	var descriptor uprojectFile
	if unmarshalErr := json.Unmarshal(data, &descriptor); unmarshalErr != nil {
		return nil, append(warnings, fmt.Sprintf("could not parse project descriptor %s: %v", descriptorPath, unmarshalErr))
	}

	if descriptor.EngineAssociation == "" {
		return nil, append(warnings, fmt.Sprintf("project descriptor %s has no EngineAssociation", descriptorPath))
	}

	// The raw string serves as both guid and name; any string is accepted.
	return &EngineAssociation{
		GUID: descriptor.EngineAssociation,
		Name: descriptor.EngineAssociation,
	}, warnings
}

// locateProjectDescriptor maps a project path to the descriptor file to
// parse. Directories are scanned for the first *.uproject entry; any other
// path must itself carry the descriptor extension.
func locateProjectDescriptor(h Host, projectPath string) (string, []string) {
	info, err := h.Stat(projectPath)
	if err == nil && info.IsDir() {
		entries, readErr := h.ReadDir(projectPath)
		if readErr != nil {
			return "", []string{fmt.Sprintf("could not list project directory %s: %v", projectPath, readErr)}
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.EqualFold(filepath.Ext(entry.Name()), uprojectExt) {
				return filepath.Join(projectPath, entry.Name()), nil
			}
		}
		return "", []string{fmt.Sprintf("no %s file found in %s", uprojectExt, projectPath)}
	}

	if strings.EqualFold(filepath.Ext(projectPath), uprojectExt) {
		return projectPath, nil
	}

	return "", []string{fmt.Sprintf("%s is neither a project directory nor a %s file", projectPath, uprojectExt)}
}
