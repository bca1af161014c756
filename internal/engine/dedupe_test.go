package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeInstallations_FirstOccurrenceWins(t *testing.T) {
	installs := []Installation{
		{Path: "/engines/ue5", AssociationID: "first"},
		{Path: "/other/ue4", AssociationID: "other"},
		{Path: "/engines/ue5", AssociationID: "dup"},
	}

	got := dedupeInstallations(installs)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].AssociationID)
	assert.Equal(t, "other", got[1].AssociationID)
}

func TestDedupeInstallations_CaseInsensitive(t *testing.T) {
	// A manifest entry whose path differs from a registry entry's only by
	// case collapses onto the registry entry, because the registry probe
	// runs first.
	installs := []Installation{
		{Path: `C:\Engines\UE_5.3`, AssociationID: "{REG-GUID}"},
		{Path: `c:\engines\ue_5.3`, AssociationID: "UE_5.3"},
	}

	got := dedupeInstallations(installs)
	require.Len(t, got, 1)
	assert.Equal(t, "{REG-GUID}", got[0].AssociationID)
}

func TestDedupeInstallations_NormalizesRelativeSegments(t *testing.T) {
	installs := []Installation{
		{Path: "/engines/UE_5.3", AssociationID: "a"},
		{Path: "/engines/nested/../UE_5.3", AssociationID: "b"},
	}

	got := dedupeInstallations(installs)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].AssociationID)
}

func TestDedupeInstallations_PreservesOrder(t *testing.T) {
	installs := []Installation{
		{Path: "/c"}, {Path: "/a"}, {Path: "/b"}, {Path: "/A"},
	}

	got := dedupeInstallations(installs)
	require.Len(t, got, 3)
	assert.Equal(t, "/c", got[0].Path)
	assert.Equal(t, "/a", got[1].Path)
	assert.Equal(t, "/b", got[2].Path)
}
