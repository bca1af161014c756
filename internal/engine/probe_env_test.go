package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeEnvironment_FirstVariableWins(t *testing.T) {
	files := map[string][]byte{
		"/opt/ue5/Engine/Build/Build.version":  []byte(`{}`),
		"/opt/main/Engine/Build/Build.version": []byte(`{}`),
	}
	env := map[string]string{
		"UNREAL_ENGINE_PATH": "/opt/main",
		"UE5_ROOT":           "/opt/ue5",
	}
	h := fakeHost("linux", nil, files, env)

	got, err := probeEnvironment(context.Background(), h)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/opt/main", got[0].Path)
	assert.Equal(t, "ENV_UNREAL_ENGINE_PATH", got[0].AssociationID)
}

func TestProbeEnvironment_SkipsMissingPaths(t *testing.T) {
	files := map[string][]byte{
		"/opt/ue4/Engine/Build/Build.version": []byte(`{}`),
	}
	env := map[string]string{
		"UNREAL_ENGINE_PATH": "/does/not/exist",
		"UE4_ROOT":           "/opt/ue4",
	}
	h := fakeHost("linux", nil, files, env)

	got, err := probeEnvironment(context.Background(), h)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ENV_UE4_ROOT", got[0].AssociationID)
}

func TestProbeEnvironment_NoVariablesSet(t *testing.T) {
	h := fakeHost("linux", nil, nil, nil)

	got, err := probeEnvironment(context.Background(), h)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProbeEnvironment_EmptyValueSkipped(t *testing.T) {
	files := map[string][]byte{
		"/opt/ue5/Engine/Build/Build.version": []byte(`{}`),
	}
	env := map[string]string{
		"UNREAL_ENGINE_PATH": "",
		"UE5_ROOT":           "/opt/ue5",
	}
	h := fakeHost("linux", nil, files, env)

	got, err := probeEnvironment(context.Background(), h)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ENV_UE5_ROOT", got[0].AssociationID)
}
