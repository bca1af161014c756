package engine

import (
	"context"
	"fmt"

	"github.com/unrealkit/uekit/internal/logging"
)

// engineEnvVars are the recognized override variables, checked in priority
// order. The first one whose value names an existing path wins; later
// variables are not aggregated.
var engineEnvVars = []string{"UNREAL_ENGINE_PATH", "UE5_ROOT", "UE4_ROOT"}

// probeEnvironment checks the engine environment variables and produces at
// most one Installation, tagged with a synthetic ENV_<var> association id.
func probeEnvironment(ctx context.Context, h Host) ([]Installation, error) {
	for _, name := range engineEnvVars {
		value, ok := h.LookupEnv(name)
		if !ok || value == "" {
			continue
		}
		if !h.pathExists(value) {
			logging.FromContext(ctx).Debug().
				Str("component", "probe.env").
				Str("variable", name).
				Str("path", value).
				Msg("engine env var points at a missing path")
			continue
		}
		return []Installation{{
			Path:          value,
			AssociationID: "ENV_" + name,
			DisplayName:   fmt.Sprintf("%s (%s)", productLabel, name),
		}}, nil
	}
	return nil, nil
}
