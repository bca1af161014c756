package engine

import "context"

// Probe is one independent discovery source. Run returns zero or more raw
// candidates with Version unset. Absence of the source is a normal empty
// result; a returned error is an internal fault that the resolver logs at
// debug level and otherwise ignores, keeping any partial results.
type Probe struct {
	Name string
	Run  func(ctx context.Context, h Host) ([]Installation, error)
}

// ProbesForHost assembles the probe set for one resolution call, gated on
// the host identity rather than compiled-in branches. Order is the probe
// priority: it decides which duplicate survives deduplication.
func ProbesForHost(h Host) []Probe {
	var probes []Probe
	if h.GOOS == "windows" {
		probes = append(probes, Probe{Name: "registry", Run: probeRegistry})
	}
	if h.GOOS == "windows" || h.GOOS == "darwin" {
		probes = append(probes, Probe{Name: "launcher", Run: probeLauncherManifest})
	}
	probes = append(probes, Probe{Name: "environment", Run: probeEnvironment})
	return probes
}
