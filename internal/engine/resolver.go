package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/unrealkit/uekit/internal/logging"
)

const (
	// defaultProbeTimeout bounds each discovery source so one hung external
	// query (typically the registry) cannot stall the whole resolution.
	defaultProbeTimeout = 5 * time.Second

	// versionLoadWorkers bounds concurrent descriptor reads.
	versionLoadWorkers = 4
)

// Options configures one resolution call.
type Options struct {
	// ProjectPath is an optional project directory or .uproject path whose
	// engine association should drive the match.
	ProjectPath string

	// EnginePath is an optional explicit override supplied by the caller.
	// When set it short-circuits discovery entirely and is trusted beyond
	// an existence check.
	EnginePath string

	// ProbeTimeout overrides defaultProbeTimeout when positive.
	ProbeTimeout time.Duration
}

// Resolve produces the single best-matching engine installation for the
// given project context plus diagnostic warnings. It is a pure function of
// its inputs and the injected host; it never panics outward — an unexpected
// panic anywhere below is recovered once here and reported through the
// result's Error field.
func Resolve(ctx context.Context, h Host, opts Options) (result ResolutionResult) {
	defer func() {
		if r := recover(); r != nil {
			result.Engine = nil
			result.Error = fmt.Sprintf("engine resolution failed: %v", r)
		}
	}()

	log := logging.ComponentLogger(*logging.FromContext(ctx), "resolver")
	ctx = log.WithContext(ctx)

	if opts.EnginePath != "" {
		return resolveOverride(ctx, h, opts.EnginePath)
	}

	if opts.ProjectPath != "" {
		association, warnings := ReadProjectAssociation(h, opts.ProjectPath)
		result.UProjectEngine = association
		result.Warnings = append(result.Warnings, warnings...)
	}

	candidates, probeWarnings, discoverErr := Discover(ctx, h, opts.ProbeTimeout)
	result.Warnings = append(result.Warnings, probeWarnings...)
	if discoverErr != nil {
		result.Error = fmt.Sprintf("engine resolution failed: %v", discoverErr)
		return result
	}

	// Match phase: exact association id equality.
	if assoc := result.UProjectEngine; assoc != nil && assoc.GUID != "" && len(candidates) > 0 {
		for i := range candidates {
			if candidates[i].AssociationID == assoc.GUID {
				result.Engine = &candidates[i]
				return result
			}
		}
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"project is associated with engine %s but no matching installation was found", assoc.GUID))
	}

	// Fallback phase: version-maximal candidate, dedup order breaking ties.
	if result.Engine == nil && len(candidates) > 0 {
		ranked := make([]Installation, len(candidates))
		copy(ranked, candidates)
		sort.SliceStable(ranked, func(i, j int) bool {
			return CompareVersions(ranked[i].Version, ranked[j].Version) > 0
		})
		result.Engine = &ranked[0]
		result.Warnings = append(result.Warnings, fmt.Sprintf(
			"using engine %s at %s, which is not associated with the project",
			ranked[0].DisplayName, ranked[0].Path))
	}

	// Zero candidates is not a failure: no engine, no error, caller decides.
	return result
}

// resolveOverride handles the explicit engine-path override: the path is
// trusted beyond an existence check and becomes the resolved engine, with
// the version loader still run so callers get display metadata.
func resolveOverride(ctx context.Context, h Host, enginePath string) ResolutionResult {
	if !h.pathExists(enginePath) {
		return ResolutionResult{
			Error: fmt.Sprintf("engine path override does not exist: %s", enginePath),
		}
	}
	install := Installation{
		Path:          enginePath,
		AssociationID: "",
		DisplayName:   fmt.Sprintf("%s (explicit)", productLabel),
	}
	loadVersion(ctx, h, &install)
	return ResolutionResult{Engine: &install}
}

// Discover runs every applicable probe concurrently, concatenates their
// outputs in fixed probe-priority order, deduplicates, and loads version
// metadata per unique candidate. Probe timeouts surface as warnings; other
// probe faults are debug-level noise. The returned error is reserved for a
// panic inside a probe or loader goroutine: errgroup does not recover
// panics, and the recover in Resolve only covers its own goroutine, so each
// goroutine converts its panic into an error here.
func Discover(ctx context.Context, h Host, probeTimeout time.Duration) ([]Installation, []string, error) {
	if probeTimeout <= 0 {
		probeTimeout = defaultProbeTimeout
	}

	probes := ProbesForHost(h)
	results := make([][]Installation, len(probes))
	timedOut := make([]bool, len(probes))

	g, gctx := errgroup.WithContext(ctx)
	for i, probe := range probes {
		i, probe := i, probe
		g.Go(func() (goErr error) {
			defer func() {
				if r := recover(); r != nil {
					goErr = fmt.Errorf("%s probe panicked: %v", probe.Name, r)
				}
			}()

			probeCtx, cancel := context.WithTimeout(gctx, probeTimeout)
			defer cancel()

			installs, err := probe.Run(probeCtx, h)
			results[i] = installs
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					timedOut[i] = true
				} else {
					logging.FromContext(ctx).Debug().
						Str("probe", probe.Name).
						Err(err).
						Msg("probe failed, keeping partial results")
				}
			}
			// Probe faults never fail discovery as a whole.
			return nil
		})
	}
	if waitErr := g.Wait(); waitErr != nil {
		return nil, nil, waitErr
	}

	var warnings []string
	var all []Installation
	for i, probe := range probes {
		if timedOut[i] {
			warnings = append(warnings, fmt.Sprintf("%s probe timed out after %s", probe.Name, probeTimeout))
		}
		all = append(all, results[i]...)
	}

	candidates := dedupeInstallations(all)

	// Each candidate's version load is independent; bound the parallel
	// descriptor reads so large candidate sets do not hammer the disk.
	lg, lctx := errgroup.WithContext(ctx)
	lg.SetLimit(versionLoadWorkers)
	for i := range candidates {
		i := i
		lg.Go(func() (goErr error) {
			defer func() {
				if r := recover(); r != nil {
					goErr = fmt.Errorf("loading version for %s panicked: %v", candidates[i].Path, r)
				}
			}()
			loadVersion(lctx, h, &candidates[i])
			return nil
		})
	}
	if waitErr := lg.Wait(); waitErr != nil {
		return nil, warnings, waitErr
	}

	return candidates, warnings, nil
}
