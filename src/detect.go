package main

import "fmt"

// detectCompilers probes every compiler kind relevant to this system, in
// the fixed per-platform order, and returns whatever is present. Results
// keep probe order; the build loop sorts by priority later. Detection is a
// pure function of host state, runs fresh every call and is never cached,
// so a freshly installed toolchain shows up on the next run.
func detectCompilers(system string) []CompilerInfo {
	var found []CompilerInfo
	for _, outcome := range probeAll(system) {
		found = append(found, outcome.Compilers...)
	}
	return found
}

// probeAll exposes the raw per-kind outcomes for verbose reporting.
func probeAll(system string) []probeOutcome {
	kinds := probeOrder[platformFamily(system)]
	outcomes := make([]probeOutcome, 0, len(kinds))
	for _, kind := range kinds {
		outcomes = append(outcomes, probeCompiler(system, kind))
	}
	return outcomes
}

func reportProbeOutcomes(outcomes []probeOutcome) {
	for _, outcome := range outcomes {
		if outcome.Status == probeOK && outcome.VersionStatus != probeOK && outcome.VersionStatus != probeAbsent {
			fmt.Printf("[INFO] Probe %s: present, version query %s\n", outcome.Kind, outcome.VersionStatus)
			continue
		}
		fmt.Printf("[INFO] Probe %s: %s\n", outcome.Kind, outcome.Status)
	}
}
