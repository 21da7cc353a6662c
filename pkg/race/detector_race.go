//go:build race

package race

// DetectorEnabled reports whether the Go race detector is compiled in.
const DetectorEnabled = true
