// Package cpu provides CPU feature detection for BLAS kernel selection.
//
// The kernel registry uses the detected features to pick the best registered
// implementation of each operation. Detection runs once, lazily, on the first
// call to DetectFeatures and is cached afterwards. Tests can override the
// detected features with SetForcedFeatures.
package cpu

import "sync"

// SIMDLevel identifies a SIMD instruction set extension required by a kernel.
// Levels are not totally ordered across architectures (AVX2 and NEON are not
// comparable); Supports answers per-level questions instead.
type SIMDLevel int

const (
	// SIMDNone indicates a portable pure-Go kernel.
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86-64 SSE2 (part of the amd64 baseline).
	SIMDSSE2

	// SIMDAVX indicates x86-64 AVX.
	SIMDAVX

	// SIMDAVX2 indicates x86-64 AVX2.
	SIMDAVX2

	// SIMDAVX512 indicates x86-64 AVX-512.
	SIMDAVX512

	// SIMDNEON indicates ARM Advanced SIMD (NEON).
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	// x86/amd64
	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool

	// ARM
	HasNEON bool

	// ForceGeneric disables all SIMD kernels regardless of hardware.
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detectedFeatures Features
	detectOnce       sync.Once
	detectMutex      sync.Mutex

	forcedFeatures *Features
	forcedMutex    sync.RWMutex
)

// DetectFeatures returns the CPU features of the current system.
// The first call performs detection; later calls return the cached result.
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasAVX2 reports whether the CPU supports AVX2.
func HasAVX2() bool {
	return DetectFeatures().HasAVX2
}

// HasSSE2 reports whether the CPU supports SSE2.
func HasSSE2() bool {
	return DetectFeatures().HasSSE2
}

// HasNEON reports whether the CPU supports NEON.
func HasNEON() bool {
	return DetectFeatures().HasNEON
}

// SetForcedFeatures overrides detection with f. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears forced features and the detection cache.
// Intended for tests.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports reports whether features satisfy the requirements of level.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
