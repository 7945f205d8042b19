// Command blasinfo prints the CPU features and registered BLAS kernels of
// this build.
//
// Usage:
//
//	blasinfo [flags]
//
// Examples:
//
//	blasinfo
//	blasinfo -force-generic
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-blas/blas/blas1"
	"github.com/cwbudde/algo-blas/internal/cpu"
)

func main() {
	forceGeneric := flag.Bool("force-generic", false, "pretend the CPU has no SIMD extensions")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: blasinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints detected CPU features, the registered level-1 kernels,\n")
		fmt.Fprintf(os.Stderr, "and which kernel each operation binds to on this machine.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *forceGeneric {
		cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true, Architecture: "forced-generic"})
	}

	features := cpu.DetectFeatures()
	fmt.Printf("architecture: %s\n", features.Architecture)
	fmt.Printf("features:     %s\n", featureList(features))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KERNEL\tSIMD\tPRIORITY\tOPS")
	for _, k := range blas1.Kernels() {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", k.Name, k.SIMDLevel, k.Priority, strings.Join(k.Ops, ","))
	}
	w.Flush()
	fmt.Println()

	bound := blas1.BoundKernels()
	for _, op := range []string{"axpby", "rot"} {
		name := bound[op]
		if name == "" {
			name = "(generic loops)"
		}
		fmt.Printf("%s -> %s\n", op, name)
	}
}

func featureList(f cpu.Features) string {
	if f.ForceGeneric {
		return "none (forced generic)"
	}
	var have []string
	if f.HasSSE2 {
		have = append(have, "SSE2")
	}
	if f.HasAVX {
		have = append(have, "AVX")
	}
	if f.HasAVX2 {
		have = append(have, "AVX2")
	}
	if f.HasAVX512 {
		have = append(have, "AVX-512")
	}
	if f.HasNEON {
		have = append(have, "NEON")
	}
	if len(have) == 0 {
		return "none"
	}
	return strings.Join(have, ", ")
}
