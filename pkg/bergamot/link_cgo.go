//go:build bergamot

package bergamot

// cgo link directives for liblinguaspark.
// - rpath $ORIGIN lets the loader find liblinguaspark.so next to the binary.
// - -L${SRCDIR}/../../lib is where the prebuilt library is unpacked at build time.
// - Only declarations may appear in this preamble because of the //export below.

/*
#cgo LDFLAGS: -Wl,-rpath,'$ORIGIN' -L${SRCDIR}/../../lib -llinguaspark
*/
import "C"

// NativeAvailable reports whether the native engine is compiled in.
func NativeAvailable() bool { return true }

// mkl_serv_intel_cpu_true makes MKL take its optimized code paths on
// non-Intel CPUs. See https://danieldk.eu/Intel-MKL-on-AMD-Zen
//
//export mkl_serv_intel_cpu_true
func mkl_serv_intel_cpu_true() C.int { return 1 }
