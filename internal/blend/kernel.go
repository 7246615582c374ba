package blend

import "golang.org/x/sys/cpu"

// Kernel identifies an implementation of "composite one row".
type Kernel int

const (
	// KernelScalar is the portable one-byte-at-a-time reference.
	KernelScalar Kernel = iota

	// KernelWide processes four pixels per step on 16 uint16 lanes.
	// It is plain Go over fixed-size arrays; whether the compiler turns
	// the lane loops into vector instructions is up to the compiler.
	KernelWide
)

// String returns the kernel name.
func (k Kernel) String() string {
	switch k {
	case KernelScalar:
		return "scalar"
	case KernelWide:
		return "wide"
	default:
		return "unknown"
	}
}

// RowFunc composites min(len(dst), len(src)) bytes of src into dst.
type RowFunc func(dst, src []byte, text, dest [4]uint8)

// Func returns the row function implementing k.
// Unknown kernels fall back to the scalar reference.
func (k Kernel) Func() RowFunc {
	if k == KernelWide {
		return CompositeRowWide
	}
	return CompositeRowScalar
}

// selected is fixed at init from CPU features and never changes afterwards.
var selected = detectKernel()

// detectKernel is a dispatch decision only: it picks the wide kernel
// when the CPU reports 128-bit integer vector support, on the bet that
// the lane-array form runs faster there. SSE2 is part of the amd64
// baseline, so amd64 always gets the wide kernel. No assembly is used.
func detectKernel() Kernel {
	return kernelFor(cpu.X86.HasSSE2 || cpu.X86.HasAVX2, cpu.ARM64.HasASIMD)
}

// kernelFor maps detected features to a kernel.
func kernelFor(x86Vector, armVector bool) Kernel {
	if x86Vector || armVector {
		return KernelWide
	}
	return KernelScalar
}

// SelectedKernel returns the kernel chosen for this process.
func SelectedKernel() Kernel {
	return selected
}

// CompositeRow composites one row with the selected kernel.
func CompositeRow(dst, src []byte, text, dest [4]uint8) {
	if selected == KernelWide {
		CompositeRowWide(dst, src, text, dest)
		return
	}
	CompositeRowScalar(dst, src, text, dest)
}
