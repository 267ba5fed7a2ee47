// SPDX-License-Identifier: MIT

package hmm

// Test-bridge (white-box) for private kernels.
//
// Exposes the unexported forward/backward tables and the inverse-CDF
// sampler to the external hmm_test package, so properties like
// forward/backward likelihood agreement can be verified without widening
// the production API.

var (
	// ExportedForward exposes Model.forward for white-box tests.
	ExportedForward = (*Model).forward
	// ExportedBackward exposes Model.backward for white-box tests.
	ExportedBackward = (*Model).backward
	// ExportedNextIndex exposes the inverse-CDF scan for white-box tests.
	ExportedNextIndex = nextIndex
)
