// SPDX-License-Identifier: MIT

package sparse

// White-box bridge for sparse_test: resolved options and descriptor specs.

// GatherOptions_TestOnly resolves options the way a family does.
func GatherOptions_TestOnly(defaults []Option, opts ...Option) Options {
	return gatherOptions(defaults, opts...)
}

// DescriptorSpec_TestOnly renders o for one mask interpretation.
var DescriptorSpec_TestOnly = Options.descriptorSpec

// PanicParallelismInvalid_TestOnly is the WithParallelism panic message.
const PanicParallelismInvalid_TestOnly = panicParallelismInvalid
