// SPDX-License-Identifier: MIT

package engine

import "strconv"

// Status is the engine's return code. Zero is success; StatusNoValue is an
// informational code; every negative value is a failure.
type Status int

// Status codes follow the GraphBLAS C API numbering.
const (
	StatusSuccess             Status = 0
	StatusNoValue             Status = 1
	StatusUninitializedObject Status = -1
	StatusNullPointer         Status = -2
	StatusInvalidValue        Status = -3
	StatusInvalidIndex        Status = -4
	StatusDomainMismatch      Status = -5
	StatusDimensionMismatch   Status = -6
	StatusOutputNotEmpty      Status = -7
	StatusNotImplemented      Status = -8
	StatusPanic               Status = -101
	StatusOutOfMemory         Status = -102
	StatusInsufficientSpace   Status = -103
	StatusInvalidObject       Status = -104
	StatusIndexOutOfBounds    Status = -105
	StatusEmptyObject         Status = -106
)

var statusNames = map[Status]string{
	StatusSuccess:             "success",
	StatusNoValue:             "no value",
	StatusUninitializedObject: "uninitialized object",
	StatusNullPointer:         "null pointer",
	StatusInvalidValue:        "invalid value",
	StatusInvalidIndex:        "invalid index",
	StatusDomainMismatch:      "domain mismatch",
	StatusDimensionMismatch:   "dimension mismatch",
	StatusOutputNotEmpty:      "output not empty",
	StatusNotImplemented:      "not implemented",
	StatusPanic:               "panic",
	StatusOutOfMemory:         "out of memory",
	StatusInsufficientSpace:   "insufficient space",
	StatusInvalidObject:       "invalid object",
	StatusIndexOutOfBounds:    "index out of bounds",
	StatusEmptyObject:         "empty object",
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// OK reports whether s is success or the informational StatusNoValue.
func (s Status) OK() bool { return s >= 0 }
