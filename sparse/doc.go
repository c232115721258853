// Package sparse is the typed operator layer over a GraphBLAS engine.
//
// The package provides:
//
//   - Containers: Matrix[T], Vector[T] and Scalar[T], each owning one
//     engine object of a fixed shape and value domain.
//   - Masks (MatrixMask, VectorMask) and index selectors (All, Indices).
//   - Operator families, one type per operation, built once from algebra
//     handles and options and applied many times:
//     element-wise addition and multiplication, mxm/mxv/vxm, extraction,
//     insertion and sub-insertion, reduction, selection, transpose,
//     Kronecker product and operator application.
//
// Every Apply follows the same write contract. The operation computes an
// intermediate T from its operands; where the mask permits, the output takes
// accum(C, T) (or T without an accumulator, so positions missing from T are
// deleted); elsewhere the output keeps its value, unless WithReplace clears
// it.
//
// Value domains are type parameters: an operator whose domains do not match
// the containers does not compile. Shapes are checked before the engine is
// called; failures match the sentinels in errors.go through errors.Is.
//
// Families and algebra handles are immutable and safe to share between
// goroutines. Two calls must not write the same output concurrently.
//
// See example_test.go for usage patterns.
package sparse
