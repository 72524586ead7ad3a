// Package view provides non-owning windows over concrete vector storage.
//
// The view package provides:
//
//   - Subvector, a write-through window onto a contiguous index range of a
//     vec.Sparse. Element access, lookup, iteration and mutation all
//     delegate to the backing container, offset by the window start.
//   - Element and Iterator, the proxy and cursor types that translate
//     between the window's local index space and the container's global
//     index space.
//   - The assignment protocol (Assign/AddAssign/SubAssign/MulAssign and
//     scalar ScaleAssign/DivAssign) that lets a window sit on the left-hand
//     side of vector arithmetic, with aliasing handled via temporaries.
//   - DenseWindow, the dense sibling for vec.Dense.
//
// A view never owns its base: it stays valid only while the base outlives
// it, and any structural mutation of the base (insert/erase) invalidates
// outstanding iterators, exactly per the base container's own contract.
//
// See the examples in this package and expr for usage patterns.
package view
