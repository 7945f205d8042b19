package view

// Arithmetic identities of the element type. Coefficient classification in
// blas1 compares against these with exact equality; no tolerance is applied.

// Zero returns the additive identity of T.
func Zero[T Floats]() T {
	var z T
	return z
}

// One returns the multiplicative identity of T.
func One[T Floats]() T {
	return 1
}
