package utils

const (
	// NODETOL is the relative tolerance for comparing closed-form values.
	NODETOL = 1.e-12
)
