package kernels

// MatAdd computes C = A + B over equal-shape I×J matrices.
func MatAdd[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateSame("matadd", I, J, len(a), len(b), len(c)))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = a[i*J+j] + b[i*J+j]
		}
	}
}

// MatAddBroadcastA computes C = a + B, where a is the scalar a[0].
func MatAddBroadcastA[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateBroadcast("matadd", I, J, len(a), len(b), len(c)))
	}

	s := a[0]
	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = s + b[i*J+j]
		}
	}
}

// MatAddBroadcastB computes C = A + b, where b is the scalar b[0].
func MatAddBroadcastB[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateBroadcast("matadd", I, J, len(b), len(a), len(c)))
	}

	s := b[0]
	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = a[i*J+j] + s
		}
	}
}

// MatSub computes C = A - B over equal-shape I×J matrices.
func MatSub[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateSame("matsub", I, J, len(a), len(b), len(c)))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = a[i*J+j] - b[i*J+j]
		}
	}
}

// MatSubBroadcastA computes C = a - B, where a is the scalar a[0].
func MatSubBroadcastA[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateBroadcast("matsub", I, J, len(a), len(b), len(c)))
	}

	s := a[0]
	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = s - b[i*J+j]
		}
	}
}

// MatSubBroadcastB computes C = A - b, where b is the scalar b[0].
func MatSubBroadcastB[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateBroadcast("matsub", I, J, len(b), len(a), len(c)))
	}

	s := b[0]
	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = a[i*J+j] - s
		}
	}
}

// MulCir computes the Hadamard product C = A ⊙ B.
func MulCir[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateSame("mulcir", I, J, len(a), len(b), len(c)))
	}

	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = a[i*J+j] * b[i*J+j]
		}
	}
}

// ScalarMul computes C = a · B, where a is the scalar a[0].
func ScalarMul[T Float](a, b, c []T, I, J int, sh Shifts) {
	if debug {
		mustHold(validateBroadcast("scalarmul", I, J, len(a), len(b), len(c)))
	}

	s := a[0]
	for i := 0; i < I; i++ {
		for j := 0; j < J; j++ {
			c[i*J+j] = s * b[i*J+j]
		}
	}
}
