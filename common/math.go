package common

// MaxAmount caps all fee and stake arithmetic. It is far above the total GAS
// supply, so clamping is only ever observable with nonsensical cost quotes or
// multipliers, where it keeps the accounting well-defined instead of faulting
// the VM.
const MaxAmount = 1<<63 - 1

// SatAdd returns a+b clamped to MaxAmount.
func SatAdd(a, b int) int {
	if a > MaxAmount-b {
		return MaxAmount
	}

	return a + b
}

// SatSub returns a-b floored at zero.
func SatSub(a, b int) int {
	if b > a {
		return 0
	}

	return a - b
}

// SatMul returns a*b clamped to MaxAmount. Arguments must be non-negative.
func SatMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}

	c := a * b
	if c/a != b || c > MaxAmount {
		return MaxAmount
	}

	return c
}
