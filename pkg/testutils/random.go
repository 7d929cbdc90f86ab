package testutils

import "math/rand/v2"

// RandMapKey picks a key of m uniformly. m must not be empty.
func RandMapKey[K comparable, V any](r *rand.Rand, m map[K]V) K {
	skip := r.IntN(len(m))
	var key K
	for key = range m {
		if skip == 0 {
			break
		}
		skip--
	}
	return key
}

// WeightedOp is an operation enum whose values double as selection weights.
type WeightedOp interface {
	~uint8 | ~uint16 | ~uint32 | ~int
}

// RandWeightedOp picks one of ops with probability proportional to its value.
func RandWeightedOp[T WeightedOp](r *rand.Rand, ops []T) T {
	cumulative := make([]int, len(ops))
	sum := 0
	for i, op := range ops {
		sum += int(op)
		cumulative[i] = sum
	}

	pick := r.IntN(sum)
	for i, bound := range cumulative {
		if pick < bound {
			return ops[i]
		}
	}
	return ops[len(ops)-1]
}

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// RandString returns n random alphanumeric characters.
func RandString(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[r.IntN(len(alphanumeric))]
	}
	return string(b)
}
