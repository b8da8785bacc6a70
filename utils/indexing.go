package utils

import "fmt"

// Index is an integer index vector used for permutations and subsetting
type Index []int

func NewIndex(n int) (I Index) {
	I = make(Index, n)
	return
}

func NewRange(rmin, rmax int) (I Index) {
	I = make(Index, rmax-rmin+1)
	for i := range I {
		I[i] = i + rmin
	}
	return
}

func (I Index) Copy() (r Index) {
	r = make(Index, len(I))
	copy(r, I)
	return
}

func (I Index) Add(val int) (r Index) {
	r = make(Index, len(I))
	for i, ival := range I {
		r[i] = ival + val
	}
	return
}

func (I Index) Apply(f func(val int) int) (r Index) {
	r = make(Index, len(I))
	for i, val := range I {
		r[i] = f(val)
	}
	return
}

// IsPermutation verifies that I is a bijection on [0, len(I))
func (I Index) IsPermutation() bool {
	var (
		seen = make([]bool, len(I))
	)
	for _, val := range I {
		if val < 0 || val >= len(I) || seen[val] {
			return false
		}
		seen[val] = true
	}
	return true
}

// Inverse returns the inverse permutation, panics if I is not a bijection
func (I Index) Inverse() (r Index) {
	if !I.IsPermutation() {
		panic(fmt.Errorf("index of length %d is not a permutation", len(I)))
	}
	r = make(Index, len(I))
	for i, val := range I {
		r[val] = i
	}
	return
}
