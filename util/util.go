package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// Mod is the euclidean remainder, always in [0, m) for m > 0.
func Mod[A constraints.Integer](n A, m A) A {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

func Min[A constraints.Ordered](num1 A, num2 A) A {
	if num1 > num2 {
		return num2
	}
	return num1
}

func Max[A constraints.Ordered](num1 A, num2 A) A {
	if num1 < num2 {
		return num2
	}
	return num1
}

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	return Max(lo, Min(v, hi))
}

// GetKeys returns the map keys in ascending order.
func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

func Contains[A comparable](items []A, v A) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
