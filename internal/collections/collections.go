// Copyright 2026 The GoCheck Authors. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package collections provides small functional helpers over slices and a
// generic Set: the options parser uses the slice helpers to split
// comma-separated flag lists, and the directive parser uses Set to
// deduplicate prefixes.
package collections

import (
	"iter"
	"slices"
)

// MapSlice applies fn to each element of s and returns the transformed slice.
func MapSlice[TSlice ~[]T, T, V any](s TSlice, fn func(T) V) []V {
	return slices.AppendSeq(make([]V, 0, len(s)), mapSeq(slices.Values(s), fn))
}

// FilterSlice returns a new slice containing only the elements of s for which
// predicate returns true.
func FilterSlice[TSlice ~[]T, T any](s TSlice, predicate func(T) bool) TSlice {
	return slices.AppendSeq(make(TSlice, 0, len(s)), filterSeq(slices.Values(s), predicate))
}

// FilterMapSlice applies fn to each element of s, keeping only the values for
// which fn reports ok.
func FilterMapSlice[TSlice ~[]T, T, V any](s TSlice, fn func(T) (V, bool)) []V {
	out := make([]V, 0, len(s))
	for _, t := range s {
		if v, ok := fn(t); ok {
			out = append(out, v)
		}
	}
	return out
}

func mapSeq[T, V any](seq iter.Seq[T], fn func(T) V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for t := range seq {
			if !yield(fn(t)) {
				return
			}
		}
	}
}

func filterSeq[T any](seq iter.Seq[T], predicate func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for elem := range seq {
			if predicate(elem) && !yield(elem) {
				return
			}
		}
	}
}
