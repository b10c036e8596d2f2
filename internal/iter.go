// Package internal holds helpers shared by the maxhell packages.
package internal

import (
	"iter"
)

// IterSeq2Concat chains key/value iterators, in order. Later keys do not
// replace earlier ones; collecting into a map gives the last one.
func IterSeq2Concat[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, value := range seq {
				if !yield(key, value) {
					return
				}
			}
		}
	}
}
