// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package shader assembles encoded instruction words into a shader image.
//
// The image is a sequence of 32-byte blocks. Each block holds a scheduling
// control word followed by three instruction words, all little-endian. The
// last block is filled with NOP instructions.
package shader

import (
	"encoding/binary"
	"io"
	"iter"
	"log"

	"github.com/maxhell/maxhell/maxwell"
)

const (
	BLOCK_SIZE  = 32 // Bytes per block.
	BLOCK_WORDS = 3  // Instruction words per block.
	WORD_SIZE   = 8  // Bytes per word.

	// SCHED_STUB is the scheduling control word emitted for every block. It
	// stands in for real latency and dependency hints.
	SCHED_STUB = uint64(0x1f8000fc0007e0)
)

// Block is the instruction words of one block, without its control word.
type Block [BLOCK_WORDS]uint64

// Scheduler computes the scheduling control word of a block.
type Scheduler interface {
	Control(block Block) uint64
}

// StubScheduler returns SCHED_STUB for every block.
type StubScheduler struct{}

func (StubScheduler) Control(block Block) uint64 {
	return SCHED_STUB
}

// PADDING is the instruction filling the last block: a NOP that always
// executes.
var PADDING = padding()

func padding() uint64 {
	word, err := maxwell.Nop{Predicate: maxwell.Always, CC: maxwell.CC_T}.Encode()
	if err != nil {
		panic(err)
	}
	return word
}

// Size returns the image size in bytes for a number of instruction words.
func Size(words int) int {
	blocks := (words + BLOCK_WORDS - 1) / BLOCK_WORDS
	return blocks * BLOCK_SIZE
}

// Blocks returns an iterator over the blocks of words, keyed by their byte
// offset in the image. The last block is padded with PADDING.
func Blocks(words []uint64) iter.Seq2[int, Block] {
	return func(yield func(offset int, block Block) bool) {
		for n := 0; n < len(words); n += BLOCK_WORDS {
			block := Block{PADDING, PADDING, PADDING}
			copy(block[:], words[n:])
			if !yield(n/BLOCK_WORDS*BLOCK_SIZE, block) {
				return
			}
		}
	}
}

// Assembler lays out instruction words as a shader image.
type Assembler struct {
	Verbose   bool      // If set, logs every word of the image.
	Scheduler Scheduler // Scheduling control source; StubScheduler if nil.
}

func (asm *Assembler) scheduler() Scheduler {
	if asm.Scheduler == nil {
		return StubScheduler{}
	}
	return asm.Scheduler
}

// Assemble returns the image of the words. The words are not inspected.
func (asm *Assembler) Assemble(words []uint64) (image []byte) {
	sched := asm.scheduler()

	image = make([]byte, 0, Size(len(words)))
	for offset, block := range Blocks(words) {
		control := sched.Control(block)
		if asm.Verbose {
			log.Printf("%04x: 0x%016x (sched)", offset, control)
		}
		image = binary.LittleEndian.AppendUint64(image, control)

		for n, word := range block {
			if asm.Verbose {
				log.Printf("%04x: %v", offset+(n+1)*WORD_SIZE, maxwell.Listing(word))
			}
			image = binary.LittleEndian.AppendUint64(image, word)
		}
	}

	return
}

// Emit assembles the words and writes the image to w in a single write.
// Nothing is written if the image is empty.
func (asm *Assembler) Emit(w io.Writer, words []uint64) (n int, err error) {
	image := asm.Assemble(words)
	if len(image) == 0 {
		return
	}

	n, err = w.Write(image)
	if err == nil && n != len(image) {
		err = io.ErrShortWrite
	}
	if err != nil {
		err = ErrWrite{Offset: n, Err: err}
	}

	return
}

// Assemble returns the image of the words using the stub scheduler.
func Assemble(words []uint64) []byte {
	asm := &Assembler{}
	return asm.Assemble(words)
}
