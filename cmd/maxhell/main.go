// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/maxhell/maxhell/script"
	"github.com/maxhell/maxhell/shader"
)

// load runs the shader script, or the built-in demo if source is empty.
func load(source string, defines map[string]int, verbose bool) (prog *script.Program, err error) {
	ld := &script.Loader{Verbose: verbose}
	for name, value := range defines {
		ld.Predefine(name, value)
	}

	if len(source) == 0 {
		return ld.Demo()
	}

	return ld.Load(source, nil)
}

// parseDefine parses a NAME=VALUE script constant.
func parseDefine(defines map[string]int, def string) (err error) {
	name, value, ok := strings.Cut(def, "=")
	if !ok || len(name) == 0 {
		return fmt.Errorf("%v: expected NAME=VALUE", def)
	}

	num, err := strconv.ParseInt(value, 0, 32)
	if err != nil {
		return
	}

	defines[name] = int(num)
	return
}

func main() {
	var output string
	var source string
	var verbose bool
	defines := map[string]int{}

	flag.StringVar(&output, "o", "", "shader image to write")
	flag.StringVar(&source, "s", "", ".star shader script (default: built-in demo)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "NAME=VALUE script constant, may be repeated", func(def string) error {
		return parseDefine(defines, def)
	})

	flag.Parse()

	if flag.NArg() != 0 {
		atexit.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(output) == 0 {
		atexit.Fatalf("%v: -o output is required", os.Args[0])
	}

	prog, err := load(source, defines, verbose)
	if err != nil {
		atexit.Fatal(err)
	}

	words := prog.Words()
	if verbose && len(words) > 0 {
		log.Printf("Instruction: 0x%x", words[len(words)-1])
	}

	// Encoding is complete before the image is created, so only a failed
	// write can leave it partial.
	ouf, err := os.Create(output)
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	complete := false
	atexit.Register(func() {
		ouf.Close()
		if !complete {
			os.Remove(output)
		}
	})

	asm := &shader.Assembler{Verbose: verbose}
	_, err = asm.Emit(ouf, words)
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	err = ouf.Sync()
	if err != nil {
		atexit.Fatalf("%v: %v", output, err)
	}

	complete = true
	atexit.Exit(0)
}
