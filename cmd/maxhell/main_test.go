package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxhell/maxhell/shader"
)

func TestParseDefine(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]int{}
	assert.NoError(parseDefine(defines, "BASE=0x2a"))
	assert.NoError(parseDefine(defines, "NEG=-4"))
	assert.Equal(map[string]int{"BASE": 42, "NEG": -4}, defines)

	assert.Error(parseDefine(defines, "BASE"))
	assert.Error(parseDefine(defines, "=1"))
	assert.Error(parseDefine(defines, "BASE=nope"))
}

func TestLoadDemo(t *testing.T) {
	assert := assert.New(t)

	prog, err := load("", nil, false)
	assert.NoError(err)

	image := shader.Assemble(prog.Words())
	assert.Equal(6*shader.BLOCK_SIZE, len(image))
}

func TestLoadScript(t *testing.T) {
	assert := assert.New(t)

	source := filepath.Join(t.TempDir(), "ret.star")
	err := os.WriteFile(source, []byte("GETLMEMBASE(dst=REG)\nRET()\n"), 0o644)
	assert.NoError(err)

	prog, err := load(source, map[string]int{"REG": 5}, false)
	assert.NoError(err)
	assert.Equal([]uint64{0xe2d0000000000005, 0xe32000000007000f}, prog.Words())

	_, err = load(filepath.Join(t.TempDir(), "missing.star"), nil, false)
	assert.Error(err)
}
