package cartridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(make([]uint8, 100))
	assert.Error(t, err)
}

func Test32KPassesThrough(t *testing.T) {
	prg := make([]uint8, 0x8000)
	prg[0] = 0xAA
	prg[0x7FFF] = 0xBB

	c, err := New(prg)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0xAA), c.PrgRead(0x8000))
	assert.Equal(t, uint8(0xBB), c.PrgRead(0xFFFF))
}

func Test16KMirrorsAcrossBothHalves(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0x11
	prg[0x3FFF] = 0x22

	c, err := New(prg)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0x11), c.PrgRead(0x8000))
	assert.Equal(t, uint8(0x22), c.PrgRead(0xBFFF))
	assert.Equal(t, uint8(0x11), c.PrgRead(0xC000))
	assert.Equal(t, uint8(0x22), c.PrgRead(0xFFFF))
}

func TestReadsBelowWindowAreOpenBus(t *testing.T) {
	prg := make([]uint8, 0x4000)
	for i := range prg {
		prg[i] = 0xEE
	}
	c, err := New(prg)
	assert.NoError(t, err)

	assert.Equal(t, uint8(0), c.PrgRead(0x4020))
	assert.Equal(t, uint8(0), c.PrgRead(0x7FFF))
}

func TestPrgWriteIsANoOp(t *testing.T) {
	prg := make([]uint8, 0x4000)
	prg[0] = 0x11
	c, err := New(prg)
	assert.NoError(t, err)

	c.PrgWrite(0x8000, 0x99)
	assert.Equal(t, uint8(0x11), c.PrgRead(0x8000))
}
