package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvorsen-dev/nescore/internal/cartridge"
	"github.com/halvorsen-dev/nescore/internal/ppu"
)

// fakeCPU is a minimal stand-in for mos6502.CPU, tracking only what the
// Bus needs: stall additions and a settable cycle count for DMA parity.
type fakeCPU struct {
	stall  uint16
	cycles uint64
}

func (f *fakeCPU) AddStall(n uint16) { f.stall += n }
func (f *fakeCPU) Cycles() uint64    { return f.cycles }

func newTestBus(t *testing.T) (*Bus, *fakeCPU) {
	t.Helper()
	prg := make([]uint8, 0x8000)
	cart, err := cartridge.New(prg)
	assert.NoError(t, err)

	b := New(ppu.New(nil), cart)
	fc := &fakeCPU{}
	b.AttachCPU(fc)
	return b, fc
}

func TestRAMMirroring(t *testing.T) {
	b, _ := newTestBus(t)

	b.Write8(0x0000, 0x42)
	assert.Equal(t, uint8(0x42), b.Read8(0x0800)) // mirrors every 2KiB
	assert.Equal(t, uint8(0x42), b.Read8(0x1000))
	assert.Equal(t, uint8(0x42), b.Read8(0x1800))
}

func TestPPURegisterMirroring(t *testing.T) {
	b, _ := newTestBus(t)

	// The register window repeats every 8 bytes through $3FFF; $200C and
	// $3FFC both route to OAMDATA ($2004's offset 4, mod 8).
	b.Write8(0x2003, 0x05) // OAMADDR = 5
	b.Write8(0x200C, 0x99) // mirror of OAMDATA: writes OAM[5] = 0x99
	b.Write8(0x2003, 0x05) // OAMADDR = 5 again
	assert.Equal(t, uint8(0x99), b.Read8(0x2004))
	assert.Equal(t, uint8(0x99), b.Read8(0x200C)) // mirror of $2004
}

func TestOAMDMAStallsAndCopies(t *testing.T) {
	b, fc := newTestBus(t)

	for i := 0; i < 256; i++ {
		b.Write8(uint16(0x0200+i&0x7FF), uint8(i)) // within mirrored RAM
	}

	fc.cycles = 4 // even: expect 513-cycle stall
	b.Write8(oamDMAPort, 0x02)
	assert.Equal(t, uint16(513), fc.stall)

	fc.stall = 0
	fc.cycles = 5 // odd: expect 514-cycle stall
	b.Write8(oamDMAPort, 0x02)
	assert.Equal(t, uint16(514), fc.stall)

	b.Write8(0x2003, 0x00)
	assert.Equal(t, uint8(0), b.Read8(0x2004))
	b.Write8(0x2003, 0x01)
	assert.Equal(t, uint8(1), b.Read8(0x2004))
}

func TestRead16BugWrapsWithinPage(t *testing.T) {
	b, _ := newTestBus(t)
	b.Write8(0x02FF, 0x80)
	b.Write8(0x0200, 0x40) // NOT $0300
	b.Write8(0x0300, 0xFF) // decoy

	assert.Equal(t, uint16(0x4080), b.Read16Bug(0x02FF))
}

func TestRead16NoSpecialWrap(t *testing.T) {
	b, _ := newTestBus(t)
	b.Write8(0x00FF, 0x34)
	b.Write8(0x0100, 0x12)
	assert.Equal(t, uint16(0x1234), b.Read16(0x00FF))
}

func TestCartridgeSpaceRoutesThrough(t *testing.T) {
	b, _ := newTestBus(t)
	assert.Equal(t, uint8(0), b.Read8(0x8000)) // zeroed PRG image
}
