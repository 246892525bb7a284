// Package bus implements the CPU-facing memory view: a byte-addressable
// 16-bit address space with RAM mirroring, a PPU register window, an
// APU/IO stub, and flat cartridge PRG space. It is the one concrete type
// that satisfies mos6502.Bus in this repository, wiring the CPU to the
// internal/ppu register file and an internal/cartridge mapper.
package bus

import "github.com/halvorsen-dev/nescore/internal/ppu"

const (
	ramSize      = 0x0800 // 2KiB built-in work RAM
	ramMirrorEnd = 0x1FFF
	ppuMirrorEnd = 0x3FFF
	ioEnd        = 0x401F
	cartStart    = 0x4020

	oamDMAPort = 0x4014
)

// Cartridge is the CPU-facing contract a cartridge mapper exposes above
// $4020. internal/cartridge.Cartridge satisfies it.
type Cartridge interface {
	PrgRead(addr uint16) uint8
	PrgWrite(addr uint16, v uint8)
}

// cpu is the narrow slice of mos6502.CPU the Bus needs: adding OAM-DMA
// stall cycles and knowing the running cycle count to pick 513 vs. 514.
type cpu interface {
	AddStall(n uint16)
	Cycles() uint64
}

// Bus is the memory view the CPU reads and writes through. It never
// assumes a flat backing array outside RAM: PPU-register and OAM-DMA
// addresses have side effects, and the cartridge above $4020 may (in a
// richer mapper) have its own behavior.
type Bus struct {
	ram  [ramSize]uint8
	ppu  *ppu.PPU
	cart Cartridge
	cpu  cpu
}

// New constructs a Bus wired to ppu and cart. AttachCPU must be called
// before the bus is used: the CPU needs a Bus at construction, but the
// Bus's OAM-DMA port needs the CPU, so the two are wired together in two
// steps.
func New(p *ppu.PPU, cart Cartridge) *Bus {
	return &Bus{ppu: p, cart: cart}
}

// AttachCPU completes the Bus<->CPU wiring; see New.
func (b *Bus) AttachCPU(c cpu) {
	b.cpu = c
}

// Read8 implements mos6502.Bus.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&(ramSize-1)]
	case addr <= ppuMirrorEnd:
		return b.ppu.ReadReg(0x2000 + (addr-0x2000)%8)
	case addr <= ioEnd:
		return 0 // APU/controller registers: out of scope, reads as open bus
	default:
		return b.cart.PrgRead(addr)
	}
}

// Write8 implements mos6502.Bus. $4014 (OAMDMA) copies 256 bytes from CPU
// page val<<8 into OAM and stalls the CPU 513 cycles, or 514 if the
// current CPU cycle is odd, matching hardware DMA alignment.
func (b *Bus) Write8(addr uint16, v uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&(ramSize-1)] = v
	case addr <= ppuMirrorEnd:
		b.ppu.WriteReg(0x2000+(addr-0x2000)%8, v)
	case addr == oamDMAPort:
		b.runOAMDMA(v)
	case addr <= ioEnd:
		// APU/controller registers: out of scope, writes discarded
	default:
		b.cart.PrgWrite(addr, v)
	}
}

func (b *Bus) runOAMDMA(page uint8) {
	base := uint16(page) << 8
	for i := 0; i < 256; i++ {
		b.ppu.WriteOAMByte(uint8(i), b.Read8(base+uint16(i)))
	}
	stall := uint16(513)
	if b.cpu != nil && b.cpu.Cycles()%2 != 0 {
		stall = 514
	}
	if b.cpu != nil {
		b.cpu.AddStall(stall)
	}
}

// Read16 implements mos6502.Bus: little-endian composition of two Read8s,
// no special wraparound.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

// Read16Bug implements mos6502.Bus: the "JMP indirect" page-boundary bug.
// The high byte is fetched from (addr&0xFF00)|((addr+1)&0x00FF) rather
// than addr+1, so an indirect pointer at a page boundary wraps within the
// page instead of crossing it.
func (b *Bus) Read16Bug(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hiAddr := (addr & 0xFF00) | ((addr + 1) & 0x00FF)
	hi := uint16(b.Read8(hiAddr))
	return lo | hi<<8
}
