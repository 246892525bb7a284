// Package cartridge implements the flat PRG-ROM mapping (mapper 0 / NROM)
// that is the one cartridge mapper this core supports; mappers beyond flat
// PRG mapping are out of scope. ROM file parsing (iNES headers, trainers,
// CHR banking) stays out of scope too; a Cartridge is built directly from a
// raw PRG byte slice.
package cartridge

import "fmt"

// prgBase is the start of the CPU-visible PRG address window, $8000-$FFFF.
const prgBase = 0x8000

// Cartridge maps a flat PRG-ROM image into the CPU's $8000-$FFFF window,
// mirroring a 16KiB image across both halves: $8000-$BFFF and $C000-$FFFF.
type Cartridge struct {
	prg []uint8
}

// New builds a Cartridge from a raw PRG-ROM image. prg must be 16KiB or
// 32KiB; anything else is almost certainly a parsing mistake upstream
// (iNES header not stripped, wrong file), so New reports it rather than
// silently mis-mapping.
func New(prg []uint8) (*Cartridge, error) {
	switch len(prg) {
	case 0x4000, 0x8000:
		return &Cartridge{prg: prg}, nil
	default:
		return nil, fmt.Errorf("cartridge: unsupported PRG size %d bytes (want 16384 or 32768)", len(prg))
	}
}

// PrgRead reads a byte from the PRG window, mirroring a 16KiB image across
// both halves of $8000-$FFFF. Reads below $8000 (the Bus routes all of
// $4020-$FFFF here) hit nothing NROM decodes and read as open bus.
func (c *Cartridge) PrgRead(addr uint16) uint8 {
	if addr < prgBase {
		return 0
	}
	return c.prg[int(addr-prgBase)%len(c.prg)]
}

// PrgWrite is a no-op for NROM: it has no mapper registers and no PRG-RAM
// in the window this core maps.
func (c *Cartridge) PrgWrite(addr uint16, v uint8) {}
