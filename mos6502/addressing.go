package mos6502

// AddressingMode names the operand-resolution strategy bound to an opcode.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
type AddressingMode uint8

const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndirectX // Indexed Indirect: (zp,X)
	IndirectY // Indirect Indexed: (zp),Y
	Relative
)

var modeNames = [...]string{
	Implied:     "IMPLIED",
	Accumulator: "ACCUMULATOR",
	Immediate:   "IMMEDIATE",
	ZeroPage:    "ZERO_PAGE",
	ZeroPageX:   "ZERO_PAGE_X",
	ZeroPageY:   "ZERO_PAGE_Y",
	Absolute:    "ABSOLUTE",
	AbsoluteX:   "ABSOLUTE_X",
	AbsoluteY:   "ABSOLUTE_Y",
	Indirect:    "INDIRECT",
	IndirectX:   "INDIRECT_X",
	IndirectY:   "INDIRECT_Y",
	Relative:    "RELATIVE",
}

func (m AddressingMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "UNKNOWN"
}

// samePage reports whether a and b share a 256-byte page.
func samePage(a, b uint16) bool {
	return a&0xFF00 == b&0xFF00
}

// operand is the resolved argument of an addressing-mode lookup: either an
// effective 16-bit address, or (for Implied/Accumulator) nothing at all.
// Immediate resolves to the address of the operand byte itself, so a plain
// bus.Read8(addr) yields the immediate value.
type operand struct {
	addr        uint16
	pageCrossed bool
}

// resolveOperand computes the effective address for mode, given p - the bus
// address of the first operand byte (i.e. PC+1 relative to the opcode). It
// performs whatever bus reads the mode requires; it never writes.
func resolveOperand(bus Bus, mode AddressingMode, p uint16, x, y uint8) operand {
	switch mode {
	case Implied, Accumulator:
		return operand{}
	case Immediate:
		return operand{addr: p}
	case ZeroPage:
		return operand{addr: uint16(bus.Read8(p))}
	case ZeroPageX:
		return operand{addr: uint16(bus.Read8(p) + x)}
	case ZeroPageY:
		return operand{addr: uint16(bus.Read8(p) + y)}
	case Absolute:
		return operand{addr: bus.Read16(p)}
	case AbsoluteX:
		base := bus.Read16(p)
		addr := base + uint16(x)
		return operand{addr: addr, pageCrossed: !samePage(base, addr)}
	case AbsoluteY:
		base := bus.Read16(p)
		addr := base + uint16(y)
		return operand{addr: addr, pageCrossed: !samePage(base, addr)}
	case Indirect:
		return operand{addr: bus.Read16Bug(bus.Read16(p))}
	case IndirectX:
		ptr := uint16(bus.Read8(p) + x)
		lo := uint16(bus.Read8(ptr))
		hi := uint16(bus.Read8((ptr + 1) & 0xFF))
		return operand{addr: lo | hi<<8}
	case IndirectY:
		ptr := uint16(bus.Read8(p))
		lo := uint16(bus.Read8(ptr))
		hi := uint16(bus.Read8((ptr + 1) & 0xFF))
		base := lo | hi<<8
		addr := base + uint16(y)
		return operand{addr: addr, pageCrossed: !samePage(base, addr)}
	case Relative:
		pcAfter := p + 1
		target := pcAfter + uint16(int8(bus.Read8(p)))
		return operand{addr: target, pageCrossed: !samePage(target, pcAfter)}
	default:
		panic("mos6502: unknown addressing mode")
	}
}
