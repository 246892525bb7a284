package mos6502

import "fmt"

// handlerFunc is the semantic operation bound to an opcode: a mnemonic
// closed over its addressing mode. It may mutate registers, memory, and
// (for control-flow mnemonics) PC directly; it reports any branch-taken /
// branch-page-cross bonus cycles via its return value.
type handlerFunc func(c *CPU, mode AddressingMode, op operand) (bonusCycles uint8)

// instruction is the immutable, per-opcode descriptor: the semantic
// operation bound to an addressing mode, how many bytes the instruction
// occupies (opcode included), how many base cycles it costs, and whether an indexed-addressing
// page cross adds one more. It is never mutated after the table is built.
type instruction struct {
	name      string
	mode      AddressingMode
	size      uint8
	cycles    uint8
	pageCross bool // only set for read-class instructions with indexed addressing
	handler   handlerFunc
}

func (i instruction) String() string {
	return fmt.Sprintf("{%s %s}", i.name, i.mode)
}

// opcodeTable is the dense 256-entry opcode -> instruction mapping. It is
// built once at package init and never mutated afterwards. Every entry not
// explicitly set below is an illegal/unofficial opcode and behaves as a
// 1-byte, 2-cycle NOP with no flag effects.
var opcodeTable [256]instruction

func set(op byte, name string, mode AddressingMode, size, cycles uint8, pageCross bool, h handlerFunc) {
	opcodeTable[op] = instruction{name: name, mode: mode, size: size, cycles: cycles, pageCross: pageCross, handler: h}
}

func init() {
	for i := range opcodeTable {
		opcodeTable[i] = instruction{name: "NOP", mode: Implied, size: 1, cycles: 2, handler: (*CPU).nop}
	}

	// ADC
	set(0x69, "ADC", Immediate, 2, 2, false, (*CPU).adc)
	set(0x65, "ADC", ZeroPage, 2, 3, false, (*CPU).adc)
	set(0x75, "ADC", ZeroPageX, 2, 4, false, (*CPU).adc)
	set(0x6D, "ADC", Absolute, 3, 4, false, (*CPU).adc)
	set(0x7D, "ADC", AbsoluteX, 3, 4, true, (*CPU).adc)
	set(0x79, "ADC", AbsoluteY, 3, 4, true, (*CPU).adc)
	set(0x61, "ADC", IndirectX, 2, 6, false, (*CPU).adc)
	set(0x71, "ADC", IndirectY, 2, 5, true, (*CPU).adc)

	// AND
	set(0x29, "AND", Immediate, 2, 2, false, (*CPU).and)
	set(0x25, "AND", ZeroPage, 2, 3, false, (*CPU).and)
	set(0x35, "AND", ZeroPageX, 2, 4, false, (*CPU).and)
	set(0x2D, "AND", Absolute, 3, 4, false, (*CPU).and)
	set(0x3D, "AND", AbsoluteX, 3, 4, true, (*CPU).and)
	set(0x39, "AND", AbsoluteY, 3, 4, true, (*CPU).and)
	set(0x21, "AND", IndirectX, 2, 6, false, (*CPU).and)
	set(0x31, "AND", IndirectY, 2, 5, true, (*CPU).and)

	// ASL
	set(0x0A, "ASL", Accumulator, 1, 2, false, (*CPU).asl)
	set(0x06, "ASL", ZeroPage, 2, 5, false, (*CPU).asl)
	set(0x16, "ASL", ZeroPageX, 2, 6, false, (*CPU).asl)
	set(0x0E, "ASL", Absolute, 3, 6, false, (*CPU).asl)
	set(0x1E, "ASL", AbsoluteX, 3, 7, false, (*CPU).asl)

	// Branches
	set(0x90, "BCC", Relative, 2, 2, false, (*CPU).bcc)
	set(0xB0, "BCS", Relative, 2, 2, false, (*CPU).bcs)
	set(0xF0, "BEQ", Relative, 2, 2, false, (*CPU).beq)
	set(0x30, "BMI", Relative, 2, 2, false, (*CPU).bmi)
	set(0xD0, "BNE", Relative, 2, 2, false, (*CPU).bne)
	set(0x10, "BPL", Relative, 2, 2, false, (*CPU).bpl)
	set(0x50, "BVC", Relative, 2, 2, false, (*CPU).bvc)
	set(0x70, "BVS", Relative, 2, 2, false, (*CPU).bvs)

	// BIT
	set(0x24, "BIT", ZeroPage, 2, 3, false, (*CPU).bit)
	set(0x2C, "BIT", Absolute, 3, 4, false, (*CPU).bit)

	// BRK
	set(0x00, "BRK", Implied, 1, 7, false, (*CPU).brk)

	// Flag ops
	set(0x18, "CLC", Implied, 1, 2, false, (*CPU).clc)
	set(0xD8, "CLD", Implied, 1, 2, false, (*CPU).cld)
	set(0x58, "CLI", Implied, 1, 2, false, (*CPU).cli)
	set(0xB8, "CLV", Implied, 1, 2, false, (*CPU).clv)
	set(0x38, "SEC", Implied, 1, 2, false, (*CPU).sec)
	set(0xF8, "SED", Implied, 1, 2, false, (*CPU).sed)
	set(0x78, "SEI", Implied, 1, 2, false, (*CPU).sei)

	// CMP/CPX/CPY
	set(0xC9, "CMP", Immediate, 2, 2, false, (*CPU).cmp)
	set(0xC5, "CMP", ZeroPage, 2, 3, false, (*CPU).cmp)
	set(0xD5, "CMP", ZeroPageX, 2, 4, false, (*CPU).cmp)
	set(0xCD, "CMP", Absolute, 3, 4, false, (*CPU).cmp)
	set(0xDD, "CMP", AbsoluteX, 3, 4, true, (*CPU).cmp)
	set(0xD9, "CMP", AbsoluteY, 3, 4, true, (*CPU).cmp)
	set(0xC1, "CMP", IndirectX, 2, 6, false, (*CPU).cmp)
	set(0xD1, "CMP", IndirectY, 2, 5, true, (*CPU).cmp)
	set(0xE0, "CPX", Immediate, 2, 2, false, (*CPU).cpx)
	set(0xE4, "CPX", ZeroPage, 2, 3, false, (*CPU).cpx)
	set(0xEC, "CPX", Absolute, 3, 4, false, (*CPU).cpx)
	set(0xC0, "CPY", Immediate, 2, 2, false, (*CPU).cpy)
	set(0xC4, "CPY", ZeroPage, 2, 3, false, (*CPU).cpy)
	set(0xCC, "CPY", Absolute, 3, 4, false, (*CPU).cpy)

	// DEC/DEX/DEY
	set(0xC6, "DEC", ZeroPage, 2, 5, false, (*CPU).dec)
	set(0xD6, "DEC", ZeroPageX, 2, 6, false, (*CPU).dec)
	set(0xCE, "DEC", Absolute, 3, 6, false, (*CPU).dec)
	set(0xDE, "DEC", AbsoluteX, 3, 7, false, (*CPU).dec)
	set(0xCA, "DEX", Implied, 1, 2, false, (*CPU).dex)
	set(0x88, "DEY", Implied, 1, 2, false, (*CPU).dey)

	// EOR
	set(0x49, "EOR", Immediate, 2, 2, false, (*CPU).eor)
	set(0x45, "EOR", ZeroPage, 2, 3, false, (*CPU).eor)
	set(0x55, "EOR", ZeroPageX, 2, 4, false, (*CPU).eor)
	set(0x4D, "EOR", Absolute, 3, 4, false, (*CPU).eor)
	set(0x5D, "EOR", AbsoluteX, 3, 4, true, (*CPU).eor)
	set(0x59, "EOR", AbsoluteY, 3, 4, true, (*CPU).eor)
	set(0x41, "EOR", IndirectX, 2, 6, false, (*CPU).eor)
	set(0x51, "EOR", IndirectY, 2, 5, true, (*CPU).eor)

	// INC/INX/INY
	set(0xE6, "INC", ZeroPage, 2, 5, false, (*CPU).inc)
	set(0xF6, "INC", ZeroPageX, 2, 6, false, (*CPU).inc)
	set(0xEE, "INC", Absolute, 3, 6, false, (*CPU).inc)
	set(0xFE, "INC", AbsoluteX, 3, 7, false, (*CPU).inc)
	set(0xE8, "INX", Implied, 1, 2, false, (*CPU).inx)
	set(0xC8, "INY", Implied, 1, 2, false, (*CPU).iny)

	// JMP/JSR
	set(0x4C, "JMP", Absolute, 3, 3, false, (*CPU).jmp)
	set(0x6C, "JMP", Indirect, 3, 5, false, (*CPU).jmp)
	set(0x20, "JSR", Absolute, 3, 6, false, (*CPU).jsr)

	// LDA/LDX/LDY
	set(0xA9, "LDA", Immediate, 2, 2, false, (*CPU).lda)
	set(0xA5, "LDA", ZeroPage, 2, 3, false, (*CPU).lda)
	set(0xB5, "LDA", ZeroPageX, 2, 4, false, (*CPU).lda)
	set(0xAD, "LDA", Absolute, 3, 4, false, (*CPU).lda)
	set(0xBD, "LDA", AbsoluteX, 3, 4, true, (*CPU).lda)
	set(0xB9, "LDA", AbsoluteY, 3, 4, true, (*CPU).lda)
	set(0xA1, "LDA", IndirectX, 2, 6, false, (*CPU).lda)
	set(0xB1, "LDA", IndirectY, 2, 5, true, (*CPU).lda)
	set(0xA2, "LDX", Immediate, 2, 2, false, (*CPU).ldx)
	set(0xA6, "LDX", ZeroPage, 2, 3, false, (*CPU).ldx)
	set(0xB6, "LDX", ZeroPageY, 2, 4, false, (*CPU).ldx)
	set(0xAE, "LDX", Absolute, 3, 4, false, (*CPU).ldx)
	set(0xBE, "LDX", AbsoluteY, 3, 4, true, (*CPU).ldx)
	set(0xA0, "LDY", Immediate, 2, 2, false, (*CPU).ldy)
	set(0xA4, "LDY", ZeroPage, 2, 3, false, (*CPU).ldy)
	set(0xB4, "LDY", ZeroPageX, 2, 4, false, (*CPU).ldy)
	set(0xAC, "LDY", Absolute, 3, 4, false, (*CPU).ldy)
	set(0xBC, "LDY", AbsoluteX, 3, 4, true, (*CPU).ldy)

	// LSR
	set(0x4A, "LSR", Accumulator, 1, 2, false, (*CPU).lsr)
	set(0x46, "LSR", ZeroPage, 2, 5, false, (*CPU).lsr)
	set(0x56, "LSR", ZeroPageX, 2, 6, false, (*CPU).lsr)
	set(0x4E, "LSR", Absolute, 3, 6, false, (*CPU).lsr)
	set(0x5E, "LSR", AbsoluteX, 3, 7, false, (*CPU).lsr)

	// NOP (official)
	set(0xEA, "NOP", Implied, 1, 2, false, (*CPU).nop)

	// ORA
	set(0x09, "ORA", Immediate, 2, 2, false, (*CPU).ora)
	set(0x05, "ORA", ZeroPage, 2, 3, false, (*CPU).ora)
	set(0x15, "ORA", ZeroPageX, 2, 4, false, (*CPU).ora)
	set(0x0D, "ORA", Absolute, 3, 4, false, (*CPU).ora)
	set(0x1D, "ORA", AbsoluteX, 3, 4, true, (*CPU).ora)
	set(0x19, "ORA", AbsoluteY, 3, 4, true, (*CPU).ora)
	set(0x01, "ORA", IndirectX, 2, 6, false, (*CPU).ora)
	set(0x11, "ORA", IndirectY, 2, 5, true, (*CPU).ora)

	// Stack
	set(0x48, "PHA", Implied, 1, 3, false, (*CPU).pha)
	set(0x08, "PHP", Implied, 1, 3, false, (*CPU).php)
	set(0x68, "PLA", Implied, 1, 4, false, (*CPU).pla)
	set(0x28, "PLP", Implied, 1, 4, false, (*CPU).plp)

	// ROL/ROR
	set(0x2A, "ROL", Accumulator, 1, 2, false, (*CPU).rol)
	set(0x26, "ROL", ZeroPage, 2, 5, false, (*CPU).rol)
	set(0x36, "ROL", ZeroPageX, 2, 6, false, (*CPU).rol)
	set(0x2E, "ROL", Absolute, 3, 6, false, (*CPU).rol)
	set(0x3E, "ROL", AbsoluteX, 3, 7, false, (*CPU).rol)
	set(0x6A, "ROR", Accumulator, 1, 2, false, (*CPU).ror)
	set(0x66, "ROR", ZeroPage, 2, 5, false, (*CPU).ror)
	set(0x76, "ROR", ZeroPageX, 2, 6, false, (*CPU).ror)
	set(0x6E, "ROR", Absolute, 3, 6, false, (*CPU).ror)
	set(0x7E, "ROR", AbsoluteX, 3, 7, false, (*CPU).ror)

	// RTI/RTS
	set(0x40, "RTI", Implied, 1, 6, false, (*CPU).rti)
	set(0x60, "RTS", Implied, 1, 6, false, (*CPU).rts)

	// SBC
	set(0xE9, "SBC", Immediate, 2, 2, false, (*CPU).sbc)
	set(0xE5, "SBC", ZeroPage, 2, 3, false, (*CPU).sbc)
	set(0xF5, "SBC", ZeroPageX, 2, 4, false, (*CPU).sbc)
	set(0xED, "SBC", Absolute, 3, 4, false, (*CPU).sbc)
	set(0xFD, "SBC", AbsoluteX, 3, 4, true, (*CPU).sbc)
	set(0xF9, "SBC", AbsoluteY, 3, 4, true, (*CPU).sbc)
	set(0xE1, "SBC", IndirectX, 2, 6, false, (*CPU).sbc)
	set(0xF1, "SBC", IndirectY, 2, 5, true, (*CPU).sbc)

	// STA/STX/STY (write-class: fixed cycles, no page-cross bonus)
	set(0x85, "STA", ZeroPage, 2, 3, false, (*CPU).sta)
	set(0x95, "STA", ZeroPageX, 2, 4, false, (*CPU).sta)
	set(0x8D, "STA", Absolute, 3, 4, false, (*CPU).sta)
	set(0x9D, "STA", AbsoluteX, 3, 5, false, (*CPU).sta)
	set(0x99, "STA", AbsoluteY, 3, 5, false, (*CPU).sta)
	set(0x81, "STA", IndirectX, 2, 6, false, (*CPU).sta)
	set(0x91, "STA", IndirectY, 2, 6, false, (*CPU).sta)
	set(0x86, "STX", ZeroPage, 2, 3, false, (*CPU).stx)
	set(0x96, "STX", ZeroPageY, 2, 4, false, (*CPU).stx)
	set(0x8E, "STX", Absolute, 3, 4, false, (*CPU).stx)
	set(0x84, "STY", ZeroPage, 2, 3, false, (*CPU).sty)
	set(0x94, "STY", ZeroPageX, 2, 4, false, (*CPU).sty)
	set(0x8C, "STY", Absolute, 3, 4, false, (*CPU).sty)

	// Transfers
	set(0xAA, "TAX", Implied, 1, 2, false, (*CPU).tax)
	set(0xA8, "TAY", Implied, 1, 2, false, (*CPU).tay)
	set(0xBA, "TSX", Implied, 1, 2, false, (*CPU).tsx)
	set(0x8A, "TXA", Implied, 1, 2, false, (*CPU).txa)
	set(0x9A, "TXS", Implied, 1, 2, false, (*CPU).txs)
	set(0x98, "TYA", Implied, 1, 2, false, (*CPU).tya)
}
