package mos6502

// This file implements the 56 official mnemonics. Each handler has
// signature handlerFunc: it receives the resolved operand (computed before
// the handler runs, per the bus access ordering) and returns any
// branch-taken/branch-page-cross bonus cycles; everything else (the fixed
// page-cross-on-indexed-read bonus) is applied by CPU.execute.

// --- Load/Store ---

func (c *CPU) lda(mode AddressingMode, op operand) uint8 {
	c.A = c.operandValue(op)
	c.setZN(c.A)
	return 0
}

func (c *CPU) ldx(mode AddressingMode, op operand) uint8 {
	c.X = c.operandValue(op)
	c.setZN(c.X)
	return 0
}

func (c *CPU) ldy(mode AddressingMode, op operand) uint8 {
	c.Y = c.operandValue(op)
	c.setZN(c.Y)
	return 0
}

func (c *CPU) sta(mode AddressingMode, op operand) uint8 {
	c.bus.Write8(op.addr, c.A)
	return 0
}

func (c *CPU) stx(mode AddressingMode, op operand) uint8 {
	c.bus.Write8(op.addr, c.X)
	return 0
}

func (c *CPU) sty(mode AddressingMode, op operand) uint8 {
	c.bus.Write8(op.addr, c.Y)
	return 0
}

// --- Transfer ---

func (c *CPU) tax(mode AddressingMode, op operand) uint8 {
	c.X = c.A
	c.setZN(c.X)
	return 0
}

func (c *CPU) tay(mode AddressingMode, op operand) uint8 {
	c.Y = c.A
	c.setZN(c.Y)
	return 0
}

func (c *CPU) tsx(mode AddressingMode, op operand) uint8 {
	c.X = c.SP
	c.setZN(c.X)
	return 0
}

func (c *CPU) txa(mode AddressingMode, op operand) uint8 {
	c.A = c.X
	c.setZN(c.A)
	return 0
}

func (c *CPU) txs(mode AddressingMode, op operand) uint8 {
	c.SP = c.X
	return 0
}

func (c *CPU) tya(mode AddressingMode, op operand) uint8 {
	c.A = c.Y
	c.setZN(c.A)
	return 0
}

// --- Stack ---

func (c *CPU) pha(mode AddressingMode, op operand) uint8 {
	c.pushStack(c.A)
	return 0
}

func (c *CPU) php(mode AddressingMode, op operand) uint8 {
	// The 6502 always sets B (and U) in the pushed copy; the in-register
	// P is untouched.
	c.pushStack(c.P | FlagBreak | FlagUnused)
	return 0
}

func (c *CPU) pla(mode AddressingMode, op operand) uint8 {
	c.A = c.popStack()
	c.setZN(c.A)
	return 0
}

func (c *CPU) plp(mode AddressingMode, op operand) uint8 {
	c.P = c.popStatus()
	return 0
}

// --- Logic ---

func (c *CPU) and(mode AddressingMode, op operand) uint8 {
	c.A &= c.operandValue(op)
	c.setZN(c.A)
	return 0
}

func (c *CPU) ora(mode AddressingMode, op operand) uint8 {
	c.A |= c.operandValue(op)
	c.setZN(c.A)
	return 0
}

func (c *CPU) eor(mode AddressingMode, op operand) uint8 {
	c.A ^= c.operandValue(op)
	c.setZN(c.A)
	return 0
}

// --- Shift/Rotate: operate on A (Accumulator mode) or a memory cell ---

func (c *CPU) readModifyOperand(mode AddressingMode, op operand) uint8 {
	if mode == Accumulator {
		return c.A
	}
	return c.bus.Read8(op.addr)
}

func (c *CPU) writeModifyOperand(mode AddressingMode, op operand, v uint8) {
	if mode == Accumulator {
		c.A = v
		return
	}
	c.bus.Write8(op.addr, v)
}

func (c *CPU) asl(mode AddressingMode, op operand) uint8 {
	v := c.readModifyOperand(mode, op)
	result := v << 1
	c.writeModifyOperand(mode, op, result)
	c.setFlag(FlagCarry, v&0x80 != 0)
	c.setZN(result)
	return 0
}

func (c *CPU) lsr(mode AddressingMode, op operand) uint8 {
	v := c.readModifyOperand(mode, op)
	result := v >> 1
	c.writeModifyOperand(mode, op, result)
	c.setFlag(FlagCarry, v&0x01 != 0)
	c.setZN(result)
	return 0
}

func (c *CPU) rol(mode AddressingMode, op operand) uint8 {
	v := c.readModifyOperand(mode, op)
	carryIn := c.P & FlagCarry
	result := (v << 1) | carryIn
	c.writeModifyOperand(mode, op, result)
	c.setFlag(FlagCarry, v&0x80 != 0)
	c.setZN(result)
	return 0
}

func (c *CPU) ror(mode AddressingMode, op operand) uint8 {
	v := c.readModifyOperand(mode, op)
	carryIn := (c.P & FlagCarry) << 7
	result := (v >> 1) | carryIn
	c.writeModifyOperand(mode, op, result)
	c.setFlag(FlagCarry, v&0x01 != 0)
	c.setZN(result)
	return 0
}

// --- Arithmetic: ADC/SBC share the same add-with-carry core. SBC feeds in
// M XOR 0xFF; decimal mode (D) is never consulted. ---

func (c *CPU) addWithCarry(m uint8) {
	carryIn := uint16(c.P & FlagCarry)
	sum := uint16(c.A) + uint16(m) + carryIn
	result := uint8(sum)

	c.setFlag(FlagCarry, sum > 0xFF)
	c.setFlag(FlagOverflow, (c.A^m)&0x80 == 0 && (c.A^result)&0x80 != 0)
	c.A = result
	c.setZN(c.A)
}

func (c *CPU) adc(mode AddressingMode, op operand) uint8 {
	c.addWithCarry(c.operandValue(op))
	return 0
}

func (c *CPU) sbc(mode AddressingMode, op operand) uint8 {
	c.addWithCarry(c.operandValue(op) ^ 0xFF)
	return 0
}

// --- Compare ---

func (c *CPU) compare(reg, m uint8) {
	c.setFlag(FlagCarry, reg >= m)
	c.setZN(reg - m)
}

func (c *CPU) cmp(mode AddressingMode, op operand) uint8 {
	c.compare(c.A, c.operandValue(op))
	return 0
}

func (c *CPU) cpx(mode AddressingMode, op operand) uint8 {
	c.compare(c.X, c.operandValue(op))
	return 0
}

func (c *CPU) cpy(mode AddressingMode, op operand) uint8 {
	c.compare(c.Y, c.operandValue(op))
	return 0
}

// --- Increment/Decrement ---

func (c *CPU) inc(mode AddressingMode, op operand) uint8 {
	v := c.bus.Read8(op.addr) + 1
	c.bus.Write8(op.addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) dec(mode AddressingMode, op operand) uint8 {
	v := c.bus.Read8(op.addr) - 1
	c.bus.Write8(op.addr, v)
	c.setZN(v)
	return 0
}

func (c *CPU) inx(mode AddressingMode, op operand) uint8 {
	c.X++
	c.setZN(c.X)
	return 0
}

func (c *CPU) iny(mode AddressingMode, op operand) uint8 {
	c.Y++
	c.setZN(c.Y)
	return 0
}

func (c *CPU) dex(mode AddressingMode, op operand) uint8 {
	c.X--
	c.setZN(c.X)
	return 0
}

func (c *CPU) dey(mode AddressingMode, op operand) uint8 {
	c.Y--
	c.setZN(c.Y)
	return 0
}

// --- Bit test ---

func (c *CPU) bit(mode AddressingMode, op operand) uint8 {
	m := c.operandValue(op)
	result := c.A & m
	c.setFlag(FlagZero, result == 0)
	c.setFlag(FlagOverflow, m&FlagOverflow != 0)
	c.setFlag(FlagNegative, m&FlagNegative != 0)
	return 0
}

// --- Branches: Relative addressing already resolved op.addr to the
// target and op.pageCrossed against the post-branch-instruction PC. ---

func (c *CPU) branch(taken bool, op operand) uint8 {
	if !taken {
		return 0
	}
	c.setPC(op.addr)
	if op.pageCrossed {
		return 2
	}
	return 1
}

func (c *CPU) bcc(mode AddressingMode, op operand) uint8 { return c.branch(!c.flagSet(FlagCarry), op) }
func (c *CPU) bcs(mode AddressingMode, op operand) uint8 { return c.branch(c.flagSet(FlagCarry), op) }
func (c *CPU) beq(mode AddressingMode, op operand) uint8 { return c.branch(c.flagSet(FlagZero), op) }
func (c *CPU) bne(mode AddressingMode, op operand) uint8 { return c.branch(!c.flagSet(FlagZero), op) }
func (c *CPU) bmi(mode AddressingMode, op operand) uint8 {
	return c.branch(c.flagSet(FlagNegative), op)
}
func (c *CPU) bpl(mode AddressingMode, op operand) uint8 {
	return c.branch(!c.flagSet(FlagNegative), op)
}
func (c *CPU) bvc(mode AddressingMode, op operand) uint8 {
	return c.branch(!c.flagSet(FlagOverflow), op)
}
func (c *CPU) bvs(mode AddressingMode, op operand) uint8 {
	return c.branch(c.flagSet(FlagOverflow), op)
}

// --- Jumps ---

func (c *CPU) jmp(mode AddressingMode, op operand) uint8 {
	c.setPC(op.addr)
	return 0
}

// --- Subroutine ---

func (c *CPU) jsr(mode AddressingMode, op operand) uint8 {
	// Push the address of the last byte of the JSR instruction (PC+2),
	// not PC+3; RTS adds 1 back to land on the instruction after JSR.
	c.pushAddress(c.PC + 2)
	c.setPC(op.addr)
	return 0
}

func (c *CPU) rts(mode AddressingMode, op operand) uint8 {
	c.setPC(c.popAddress() + 1)
	return 0
}

// --- Interrupts ---

func (c *CPU) rti(mode AddressingMode, op operand) uint8 {
	c.P = c.popStatus()
	c.setPC(c.popAddress())
	return 0
}

func (c *CPU) brk(mode AddressingMode, op operand) uint8 {
	// BRK is a 2-byte instruction: the byte after the opcode is a padding
	// byte, skipped by software but still accounted for in the pushed
	// return address.
	c.pushAddress(c.PC + 2)
	c.pushStack(c.P | FlagBreak | FlagUnused)
	c.flagsOn(FlagInterruptDisable)
	c.setPC(c.bus.Read16(vectorIRQ))
	return 0
}

// --- Flag ops ---

func (c *CPU) clc(mode AddressingMode, op operand) uint8 { c.flagsOff(FlagCarry); return 0 }
func (c *CPU) sec(mode AddressingMode, op operand) uint8 { c.flagsOn(FlagCarry); return 0 }
func (c *CPU) cli(mode AddressingMode, op operand) uint8 { c.flagsOff(FlagInterruptDisable); return 0 }
func (c *CPU) sei(mode AddressingMode, op operand) uint8 { c.flagsOn(FlagInterruptDisable); return 0 }
func (c *CPU) clv(mode AddressingMode, op operand) uint8 { c.flagsOff(FlagOverflow); return 0 }
func (c *CPU) cld(mode AddressingMode, op operand) uint8 { c.flagsOff(FlagDecimal); return 0 }
func (c *CPU) sed(mode AddressingMode, op operand) uint8 { c.flagsOn(FlagDecimal); return 0 }

// --- NOP (and every illegal/unofficial opcode) ---

func (c *CPU) nop(mode AddressingMode, op operand) uint8 { return 0 }
