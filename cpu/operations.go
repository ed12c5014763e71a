package cpu

// Operations return 1 when they can take the extra page-crossing cycle
// reported by the addressing mode.

func (c *CPU) adc() uint8 {
	c.fetch()
	c.addWithCarry(c.fetched)
	return 1
}

// sbc is adc of the one's complement.
func (c *CPU) sbc() uint8 {
	c.fetch()
	c.addWithCarry(^c.fetched)
	return 1
}

func (c *CPU) addWithCarry(value uint8) {
	sum := uint16(c.accumulator) + uint16(value) + uint16(c.getFlag(C))
	result := uint8(sum)
	c.setFlag(C, sum > 0xFF)
	c.setFlag(V, (c.accumulator^result)&(value^result)&0x80 != 0)
	c.accumulator = result
	c.setZN(result)
}

func (c *CPU) and() uint8 {
	c.fetch()
	c.accumulator &= c.fetched
	c.setZN(c.accumulator)
	return 1
}

func (c *CPU) eor() uint8 {
	c.fetch()
	c.accumulator ^= c.fetched
	c.setZN(c.accumulator)
	return 1
}

func (c *CPU) ora() uint8 {
	c.fetch()
	c.accumulator |= c.fetched
	c.setZN(c.accumulator)
	return 1
}

func (c *CPU) asl() uint8 {
	c.fetch()
	result := c.fetched << 1
	c.setFlag(C, c.fetched&0x80 != 0)
	c.setZN(result)
	c.store(result)
	return 0
}

func (c *CPU) lsr() uint8 {
	c.fetch()
	result := c.fetched >> 1
	c.setFlag(C, c.fetched&0x01 != 0)
	c.setZN(result)
	c.store(result)
	return 0
}

func (c *CPU) rol() uint8 {
	c.fetch()
	result := c.fetched<<1 | c.getFlag(C)
	c.setFlag(C, c.fetched&0x80 != 0)
	c.setZN(result)
	c.store(result)
	return 0
}

func (c *CPU) ror() uint8 {
	c.fetch()
	result := c.getFlag(C)<<7 | c.fetched>>1
	c.setFlag(C, c.fetched&0x01 != 0)
	c.setZN(result)
	c.store(result)
	return 0
}

// branch adds one cycle for a taken branch and another when it lands on a
// different page.
func (c *CPU) branch(taken bool) uint8 {
	if !taken {
		return 0
	}
	c.cycles++
	c.addrAbs = c.pc + c.addrRel
	if c.addrAbs&0xFF00 != c.pc&0xFF00 {
		c.cycles++
	}
	c.pc = c.addrAbs
	return 0
}

func (c *CPU) bcc() uint8 { return c.branch(c.getFlag(C) == 0) }
func (c *CPU) bcs() uint8 { return c.branch(c.getFlag(C) == 1) }
func (c *CPU) beq() uint8 { return c.branch(c.getFlag(Z) == 1) }
func (c *CPU) bne() uint8 { return c.branch(c.getFlag(Z) == 0) }
func (c *CPU) bmi() uint8 { return c.branch(c.getFlag(N) == 1) }
func (c *CPU) bpl() uint8 { return c.branch(c.getFlag(N) == 0) }
func (c *CPU) bvc() uint8 { return c.branch(c.getFlag(V) == 0) }
func (c *CPU) bvs() uint8 { return c.branch(c.getFlag(V) == 1) }

func (c *CPU) bit() uint8 {
	c.fetch()
	c.setFlag(Z, c.accumulator&c.fetched == 0)
	c.setFlag(N, c.fetched&0x80 != 0)
	c.setFlag(V, c.fetched&0x40 != 0)
	return 0
}

func (c *CPU) brk() uint8 {
	c.pc++
	c.setFlag(I, true)
	c.pushWord(c.pc)

	c.setFlag(B, true)
	c.push(c.status)
	c.setFlag(B, false)

	c.pc = c.readWord(irqVector)
	return 0
}

func (c *CPU) clc() uint8 { c.setFlag(C, false); return 0 }
func (c *CPU) cld() uint8 { c.setFlag(D, false); return 0 }
func (c *CPU) cli() uint8 { c.setFlag(I, false); return 0 }
func (c *CPU) clv() uint8 { c.setFlag(V, false); return 0 }
func (c *CPU) sec() uint8 { c.setFlag(C, true); return 0 }
func (c *CPU) sed() uint8 { c.setFlag(D, true); return 0 }
func (c *CPU) sei() uint8 { c.setFlag(I, true); return 0 }

func (c *CPU) compare(reg uint8) {
	c.fetch()
	c.setFlag(C, reg >= c.fetched)
	c.setZN(reg - c.fetched)
}

func (c *CPU) cmp() uint8 { c.compare(c.accumulator); return 1 }
func (c *CPU) cpx() uint8 { c.compare(c.xRegister); return 0 }
func (c *CPU) cpy() uint8 { c.compare(c.yRegister); return 0 }

func (c *CPU) dec() uint8 {
	c.fetch()
	result := c.fetched - 1
	c.write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func (c *CPU) inc() uint8 {
	c.fetch()
	result := c.fetched + 1
	c.write(c.addrAbs, result)
	c.setZN(result)
	return 0
}

func (c *CPU) dex() uint8 {
	c.xRegister--
	c.setZN(c.xRegister)
	return 0
}

func (c *CPU) dey() uint8 {
	c.yRegister--
	c.setZN(c.yRegister)
	return 0
}

func (c *CPU) inx() uint8 {
	c.xRegister++
	c.setZN(c.xRegister)
	return 0
}

func (c *CPU) iny() uint8 {
	c.yRegister++
	c.setZN(c.yRegister)
	return 0
}

func (c *CPU) jmp() uint8 {
	c.pc = c.addrAbs
	return 0
}

func (c *CPU) jsr() uint8 {
	c.pushWord(c.pc - 1)
	c.pc = c.addrAbs
	return 0
}

func (c *CPU) rts() uint8 {
	c.pc = c.popWord() + 1
	return 0
}

func (c *CPU) rti() uint8 {
	c.status = c.pop() &^ uint8(B|U)
	c.pc = c.popWord()
	return 0
}

func (c *CPU) lda() uint8 {
	c.fetch()
	c.accumulator = c.fetched
	c.setZN(c.accumulator)
	return 1
}

func (c *CPU) ldx() uint8 {
	c.fetch()
	c.xRegister = c.fetched
	c.setZN(c.xRegister)
	return 1
}

func (c *CPU) ldy() uint8 {
	c.fetch()
	c.yRegister = c.fetched
	c.setZN(c.yRegister)
	return 1
}

func (c *CPU) sta() uint8 {
	c.write(c.addrAbs, c.accumulator)
	return 0
}

func (c *CPU) stx() uint8 {
	c.write(c.addrAbs, c.xRegister)
	return 0
}

func (c *CPU) sty() uint8 {
	c.write(c.addrAbs, c.yRegister)
	return 0
}

func (c *CPU) pha() uint8 {
	c.push(c.accumulator)
	return 0
}

func (c *CPU) php() uint8 {
	c.push(c.status | uint8(B|U))
	c.setFlag(B, false)
	c.setFlag(U, false)
	return 0
}

func (c *CPU) pla() uint8 {
	c.accumulator = c.pop()
	c.setZN(c.accumulator)
	return 0
}

func (c *CPU) plp() uint8 {
	c.status = c.pop()
	c.setFlag(U, true)
	return 0
}

func (c *CPU) tax() uint8 {
	c.xRegister = c.accumulator
	c.setZN(c.xRegister)
	return 0
}

func (c *CPU) tay() uint8 {
	c.yRegister = c.accumulator
	c.setZN(c.yRegister)
	return 0
}

func (c *CPU) tsx() uint8 {
	c.xRegister = c.stkp
	c.setZN(c.xRegister)
	return 0
}

func (c *CPU) txa() uint8 {
	c.accumulator = c.xRegister
	c.setZN(c.accumulator)
	return 0
}

func (c *CPU) tya() uint8 {
	c.accumulator = c.yRegister
	c.setZN(c.accumulator)
	return 0
}

// txs leaves the flags alone.
func (c *CPU) txs() uint8 {
	c.stkp = c.xRegister
	return 0
}

// nop returns 1 for the absolute,X forms that pay for a page crossing.
func (c *CPU) nop() uint8 {
	switch c.opcode {
	case 0x1C, 0x3C, 0x5C, 0x7C, 0xDC, 0xFC:
		return 1
	}
	return 0
}

// xxx stands in for the unofficial opcodes.
func (c *CPU) xxx() uint8 {
	return 0
}
