package cpu

// Each addressing mode leaves the effective address in addrAbs (or addrRel
// for branches) and returns 1 when crossing a page may cost an extra cycle.

func (c *CPU) imp() uint8 {
	c.fetched = c.accumulator
	return 0
}

func (c *CPU) imm() uint8 {
	c.addrAbs = c.pc
	c.pc++
	return 0
}

func (c *CPU) zeroPage(offset uint8) uint8 {
	c.addrAbs = uint16(c.read(c.pc) + offset)
	c.pc++
	return 0
}

func (c *CPU) zp0() uint8 { return c.zeroPage(0) }
func (c *CPU) zpx() uint8 { return c.zeroPage(c.xRegister) }
func (c *CPU) zpy() uint8 { return c.zeroPage(c.yRegister) }

func (c *CPU) rel() uint8 {
	c.addrRel = uint16(int8(c.read(c.pc)))
	c.pc++
	return 0
}

func (c *CPU) absolute(offset uint8) uint8 {
	base := c.readWord(c.pc)
	c.pc += 2
	c.addrAbs = base + uint16(offset)
	if c.addrAbs&0xFF00 != base&0xFF00 {
		return 1
	}
	return 0
}

func (c *CPU) abs() uint8 { return c.absolute(0) }
func (c *CPU) abx() uint8 { return c.absolute(c.xRegister) }
func (c *CPU) aby() uint8 { return c.absolute(c.yRegister) }

// ind reproduces the page-wrap bug of JMP ($xxFF).
func (c *CPU) ind() uint8 {
	ptr := c.readWord(c.pc)
	c.pc += 2

	hiAddr := ptr + 1
	if ptr&0x00FF == 0x00FF {
		hiAddr = ptr & 0xFF00
	}
	c.addrAbs = uint16(c.read(hiAddr))<<8 | uint16(c.read(ptr))
	return 0
}

func (c *CPU) izx() uint8 {
	t := c.read(c.pc) + c.xRegister
	c.pc++

	lo := uint16(c.read(uint16(t)))
	hi := uint16(c.read(uint16(t + 1)))
	c.addrAbs = hi<<8 | lo
	return 0
}

func (c *CPU) izy() uint8 {
	t := c.read(c.pc)
	c.pc++

	lo := uint16(c.read(uint16(t)))
	hi := uint16(c.read(uint16(t + 1)))
	c.addrAbs = (hi<<8 | lo) + uint16(c.yRegister)
	if c.addrAbs&0xFF00 != hi<<8 {
		return 1
	}
	return 0
}
