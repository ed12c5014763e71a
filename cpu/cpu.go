// Package cpu is a cycle-counted 6502 core, the instruction processor that
// the scheduler advances one cycle at a time.
package cpu

type Bus interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
	// Peek reads without side effects.
	Peek(addr uint16) uint8
}

type Flag uint8

const (
	C = Flag(1 << 0)
	Z = Flag(1 << 1)
	I = Flag(1 << 2)
	D = Flag(1 << 3)
	B = Flag(1 << 4)
	U = Flag(1 << 5)
	V = Flag(1 << 6)
	N = Flag(1 << 7)
)

const (
	stackBase   = 0x0100
	nmiVector   = 0xFFFA
	resetVector = 0xFFFC
	irqVector   = 0xFFFE
)

type CPU struct {
	accumulator uint8
	xRegister   uint8
	yRegister   uint8
	stkp        uint8
	pc          uint16
	status      uint8

	fetched uint8
	addrAbs uint16
	addrRel uint16
	opcode  uint8
	current *opcode
	cycles  uint8
	total   uint64

	bus Bus
}

// Registers is a snapshot of the programmer-visible state.
type Registers struct {
	A, X, Y uint8
	SP      uint8
	PC      uint16
	Status  uint8
	Cycles  uint64
}

func New(bus Bus) *CPU {
	return &CPU{bus: bus, current: &lookup[0xEA]}
}

// Reset loads the program counter from the reset vector. The reset sequence
// occupies the next eight cycles.
func (c *CPU) Reset() {
	c.pc = c.readWord(resetVector)

	c.accumulator = 0
	c.xRegister = 0
	c.yRegister = 0
	c.stkp = 0xFD
	c.status = uint8(U)

	c.addrRel = 0
	c.addrAbs = 0
	c.fetched = 0

	c.cycles = 8
}

// Step advances the processor by one cycle and reports whether the current
// instruction still has cycles left. A false result marks an instruction
// boundary.
func (c *CPU) Step() bool {
	if c.cycles == 0 {
		c.opcode = c.read(c.pc)
		c.current = &lookup[c.opcode]
		c.setFlag(U, true)
		c.pc++

		c.cycles = c.current.Cycles
		extraAddr := c.current.addrmode(c)
		extraOp := c.current.operate(c)
		c.cycles += extraAddr & extraOp
		c.setFlag(U, true)
	}
	c.cycles--
	c.total++
	return c.cycles != 0
}

// RaiseNMI services a non-maskable interrupt. It is meant to be called at an
// instruction boundary.
func (c *CPU) RaiseNMI() {
	c.interrupt(nmiVector)
	c.cycles = 8
}

// IRQ services a maskable interrupt unless the I flag is set.
func (c *CPU) IRQ() {
	if c.getFlag(I) == 0 {
		c.interrupt(irqVector)
		c.cycles = 7
	}
}

func (c *CPU) interrupt(vector uint16) {
	c.pushWord(c.pc)
	c.setFlag(B, false)
	c.setFlag(U, true)
	c.setFlag(I, true)
	c.push(c.status)
	c.pc = c.readWord(vector)
}

func (c *CPU) Registers() Registers {
	return Registers{
		A:      c.accumulator,
		X:      c.xRegister,
		Y:      c.yRegister,
		SP:     c.stkp,
		PC:     c.pc,
		Status: c.status,
		Cycles: c.total,
	}
}

func (c *CPU) getFlag(flag Flag) uint8 {
	if c.status&uint8(flag) != 0 {
		return 1
	}
	return 0
}

func (c *CPU) setFlag(flag Flag, v bool) {
	if v {
		c.status |= uint8(flag)
	} else {
		c.status &^= uint8(flag)
	}
}

func (c *CPU) setZN(v uint8) {
	c.setFlag(Z, v == 0)
	c.setFlag(N, v&0x80 != 0)
}

func (c *CPU) read(addr uint16) uint8 {
	return c.bus.Read(addr)
}

func (c *CPU) write(addr uint16, data uint8) {
	c.bus.Write(addr, data)
}

func (c *CPU) readWord(addr uint16) uint16 {
	return uint16(c.read(addr)) | uint16(c.read(addr+1))<<8
}

func (c *CPU) push(v uint8) {
	c.write(stackBase+uint16(c.stkp), v)
	c.stkp--
}

func (c *CPU) pop() uint8 {
	c.stkp++
	return c.read(stackBase + uint16(c.stkp))
}

func (c *CPU) pushWord(v uint16) {
	c.push(uint8(v >> 8))
	c.push(uint8(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	return lo | uint16(c.pop())<<8
}

// fetch loads the operand. Implied instructions operate on the accumulator.
func (c *CPU) fetch() uint8 {
	if !c.current.implied {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// store writes a read-modify-write result back to where fetch found it.
func (c *CPU) store(v uint8) {
	if c.current.implied {
		c.accumulator = v
		return
	}
	c.write(c.addrAbs, v)
}
