package cpu

import "fmt"

type DisassembledInstruction struct {
	Addr uint16
	Text string
	Next uint16
}

// Disassemble decodes the instructions between start and stop inclusive
// using side-effect free bus reads.
func (c *CPU) Disassemble(start, stop uint16) []DisassembledInstruction {
	var lines []DisassembledInstruction
	addr := uint32(start)
	for addr <= uint32(stop) {
		lineAddr := uint16(addr)
		in := lookup[c.bus.Peek(lineAddr)]
		addr++

		operand := func() uint8 {
			v := c.bus.Peek(uint16(addr))
			addr++
			return v
		}
		word := func() uint16 {
			lo := uint16(operand())
			return uint16(operand())<<8 | lo
		}

		var text string
		switch in.AddrMode {
		case "IMP":
			text = in.Name
		case "IMM":
			text = fmt.Sprintf("%s #$%02X", in.Name, operand())
		case "ZP0":
			text = fmt.Sprintf("%s $%02X", in.Name, operand())
		case "ZPX":
			text = fmt.Sprintf("%s $%02X, X", in.Name, operand())
		case "ZPY":
			text = fmt.Sprintf("%s $%02X, Y", in.Name, operand())
		case "IZX":
			text = fmt.Sprintf("%s ($%02X, X)", in.Name, operand())
		case "IZY":
			text = fmt.Sprintf("%s ($%02X), Y", in.Name, operand())
		case "ABS":
			text = fmt.Sprintf("%s $%04X", in.Name, word())
		case "ABX":
			text = fmt.Sprintf("%s $%04X, X", in.Name, word())
		case "ABY":
			text = fmt.Sprintf("%s $%04X, Y", in.Name, word())
		case "IND":
			text = fmt.Sprintf("%s ($%04X)", in.Name, word())
		case "REL":
			offset := operand()
			target := uint16(addr) + uint16(int8(offset))
			text = fmt.Sprintf("%s $%02X [$%04X]", in.Name, offset, target)
		}

		lines = append(lines, DisassembledInstruction{
			Addr: lineAddr,
			Text: fmt.Sprintf("$%04X: %s {%s}", lineAddr, text, in.AddrMode),
			Next: uint16(addr),
		})
	}
	return lines
}
