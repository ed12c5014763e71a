package cpu

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed lookup.json
var lookupJSON []byte

type Instruction struct {
	Name     string `json:"name"`
	AddrMode string `json:"addr_mode"`
	Cycles   uint8  `json:"cycles"`
}

// opcode is an Instruction with its mnemonic and addressing mode resolved.
type opcode struct {
	Instruction
	addrmode func(*CPU) uint8
	operate  func(*CPU) uint8
	implied  bool
}

var addressModes = map[string]func(*CPU) uint8{
	"IMP": (*CPU).imp,
	"IMM": (*CPU).imm,
	"ZP0": (*CPU).zp0,
	"ZPX": (*CPU).zpx,
	"ZPY": (*CPU).zpy,
	"REL": (*CPU).rel,
	"ABS": (*CPU).abs,
	"ABX": (*CPU).abx,
	"ABY": (*CPU).aby,
	"IND": (*CPU).ind,
	"IZX": (*CPU).izx,
	"IZY": (*CPU).izy,
}

var operations = map[string]func(*CPU) uint8{
	"ADC": (*CPU).adc, "AND": (*CPU).and, "ASL": (*CPU).asl, "BCC": (*CPU).bcc,
	"BCS": (*CPU).bcs, "BEQ": (*CPU).beq, "BIT": (*CPU).bit, "BMI": (*CPU).bmi,
	"BNE": (*CPU).bne, "BPL": (*CPU).bpl, "BRK": (*CPU).brk, "BVC": (*CPU).bvc,
	"BVS": (*CPU).bvs, "CLC": (*CPU).clc, "CLD": (*CPU).cld, "CLI": (*CPU).cli,
	"CLV": (*CPU).clv, "CMP": (*CPU).cmp, "CPX": (*CPU).cpx, "CPY": (*CPU).cpy,
	"DEC": (*CPU).dec, "DEX": (*CPU).dex, "DEY": (*CPU).dey, "EOR": (*CPU).eor,
	"INC": (*CPU).inc, "INX": (*CPU).inx, "INY": (*CPU).iny, "JMP": (*CPU).jmp,
	"JSR": (*CPU).jsr, "LDA": (*CPU).lda, "LDX": (*CPU).ldx, "LDY": (*CPU).ldy,
	"LSR": (*CPU).lsr, "NOP": (*CPU).nop, "ORA": (*CPU).ora, "PHA": (*CPU).pha,
	"PHP": (*CPU).php, "PLA": (*CPU).pla, "PLP": (*CPU).plp, "ROL": (*CPU).rol,
	"ROR": (*CPU).ror, "RTI": (*CPU).rti, "RTS": (*CPU).rts, "SBC": (*CPU).sbc,
	"SEC": (*CPU).sec, "SED": (*CPU).sed, "SEI": (*CPU).sei, "STA": (*CPU).sta,
	"STX": (*CPU).stx, "STY": (*CPU).sty, "TAX": (*CPU).tax, "TAY": (*CPU).tay,
	"TSX": (*CPU).tsx, "TXA": (*CPU).txa, "TXS": (*CPU).txs, "TYA": (*CPU).tya,
	"XXX": (*CPU).xxx,
}

var lookup [256]opcode

func init() {
	table, err := loadInstructions(lookupJSON)
	if err != nil {
		panic(err)
	}
	lookup = table
}

func loadInstructions(data []byte) ([256]opcode, error) {
	var table [256]opcode
	var result []Instruction
	if err := json.Unmarshal(data, &result); err != nil {
		return table, fmt.Errorf("cpu: decoding opcode table: %w", err)
	}
	if len(result) != len(table) {
		return table, fmt.Errorf("cpu: opcode table has %d entries, want %d", len(result), len(table))
	}
	for i, in := range result {
		mode, ok := addressModes[in.AddrMode]
		if !ok {
			return table, fmt.Errorf("cpu: opcode 0x%02x: unknown addressing mode %q", i, in.AddrMode)
		}
		op, ok := operations[in.Name]
		if !ok {
			return table, fmt.Errorf("cpu: opcode 0x%02x: unknown operation %q", i, in.Name)
		}
		table[i] = opcode{
			Instruction: in,
			addrmode:    mode,
			operate:     op,
			implied:     in.AddrMode == "IMP",
		}
	}
	return table, nil
}

// Lookup returns the table entry for an opcode byte.
func Lookup(op uint8) Instruction {
	return lookup[op].Instruction
}
