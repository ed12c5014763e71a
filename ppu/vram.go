package ppu

// ChipBus is the cartridge side of the video address space. It serves the
// pattern tables (0x0000-0x1FFF) and the mirrored nametables (0x2000-0x2FFF).
type ChipBus interface {
	ReadChip(addr uint16) uint8
	WriteChip(addr uint16, data uint8)
}

const (
	addressSpace = 0x4000
	paletteBase  = 0x3F00
)

// VideoMemory resolves the 16 KiB address space seen by the chip.
//
//	0x0000-0x2FFF  pattern tables and nametables, delegated to the cartridge
//	0x3000-0x3EFF  mirror of 0x2000-0x2EFF
//	0x3F00-0x3FFF  32 bytes of palette memory, mirrored
type VideoMemory struct {
	chip    ChipBus
	palette [32]uint8
}

func NewVideoMemory(chip ChipBus) *VideoMemory {
	return &VideoMemory{chip: chip}
}

// paletteIndex folds a palette address onto its storage slot. Entry 0 of
// every group of four aliases the universal backdrop at 0x3F00.
func paletteIndex(addr uint16) uint16 {
	if addr%4 == 0 {
		return 0
	}
	return addr & 0x1F
}

func (v *VideoMemory) Read(addr uint16) uint8 {
	addr %= addressSpace
	switch {
	case addr < 0x3000:
		return v.chip.ReadChip(addr)
	case addr < paletteBase:
		return v.chip.ReadChip(addr - 0x1000)
	default:
		return v.palette[paletteIndex(addr)]
	}
}

func (v *VideoMemory) Write(addr uint16, data uint8) {
	addr %= addressSpace
	switch {
	case addr < 0x3000:
		v.chip.WriteChip(addr, data)
	case addr < paletteBase:
		v.chip.WriteChip(addr-0x1000, data)
	default:
		v.palette[paletteIndex(addr)] = data
	}
}

func (v *VideoMemory) reset() {
	v.palette = [32]uint8{}
}
