package mapper

// Mapper0000 is NROM: 16 or 32 KiB of fixed PRG ROM and 8 KiB of CHR, which
// is RAM when the image carries no CHR banks.
type Mapper0000 struct {
	PrgBanks uint8
	ChrBanks uint8
}

func (m *Mapper0000) CpuMapRead(addr uint16) (uint32, bool) {
	if addr >= 0x8000 {
		base := uint16(0x3FFF)
		if m.PrgBanks > 1 {
			base = 0x7FFF
		}
		return uint32(addr & base), true
	}
	return 0, false
}

// CpuMapWrite claims the PRG ROM window but never maps a write into it.
func (m *Mapper0000) CpuMapWrite(addr uint16, data uint8) (uint32, bool) {
	return 0, false
}

func (m *Mapper0000) PpuMapRead(addr uint16) (uint32, bool) {
	if addr <= 0x1FFF {
		return uint32(addr), true
	}
	return 0, false
}

func (m *Mapper0000) PpuMapWrite(addr uint16, data uint8) (uint32, bool) {
	if addr <= 0x1FFF && m.ChrBanks == 0 {
		return uint32(addr), true
	}
	return 0, false
}

func (m *Mapper0000) Reset() {
}

func (m *Mapper0000) Mirror() Mirror {
	return Hardware
}
