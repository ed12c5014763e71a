package mapper

// Mirror is the nametable arrangement a mapper asks for.
type Mirror uint8

const (
	// Hardware leaves the arrangement to the solder pads, i.e. the header.
	Hardware Mirror = iota
	Horizontal
	Vertical
	FourScreen
)

func (m Mirror) String() string {
	switch m {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case FourScreen:
		return "four-screen"
	}
	return "hardware"
}

// Mapper translates bus addresses into offsets within a cartridge's PRG and
// CHR memory. A variant is chosen once, when the cartridge is loaded.
type Mapper interface {
	// CpuMapRead maps a program-space read. ok is false when the address
	// is not served by the cartridge.
	CpuMapRead(addr uint16) (mapped uint32, ok bool)
	CpuMapWrite(addr uint16, data uint8) (mapped uint32, ok bool)
	// PpuMapRead maps a chip-space read of the pattern tables.
	PpuMapRead(addr uint16) (mapped uint32, ok bool)
	PpuMapWrite(addr uint16, data uint8) (mapped uint32, ok bool)
	Reset()
	Mirror() Mirror
}

// New returns the mapper with the given iNES id, or false if it is not
// supported.
func New(id uint8, prgBanks, chrBanks uint8) (Mapper, bool) {
	switch id {
	case 0:
		return &Mapper0000{PrgBanks: prgBanks, ChrBanks: chrBanks}, true
	}
	return nil, false
}
