package cartridge

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"dotnes/mapper"

	"github.com/golang/glog"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
	trainerSize = 512
)

var (
	ErrBadMagic          = errors.New("cartridge: not an iNES image")
	ErrUnsupportedMapper = errors.New("cartridge: unsupported mapper")
	ErrShortImage        = errors.New("cartridge: image truncated")
)

var magic = [4]byte{'N', 'E', 'S', 0x1A}

type Header struct {
	Name         [4]byte
	PrgRomChunks uint8
	ChrRomChunks uint8
	Mapper1      uint8
	Mapper2      uint8
	PrgRamSize   uint8
	TvSystem1    uint8
	TvSystem2    uint8
	Unused       [5]byte
}

func (h Header) mapperID() uint8 {
	return (h.Mapper2 & 0xF0) | (h.Mapper1 >> 4)
}

func (h Header) mirror() mapper.Mirror {
	switch {
	case h.Mapper1&0x08 != 0:
		return mapper.FourScreen
	case h.Mapper1&0x01 != 0:
		return mapper.Vertical
	}
	return mapper.Horizontal
}

// Cartridge holds the program and pattern memory of a loaded image together
// with the console's nametable RAM, which the cartridge wiring decides how
// to mirror.
type Cartridge struct {
	prgBanks   uint8
	chrBanks   uint8
	prgMemory  []uint8
	chrMemory  []uint8
	nametables [0x1000]uint8
	mapperID   uint8
	mapper     mapper.Mapper
	mirror     mapper.Mirror
}

// Load reads an iNES image.
func Load(r io.Reader) (*Cartridge, error) {
	header := Header{}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrShortImage, err)
	}
	if header.Name != magic {
		return nil, ErrBadMagic
	}
	if header.Mapper1&0x04 != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, fmt.Errorf("%w: trainer: %v", ErrShortImage, err)
		}
	}

	if header.PrgRomChunks == 0 {
		return nil, fmt.Errorf("%w: no program rom", ErrShortImage)
	}

	cart := &Cartridge{
		prgBanks: header.PrgRomChunks,
		chrBanks: header.ChrRomChunks,
		mapperID: header.mapperID(),
		mirror:   header.mirror(),
	}

	m, ok := mapper.New(cart.mapperID, cart.prgBanks, cart.chrBanks)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, cart.mapperID)
	}
	cart.mapper = m
	if mirror := m.Mirror(); mirror != mapper.Hardware {
		cart.mirror = mirror
	}

	cart.prgMemory = make([]uint8, int(cart.prgBanks)*prgBankSize)
	if _, err := io.ReadFull(r, cart.prgMemory); err != nil {
		return nil, fmt.Errorf("%w: program rom: %v", ErrShortImage, err)
	}

	if cart.chrBanks == 0 {
		cart.chrMemory = make([]uint8, chrBankSize)
	} else {
		cart.chrMemory = make([]uint8, int(cart.chrBanks)*chrBankSize)
		if _, err := io.ReadFull(r, cart.chrMemory); err != nil {
			return nil, fmt.Errorf("%w: pattern rom: %v", ErrShortImage, err)
		}
	}

	glog.Infof("cartridge: mapper %d, %d KiB PRG, %d KiB CHR, %s mirroring",
		cart.mapperID, len(cart.prgMemory)/1024, len(cart.chrMemory)/1024, cart.mirror)
	return cart, nil
}

// Open loads the iNES image at path.
func Open(path string) (*Cartridge, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cart, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cart, nil
}

func (c *Cartridge) MapperID() uint8 {
	return c.mapperID
}

func (c *Cartridge) Mirror() mapper.Mirror {
	return c.mirror
}

// ReadProgram reads the processor address space. ok is false for addresses
// the cartridge does not decode.
func (c *Cartridge) ReadProgram(addr uint16) (data uint8, ok bool) {
	if mapped, ok := c.mapper.CpuMapRead(addr); ok {
		return c.prgMemory[mapped], true
	}
	return 0, false
}

func (c *Cartridge) WriteProgram(addr uint16, data uint8) bool {
	if mapped, ok := c.mapper.CpuMapWrite(addr, data); ok {
		c.prgMemory[mapped] = data
		return true
	}
	return false
}

func (c *Cartridge) nametableIndex(addr uint16) uint16 {
	index := addr & 0x0FFF
	switch c.mirror {
	case mapper.Vertical:
		index &^= 0x0800
	case mapper.Horizontal:
		index &^= 0x0400
	}
	return index
}

// ReadChip serves the video chip's pattern tables and nametables
// (0x0000-0x2FFF).
func (c *Cartridge) ReadChip(addr uint16) uint8 {
	if addr < 0x2000 {
		if mapped, ok := c.mapper.PpuMapRead(addr); ok {
			return c.chrMemory[mapped]
		}
		return 0
	}
	return c.nametables[c.nametableIndex(addr)]
}

func (c *Cartridge) WriteChip(addr uint16, data uint8) {
	if addr < 0x2000 {
		if mapped, ok := c.mapper.PpuMapWrite(addr, data); ok {
			c.chrMemory[mapped] = data
		}
		return
	}
	c.nametables[c.nametableIndex(addr)] = data
}

func (c *Cartridge) Reset() {
	if c.mapper != nil {
		c.mapper.Reset()
	}
}
