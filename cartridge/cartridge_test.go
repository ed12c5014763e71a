package cartridge

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"dotnes/mapper"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// image builds an iNES file whose PRG bytes hold the low byte of their
// offset and whose CHR bytes hold 0xC0 | bank.
func image(prg, chr, flags6, flags7 uint8, trainer bool) []byte {
	var buf bytes.Buffer
	if trainer {
		flags6 |= 0x04
	}
	buf.Write([]byte{'N', 'E', 'S', 0x1A, prg, chr, flags6, flags7})
	buf.Write(make([]byte, 8))
	if trainer {
		buf.Write(bytes.Repeat([]byte{0xEE}, trainerSize))
	}
	for i := 0; i < int(prg)*prgBankSize; i++ {
		buf.WriteByte(uint8(i))
	}
	for b := 0; b < int(chr); b++ {
		buf.Write(bytes.Repeat([]byte{0xC0 | uint8(b)}, chrBankSize))
	}
	return buf.Bytes()
}

func TestLoadNROM128(t *testing.T) {
	cart, err := Load(bytes.NewReader(image(1, 1, 0x01, 0x00, false)))
	require.NoError(t, err)

	assert.Equal(t, uint8(0), cart.MapperID())
	assert.Equal(t, mapper.Vertical, cart.Mirror())

	data, ok := cart.ReadProgram(0x8005)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x05), data)
	data, ok = cart.ReadProgram(0xC005)
	assert.True(t, ok)
	assert.Equal(t, uint8(0x05), data, "16 KiB images mirror into the upper half")

	_, ok = cart.ReadProgram(0x6000)
	assert.False(t, ok)
	assert.Equal(t, uint8(0xC0), cart.ReadChip(0x1FFF))
}

func TestLoadSkipsTrainer(t *testing.T) {
	cart, err := Load(bytes.NewReader(image(2, 1, 0x00, 0x00, true)))
	require.NoError(t, err)

	data, _ := cart.ReadProgram(0x8000)
	assert.Equal(t, uint8(0x00), data)
	data, _ = cart.ReadProgram(0xC001)
	assert.Equal(t, uint8(0x01), data)
}

func TestLoadErrors(t *testing.T) {
	bad := image(1, 1, 0, 0, false)
	bad[0] = 'X'
	_, err := Load(bytes.NewReader(bad))
	assert.ErrorIs(t, err, ErrBadMagic)

	_, err = Load(bytes.NewReader(image(1, 1, 0x40, 0x00, false)))
	assert.ErrorIs(t, err, ErrUnsupportedMapper)

	short := image(2, 1, 0, 0, false)
	_, err = Load(bytes.NewReader(short[:len(short)-100]))
	assert.ErrorIs(t, err, ErrShortImage)

	_, err = Load(bytes.NewReader([]byte("NES")))
	assert.ErrorIs(t, err, ErrShortImage)

	_, err = Load(bytes.NewReader(image(0, 1, 0, 0, false)))
	assert.ErrorIs(t, err, ErrShortImage, "no program banks")
}

func TestProgramIsReadOnly(t *testing.T) {
	cart, err := Load(bytes.NewReader(image(1, 1, 0, 0, false)))
	require.NoError(t, err)

	assert.False(t, cart.WriteProgram(0x8000, 0xFF))
	data, _ := cart.ReadProgram(0x8000)
	assert.Equal(t, uint8(0x00), data)
}

func TestPatternMemory(t *testing.T) {
	rom, err := Load(bytes.NewReader(image(1, 1, 0, 0, false)))
	require.NoError(t, err)
	rom.WriteChip(0x0010, 0x55)
	assert.Equal(t, uint8(0xC0), rom.ReadChip(0x0010), "CHR ROM ignores writes")

	ram, err := Load(bytes.NewReader(image(1, 0, 0, 0, false)))
	require.NoError(t, err)
	ram.WriteChip(0x0010, 0x55)
	assert.Equal(t, uint8(0x55), ram.ReadChip(0x0010))
}

func TestNametableMirroring(t *testing.T) {
	tests := []struct {
		name   string
		flags6 uint8
		mirror mapper.Mirror
		same   [][2]uint16
		apart  [][2]uint16
	}{
		{
			name:   "horizontal",
			flags6: 0x00,
			mirror: mapper.Horizontal,
			same:   [][2]uint16{{0x2000, 0x2400}, {0x2800, 0x2C00}},
			apart:  [][2]uint16{{0x2000, 0x2800}},
		},
		{
			name:   "vertical",
			flags6: 0x01,
			mirror: mapper.Vertical,
			same:   [][2]uint16{{0x2000, 0x2800}, {0x2400, 0x2C00}},
			apart:  [][2]uint16{{0x2000, 0x2400}},
		},
		{
			name:   "four-screen",
			flags6: 0x08,
			mirror: mapper.FourScreen,
			apart:  [][2]uint16{{0x2000, 0x2400}, {0x2000, 0x2800}, {0x2400, 0x2C00}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart, err := Load(bytes.NewReader(image(1, 1, tt.flags6, 0, false)))
			require.NoError(t, err)
			assert.Equal(t, tt.mirror, cart.Mirror())

			for _, pair := range tt.same {
				cart.WriteChip(pair[0]+0x21, 0x5A)
				assert.Equal(t, uint8(0x5A), cart.ReadChip(pair[1]+0x21), "0x%04x -> 0x%04x", pair[0], pair[1])
				cart.WriteChip(pair[0]+0x21, 0)
			}
			for _, pair := range tt.apart {
				cart.WriteChip(pair[0]+0x42, 0xA5)
				assert.Equal(t, uint8(0), cart.ReadChip(pair[1]+0x42), "0x%04x -> 0x%04x", pair[0], pair[1])
				cart.WriteChip(pair[0]+0x42, 0)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.nes")
	require.NoError(t, os.WriteFile(path, image(1, 1, 0, 0, false), 0o644))

	cart, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, mapper.Horizontal, cart.Mirror())

	_, err = Open(filepath.Join(t.TempDir(), "missing.nes"))
	assert.Error(t, err)
}
