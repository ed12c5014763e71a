package ppu

// Field locates a named group of bits inside an 8-bit register.
type Field struct {
	Index uint8
	Size  uint8
}

// Register is an 8-bit flag set whose bits are addressed by name.
type Register struct {
	fields map[string]Field
	values map[string]uint8
	Reg    uint8
}

func fieldMask(field Field) uint8 {
	return uint8(((1 << field.Size) - 1) << field.Index)
}

func (r *Register) SetField(key string, value uint8) {
	field, ok := r.fields[key]
	if !ok {
		return
	}

	mask := fieldMask(field)
	r.SetReg((r.Reg &^ mask) | (mask & (value << field.Index)))
}

func (r *Register) SetReg(value uint8) {
	r.Reg = value
	if r.values == nil {
		r.values = make(map[string]uint8, len(r.fields))
	}
	for key, field := range r.fields {
		r.values[key] = (r.Reg & fieldMask(field)) >> field.Index
	}
}

func (r *Register) GetField(key string) uint8 {
	value, ok := r.values[key]
	if !ok {
		panic("Field " + key + " not found")
	}
	return value
}

// Flag reports whether a one-bit field is set.
func (r *Register) Flag(key string) bool {
	return r.GetField(key) != 0
}

func (r *Register) allAttributes() map[string]uint8 {
	out := make(map[string]uint8)
	for k := range r.fields {
		out[k] = r.GetField(k)
	}
	return out
}

func CreateRegister(fields map[string]Field) Register {
	reg := Register{
		fields: fields,
		Reg:    0,
		values: make(map[string]uint8),
	}
	for key := range reg.fields {
		reg.values[key] = 0
	}
	return reg
}

func CreateControlRegister() Register {
	return CreateRegister(map[string]Field{
		"nametable":          {0, 2},
		"increment_mode":     {2, 1},
		"pattern_sprite":     {3, 1},
		"pattern_background": {4, 1},
		"sprite_size":        {5, 1},
		"slave_mode":         {6, 1},
		"enable_nmi":         {7, 1},
	})
}

func CreateMaskRegister() Register {
	return CreateRegister(map[string]Field{
		"grayscale":              {0, 1},
		"render_background_left": {1, 1},
		"render_sprites_left":    {2, 1},
		"render_background":      {3, 1},
		"render_sprites":         {4, 1},
		"enhance_red":            {5, 1},
		"enhance_green":          {6, 1},
		"enhance_blue":           {7, 1},
	})
}

func CreateStatusRegister() Register {
	return CreateRegister(map[string]Field{
		"unused":          {0, 5},
		"sprite_overflow": {5, 1},
		"sprite_zero_hit": {6, 1},
		"vertical_blank":  {7, 1},
	})
}
