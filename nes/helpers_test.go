package nes

// fakeVideo records what the scheduler and bus do to the video chip.
type fakeVideo struct {
	ticks     int
	nmi       bool
	frameAt   int
	registers [8]uint8
	reads     []uint16
	oamWrites []uint8
}

func (v *fakeVideo) Tick() { v.ticks++ }

func (v *fakeVideo) NMI() bool { return v.nmi }

func (v *fakeVideo) FrameReady() bool {
	return v.frameAt > 0 && v.ticks%v.frameAt == 0
}

func (v *fakeVideo) ReadRegister(index uint16) uint8 {
	v.reads = append(v.reads, index)
	return v.registers[index]
}

func (v *fakeVideo) PeekRegister(index uint16) uint8 {
	return v.registers[index]
}

func (v *fakeVideo) WriteRegister(index uint16, data uint8) {
	v.registers[index] = data
	if index == 4 {
		v.oamWrites = append(v.oamWrites, data)
	}
}

// fakeProcessor finishes an instruction every `length` steps.
type fakeProcessor struct {
	length int
	steps  int
	nmis   int
	onStep func(step int)
	// video ticks observed at each step
	ticksAtStep []int
	video       *fakeVideo
}

func (p *fakeProcessor) Step() bool {
	p.steps++
	if p.video != nil {
		p.ticksAtStep = append(p.ticksAtStep, p.video.ticks)
	}
	if p.onStep != nil {
		p.onStep(p.steps)
	}
	length := p.length
	if length == 0 {
		length = 1
	}
	return p.steps%length != 0
}

func (p *fakeProcessor) RaiseNMI() { p.nmis++ }

// fakeCartridge serves a flat 48 KiB program space from 0x4020.
type fakeCartridge struct {
	prg [0x10000]uint8
}

func (c *fakeCartridge) ReadProgram(addr uint16) (uint8, bool) {
	return c.prg[addr], true
}

func (c *fakeCartridge) WriteProgram(addr uint16, data uint8) bool {
	c.prg[addr] = data
	return true
}

func newTestScheduler() (*Scheduler, *fakeVideo, *fakeProcessor) {
	video := &fakeVideo{}
	proc := &fakeProcessor{video: video}
	bus := NewBus(video, &fakeCartridge{}, nil, nil)
	return NewScheduler(bus, video, proc), video, proc
}

func clockN(s *Scheduler, n int) {
	for i := 0; i < n; i++ {
		s.Clock()
	}
}
