package nes

import (
	"dotnes/ppu"

	"github.com/golang/glog"
)

const (
	dmaLength = 256
	// the processor runs at a third of the dot rate
	cpuDivider = 3
)

// Processor is the instruction processor as the scheduler drives it. Step
// returns false when the instruction in progress has just completed.
type Processor interface {
	Step() bool
	RaiseNMI()
}

// Video is the part of the video chip the scheduler clocks.
type Video interface {
	Tick()
	NMI() bool
	FrameReady() bool
	WriteRegister(index uint16, data uint8)
}

// Scheduler owns the system clock. Each clock unit advances the video chip
// by one dot and then either copies one OAM DMA byte or, on every third
// unit, steps the processor.
type Scheduler struct {
	bus   *Bus
	video Video
	cpu   Processor

	clock uint64

	dmaActive bool
	dmaPage   uint8
	dmaCount  int

	nmiLatched bool
}

// NewScheduler wires the scheduler as the bus's DMA trigger.
func NewScheduler(bus *Bus, video Video, cpu Processor) *Scheduler {
	s := &Scheduler{bus: bus, video: video, cpu: cpu}
	bus.ConnectDMA(s)
	return s
}

// StartDMA begins copying the 256 bytes of page to OAM.
func (s *Scheduler) StartDMA(page uint8) {
	if glog.V(2) {
		glog.Infof("oam dma from 0x%02x00 at clock %d", page, s.clock)
	}
	s.dmaActive = true
	s.dmaPage = page
	s.dmaCount = 0
}

func (s *Scheduler) DMAActive() bool {
	return s.dmaActive
}

// Clock runs one clock unit and reports whether it ended an instruction.
func (s *Scheduler) Clock() bool {
	s.video.Tick()

	boundary := false
	if s.dmaActive {
		data := s.bus.Read(uint16(s.dmaPage)<<8 | uint16(s.dmaCount))
		s.video.WriteRegister(ppu.OAMDATA, data)
		s.dmaCount++
		if s.dmaCount == dmaLength {
			s.dmaActive = false
		}
	} else if s.clock%cpuDivider == 0 {
		if !s.cpu.Step() {
			boundary = true
			s.latchNMI()
		}
	}

	s.clock++
	return boundary
}

// latchNMI raises an NMI on the rising edge of the video chip's request.
func (s *Scheduler) latchNMI() {
	asserted := s.video.NMI()
	if asserted && !s.nmiLatched {
		s.cpu.RaiseNMI()
	}
	s.nmiLatched = asserted
}

// RunInstruction clocks until the next instruction boundary.
func (s *Scheduler) RunInstruction() {
	for !s.Clock() {
	}
}

// RunFrame clocks until the video chip reports a finished frame.
func (s *Scheduler) RunFrame() {
	for {
		s.Clock()
		if s.video.FrameReady() {
			return
		}
	}
}

func (s *Scheduler) Clocks() uint64 {
	return s.clock
}

func (s *Scheduler) Reset() {
	s.clock = 0
	s.dmaActive = false
	s.dmaPage = 0
	s.dmaCount = 0
	s.nmiLatched = false
}
