package nes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessorRunsEveryThirdClock(t *testing.T) {
	s, video, proc := newTestScheduler()

	clockN(s, 30)
	assert.Equal(t, 30, video.ticks)
	assert.Equal(t, 10, proc.steps)
	// the dot is always advanced before the processor in the same unit
	assert.Equal(t, []int{1, 4, 7, 10, 13, 16, 19, 22, 25, 28}, proc.ticksAtStep)
}

func TestNMIEdgeTriggered(t *testing.T) {
	s, video, proc := newTestScheduler()

	video.nmi = true
	clockN(s, 9)
	require.Equal(t, 3, proc.steps, "three instruction boundaries")
	assert.Equal(t, 1, proc.nmis)

	video.nmi = false
	clockN(s, 3)
	assert.Equal(t, 1, proc.nmis)

	video.nmi = true
	clockN(s, 9)
	assert.Equal(t, 2, proc.nmis)
}

func TestNMIOnlyAtInstructionBoundary(t *testing.T) {
	s, video, proc := newTestScheduler()
	proc.length = 4

	video.nmi = true
	clockN(s, 9)
	assert.Equal(t, 0, proc.nmis, "instruction still in progress")

	clockN(s, 3)
	assert.Equal(t, 4, proc.steps)
	assert.Equal(t, 1, proc.nmis)
}

func TestDMATransfer(t *testing.T) {
	s, video, proc := newTestScheduler()
	for i := 0; i < 256; i++ {
		s.bus.Write(0x0200+uint16(i), uint8(255-i))
	}
	proc.onStep = func(step int) {
		if step == 1 {
			s.bus.Write(0x4014, 0x02)
		}
	}

	s.Clock()
	require.True(t, s.DMAActive())
	require.Equal(t, 1, proc.steps)

	clockN(s, 255)
	assert.True(t, s.DMAActive())
	s.Clock()
	assert.False(t, s.DMAActive())

	require.Len(t, video.oamWrites, 256)
	for i, b := range video.oamWrites {
		require.Equal(t, uint8(255-i), b, "byte %d", i)
	}
	assert.Equal(t, 1, proc.steps, "processor is held during the transfer")
	assert.Equal(t, 257, video.ticks)

	// clock 257 is not a multiple of three, 258 is
	s.Clock()
	assert.Equal(t, 1, proc.steps)
	s.Clock()
	assert.Equal(t, 2, proc.steps)
}

func TestRunInstruction(t *testing.T) {
	s, _, proc := newTestScheduler()
	proc.length = 3

	s.RunInstruction()
	assert.Equal(t, 3, proc.steps)
	assert.Equal(t, uint64(7), s.Clocks())
}

func TestRunFrame(t *testing.T) {
	s, video, _ := newTestScheduler()
	video.frameAt = 100

	s.RunFrame()
	assert.Equal(t, 100, video.ticks)
	s.RunFrame()
	assert.Equal(t, 200, video.ticks)
}

func TestSchedulerReset(t *testing.T) {
	s, video, proc := newTestScheduler()
	video.nmi = true
	s.Clock()
	require.Equal(t, 1, proc.nmis)
	s.StartDMA(3)
	clockN(s, 10)

	s.Reset()
	assert.False(t, s.DMAActive())
	assert.Equal(t, uint64(0), s.Clocks())

	s.Clock()
	assert.Equal(t, 2, proc.steps)
	assert.Equal(t, 2, proc.nmis, "reset clears the latch")
}
