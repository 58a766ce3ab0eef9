package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestStack_PushPop(t *testing.T) {
	var s Stack

	assert.NoError(t, s.Push(0x222))
	assert.NoError(t, s.Push(0x333))
	assert.Equal(t, 2, s.Depth())

	addr, err := s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x333), addr)

	addr, err = s.Pop()
	assert.NoError(t, err)
	assert.Equal(t, uint16(0x222), addr)
	assert.Equal(t, 0, s.Depth())
}

func TestStack_Overflow(t *testing.T) {
	var s Stack

	for i := 0; i < StackDepth; i++ {
		assert.NoError(t, s.Push(uint16(0x200+i)))
	}

	err := s.Push(0x400)
	assert.True(t, errors.Is(err, ErrStackOverflow))
	assert.Equal(t, StackDepth, s.Depth())
}

func TestStack_Underflow(t *testing.T) {
	var s Stack

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}

func TestStack_Clear(t *testing.T) {
	var s Stack
	assert.NoError(t, s.Push(0x222))

	s.clear()
	assert.Equal(t, 0, s.Depth())

	_, err := s.Pop()
	assert.True(t, errors.Is(err, ErrStackUnderflow))
}
