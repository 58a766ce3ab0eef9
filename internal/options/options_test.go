package options

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	assert.Equal(t, uint16(DefaultProgramStart), settings.ProgramStart)
	assert.True(t, settings.Quirks.ShiftUsesSourceRegister)
	assert.True(t, settings.Quirks.LoadStoreIncrementsIndex)
	assert.False(t, settings.Quirks.DrawWrapsAtEdges)
	assert.False(t, settings.Quirks.JumpWithOffsetUsesVX)
}

func TestProgram_Settings(t *testing.T) {
	opts := Program{
		Seed:               42,
		ShiftSource:        false,
		LoadStoreIncrement: true,
		DrawWrap:           true,
		JumpVX:             true,
	}

	settings := opts.Settings()
	assert.Equal(t, uint16(DefaultProgramStart), settings.ProgramStart)
	assert.Equal(t, int64(42), settings.RandSeed)
	assert.False(t, settings.Quirks.ShiftUsesSourceRegister)
	assert.True(t, settings.Quirks.LoadStoreIncrementsIndex)
	assert.True(t, settings.Quirks.DrawWrapsAtEdges)
	assert.True(t, settings.Quirks.JumpWithOffsetUsesVX)
}
