package pixelanimator

import (
	"testing"

	"github.com/bodgit/pixelanimator/pixelmap"
	"github.com/stretchr/testify/assert"
)

func TestParamsValidate(t *testing.T) {
	tables := []struct {
		name        string
		repeatCount int
		frameTime   int
		colors      int
		err         string
	}{
		{"repeat zero", 0, 10, 0, "invalid repeat count value '0', value must be 1-255"},
		{"repeat too big", 256, 10, 0, "invalid repeat count value '256', value must be 1-255"},
		{"repeat min", 1, 10, 0, ""},
		{"repeat max", 255, 10, 0, ""},
		{"frametime negative", 1, -1, 0, "invalid frametime value '-1', value must be 0-255"},
		{"frametime too big", 1, 256, 0, "invalid frametime value '256', value must be 0-255"},
		{"frametime min", 1, 0, 0, ""},
		{"frametime max", 1, 255, 0, ""},
		{"colors one", 1, 0, 1, "invalid colors value '1', value must be 2-256"},
		{"colors too many", 1, 0, 257, "invalid colors value '257', value must be 2-256"},
		{"colors min", 1, 0, 2, ""},
		{"colors max", 1, 0, 256, ""},
	}

	for _, table := range tables {
		t.Run(table.name, func(t *testing.T) {
			p := &Params{RepeatCount: table.repeatCount, FrameTime: table.frameTime, Colors: table.colors}
			err := p.Validate()
			if table.err == "" {
				assert.NoError(t, err)
				return
			}
			if assert.IsType(t, &RangeError{}, err) {
				assert.EqualError(t, err, table.err)
			}
		})
	}
}

func TestParamsOptions(t *testing.T) {
	p := &Params{RepeatCount: 255, FrameTime: 0}
	assert.Equal(t, &pixelmap.Options{Delay: 0, Repeat: 255}, p.Options())
}
