package device

import (
	"bytes"
	"context"
	"errors"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLegacyAdapter(t *testing.T) {
	t.Run("TurnOn and TurnOff are translated to the legacy switch", func(t *testing.T) {
		m := &MockLegacySwitch{}
		defer m.AssertExpectations(t)

		m.On("SwitchOn").Return(nil).Once()
		m.On("SwitchOff").Return(nil).Once()

		a := NewLegacyAdapter(m)

		assert.NoError(t, a.TurnOn(context.Background()))
		assert.NoError(t, a.TurnOff(context.Background()))
	})

	t.Run("errors from the legacy switch are returned unchanged", func(t *testing.T) {
		expectedErr := errors.New("switch jammed")

		m := &MockLegacySwitch{}
		defer m.AssertExpectations(t)

		m.On("SwitchOn").Return(expectedErr)

		a := NewLegacyAdapter(m)

		assert.Equal(t, expectedErr, a.TurnOn(context.Background()))
	})

	t.Run("light and adapted legacy device produce distinct effects for the same call", func(t *testing.T) {
		buf := &bytes.Buffer{}
		ctx := context.Background()

		devices := []Switchable{NewLight("LivingRoom", buf), NewLegacyAdapter(NewManualSwitch(buf))}

		for _, d := range devices {
			assert.NoError(t, d.TurnOn(ctx))
		}

		assert.Equal(t, "LivingRoom Light ON\nLegacy device is ON (manual switch)\n", buf.String())
	})
}
