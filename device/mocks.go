package device

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var _ Switchable = (*MockSwitchable)(nil)

type MockSwitchable struct {
	mock.Mock
}

func (m *MockSwitchable) Identifier() uuid.UUID {
	args := m.Called()
	return args.Get(0).(uuid.UUID)
}

func (m *MockSwitchable) Type() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockSwitchable) TurnOn(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockSwitchable) TurnOff(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ LegacySwitch = (*MockLegacySwitch)(nil)

type MockLegacySwitch struct {
	mock.Mock
}

func (m *MockLegacySwitch) SwitchOn() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockLegacySwitch) SwitchOff() error {
	args := m.Called()
	return args.Error(0)
}
