package layers

import (
	"github.com/shimmeringbee/smarthome/device"
	"github.com/stretchr/testify/mock"
)

var _ Layer = (*MockLayer)(nil)

type MockLayer struct {
	mock.Mock
}

func (m *MockLayer) Name() string {
	called := m.Called()
	return called.String(0)
}

func (m *MockLayer) Wrap(d device.Switchable) device.Switchable {
	called := m.Called(d)
	return called.Get(0).(device.Switchable)
}
