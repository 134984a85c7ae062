package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ekisa-team/tensorbridge/internal/backend"
	"github.com/ekisa-team/tensorbridge/internal/config"
	"github.com/ekisa-team/tensorbridge/internal/container"
)

// --- Mock types ---

type MockContainer struct {
	mock.Mock
}

func (m *MockContainer) Mode() container.TaskMode {
	args := m.Called()
	return args.Get(0).(container.TaskMode)
}

func (m *MockContainer) Backend() backend.Backend {
	args := m.Called()
	if b, ok := args.Get(0).(backend.Backend); ok {
		return b
	}
	return nil
}

func (m *MockContainer) Close() error {
	args := m.Called()
	return args.Error(0)
}

// --- Tests ---

func TestRegistry_SetAndGet(t *testing.T) {
	reg := NewRegistry()

	instance := NewInstance(&config.ContainerConfig{Task: "regressor"}, "reg-1")
	reg.Set(instance)

	got, ok := reg.Get("reg-1")
	assert.True(t, ok)
	assert.Equal(t, instance, got)
	assert.Equal(t, StatusUnloaded, got.Status)

	// Ensure a missing instance returns false
	_, ok = reg.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_DeleteClosesContainer(t *testing.T) {
	reg := NewRegistry()

	mockContainer := new(MockContainer)
	mockContainer.On("Close").Return(nil).Once()

	instance := NewInstance(&config.ContainerConfig{Task: "classifier"}, "cls-1")
	instance.SetContainer(mockContainer)
	assert.Equal(t, StatusLoaded, instance.Status)
	assert.NotNil(t, instance.LoadedAt)

	reg.Set(instance)

	err := reg.Delete("cls-1")
	assert.NoError(t, err)

	_, ok := reg.Get("cls-1")
	assert.False(t, ok)

	mockContainer.AssertExpectations(t)
}

func TestRegistry_DeleteErrorPropagation(t *testing.T) {
	reg := NewRegistry()

	mockContainer := new(MockContainer)
	mockContainer.On("Close").Return(errors.New("close failed")).Once()

	instance := NewInstance(&config.ContainerConfig{}, "bad")
	instance.SetContainer(mockContainer)
	reg.Set(instance)

	err := reg.Delete("bad")
	assert.EqualError(t, err, "close failed")

	mockContainer.AssertExpectations(t)
}

func TestRegistry_List(t *testing.T) {
	reg := NewRegistry()
	reg.Set(NewInstance(&config.ContainerConfig{}, "a"))
	reg.Set(NewInstance(&config.ContainerConfig{}, "b"))

	assert.Len(t, reg.List(), 2)

	assert.NoError(t, reg.Delete("a"))
	assert.Len(t, reg.List(), 1)
}

func TestInstance_SetError(t *testing.T) {
	instance := NewInstance(&config.ContainerConfig{}, "x")
	instance.SetError(errors.New("artifact missing"))

	assert.Equal(t, StatusFailed, instance.Status)
	assert.Equal(t, "artifact missing", instance.Error)
}
