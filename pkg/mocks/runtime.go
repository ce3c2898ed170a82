package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"cartctl/pkg/docker"
)

// MockRuntime is a testify mock for docker.API.
type MockRuntime struct {
	mock.Mock
}

func (m *MockRuntime) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRuntime) ListContainers(ctx context.Context, all bool) ([]docker.Container, error) {
	args := m.Called(ctx, all)
	containers, _ := args.Get(0).([]docker.Container)
	return containers, args.Error(1)
}

func (m *MockRuntime) StopContainer(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRuntime) RemoveContainer(ctx context.Context, id string, force bool) error {
	return m.Called(ctx, id, force).Error(0)
}

func (m *MockRuntime) ListImages(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	ids, _ := args.Get(0).([]string)
	return ids, args.Error(1)
}

func (m *MockRuntime) RemoveImage(ctx context.Context, id string, force bool) error {
	return m.Called(ctx, id, force).Error(0)
}

func (m *MockRuntime) ListVolumes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockRuntime) RemoveVolume(ctx context.Context, name string, force bool) error {
	return m.Called(ctx, name, force).Error(0)
}

func (m *MockRuntime) CreateVolume(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockRuntime) CreateNetwork(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockRuntime) RemoveNetwork(ctx context.Context, name string) error {
	return m.Called(ctx, name).Error(0)
}

func (m *MockRuntime) RunContainer(ctx context.Context, spec docker.RunSpec) (string, error) {
	args := m.Called(ctx, spec)
	return args.String(0), args.Error(1)
}

func (m *MockRuntime) WaitForLog(ctx context.Context, id string, needle string) error {
	return m.Called(ctx, id, needle).Error(0)
}

func (m *MockRuntime) StreamLogs(ctx context.Context, id string, tail int, lines chan<- string) error {
	return m.Called(ctx, id, tail, lines).Error(0)
}

func (m *MockRuntime) PruneSystem(ctx context.Context) (uint64, error) {
	args := m.Called(ctx)
	reclaimed, _ := args.Get(0).(uint64)
	return reclaimed, args.Error(1)
}

func (m *MockRuntime) Close() error {
	return m.Called().Error(0)
}
