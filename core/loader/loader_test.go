package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockFeature struct {
	mock.Mock
}

func (m *mockFeature) Name() string {
	return m.Called().String(0)
}

func (m *mockFeature) IsEnabled() bool {
	return m.Called().Bool(0)
}

func (m *mockFeature) Load(app fiber.Router) error {
	return m.Called(app).Error(0)
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	enabled := new(mockFeature)
	enabled.On("IsEnabled").Return(true)
	enabled.On("Load", mock.Anything).Return(nil).Once()

	disabled := new(mockFeature)
	disabled.On("IsEnabled").Return(false)

	mgr := NewManager()
	mgr.Register(enabled)
	mgr.Register(disabled)

	assert.NoError(t, mgr.LoadAll(app))
	assert.Len(t, mgr.Features(), 2)
	enabled.AssertExpectations(t)
	disabled.AssertNotCalled(t, "Load", mock.Anything)
}

func TestManager_LoadAllError(t *testing.T) {
	broken := new(mockFeature)
	broken.On("IsEnabled").Return(true)
	broken.On("Name").Return("broken")
	broken.On("Load", mock.Anything).Return(errors.New("boom"))

	mgr := NewManager()
	mgr.Register(broken)

	err := mgr.LoadAll(fiber.New())
	assert.ErrorContains(t, err, "failed to load feature broken: boom")
}
