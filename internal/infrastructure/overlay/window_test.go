package overlay

import (
	"image"
	"testing"

	"github.com/ebitengine/debugui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingWindow(calls *int) GuiFunction {
	return func(ctx *debugui.Context) {
		*calls++
		ctx.Window("Test", image.Rect(10, 10, 210, 110), func(layout debugui.ContainerLayout) {
			ctx.Text("hello")
		})
	}
}

func TestWindowManager_StartsHidden(t *testing.T) {
	m := NewWindowManager()

	assert.False(t, m.Visible())
	assert.False(t, m.HasGuiFunction())
	assert.False(t, m.Active())
}

func TestWindowManager_HiddenBuildsNothing(t *testing.T) {
	calls := 0
	m := NewWindowManager()
	m.SetGuiFunction(countingWindow(&calls))

	require.NoError(t, m.Update())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, m.Frames())

	m.Toggle()
	require.NoError(t, m.Update())
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, m.Frames())
}

func TestWindowManager_NoFunctionBuildsNothing(t *testing.T) {
	m := NewWindowManager()
	m.SetVisible(true)

	require.NoError(t, m.Update())
	assert.Equal(t, 0, m.Frames())
	assert.False(t, m.CapturingInput())
}

func TestWindowManager_SetGuiFunctionReplaces(t *testing.T) {
	first, second := 0, 0
	m := NewWindowManager()
	m.SetVisible(true)

	m.SetGuiFunction(countingWindow(&first))
	require.NoError(t, m.Update())

	m.SetGuiFunction(countingWindow(&second))
	require.NoError(t, m.Update())
	require.NoError(t, m.Update())

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)

	m.SetGuiFunction(nil)
	assert.False(t, m.HasGuiFunction())
	require.NoError(t, m.Update())
	assert.Equal(t, 2, second)
}
