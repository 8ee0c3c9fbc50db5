package cutscene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/cutscene/internal/application/state"
	"github.com/younwookim/cutscene/internal/application/system"
	model "github.com/younwookim/cutscene/internal/domain/cutscene"
)

// onePixelPerTick scrolls a 480px view at 60fps by one pixel per tick
const onePixelPerTick = 8.0

func newScroll(t *testing.T, env *Env, speed float64, ds ...model.Directive) *scrollScene {
	t.Helper()
	settings := model.DefaultSettings()
	settings.VScrollSpeed = speed
	spec := &model.SceneSpec{
		Mode:       model.ModeVScroll,
		Settings:   settings,
		Directives: ds,
		Last:       true,
	}
	sc, ok := NewScene(spec, env).(*scrollScene)
	require.True(t, ok)
	return sc
}

func creditsDirectives() []model.Directive {
	return []model.Directive{
		model.Text{Text: "Credits"},
		model.Separator{Height: 20},
		model.Image{Path: "logo.png"},
	}
}

func TestScrollScene_Materialize(t *testing.T) {
	env, images, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)
	assert.Equal(t, model.ModeVScroll, sc.Mode())

	assert.Equal(t, state.Running, sc.Tick(idle()))
	assert.True(t, sc.queue.Empty())
	assert.Equal(t, []string{"logo.png"}, images.loaded)
	require.Len(t, sc.elements, 3)

	text, sep, img := sc.elements[0], sc.elements[1], sc.elements[2]
	lh := text.label.Bounds().H
	require.Greater(t, lh, 0)

	assert.Equal(t, "Credits", text.label.Text())
	assert.Equal(t, 240, text.top)

	assert.True(t, sep.separator())
	assert.Nil(t, sep.label)
	assert.Nil(t, sep.image)
	assert.Equal(t, 240+lh, sep.top)
	assert.Equal(t, 240+lh+10, sep.anchor(), "separator anchored at its midpoint")

	require.NotNil(t, img.image)
	assert.Equal(t, 240+lh+20, img.top, "separator consumes its height")
	assert.Equal(t, 50, img.height)
	assert.Equal(t, 240+lh+20+50, sc.nextY+240)
}

func TestScrollScene_AnchorsAccumulate(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick,
		model.Text{Text: "a"},
		model.Image{Path: "logo.png"},
		model.Separator{Height: 30},
		model.Text{Text: "b"},
		model.Image{Path: "logo.png"},
	)
	sc.Tick(idle())
	require.Len(t, sc.elements, 5)

	sum := 0
	for i, e := range sc.elements {
		assert.Equal(t, 240+sum, e.top, "element %d", i)
		sum += e.height
	}
}

func TestScrollScene_MissingImageSkipped(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick,
		model.Text{Text: "a"},
		model.Image{Path: "missing.png"},
		model.Text{Text: "b"},
	)
	sc.Tick(idle())

	require.Len(t, sc.elements, 2)
	assert.Equal(t, sc.elements[0].top+sc.elements[0].height, sc.elements[1].top)
}

func TestScrollScene_Offset(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, 4, creditsDirectives()...)

	// 4 * 60 / 480 = half a pixel per tick
	for i := 0; i < 10; i++ {
		sc.Tick(idle())
	}
	assert.Equal(t, 10, sc.ticks)
	assert.Equal(t, 4, sc.offset, "offset computed before the tick counter advances")
	assert.Equal(t, 240-4, sc.elements[0].y)
	assert.Equal(t, 240-4, sc.elements[0].label.Bounds().Y)
}

func TestScrollScene_FinishesWhenLastElementLeaves(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)

	require.Equal(t, state.Running, sc.Tick(idle()))
	last := sc.elements[2]
	bottom := last.top + last.height

	// On tick n the offset is n-1. The image leaves once offset > bottom.
	for n := 2; n <= bottom+1; n++ {
		require.Equal(t, state.Running, sc.Tick(idle()), "tick %d", n)
	}
	assert.Equal(t, 0, last.y+last.height, "bottom edge at the top of the screen")

	assert.Equal(t, state.Finished, sc.Tick(idle()))
	assert.Equal(t, -1, last.y+last.height)
}

func TestScrollScene_SeparatorMidpointEndsScroll(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick,
		model.Text{Text: "a"},
		model.Separator{Height: 40},
	)

	require.Equal(t, state.Running, sc.Tick(idle()))
	anchor := sc.elements[1].anchor()

	for n := 2; n <= anchor+1; n++ {
		require.Equal(t, state.Running, sc.Tick(idle()), "tick %d", n)
	}
	assert.Equal(t, state.Finished, sc.Tick(idle()))
}

func TestScrollScene_HeldKeyAccelerates(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)

	for i := 0; i < 3; i++ {
		sc.Tick(hold(system.ActionAccept))
	}
	assert.Equal(t, 24, sc.ticks)
	assert.Equal(t, 16, sc.offset)

	sc.Tick(hold(system.ActionMain1))
	assert.Equal(t, 32, sc.ticks, "held pointer also accelerates")

	sc.Tick(idle())
	assert.Equal(t, 33, sc.ticks)
}

func TestScrollScene_ClickEndsScene(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)
	sc.Tick(idle())

	assert.Same(t, sc.close, sc.Advance(), "last scrolling scene shows the close control")
	r := sc.Advance().Bounds()
	down, up := clickAt(r.X+1, r.Y+1)

	assert.Equal(t, state.Running, sc.Tick(down))
	assert.Equal(t, 2, sc.ticks, "press on the control scrolls at normal speed")
	assert.Equal(t, state.Finished, sc.Tick(up))
}

func TestScrollScene_Cancel(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)
	sc.Tick(idle())

	assert.Equal(t, state.Finished, sc.Tick(press(system.ActionCancel)))
}

func TestScrollScene_EmptyFinishes(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, model.Image{Path: "missing.png"})

	assert.Equal(t, state.Finished, sc.Tick(idle()))
}

func TestScrollScene_Visibility(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)
	sc.Tick(idle())

	text, sep, img := sc.elements[0], sc.elements[1], sc.elements[2]
	assert.True(t, text.visible(480))
	assert.False(t, sep.visible(480), "separators are never drawn")
	assert.True(t, img.visible(480))

	img.y = 481
	assert.False(t, img.visible(480))
	img.y = -50
	assert.True(t, img.visible(480), "bottom edge still touches the screen")
	img.y = -51
	assert.False(t, img.visible(480))
}

func TestScrollScene_RelayoutRecenters(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)
	sc.Tick(idle())

	env.ViewW = 1000
	sc.Relayout()

	r := sc.elements[0].label.Bounds()
	assert.Equal(t, 500, r.X+r.W/2)
	assert.Equal(t, 1000-32-16, sc.Advance().Bounds().X)
}

func TestScrollScene_Close(t *testing.T) {
	env, _, _ := testEnv(t)
	sc := newScroll(t, env, onePixelPerTick, creditsDirectives()...)
	sc.Tick(idle())

	sc.Close()
	assert.Empty(t, sc.elements)
}
