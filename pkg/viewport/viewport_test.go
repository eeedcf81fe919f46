package viewport_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"go.llib.dev/lazyiter/pkg/viewport"
)

type box viewport.Rect

func (b box) BoundingRect() viewport.Rect { return viewport.Rect(b) }

type scrollBox struct {
	rect      viewport.Rect
	scrollTop float64
	sets      int
}

func (s *scrollBox) BoundingRect() viewport.Rect { return s.rect }
func (s *scrollBox) ScrollTop() float64          { return s.scrollTop }
func (s *scrollBox) SetScrollTop(v float64) {
	s.sets++
	s.scrollTop = v
}

func TestHitTest(t *testing.T) {
	node := box(viewport.RectFromLTWH(0, 0, 100, 100))

	require.True(t, viewport.HitTest(node, 0, 0))
	require.True(t, viewport.HitTest(node, 99, 99))
	require.True(t, viewport.HitTest(node, 50, 50))
	require.False(t, viewport.HitTest(node, 100, 50))
	require.False(t, viewport.HitTest(node, 50, 100))
	require.False(t, viewport.HitTest(node, -1, 50))
	require.False(t, viewport.HitTest(nil, 0, 0))
}

func TestRect(t *testing.T) {
	r := viewport.RectFromLTWH(10, 20, 30, 40)
	require.Equal(t, viewport.Rect{Left: 10, Top: 20, Right: 40, Bottom: 60}, r)
	require.Equal(t, 30.0, r.Width())
	require.Equal(t, 40.0, r.Height())
}

func TestScrollIfNeeded(t *testing.T) {
	newArea := func() *scrollBox {
		return &scrollBox{rect: viewport.RectFromLTWH(0, 100, 200, 300), scrollTop: 500}
	}

	t.Run("within the visible area", func(t *testing.T) {
		area := newArea()
		viewport.ScrollIfNeeded(area, box(viewport.RectFromLTWH(0, 150, 200, 50)), 0)
		require.Equal(t, 500.0, area.scrollTop)
		require.Equal(t, 0, area.sets)
	})
	t.Run("within the threshold", func(t *testing.T) {
		area := newArea()
		viewport.ScrollIfNeeded(area, box(viewport.RectFromLTWH(0, 90, 200, 50)), 10)
		viewport.ScrollIfNeeded(area, box(viewport.RectFromLTWH(0, 360, 200, 50)), 10)
		require.Equal(t, 500.0, area.scrollTop)
		require.Equal(t, 0, area.sets)
	})
	t.Run("above the visible area the top edge is revealed", func(t *testing.T) {
		area := newArea()
		viewport.ScrollIfNeeded(area, box(viewport.RectFromLTWH(0, 40, 200, 50)), 0)
		require.Equal(t, 440.0, area.scrollTop)
	})
	t.Run("above the visible area with threshold", func(t *testing.T) {
		area := newArea()
		viewport.ScrollIfNeeded(area, box(viewport.RectFromLTWH(0, 40, 200, 50)), 10)
		require.Equal(t, 450.0, area.scrollTop)
	})
	t.Run("below the visible area the bottom edge is revealed", func(t *testing.T) {
		area := newArea()
		viewport.ScrollIfNeeded(area, box(viewport.RectFromLTWH(0, 420, 200, 50)), 0)
		require.Equal(t, 570.0, area.scrollTop)
	})
	t.Run("nil arguments", func(t *testing.T) {
		area := newArea()
		viewport.ScrollIfNeeded(area, nil, 0)
		viewport.ScrollIfNeeded(nil, box(viewport.Rect{}), 0)
		require.Equal(t, 0, area.sets)
	})
}
