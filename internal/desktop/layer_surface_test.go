package desktop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayerSurfaceFirstCommitConfiguresAndRegisters(t *testing.T) {
	o := newTestOutput()
	scene := newFakeScene()
	ls := NewLayerSurface(o, LayerOverlay, nil, scene, nil)

	ls.Commit(LayerSurfacePending{
		Anchor:   ptrAnchor(AnchorTop | AnchorLeft),
		DesiredW: ptrInt(200),
		DesiredH: ptrInt(100),
	})

	assert.Equal(t, Box{X: 0, Y: 0, W: 200, H: 100}, ls.Box())
	assert.Contains(t, o.LayerSurfaces(LayerOverlay), ls)
}

func TestLayerSurfaceLayerChangeReparents(t *testing.T) {
	o := newTestOutput()
	ls := NewLayerSurface(o, LayerBottom, nil, newFakeScene(), nil)
	ls.Commit(LayerSurfacePending{Anchor: ptrAnchor(AnchorTop), DesiredW: ptrInt(10), DesiredH: ptrInt(10)})

	assert.Contains(t, o.LayerSurfaces(LayerBottom), ls)

	top := LayerTop
	ls.Commit(LayerSurfacePending{Layer: &top})

	assert.NotContains(t, o.LayerSurfaces(LayerBottom), ls)
	assert.Contains(t, o.LayerSurfaces(LayerTop), ls)
}

func TestLayerSurfaceExclusiveFocusArbitration(t *testing.T) {
	o := newTestOutput()
	seat := NewSeat(nil)
	o.SetSeat(seat)

	ls := NewLayerSurface(o, LayerOverlay, nil, newFakeScene(), nil)
	ls.Commit(LayerSurfacePending{Anchor: ptrAnchor(AnchorTop), DesiredW: ptrInt(10), DesiredH: ptrInt(10)})
	ls.Map()

	exclusive := KeyboardInteractivityExclusive
	ls.Commit(LayerSurfacePending{KeyboardInteractivity: &exclusive})

	assert.Equal(t, FocusTarget(ls), seat.Focus())

	ls.Unmap()
	assert.Nil(t, seat.Focus())
}

func TestLayerSurfaceConfigureAgainstCentersUnanchored(t *testing.T) {
	o := newTestOutput()
	ls := NewLayerSurface(o, LayerTop, nil, newFakeScene(), nil)

	full := Box{X: 0, Y: 0, W: 1000, H: 800}
	remaining := full
	ls.desiredW, ls.desiredH = 100, 50

	out := ls.configureAgainst(full, remaining)

	assert.Equal(t, 450, ls.Box().X)
	assert.Equal(t, 375, ls.Box().Y)
	assert.Equal(t, remaining, out)
}
