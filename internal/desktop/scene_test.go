package desktop

// fakeScene is a minimal SceneNode used across this package's tests so
// arrange/focus logic can be exercised without a real scene graph.
type fakeScene struct {
	enabled    bool
	x, y       int
	parent     SceneNode
	raised     int
	destroyed  bool
}

func newFakeScene() *fakeScene { return &fakeScene{} }

func (s *fakeScene) SetEnabled(enabled bool)    { s.enabled = enabled }
func (s *fakeScene) SetPosition(x, y int)       { s.x, s.y = x, y }
func (s *fakeScene) Reparent(parent SceneNode)  { s.parent = parent }
func (s *fakeScene) RaiseToTop()                { s.raised++ }
func (s *fakeScene) Destroy()                   { s.destroyed = true }
