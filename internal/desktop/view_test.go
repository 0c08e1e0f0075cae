package desktop

// fakeView is a minimal View used by container/seat/desktop tests.
type fakeView struct {
	kind       ViewKind
	title      string
	appID      string
	mapped     bool
	tiled      bool
	fullscreen bool
	geometry   Box
	pending    Box
	output     *Output
	hints      SizeHints
	floating   bool
	activated  bool
	closed     bool
	scene      SceneNode
	events     ViewEvents

	configureCalls int
}

func newFakeView() *fakeView { return &fakeView{scene: newFakeScene()} }

func (v *fakeView) Kind() ViewKind  { return v.kind }
func (v *fakeView) Title() string   { return v.title }
func (v *fakeView) AppID() string   { return v.appID }
func (v *fakeView) Mapped() bool    { return v.mapped }
func (v *fakeView) Tiled() bool     { return v.tiled }
func (v *fakeView) SetTiled(t bool) { v.tiled = t }

func (v *fakeView) Fullscreen() bool     { return v.fullscreen }
func (v *fakeView) SetFullscreen(f bool) { v.fullscreen = f }

func (v *fakeView) Geometry() Box        { return v.geometry }
func (v *fakeView) PendingGeometry() Box { return v.pending }

func (v *fakeView) Output() *Output     { return v.output }
func (v *fakeView) SetOutput(o *Output) { v.output = o }

func (v *fakeView) GetSizeHints() SizeHints { return v.hints }
func (v *fakeView) WantsFloating() bool     { return v.floating }

func (v *fakeView) Configure(lx, ly, w, h int) {
	v.configureCalls++
	v.pending = Box{X: lx, Y: ly, W: w, H: h}
	v.geometry = v.pending
}

func (v *fakeView) SetActivated(activated bool) { v.activated = activated }
func (v *fakeView) SendClose()                  { v.closed = true }

func (v *fakeView) ContentTree() SceneNode { return v.scene }
func (v *fakeView) Events() *ViewEvents    { return &v.events }
