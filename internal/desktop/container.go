package desktop

// TilingMode selects the axis a tree container splits its children on.
type TilingMode int

const (
	TilingHorizontal TilingMode = iota
	TilingVertical
)

// ContainerKind discriminates the two Container variants described in
// spec.md §3. We use a closed tagged struct rather than an interface
// hierarchy here (unlike the View variants in view.go) because arrange
// must recurse uniformly across both kinds and the fields are mostly
// shared; spec.md §9 reserves the tagged-interface treatment for the
// genuinely polymorphic, externally-driven View variants.
type ContainerKind int

const (
	ContainerKindTree ContainerKind = iota
	ContainerKindView
)

// child pairs a tree container's child with its tiling share.
type child struct {
	container *Container
	percent   float64
}

// Container is one node of the layout tree: either an interior tree
// container with a tiling mode and children, or a leaf wrapping a View.
type Container struct {
	kind ContainerKind

	area       Box
	workspace  *Workspace
	parent     *Container // nil for the workspace root and for floating roots
	fullscreen bool

	scene SceneNode

	// ContainerKindTree fields.
	mode     TilingMode
	children []child

	// ContainerKindView fields.
	view    View
	pending Box
}

// NewTreeContainer creates an empty interior container in the given mode.
func NewTreeContainer(ws *Workspace, mode TilingMode, scene SceneNode) *Container {
	c := &Container{kind: ContainerKindTree, workspace: ws, mode: mode, scene: scene}
	if scene != nil {
		DescribeNode(scene, &NodeDescriptor{Kind: NodeKindView, Container: c})
	}
	return c
}

// NewViewContainer wraps v in a leaf container. v's destruction is the
// container's owner's responsibility (spec.md §3: "Ownership:
// exclusively owned by its view container").
func NewViewContainer(ws *Workspace, v View) *Container {
	c := &Container{kind: ContainerKindView, workspace: ws, view: v}
	if scene := v.ContentTree(); scene != nil {
		c.scene = scene
		DescribeNode(scene, &NodeDescriptor{Kind: NodeKindView, Container: c})
	}
	return c
}

func (c *Container) IsTree() bool { return c.kind == ContainerKindTree }
func (c *Container) IsView() bool { return c.kind == ContainerKindView }

func (c *Container) Area() Box         { return c.area }
func (c *Container) Workspace() *Workspace { return c.workspace }
func (c *Container) Parent() *Container { return c.parent }
func (c *Container) Fullscreen() bool  { return c.fullscreen }
func (c *Container) View() View        { return c.view }
func (c *Container) Mode() TilingMode  { return c.mode }
func (c *Container) Scene() SceneNode  { return c.scene }

// Children returns the tree container's child containers in order.
func (c *Container) Children() []*Container {
	out := make([]*Container, len(c.children))
	for i, ch := range c.children {
		out[i] = ch.container
	}
	return out
}

// Percent returns c's tiling share of its parent, or 0 if c has no parent.
func (c *Container) Percent() float64 {
	if c.parent == nil {
		return 0
	}
	for _, ch := range c.parent.children {
		if ch.container == c {
			return ch.percent
		}
	}
	return 0
}

// SetFullscreen sets the container's fullscreen flag. It does not
// itself move the container between workspaces or layers; callers
// implement spec.md §4.5's request_fullscreen handling around this.
func (c *Container) SetFullscreen(fs bool) {
	c.fullscreen = fs
}

// Arrange assigns area to c and, for a tree container, recurses into
// its children per spec.md §4.1's algorithm. For a view container it
// configures the wrapped view. Arrange is total: a zero-area input
// produces zero-area children/configures with no error.
func (c *Container) Arrange(area Box) {
	c.area = area

	if c.kind == ContainerKindView {
		c.pending = area
		if c.view != nil {
			c.view.Configure(area.X, area.Y, area.W, area.H)
		}
		if c.scene != nil {
			c.scene.SetPosition(area.X, area.Y)
		}
		return
	}

	n := len(c.children)
	if n == 0 {
		return
	}

	if c.mode == TilingHorizontal {
		c.arrangeAxis(area, n, func(i int) (int, int) { return area.X, area.W },
			func(childArea Box, off, size int) Box {
				childArea.X = off
				childArea.W = size
				return childArea
			})
	} else {
		c.arrangeAxis(area, n, func(i int) (int, int) { return area.Y, area.H },
			func(childArea Box, off, size int) Box {
				childArea.Y = off
				childArea.H = size
				return childArea
			})
	}
}

// arrangeAxis implements the shared horizontal/vertical split math:
// each child gets floor(total * percent) along the split axis, with
// the last child absorbing the rounding remainder so the sum is exact.
func (c *Container) arrangeAxis(area Box, n int, base func(int) (int, int), apply func(Box, int, int) Box) {
	origin, total := base(0)
	offset := origin
	consumed := 0
	for i, ch := range c.children {
		var size int
		if i == n-1 {
			size = total - consumed
		} else {
			size = int(float64(total) * ch.percent)
			consumed += size
		}
		childArea := apply(area, offset, size)
		ch.container.parent = c
		ch.container.Arrange(childArea)
		offset += size
	}
}

// renormalize sets every child's percentage to 1/n, per spec.md §4.1's
// insert/remove policy: uneven user-set shares are never preserved.
func (c *Container) renormalize() {
	n := len(c.children)
	if n == 0 {
		return
	}
	share := 1.0 / float64(n)
	for i := range c.children {
		c.children[i].percent = share
	}
}

// InsertChild inserts child at index idx (clamped to [0, len]),
// renormalizes siblings, and rearranges c over its current area.
func (c *Container) InsertChild(idx int, ch *Container) {
	if idx < 0 {
		idx = 0
	}
	if idx > len(c.children) {
		idx = len(c.children)
	}
	ch.parent = c
	ch.workspace = c.workspace

	c.children = append(c.children, child{})
	copy(c.children[idx+1:], c.children[idx:])
	c.children[idx] = child{container: ch}

	c.renormalize()
	c.Arrange(c.area)
}

// AppendChild inserts ch at the end of c's children.
func (c *Container) AppendChild(ch *Container) {
	c.InsertChild(len(c.children), ch)
}

// RemoveChild detaches ch from c, renormalizes the remaining siblings,
// and rearranges c. It is a no-op if ch is not a child of c.
func (c *Container) RemoveChild(ch *Container) {
	for i, cc := range c.children {
		if cc.container == ch {
			c.children = append(c.children[:i], c.children[i+1:]...)
			ch.parent = nil
			c.renormalize()
			c.Arrange(c.area)
			return
		}
	}
}

// Reparent moves ch from its current parent (if any) to newParent at
// index idx, implementing spec.md §4.1's parent-change contract:
// detach+rearrange old parent, attach+renormalize+rearrange new
// parent, reparent the scene subtree.
func Reparent(ch *Container, newParent *Container, idx int) {
	oldParent := ch.parent
	oldWorkspace := ch.workspace

	if oldParent != nil {
		oldParent.RemoveChild(ch)
	}

	newParent.InsertChild(idx, ch)
	ch.workspace = newParent.workspace

	if ch.scene != nil && newParent.scene != nil {
		ch.scene.Reparent(newParent.scene)
	}

	if oldWorkspace != nil && oldWorkspace != ch.workspace {
		oldWorkspace.Arrange()
	}
	if ch.workspace != nil {
		ch.workspace.Arrange()
	}
}

// Destroy detaches c from its parent (if tree-owned) and forgets its
// scene descriptor. The caller is responsible for destroying c's View,
// per spec.md §3 ownership rules.
func (c *Container) Destroy() {
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	if c.scene != nil {
		ForgetNode(c.scene)
	}
}
