package desktop

import "sync"

// SceneNode is the narrow contract this package needs from the
// underlying scene graph library (out of scope per spec.md §1: the
// renderer, buffer allocator and output backend live behind this and
// similar interfaces). A real backend wires its scene-node type into
// this interface; tests use a fake.
type SceneNode interface {
	SetEnabled(enabled bool)
	SetPosition(x, y int)
	Reparent(parent SceneNode)
	RaiseToTop()
	Destroy()
}

// NodeKind identifies which domain object a scene node's descriptor
// resolves to, per spec.md §3's "Node descriptor".
type NodeKind int

const (
	NodeKindView NodeKind = iota
	NodeKindPopup
	NodeKindLayerSurface
	NodeKindUnmanagedSurface
)

// NodeDescriptor tags a scene-graph leaf with a typed owner, so a
// hit-test result can be resolved back to its domain object (spec.md
// §8 invariant 7: every reachable node's descriptor type matches its
// owner).
type NodeDescriptor struct {
	Kind         NodeKind
	Container    *Container
	LayerSurface *LayerSurface
}

// descriptors is the node→descriptor sidecar table. The design notes
// in spec.md §9 call out that a third-party scene node's opaque
// user-data slot should not be overloaded for more than one meaning;
// keying a table by node identity (design option (a)) keeps the scene
// node itself opaque to this package.
var descriptors = struct {
	mu sync.RWMutex
	m  map[SceneNode]*NodeDescriptor
}{m: make(map[SceneNode]*NodeDescriptor)}

// DescribeNode attaches a descriptor to a scene node.
func DescribeNode(n SceneNode, d *NodeDescriptor) {
	descriptors.mu.Lock()
	defer descriptors.mu.Unlock()
	descriptors.m[n] = d
}

// Describe resolves a scene node back to its descriptor, if any.
func Describe(n SceneNode) (*NodeDescriptor, bool) {
	descriptors.mu.RLock()
	defer descriptors.mu.RUnlock()
	d, ok := descriptors.m[n]
	return d, ok
}

// ForgetNode removes a node's descriptor. Must be called from the
// node's destroy handler before the node itself is freed.
func ForgetNode(n SceneNode) {
	descriptors.mu.Lock()
	defer descriptors.mu.Unlock()
	delete(descriptors.m, n)
}
