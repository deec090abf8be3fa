package component

// Layer is a physics layer. Each layer maps to one collision category bit.
type Layer uint

const (
	LayerDefault Layer = iota
	LayerPlayer
	LayerCheckpoint
	LayerCollectible
	LayerHazard
)

var layerNames = []string{
	LayerDefault:     "default",
	LayerPlayer:      "player",
	LayerCheckpoint:  "checkpoint",
	LayerCollectible: "collectible",
	LayerHazard:      "hazard",
}

// LayerByName resolves a layer name as used in prefab and level files. An
// empty name is the default layer.
func LayerByName(name string) (Layer, bool) {
	if name == "" {
		return LayerDefault, true
	}
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

func (l Layer) String() string {
	if int(l) < len(layerNames) {
		return layerNames[l]
	}
	return "unknown"
}

func (l Layer) Mask() LayerMask {
	return LayerMask(1) << l
}

// LayerMask selects a set of layers.
type LayerMask uint

const AllLayers = LayerMask(^uint(0))

// MaskExcept returns a mask of every layer except the given ones.
func MaskExcept(layers ...Layer) LayerMask {
	m := AllLayers
	for _, l := range layers {
		m &^= l.Mask()
	}
	return m
}

func (m LayerMask) Has(l Layer) bool {
	return m&l.Mask() != 0
}

// CollisionLayer registers an entity's Box with the physics world. Solid
// boxes block movement; the rest are triggers.
type CollisionLayer struct {
	Layer Layer
	Solid bool
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
