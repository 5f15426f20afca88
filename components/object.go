package components

import (
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's authoritative position plus the resolv object
// used as its bounding box. Body is derived from Position; call SyncBounds
// after every position change so the box and its space cells follow.
type ObjectData struct {
	Position gamemath.Vector
	Body     *resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// NewObjectData creates an object at (x, y) of size w x h tagged with tags.
func NewObjectData(x, y, w, h float64, tags ...string) ObjectData {
	body := resolv.NewObject(x, y, w, h, tags...)
	body.SetShape(resolv.NewRectangle(0, 0, w, h))
	return ObjectData{
		Position: gamemath.Vector{X: x, Y: y},
		Body:     body,
	}
}

// Bounds returns the current bounding box.
func (o *ObjectData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: o.Body.X, Y: o.Body.Y, W: o.Body.W, H: o.Body.H}
}

// Size returns the body width and height.
func (o *ObjectData) Size() (float64, float64) {
	return o.Body.W, o.Body.H
}

// SyncBounds copies Position into the bounding box.
func (o *ObjectData) SyncBounds() {
	o.Body.X = o.Position.X
	o.Body.Y = o.Position.Y
	if o.Body.Space != nil {
		o.Body.Update()
	}
}

// SetPosition moves the object and resyncs its bounds.
func (o *ObjectData) SetPosition(x, y float64) {
	o.Position = gamemath.Vector{X: x, Y: y}
	o.SyncBounds()
}
