package domain

import "fmt"

// Point is a screen coordinate in pixels
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Box is a screen-pixel bounding box anchored at its top-left corner
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Right returns the x coordinate of the right edge
func (b Box) Right() int {
	return b.X + b.Width
}

// Bottom returns the y coordinate of the bottom edge
func (b Box) Bottom() int {
	return b.Y + b.Height
}

func (b Box) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", b.X, b.Y, b.Width, b.Height)
}
