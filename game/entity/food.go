package entity

import "snake-arcade/game/types"

// FoodStyle is the look and value of a piece of food.
type FoodStyle struct {
	Weight int // Score awarded when eaten
	Color  types.Color
}

// FoodStyles is the fixed palette food styles are drawn from.
var FoodStyles = [...]FoodStyle{
	{Weight: 10, Color: types.Color{R: 255, G: 100, B: 100}},
	{Weight: 20, Color: types.Color{R: 100, G: 255, B: 100}},
	{Weight: 30, Color: types.Color{R: 100, G: 100, B: 255}},
}

// Food is a single piece of food on the grid.
type Food struct {
	Pos   types.Point
	Style FoodStyle
}
