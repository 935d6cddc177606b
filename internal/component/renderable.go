package component

import (
	"mengya/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 3

type Renderable struct {
	Glyph       string
	FGColor     tcell.Color
	BGColor     tcell.Color
	RenderOrder int
	Outline     bool // drawn with a highlight while the player is in reach
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
