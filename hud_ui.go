package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/raycaster/ecs"
	"golang.org/x/image/font/basicfont"
)

// HUD is a small overlay in the top-right corner showing the active frame
// and whether playback is paused.
type HUD struct {
	ui     *ebitenui.UI
	frame  *widget.Text
	status *widget.Text
}

func NewHUD() *HUD {
	panelImg := imageui.NewNineSliceColor(color.NRGBA{A: 160})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	frame := widget.NewText(widget.TextOpts.Text("frame -", &face, white))
	status := widget.NewText(widget.TextOpts.Text("", &face, color.NRGBA{R: 0xff, G: 0xd0, B: 0x40, A: 0xff}))

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(frame)
	panel.AddChild(status)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)

	return &HUD{ui: &ebitenui.UI{Container: root}, frame: frame, status: status}
}

func (h *HUD) Update(c *ecs.Context) {
	if anim := c.Anim.State; anim != nil && anim.TotalFrames > 0 {
		h.frame.Label = fmt.Sprintf("frame %d/%d", anim.CurrentFrame+1, anim.TotalFrames)
		if anim.Playing {
			h.status.Label = ""
		} else {
			h.status.Label = "paused"
		}
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
