package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/starmaze/common"
	"github.com/milk9111/starmaze/maze"
)

const descriptionWidth = 420

// GameUI holds the ebitenui overlay: the hotspot description panel and the
// rules modal shown at start.
type GameUI struct {
	UI *ebitenui.UI

	rules     *widget.Container
	rulesText *widget.Text
	panel     *widget.Container
	title     *widget.Text
	body      *widget.Text
}

var _ maze.DescriptionPanel = (*GameUI)(nil)

func NewGameUI(rules string) *GameUI {
	u := &GameUI{}

	face := ebtext.Face(ebtext.NewGoXFace(basicfont.Face7x13))
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnTextColor := &widget.ButtonTextColor{Idle: white}
	centered := widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})

	u.title = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	)
	u.body = widget.NewText(
		widget.TextOpts.Text("", &face, white),
		widget.TextOpts.MaxWidth(descriptionWidth-40),
	)
	closeBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Close", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			u.HideDescription()
		}),
	)
	u.panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 200})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 20, Right: 20}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(descriptionWidth, common.BaseHeight/4),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	u.panel.AddChild(u.title)
	u.panel.AddChild(u.body)
	u.panel.AddChild(closeBtn)
	u.panel.GetWidget().Visibility = widget.Visibility_Hide

	u.rulesText = widget.NewText(
		widget.TextOpts.Text(rules, &face, white),
		widget.TextOpts.MaxWidth(common.BaseWidth/2-60),
	)
	startBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Pressed: btnImg}),
		widget.ButtonOpts.Text("Start", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(centered),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			u.rules.GetWidget().Visibility = widget.Visibility_Hide
		}),
	)
	dialog := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 220})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 30, Bottom: 30, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/2, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	dialog.AddChild(widget.NewText(
		widget.TextOpts.Text("How to play", &face, white),
		widget.TextOpts.WidgetOpts(centered),
	))
	dialog.AddChild(u.rulesText)
	dialog.AddChild(startBtn)

	// full-screen so clicks outside the dialog never reach the maze
	u.rules = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 120})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				StretchHorizontal: true,
				StretchVertical:   true,
			}),
		),
	)
	u.rules.AddChild(dialog)
	if rules == "" {
		u.rules.GetWidget().Visibility = widget.Visibility_Hide
	}

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(u.panel)
	root.AddChild(u.rules)

	u.UI = &ebitenui.UI{Container: root}
	return u
}

func (u *GameUI) ShowDescription(title, text string) {
	u.title.Label = title
	u.body.Label = text
	u.panel.GetWidget().Visibility = widget.Visibility_Show
	u.panel.RequestRelayout()
}

func (u *GameUI) HideDescription() {
	u.panel.GetWidget().Visibility = widget.Visibility_Hide
}

// RulesOpen reports whether the rules modal is on screen.
func (u *GameUI) RulesOpen() bool {
	return u.rules.GetWidget().Visibility == widget.Visibility_Show
}

// SetRules replaces the rules text without reopening the modal.
func (u *GameUI) SetRules(text string) {
	u.rulesText.Label = text
}
