package ui

import (
	"bytes"
	"image/color"
	"log"
	"strings"

	cfg "github.com/automoto/cratefall/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HubUI is the start screen: a play button and an editable key binding table.
type HubUI struct {
	UI *ebitenui.UI

	OnPlay func()
	OnSave func(m cfg.ActionMap) error

	keyInputs   [cfg.ActionCount]*widget.TextInput
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewHubUI(bindings cfg.ActionMap, onPlay func(), onSave func(m cfg.ActionMap) error) *HubUI {
	ui := &HubUI{
		OnPlay: onPlay,
		OnSave: onSave,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.SetBindings(bindings)
	return ui
}

func (ui *HubUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 24}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *HubUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("CRATEFALL", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(ui.buildBindingsPanel())

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Keys are comma separated, e.g. ArrowLeft, Q", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	contentContainer.AddChild(ui.statusLabel)

	contentContainer.AddChild(ui.buildButtons())

	rootContainer.AddChild(contentContainer)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *HubUI) buildBindingsPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 45, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	for id := cfg.ActionID(0); id < cfg.ActionCount; id++ {
		row := widget.NewContainer(
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
			)),
		)

		label := widget.NewLabel(
			widget.LabelOpts.Text(padLabel(id.String()), &ui.normalFace, &widget.LabelColor{
				Idle: color.RGBA{200, 200, 200, 255},
			}),
		)
		row.AddChild(label)

		ui.keyInputs[id] = widget.NewTextInput(
			widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 22)),
			widget.TextInputOpts.Image(&widget.TextInputImage{
				Idle:     image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
				Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 50, 255}),
			}),
			widget.TextInputOpts.Face(&ui.normalFace),
			widget.TextInputOpts.Color(&widget.TextInputColor{
				Idle:          color.RGBA{255, 255, 255, 255},
				Disabled:      color.RGBA{128, 128, 128, 255},
				Caret:         color.RGBA{255, 255, 255, 255},
				DisabledCaret: color.RGBA{128, 128, 128, 255},
			}),
			widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
		)
		row.AddChild(ui.keyInputs[id])

		panel.AddChild(row)
	}

	return panel
}

func (ui *HubUI) buildButtons() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)

	playButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		}),
		widget.ButtonOpts.Text("Play", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPlay != nil {
				ui.OnPlay()
			}
		}),
	)
	container.AddChild(playButton)

	saveButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Save keys", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 200, 255, 255},
			Pressed: color.RGBA{150, 150, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.save()
		}),
	)
	container.AddChild(saveButton)

	defaultsButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(100, 28)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text("Defaults", &ui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 200, 200, 255},
			Pressed: color.RGBA{200, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			ui.SetBindings(cfg.DefaultActionMap())
			ui.SetStatus("Defaults restored, press Save keys to keep them")
		}),
	)
	container.AddChild(defaultsButton)

	return container
}

func (ui *HubUI) save() {
	m, err := ui.Bindings()
	if err == nil && ui.OnSave != nil {
		err = ui.OnSave(m)
	}
	if err != nil {
		ui.SetStatus(err.Error())
		return
	}
	ui.SetStatus("Key bindings saved")
}

// SetBindings fills the text inputs from m.
func (ui *HubUI) SetBindings(m cfg.ActionMap) {
	for id, input := range ui.keyInputs {
		input.SetText(strings.Join(m.Keys(cfg.ActionID(id)), ", "))
	}
}

// Bindings parses the text inputs into an action map.
func (ui *HubUI) Bindings() (cfg.ActionMap, error) {
	m := cfg.DefaultActionMap()
	for id, input := range ui.keyInputs {
		if err := m.Rebind(cfg.ActionID(id), strings.Split(input.GetText(), ",")...); err != nil {
			return cfg.ActionMap{}, err
		}
	}
	return m, nil
}

func (ui *HubUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *HubUI) Update() {
	ui.UI.Update()
}

func padLabel(s string) string {
	const width = 8
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
