package ui

import (
	"bytes"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TitleUI holds the ebitenui interface for the title menu
type TitleUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnNewGame  func()
	OnContinue func()
	OnQuit     func()

	continueButton *widget.Button
	statusLabel    *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewTitleUI creates the title menu. Continue starts disabled when there is
// no save to resume.
func NewTitleUI(title string, hasSave bool, onNewGame, onContinue, onQuit func()) *TitleUI {
	tui := &TitleUI{
		OnNewGame:  onNewGame,
		OnContinue: onContinue,
		OnQuit:     onQuit,
	}

	tui.loadFonts()
	tui.buildUI(title)
	tui.continueButton.GetWidget().Disabled = !hasSave

	return tui
}

func (tui *TitleUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	// Sized for the 320x240 logical screen
	tui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   20,
	}
	tui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   11,
	}
	tui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   8,
	}
}

func (tui *TitleUI) buildUI(title string) {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{15, 25, 50, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text(title, &tui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(tui.menuButton("New Game", tui.OnNewGame))
	tui.continueButton = tui.menuButton("Continue", tui.OnContinue)
	contentContainer.AddChild(tui.continueButton)
	contentContainer.AddChild(tui.menuButton("Quit", tui.OnQuit))

	tui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("Arrows/WASD move, SPACE enters doors", &tui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 180, 200, 255},
		}),
	)
	contentContainer.AddChild(tui.statusLabel)

	rootContainer.AddChild(contentContainer)

	tui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (tui *TitleUI) menuButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(110, 22)),
		widget.ButtonOpts.Image(tui.buttonImage()),
		widget.ButtonOpts.Text(label, &tui.normalFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{255, 255, 255, 255},
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}

func (tui *TitleUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// SetStatus replaces the hint line under the buttons
func (tui *TitleUI) SetStatus(status string) {
	tui.statusLabel.Label = status
}

func (tui *TitleUI) Update() {
	tui.UI.Update()
}
