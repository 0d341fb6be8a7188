package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/input/keyboard"
	"github.com/automoto/cratefall/systems"
	"github.com/automoto/cratefall/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HubScene is the start screen
type HubScene struct {
	hubUI        *ui.HubUI
	sceneChanger SceneChanger
	opts         *Options
	once         sync.Once
}

// NewHubScene creates a new hub scene
func NewHubScene(sc SceneChanger, opts *Options) *HubScene {
	return &HubScene{sceneChanger: sc, opts: opts}
}

func (hs *HubScene) Update() {
	hs.once.Do(hs.configure)
	hs.hubUI.Update()

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		hs.play()
	}
}

func (hs *HubScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if hs.hubUI == nil {
		return
	}
	hs.hubUI.UI.Draw(screen)
}

func (hs *HubScene) configure() {
	hs.hubUI = ui.NewHubUI(hs.opts.Bindings, hs.play, hs.saveBindings)
}

func (hs *HubScene) play() {
	hs.sceneChanger.ChangeScene(NewPlatformerScene(hs.sceneChanger, hs.opts))
}

func (hs *HubScene) saveBindings(m cfg.ActionMap) error {
	kb, err := keyboard.New(m)
	if err != nil {
		return err
	}
	if err := systems.SaveBindings(m); err != nil {
		return err
	}
	hs.opts.Bindings = m.Clone()
	hs.opts.Input = kb
	log.Printf("Key bindings updated")
	return nil
}
