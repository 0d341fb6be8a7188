package scenes

import (
	cfg "github.com/automoto/cratefall/config"
	"github.com/automoto/cratefall/shared/leveldata"
	"github.com/automoto/cratefall/systems"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Options is shared by every scene of one game run.
type Options struct {
	Arena    *leveldata.Arena // nil uses the default arena
	Bindings cfg.ActionMap
	Input    systems.ActionResolver // polled once per tick; nil means no input
	Tuning   *cfg.TuningWatcher // nil disables live tuning reload
}

const layerDefault ecs.LayerID = 0
