package components

import "github.com/yohamta/donburi"

// SessionData is the simulation clock of a game session.
type SessionData struct {
	Now          float64 // Seconds of simulated time, including the current tick
	Tick         uint64
	MetalSpawned bool
}

var Session = donburi.NewComponentType[SessionData]()
