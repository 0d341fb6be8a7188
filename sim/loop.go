package sim

import (
	"log"
	"sync"
	"time"
)

// StepFunc runs one tick of dt seconds. Returning false stops the loop.
type StepFunc func(dt float64) bool

// Loop calls a StepFunc at a fixed rate in real time.
type Loop struct {
	step     StepFunc
	tickRate int
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewLoop(tickRate int, step StepFunc) *Loop {
	if tickRate <= 0 {
		panic("sim: tick rate must be positive")
	}
	return &Loop{
		step:     step,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or the step function returns false.
func (l *Loop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	dt := 1 / float64(l.tickRate)
	log.Printf("Simulation loop started at %d ticks/second", l.tickRate)

	for {
		select {
		case <-l.stopChan:
			log.Println("Simulation loop stopped")
			return
		case <-ticker.C:
			if !l.step(dt) {
				log.Println("Simulation loop finished")
				return
			}
		}
	}
}

// Stop ends Run. It is safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopChan)
	})
}
