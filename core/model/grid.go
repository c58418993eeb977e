package model

import (
	game_log "github.com/ingyamilmolinar/processp/internal/log"
)

const (
	Steps  = 16 // sixteenth-note slots per pattern
	Tracks = 8
)

// TrackIDs maps track index to the sample identifier it plays.
var TrackIDs = [Tracks]string{"kick", "snare", "clap", "hat", "clave", "tom3", "tom2", "tom1"}

// Grid stores one velocity per step and track. A zero velocity means the
// cell is off; any other value lies in (0,1] and is used as playback gain.
type Grid struct {
	cells  [Steps][Tracks]float64
	logger *game_log.Logger
}

func NewGrid(logger *game_log.Logger) *Grid {
	return &Grid{logger: logger}
}

func inRange(step, track int) bool {
	return step >= 0 && step < Steps && track >= 0 && track < Tracks
}

// Toggle turns an off cell on with velocity v, or turns an on cell off
// regardless of v. It returns the cell's new velocity.
func (g *Grid) Toggle(step, track int, v float64) float64 {
	if !inRange(step, track) {
		return 0
	}
	if g.cells[step][track] > 0 {
		g.cells[step][track] = 0
	} else {
		g.cells[step][track] = clampVelocity(v)
	}
	g.logger.Debugf("[GRID] Toggled step=%d track=%d velocity=%.3f", step, track, g.cells[step][track])
	return g.cells[step][track]
}

// Column returns a copy of the velocities of every track at step.
func (g *Grid) Column(step int) []float64 {
	if step < 0 || step >= Steps {
		return nil
	}
	col := make([]float64, Tracks)
	copy(col, g.cells[step][:])
	return col
}

func (g *Grid) Velocity(step, track int) float64 {
	if !inRange(step, track) {
		return 0
	}
	return g.cells[step][track]
}

func (g *Grid) IsPlayable(step, track int) bool {
	return g.Velocity(step, track) > 0
}

// Active counts the cells that are on.
func (g *Grid) Active() int {
	n := 0
	for s := range g.cells {
		for t := range g.cells[s] {
			if g.cells[s][t] > 0 {
				n++
			}
		}
	}
	return n
}

func (g *Grid) Clear() {
	g.cells = [Steps][Tracks]float64{}
	g.logger.Debugf("[GRID] Cleared")
}

// VelocityFromOffset converts the fractional vertical position of a click
// inside a cell (0 at the top edge) into a velocity: the top is loudest.
func VelocityFromOffset(f float64) float64 {
	return clampVelocity(1 - f)
}

// minVelocity is the smallest velocity an on cell can hold.
const minVelocity = 1e-3

func clampVelocity(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < minVelocity {
		return minVelocity
	}
	return v
}
