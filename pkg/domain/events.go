package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLevel         EventType = "level"
	EventConfiguration EventType = "configuration"
	EventHalt          EventType = "halt"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	Machine   string    `json:"machine"`
	Input     string    `json:"input"`
}

// LevelEvent fires when the engine finishes one BFS level.
type LevelEvent struct {
	EventBase
	Level    int `json:"level"`
	Frontier int `json:"frontier"` // configurations enqueued for the next level
}

// ConfigurationEvent fires for every configuration dequeued and explored.
type ConfigurationEvent struct {
	EventBase
	Level         int           `json:"level"`
	Configuration Configuration `json:"configuration"`
	OutDegree     int           `json:"out_degree"`
	Terminal      bool          `json:"terminal"`
}

// HaltEvent fires exactly once, when the run ends.
type HaltEvent struct {
	EventBase
	Status   Status        `json:"status"`
	Levels   int           `json:"levels"`
	Explored int           `json:"explored"`
	Elapsed  time.Duration `json:"elapsed"`
}

// LifecycleHooks defines callbacks for engine observability. Any field may
// be nil; the engine skips it. Hooks run synchronously on the exploration
// goroutine and must not block.
type LifecycleHooks struct {
	OnLevel         func(context.Context, *LevelEvent)
	OnConfiguration func(context.Context, *ConfigurationEvent)
	OnHalt          func(context.Context, *HaltEvent)
}
