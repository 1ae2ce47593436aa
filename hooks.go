package datefmt

import "time"

// BuildEvent describes one formatter construction, successful or failed.
// Cache hits do not produce events.
type BuildEvent struct {
	Key      Key
	Duration time.Duration
	Err      error
}

// Hook observes formatter constructions.
type Hook interface {
	FormatterBuilt(event BuildEvent)
}

// HookFuncs adapts bare functions to the Hook interface.
type HookFuncs struct {
	Built func(event BuildEvent)
}

func (h HookFuncs) FormatterBuilt(event BuildEvent) {
	if h.Built != nil {
		h.Built(event)
	}
}
