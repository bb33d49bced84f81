package test

import (
	"go.uber.org/fx"
)

// LifecycleRecorder collects fx hooks so tests can drive OnStart/OnStop
// directly instead of spinning up a container.
type LifecycleRecorder struct {
	Hooks []fx.Hook
}

// Append records the hook.
func (l *LifecycleRecorder) Append(h fx.Hook) {
	l.Hooks = append(l.Hooks, h)
}

// ShutdownerStub signals on Called whenever a shutdown is requested.
type ShutdownerStub struct {
	Called chan struct{}
}

// Shutdown notifies the test without blocking.
func (s *ShutdownerStub) Shutdown(...fx.ShutdownOption) error {
	if s.Called != nil {
		select {
		case s.Called <- struct{}{}:
		default:
		}
	}
	return nil
}
