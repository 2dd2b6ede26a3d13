package lightswitch

import (
	"github.com/lightswitch-dev/lightswitch/internal/core"
)

// Node is a renderable fragment of a component's view tree.
type Node interface {
	Render() string
}

// Raw wraps pre-rendered markup as a Node.
type Raw string

func (r Raw) Render() string {
	return string(r)
}

// Effect describes work a component schedules during init. Server-side
// rendering discards it; effects only run on the client after
// hydration.
type Effect any

// Component holds the function references the server-side renderer
// late-binds to. Init derives the initial model from flags (alongside
// an effect descriptor), View projects a model to markup. A nil
// function is a caller-configuration bug and panics on invocation.
type Component struct {
	Init func(flags any) (Effect, any)
	View func(model any) Node
}

// RenderClientOnly returns an empty hydration container for targetID
// followed by the launcher script tag for moduleName and a JSON script
// embedding flags. No component code runs; the client entry bootstraps
// the component from scratch using the embedded flags.
func RenderClientOnly(moduleName, targetID string, flags any) (string, error) {
	return core.RenderComponentShell(moduleName, targetID, "", flags)
}

// RenderServerSide invokes the component's Init with flags, renders the
// resulting model through View and wraps the markup in the same
// container and script pair as RenderClientOnly, except that the
// embedded JSON payload is the computed model, so the client entry
// hydrates from server state instead of re-deriving it. The effect
// half of Init's result never runs here.
func RenderServerSide(moduleName string, component Component, targetID string, flags any) (string, error) {
	_, model := component.Init(flags)
	body := component.View(model).Render()
	return core.RenderComponentShell(moduleName, targetID, body, model)
}
