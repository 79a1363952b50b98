// Package collab is the adapter layer between the UI and the external RAG
// collaborators. The collaborator API is still settling, so capabilities are
// registered under names and looked up through an ordered candidate list
// instead of being hard-coded to one function. All name-based compatibility
// logic lives here.
package collab

import (
	"github.com/paker7000/rag-chatbot/internal/config"
	"github.com/paker7000/rag-chatbot/internal/domain"
)

// Args carries every argument any collaborator version may want. A
// capability receives only the fields it declares; the rest arrive zeroed.
type Args struct {
	Question string
	Messages []domain.Message
	Config   config.Credentials
	Files    []string
}

// Argument names a capability may declare.
const (
	ArgQuestion = "question"
	ArgMessages = "messages"
	ArgConfig   = "config"
	ArgFiles    = "files"
)

// Capability is a single named entry point exposed by a collaborator,
// together with the argument names it reads.
type Capability struct {
	Name   string
	Params []string
	Call   func(Args) (any, error)
}

// Module is a named-capability registry standing in for one collaborator.
type Module struct {
	caps map[string]Capability
}

// NewModule returns an empty registry.
func NewModule() *Module {
	return &Module{caps: make(map[string]Capability)}
}

// Register exposes fn under the given name, replacing any previous entry.
func (m *Module) Register(name string, params []string, fn func(Args) (any, error)) {
	m.caps[name] = Capability{Name: name, Params: params, Call: fn}
}

// Resolve walks candidates in order and returns the first registered
// capability with a usable entry point. A name registered with a nil
// function counts as absent. Returns nil when nothing matches.
func (m *Module) Resolve(candidates ...string) *Capability {
	if m == nil {
		return nil
	}
	for _, name := range candidates {
		c, ok := m.caps[name]
		if ok && c.Call != nil {
			return &c
		}
	}
	return nil
}
