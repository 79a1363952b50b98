package collab

import "testing"

func TestResolvePrefersFirstCandidate(t *testing.T) {
	m := NewModule()
	m.Register("ingest", nil, func(Args) (any, error) { return "via ingest", nil })
	m.Register("ingest_documents", nil, func(Args) (any, error) { return "via ingest_documents", nil })

	c := m.Resolve("ingest_documents", "ingest_files", "ingest")
	if c == nil {
		t.Fatal("expected a capability")
	}
	if c.Name != "ingest_documents" {
		t.Errorf("resolved %q, want ingest_documents", c.Name)
	}
}

func TestResolveFallsThroughMissingNames(t *testing.T) {
	m := NewModule()
	m.Register("query", nil, func(Args) (any, error) { return nil, nil })

	c := m.Resolve("chat", "ask", "answer_question", "query")
	if c == nil || c.Name != "query" {
		t.Fatalf("resolved %+v, want query", c)
	}
}

func TestResolveNoneRegistered(t *testing.T) {
	m := NewModule()
	if c := m.Resolve("chat", "ask"); c != nil {
		t.Errorf("resolved %q on an empty module", c.Name)
	}
}

func TestResolveNilEntryPointCountsAsAbsent(t *testing.T) {
	m := NewModule()
	m.Register("chat", nil, nil)
	m.Register("ask", nil, func(Args) (any, error) { return "ok", nil })

	c := m.Resolve("chat", "ask")
	if c == nil || c.Name != "ask" {
		t.Fatalf("resolved %+v, want ask", c)
	}
}

func TestResolveNilModule(t *testing.T) {
	var m *Module
	if c := m.Resolve("chat"); c != nil {
		t.Error("nil module should resolve nothing")
	}
}
