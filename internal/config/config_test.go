package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Upload.DirPrefix != "rag_uploads_" {
		t.Errorf("dir prefix = %q", cfg.Upload.DirPrefix)
	}
	if !reflect.DeepEqual(cfg.Upload.Extensions, []string{"pdf", "txt", "md"}) {
		t.Errorf("extensions = %v", cfg.Upload.Extensions)
	}
	wantIngest := []string{"ingest_documents", "ingest_files", "ingest"}
	if !reflect.DeepEqual(cfg.Collaborators.IngestCandidates, wantIngest) {
		t.Errorf("ingest candidates = %v", cfg.Collaborators.IngestCandidates)
	}
	wantChat := []string{"chat", "ask", "answer_question", "query"}
	if !reflect.DeepEqual(cfg.Collaborators.ChatCandidates, wantChat) {
		t.Errorf("chat candidates = %v", cfg.Collaborators.ChatCandidates)
	}
}

func TestLoadFillsOmittedSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := "upload:\n  extensions: [txt]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg.Upload.Extensions, []string{"txt"}) {
		t.Errorf("extensions = %v, want the explicit value kept", cfg.Upload.Extensions)
	}
	if cfg.Upload.DirPrefix != "rag_uploads_" {
		t.Errorf("dir prefix default not applied: %q", cfg.Upload.DirPrefix)
	}
	if len(cfg.Collaborators.ChatCandidates) == 0 {
		t.Error("chat candidate defaults not applied")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := &AppConfig{
		Upload: UploadConfig{DirPrefix: "docs_", Extensions: []string{"md"}},
		Collaborators: CollaboratorConfig{
			IngestCandidates: []string{"ingest"},
			ChatCandidates:   []string{"query"},
		},
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip: got %+v, want %+v", got, want)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("upload: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected a parse error")
	}
}

func TestLoadCredentials(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-1")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("COHERE_API_KEY", "co-1")
	t.Setenv("PINECONE_API_KEY", "")

	creds := LoadCredentials()
	if creds.OpenAIAPIKey != "sk-1" || creds.CohereAPIKey != "co-1" {
		t.Errorf("creds = %+v", creds)
	}
	keys := creds.Keys()
	if len(keys) != 4 {
		t.Fatalf("got %d keys", len(keys))
	}
	wantSet := map[string]bool{
		"OPENAI_API_KEY":    true,
		"ANTHROPIC_API_KEY": false,
		"COHERE_API_KEY":    true,
		"PINECONE_API_KEY":  false,
	}
	for _, k := range keys {
		if k.Set != wantSet[k.Name] {
			t.Errorf("%s set = %v, want %v", k.Name, k.Set, wantSet[k.Name])
		}
	}
}
