// Package rag is where the retrieval subsystem plugs into the UI. The
// ingestion pipeline and answer synthesis are being built elsewhere; until
// they land, both modules are empty and the UI reports the registration
// instructions instead.
package rag

import "github.com/paker7000/rag-chatbot/internal/collab"

// Ingest returns the ingestion collaborator. Implementations register an
// entry point here under one of ingest_documents, ingest_files or ingest,
// declaring the arguments it reads (files, config).
func Ingest() *collab.Module {
	return collab.NewModule()
}

// Chat returns the chat collaborator. Implementations register an entry
// point here under one of chat, ask, answer_question or query, declaring
// the arguments it reads (question, messages, config).
func Chat() *collab.Module {
	return collab.NewModule()
}
