// Package session owns the per-session state of the chat UI: the transcript,
// the latest citations and the index status. It is the only place where
// collaborator failures are translated into user-visible text.
package session

import (
	"github.com/google/uuid"

	"github.com/paker7000/rag-chatbot/internal/collab"
	"github.com/paker7000/rag-chatbot/internal/config"
	"github.com/paker7000/rag-chatbot/internal/domain"
	"github.com/paker7000/rag-chatbot/internal/upload"
)

// Fixed status and message texts.
const (
	StatusNoIndex = "No index created yet."
	StatusNoFiles = "Please upload at least one file."

	MsgIngestNotAvailable = "Ingestion capability not available yet. " +
		"Register ingest_documents/ingest_files in internal/rag."
	MsgChatNotAvailable = "Chat capability not available yet. " +
		"Register chat/ask/answer_question in internal/rag."
)

// Session holds one interactive session. Not safe for concurrent use; the
// event loop serializes every interaction.
type Session struct {
	id               uuid.UUID
	creds            config.Credentials
	ingest           *collab.Module
	chat             *collab.Module
	ingestCandidates []string
	chatCandidates   []string
	uploads          *upload.Store

	messages      []domain.Message
	lastCitations []string
	indexStatus   string
}

// New creates a session wired to the two collaborator modules. The upload
// directory name embeds the session ID so concurrent processes never share
// one.
func New(creds config.Credentials, cfg *config.AppConfig, ingest, chat *collab.Module) *Session {
	id := uuid.New()
	prefix := cfg.Upload.DirPrefix + id.String()[:8] + "_"
	return &Session{
		id:               id,
		creds:            creds,
		ingest:           ingest,
		chat:             chat,
		ingestCandidates: cfg.Collaborators.IngestCandidates,
		chatCandidates:   cfg.Collaborators.ChatCandidates,
		uploads:          upload.NewStore(prefix, cfg.Upload.Extensions),
		indexStatus:      StatusNoIndex,
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Messages returns the transcript so far, oldest first.
func (s *Session) Messages() []domain.Message { return s.messages }

// Citations returns the citations of the most recent assistant turn.
func (s *Session) Citations() []string { return s.lastCitations }

// IndexStatus returns the status text of the most recent indexing attempt.
func (s *Session) IndexStatus() string { return s.indexStatus }

// Index persists the given files into the session upload directory and hands
// them to the ingestion collaborator. The resulting status text replaces the
// previous one and is also returned. Failures never escape as errors.
func (s *Session) Index(paths []string) string {
	c := s.ingest.Resolve(s.ingestCandidates...)
	switch {
	case c == nil:
		s.indexStatus = MsgIngestNotAvailable
	case len(paths) == 0:
		s.indexStatus = StatusNoFiles
	default:
		s.indexStatus = s.runIngest(c, paths)
	}
	return s.indexStatus
}

func (s *Session) runIngest(c *collab.Capability, paths []string) string {
	saved := make([]string, 0, len(paths))
	for _, p := range paths {
		dst, err := s.uploads.SaveFile(p)
		if err != nil {
			return "Indexing failed: " + err.Error()
		}
		saved = append(saved, dst)
	}
	raw, err := collab.Invoke(c, collab.Args{Files: saved, Config: s.creds})
	if err != nil {
		return "Indexing failed: " + err.Error()
	}
	return collab.NormalizeStatus(raw)
}

// Chat appends the user's question to the transcript, asks the chat
// collaborator, appends the assistant's answer and replaces the citation
// list. A collaborator failure becomes the literal answer text.
func (s *Session) Chat(question string) domain.ChatResult {
	s.messages = append(s.messages, domain.Message{Role: domain.RoleUser, Content: question})

	var result domain.ChatResult
	c := s.chat.Resolve(s.chatCandidates...)
	if c == nil {
		result = domain.ChatResult{Answer: MsgChatNotAvailable, Citations: []string{}}
	} else {
		history := make([]domain.Message, len(s.messages))
		copy(history, s.messages)
		raw, err := collab.Invoke(c, collab.Args{
			Question: question,
			Messages: history,
			Config:   s.creds,
		})
		if err != nil {
			raw = "Chat failed: " + err.Error()
		}
		result = collab.NormalizeChat(raw)
	}

	s.messages = append(s.messages, domain.Message{Role: domain.RoleAssistant, Content: result.Answer})
	s.lastCitations = result.Citations
	return result
}
