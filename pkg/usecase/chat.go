package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"strings"
	"sync"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/juris-lab/themis/pkg/domain/interfaces"
	"github.com/juris-lab/themis/pkg/domain/model"
	"github.com/juris-lab/themis/pkg/domain/types"
)

//go:embed prompt/chat_system.md
var chatSystemPromptTmpl string

var chatSystemPrompt = template.Must(template.New("chat_system").Parse(chatSystemPromptTmpl))

// chatPromptData holds the data for the chat system prompt template
type chatPromptData struct {
	DocumentCount int
	Corpus        string
}

// ChatUseCase answers user questions grounded on a session's corpus.
// One LLM session is kept per Themis session so the provider sees the
// full conversation; the domain-side history is appended in parallel
// for display and survives provider failures.
type ChatUseCase struct {
	repo      interfaces.Repository
	llmClient gollem.LLMClient

	mu   sync.Mutex
	live map[types.SessionID]gollem.Session
}

// NewChatUseCase creates a new ChatUseCase
func NewChatUseCase(repo interfaces.Repository, llmClient gollem.LLMClient) *ChatUseCase {
	return &ChatUseCase{
		repo:      repo,
		llmClient: llmClient,
		live:      make(map[types.SessionID]gollem.Session),
	}
}

// Ask records the user's question, generates a grounded answer and
// records it as the assistant turn. If the provider fails, the user
// turn stays recorded and the error is returned to the caller; the
// session itself remains usable.
func (uc *ChatUseCase) Ask(ctx context.Context, id types.SessionID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", goerr.Wrap(ErrEmptyMessage, "cannot ask")
	}

	sess, err := uc.repo.Session().Get(ctx, id)
	if err != nil {
		return "", goerr.Wrap(ErrSessionNotFound, "failed to load session", goerr.V("session_id", id))
	}
	if !sess.HasContext() {
		return "", goerr.Wrap(ErrNoContext, "cannot ask", goerr.V("session_id", id))
	}

	// The user turn is persisted before calling the provider so a
	// failed completion never rolls it back.
	sess.AppendTurn(types.ChatRoleUser, message)
	if err := uc.repo.Session().Put(ctx, sess); err != nil {
		return "", goerr.Wrap(err, "failed to store session", goerr.V("session_id", id))
	}

	llmSession, err := uc.sessionFor(ctx, sess)
	if err != nil {
		return "", err
	}

	resp, err := llmSession.GenerateContent(ctx, gollem.Text(message))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate answer", goerr.V("session_id", id))
	}
	if resp == nil || len(resp.Texts) == 0 {
		return "", goerr.New("empty completion response", goerr.V("session_id", id))
	}

	answer := strings.Join(resp.Texts, "\n")

	sess.AppendTurn(types.ChatRoleAssistant, answer)
	if err := uc.repo.Session().Put(ctx, sess); err != nil {
		return "", goerr.Wrap(err, "failed to store session", goerr.V("session_id", id))
	}

	return answer, nil
}

// Forget discards the live LLM conversation for a session, if any.
func (uc *ChatUseCase) Forget(id types.SessionID) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.live, id)
}

// sessionFor returns the live LLM session for a Themis session,
// creating it with the corpus-grounded system prompt on first use.
func (uc *ChatUseCase) sessionFor(ctx context.Context, sess *model.Session) (gollem.Session, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if s, ok := uc.live[sess.ID]; ok {
		return s, nil
	}

	prompt, err := buildChatSystemPrompt(sess)
	if err != nil {
		return nil, err
	}

	s, err := uc.llmClient.NewSession(ctx, gollem.WithSessionSystemPrompt(prompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session", goerr.V("session_id", sess.ID))
	}

	uc.live[sess.ID] = s
	return s, nil
}

func buildChatSystemPrompt(sess *model.Session) (string, error) {
	data := chatPromptData{
		DocumentCount: len(sess.Documents),
		Corpus:        sess.Corpus,
	}

	var buf bytes.Buffer
	if err := chatSystemPrompt.Execute(&buf, data); err != nil {
		return "", goerr.Wrap(err, "failed to execute chat system prompt template")
	}

	return buf.String(), nil
}
