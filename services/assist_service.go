package services

import (
	"context"

	"knowledgebase/metrics"

	"google.golang.org/genai"
)

const assistPreamble = "You are an assistant for a company knowledge base. Answer concisely and helpfully."

type AssistService interface {
	Enabled() bool
	Answer(ctx context.Context, question string) string
}

type assistService struct {
	client *genai.Client
	model  string
}

// NewAssistService wraps the process-wide GenAI client. A nil client turns
// the assist into a no-op.
func NewAssistService(client *genai.Client, model string) AssistService {
	return &assistService{client: client, model: model}
}

func (s *assistService) Enabled() bool {
	return s.client != nil
}

// Answer is best-effort: every failure collapses into an inline message so
// the deterministic search path is never affected.
func (s *assistService) Answer(ctx context.Context, question string) string {
	if s.client == nil {
		return ""
	}

	contents := []*genai.Content{
		genai.NewContentFromText(assistPreamble, genai.RoleUser),
		genai.NewContentFromText("Question: "+question, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, nil)
	if err != nil {
		metrics.IncAssist("error")
		return "AI error: " + err.Error()
	}

	text := resp.Text()
	if text == "" {
		metrics.IncAssist("empty")
		return "AI error: empty response"
	}

	metrics.IncAssist("success")
	return text
}
