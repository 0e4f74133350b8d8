package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Analyst is a chat with a financial analyst grounded in the
// portfolio's own reports and, through search, in the outside world.
type Analyst struct {
	Reports []string // rendered markdown reports, given as context
	chat    *genai.Chat
}

// NewAnalyst creates an analyst seeded with the given rendered reports.
func NewAnalyst(reports ...string) *Analyst {
	return &Analyst{Reports: reports}
}

// Start opens the chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	instruction := `
	You are a financial analyst assisting the owner of a fixed, equal-weight
	international stock portfolio. The reports below are the portfolio's
	current state; treat them as ground truth about the user's holdings.
	Use search for anything beyond them, recent news in particular, and
	say clearly when a figure is not in the reports.
	` + strings.Join(a.Reports, "\n\n")

	config := &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
	}
	chat, err := client.Chats.Create(ctx, model, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Ask sends a question and returns the analyst's text answer.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
