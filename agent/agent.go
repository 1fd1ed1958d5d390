// Package agent provides a Gemini-backed commentator for valuation
// snapshots.
package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const analystInstruction = `You are an equity analyst. You receive one Japanese stock's point-in-time valuation snapshot as JSON: the latest close in yen, the latest resolved disclosure fields, and precomputed ratios (null means not computed). Comment in a few short markdown paragraphs: what the multiples say about the valuation, notable gaps in the data, and what to verify next. Never invent numbers that are not in the input.`

// Analyst is a chat with an equity-analyst persona.
type Analyst struct {
	ModelName string
	Config    *genai.GenerateContentConfig
	chat      *genai.Chat
}

// NewAnalyst returns an analyst on the default model.
func NewAnalyst() *Analyst {
	return &Analyst{
		ModelName: "gemini-2.5-flash",
		Config: &genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: analystInstruction}}},
		},
	}
}

// Start creates the underlying chat session.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, a.ModelName, a.Config, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

// Review sends one snapshot JSON to the analyst and returns the commentary.
func (a *Analyst) Review(ctx context.Context, snapshot string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: snapshot})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
