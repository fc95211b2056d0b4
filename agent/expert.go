package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Expert represent a chat with a business expert.
type Expert struct {
	Name        string                       `json:"name"`
	Description string                       `json:"description"`
	ModelName   string                       `json:"model_name"`
	Config      *genai.GenerateContentConfig `json:"config"`
	Library     Library
	chat        *genai.Chat
}

// Start creates the chat session.
func (e *Expert) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, e.ModelName, e.Config, nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Started reports whether Start has been called successfully.
func (e *Expert) Started() bool { return e.chat != nil }

// Ask is a simple wrapper on top of Chat.Send that resolves function calls
// through the Library until the expert answers with content.
func (e *Expert) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	if e.chat == nil {
		return nil, fmt.Errorf("expert %s is not started", e.Name)
	}
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from expert %s", e.Name)
	}

	var responses []*genai.Part
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.FunctionCall == nil {
			continue
		}
		if e.Library == nil {
			return nil, fmt.Errorf("expert %s doesn't know how to make function calls", e.Name)
		}
		responses = append(responses, &genai.Part{FunctionResponse: e.Library(ctx, part.FunctionCall)})
	}
	if len(responses) > 0 {
		// Ask again with the responses until we have a real answer.
		return e.Ask(ctx, responses...)
	}
	return resp.Candidates[0].Content, nil
}
