package agent

import (
	"bytes"
	"context"
	"fmt"

	"github.com/etnz/devfolio"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Editor is a chat with a copy editor that knows the user's portfolio
// definition and suggests better bios and project descriptions.
type Editor struct {
	def  *devfolio.Definition
	chat *genai.Chat
}

// NewEditor creates the copy editor around the given definition. The
// definition is read through a function call at chat time, so the editor
// always sees the state the caller holds, not a snapshot.
func NewEditor(def *devfolio.Definition) *Editor {
	return &Editor{def: def}
}

func (e *Editor) config() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{FunctionDeclarations: []*genai.FunctionDeclaration{e.declaration()}},
		},
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
		You are a copy editor for a developer's one-page portfolio site.
		The read_portfolio tool gives you the current portfolio definition
		(owner profile and projects) as YAML; read it before answering.

		Help the user write a sharper bio, clearer project titles, and
		concrete project descriptions. Keep suggestions short, concrete,
		and in the user's voice. Answer with text to paste into the
		definition file; never invent projects or links that are not there.
	`}}},
	}
}

// Start creates the underlying chat session.
func (e *Editor) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, e.config(), nil)
	if err != nil {
		return err
	}
	e.chat = chat
	return nil
}

// Ask is a simple wrapper on top of Chat.Send that resolves function calls.
func (e *Editor) Ask(ctx context.Context, parts ...*genai.Part) (*genai.Content, error) {
	resp, err := e.chat.Send(ctx, parts...)
	if err != nil {
		return nil, err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("no response from the editor")
	}
	part0 := resp.Candidates[0].Content.Parts[0]
	if part0.FunctionCall != nil {
		fresp := e.call(part0.FunctionCall)
		// Ask again with the response it asked for, until we have text.
		return e.Ask(ctx, &genai.Part{FunctionResponse: fresp})
	}
	return resp.Candidates[0].Content, nil
}

// declaration returns the read_portfolio function declaration.
func (e *Editor) declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        "read_portfolio",
		Description: "Read the user's current portfolio definition as YAML.",
		Response: &genai.Schema{
			Type:        genai.TypeString,
			Description: "The portfolio definition in YAML.",
		},
	}
}

// call performs the read_portfolio function call.
func (e *Editor) call(fc *genai.FunctionCall) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:       fc.ID,
		Name:     fc.Name,
		Response: map[string]any{},
	}
	if fc.Name != "read_portfolio" {
		fresp.Response["error"] = fmt.Sprintf("unknown function %s", fc.Name)
		return fresp
	}
	var b bytes.Buffer
	if err := devfolio.EncodeDefinition(&b, e.def); err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}
	fresp.Response["output"] = b.String()
	return fresp
}
