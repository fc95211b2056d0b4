// Package agent implements a chat advisor, backed by Gemini, that answers
// questions about a budget ledger.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent is the AI assistant that handles the chat session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Advisor *Expert
}

// New creates a new Agent around an expert.
//
// It takes an io.Writer for the agent's output (e.g., os.Stdout), and an
// io.Reader for user input (e.g., os.Stdin).
func New(w io.Writer, r io.Reader, advisor *Expert) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		Advisor: advisor,
	}
}

const prompt = "advise> "

// Run starts the interactive REPL session for the agent.
//
// Prompts are sent first, as if the user typed them. The session ends with
// "bye" or at the end of the input.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if !a.Advisor.Started() {
		if err := a.Advisor.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to bt budget advisor. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		// Flush prompts from the list and then ask for the user.
		if len(prompts) > 0 {
			input, prompts = strings.TrimSpace(prompts[0]), prompts[1:]
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					fmt.Fprintln(a.w)
					return nil // Clean exit on Ctrl+D
				}
				return err
			}
		}

		input = strings.TrimSpace(input)
		if input == "bye" {
			return nil
		}
		if input == "" {
			continue
		}

		content, err := a.Advisor.Ask(ctx, &genai.Part{Text: input})
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, Text(content))
	}
}

// Text concatenates the text parts of a content.
func Text(c *genai.Content) string {
	if c == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range c.Parts {
		if p != nil && p.Text != "" {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}
