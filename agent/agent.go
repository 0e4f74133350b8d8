// Package agent implements the interactive analyst chat, a Gemini
// conversation seeded with the portfolio's current reports.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

// Agent runs the chat session between the user and the analyst.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	Analyst *Analyst
}

// New creates an Agent writing to w and reading user input from r.
func New(w io.Writer, r io.Reader, analyst *Analyst) *Agent {
	return &Agent{w: w, r: bufio.NewReader(r), Analyst: analyst}
}

const prompt = "assist> "

// Run starts the interactive REPL session. Initial prompts, when
// given, are consumed before reading from the user.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if err := a.Analyst.Start(ctx, client); err != nil {
		return err
	}

	fmt.Fprintln(a.w, "Welcome to k55 assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string
		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil // clean exit on Ctrl+D
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		answer, err := a.Analyst.Ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, answer)
	}
}
