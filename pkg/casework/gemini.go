// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package casework

import (
	"context"
	"errors"

	genai "google.golang.org/genai"
)

// ErrEmptyResponse is returned when the model answers with no candidates.
var ErrEmptyResponse = errors.New("empty response from model")

// GeminiGenerator is a thin wrapper around the official genai client. The
// client reads GEMINI_API_KEY from the environment.
type GeminiGenerator struct {
	cli   *genai.Client
	model string
}

// NewGeminiGenerator builds the real generation backend for the given model.
func NewGeminiGenerator(ctx context.Context, model string) (*GeminiGenerator, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	return &GeminiGenerator{cli: cli, model: model}, nil
}

// Generate sends the assembled prompt and returns the model's markdown
// report unchanged. The pipeline validates nothing here: structure is the
// model's contract, failures become the caller's fallback report.
func (g *GeminiGenerator) Generate(ctx context.Context, _ string, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
