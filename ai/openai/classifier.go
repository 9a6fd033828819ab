// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package openai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/poiesic/regulo/ai"
	"github.com/poiesic/regulo/core"
)

// IntentClassifier implements ai.IntentClassifier using OpenAI-compatible
// chat APIs in JSON mode.
type IntentClassifier struct {
	client  llms.Model
	timeout time.Duration
	logger  *slog.Logger
}

// verdict is the structure expected from the LLM.
type verdict struct {
	Intent string `json:"intent"`
}

// newIntentClassifier is an internal constructor that returns the
// concrete type. Used by Provider to manage the instance.
func newIntentClassifier(config *ai.Config) (*IntentClassifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.ChatHost),
		openai.WithToken("none"),
		openai.WithModel(config.ClassifierModel),
	)
	if err != nil {
		return nil, err
	}

	return &IntentClassifier{
		client:  client,
		timeout: config.ClassifyTimeout,
		logger:  slog.Default().With("component", "openai-classifier"),
	}, nil
}

// NewIntentClassifier creates a new intent classifier using the provided
// configuration.
//
// Returns ai.IntentClassifier interface to enforce abstraction.
func NewIntentClassifier(config *ai.Config) (ai.IntentClassifier, error) {
	return newIntentClassifier(config)
}

// Classify maps the query to one of the core intents. Classification
// runs with zero temperature so the same query always routes the same
// way.
func (c *IntentClassifier) Classify(ctx context.Context, query string) (core.Intent, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	content := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(classifierSystemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(query),
			},
		},
	}

	response, err := c.client.GenerateContent(ctx, content, llms.WithTemperature(0.0), llms.WithJSONMode())
	if err != nil {
		c.logger.Error("failed to classify query", "err", err)
		return "", err
	}
	if len(response.Choices) < 1 {
		return "", fmt.Errorf("classifier returned no choices")
	}

	// Strip markdown code fences if present
	responseText := strings.TrimSpace(response.Choices[0].Content)
	responseText = strings.TrimPrefix(responseText, "```json")
	responseText = strings.TrimPrefix(responseText, "```")
	responseText = strings.TrimSuffix(responseText, "```")
	responseText = strings.TrimSpace(responseText)

	// Try to repair common JSON issues
	responseText = repairJSON(responseText)

	var v verdict
	if err := json.Unmarshal([]byte(responseText), &v); err != nil {
		c.logger.Warn("error parsing classifier response", "response", responseText, "err", err)
		return "", fmt.Errorf("parsing classifier response: %w", err)
	}

	intent, ok := core.ParseIntent(strings.TrimSpace(v.Intent))
	if !ok {
		c.logger.Warn("classifier returned unknown intent", "intent", v.Intent)
		return "", fmt.Errorf("unknown intent %q", v.Intent)
	}

	c.logger.Debug("classified query", "intent", intent)
	return intent, nil
}
