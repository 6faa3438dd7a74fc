package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"go.uber.org/zap"

	"todo-ai-backend/internal/telemetry"
)

const (
	anthropicVersion = "bedrock-2023-05-31"
	defaultMaxTokens = 2000
)

// ModelResponse is the decoded output of one model invocation.
type ModelResponse struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Invoker is the single call contract between the assistant and the model
// provider. Tests substitute a stub.
type Invoker interface {
	Invoke(ctx context.Context, prompt, systemInstruction string) (ModelResponse, error)
}

// bedrockAPI is the slice of the Bedrock runtime client we use.
type bedrockAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client invokes an Anthropic model on AWS Bedrock. Transient provider
// failures are retried by the SDK (adaptive mode, bounded attempts); callers
// only ever see the final outcome.
type Client struct {
	api     bedrockAPI
	modelID string
	log     *zap.Logger
}

func NewClient(ctx context.Context, region, modelID string, maxAttempts int, log *zap.Logger) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithRetryer(func() aws.Retryer {
			return retry.NewAdaptiveMode(func(o *retry.AdaptiveModeOptions) {
				o.StandardOptions = append(o.StandardOptions, func(so *retry.StandardOptions) {
					so.MaxAttempts = maxAttempts
				})
			})
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Client{
		api:     bedrockruntime.NewFromConfig(cfg),
		modelID: modelID,
		log:     log,
	}, nil
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicRequest struct {
	AnthropicVersion string             `json:"anthropic_version"`
	MaxTokens        int                `json:"max_tokens"`
	System           string             `json:"system,omitempty"`
	Messages         []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

// Invoke sends the prompt (plus optional system instruction) to the configured
// model and returns the generated text. Any provider failure surfaces as a
// *ModelInvocationError; partial results are never returned.
func (c *Client) Invoke(ctx context.Context, prompt, systemInstruction string) (ModelResponse, error) {
	ctx, span := telemetry.StartModelSpan(ctx, "bedrock.invoke_model", c.modelID)
	defer span.End()

	start := time.Now()

	payload := anthropicRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        defaultMaxTokens,
		System:           systemInstruction,
		Messages: []anthropicMessage{
			{Role: "user", Content: prompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		telemetry.RecordError(span, err)
		return ModelResponse{}, &ModelInvocationError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	out, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		c.log.Error("bedrock invocation failed",
			zap.String("model", c.modelID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return ModelResponse{}, &ModelInvocationError{Err: err}
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(out.Body, &parsed); err != nil {
		telemetry.RecordError(span, err)
		return ModelResponse{}, &ModelInvocationError{Err: fmt.Errorf("failed to decode provider response: %w", err)}
	}
	if len(parsed.Content) == 0 {
		err := fmt.Errorf("provider returned no content blocks")
		telemetry.RecordError(span, err)
		return ModelResponse{}, &ModelInvocationError{Err: err}
	}

	resp := ModelResponse{
		Text:         parsed.Content[0].Text,
		InputTokens:  parsed.Usage.InputTokens,
		OutputTokens: parsed.Usage.OutputTokens,
	}

	telemetry.RecordUsage(span, resp.InputTokens, resp.OutputTokens)
	c.log.Debug("bedrock invocation completed",
		zap.String("model", c.modelID),
		zap.Int("input_tokens", resp.InputTokens),
		zap.Int("output_tokens", resp.OutputTokens),
		zap.Duration("elapsed", time.Since(start)))

	return resp, nil
}
