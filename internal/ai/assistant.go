package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"todo-ai-backend/internal/todos"
)

const staleThresholdDays = 7

// Assistant exposes the AI-backed capabilities. Each capability validates its
// inputs, renders a prompt, invokes the model, and validates the response
// shape before anything is returned to a handler.
type Assistant struct {
	model Invoker
	log   *zap.Logger
	now   func() time.Time
}

func NewAssistant(model Invoker, log *zap.Logger) *Assistant {
	return &Assistant{
		model: model,
		log:   log,
		now:   time.Now,
	}
}

func requireNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: field + " must not be empty"}
	}
	return nil
}

func (a *Assistant) logParseFailure(capability string, err error) {
	if perr, ok := err.(*ResponseParseError); ok {
		a.log.Error("model response did not match contract",
			zap.String("capability", capability),
			zap.String("raw", perr.Raw),
			zap.Error(perr.Err))
	}
}

// GenerateTasks turns a free-form goal description into 3-7 task drafts.
func (a *Assistant) GenerateTasks(ctx context.Context, description string) ([]TaskDraft, error) {
	if err := requireNonEmpty("description", description); err != nil {
		return nil, err
	}

	prompt, system := generateTasksPrompt(description)
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return nil, err
	}

	var drafts []TaskDraft
	if err := decodeModelJSON(resp.Text, generateTasksSchema, &drafts); err != nil {
		a.logParseFailure("generate-tasks", err)
		return nil, err
	}
	return drafts, nil
}

// ClassifyTask suggests a category and tags for a task.
func (a *Assistant) ClassifyTask(ctx context.Context, title, description string) (Classification, error) {
	if err := requireNonEmpty("title", title); err != nil {
		return Classification{}, err
	}

	prompt, system := classifyTaskPrompt(title, description)
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return Classification{}, err
	}

	var result Classification
	if err := decodeModelJSON(resp.Text, classifySchema, &result); err != nil {
		a.logParseFailure("classify-task", err)
		return Classification{}, err
	}
	return result, nil
}

// SetPriority suggests a priority level for a task, taking an optional
// deadline into account.
func (a *Assistant) SetPriority(ctx context.Context, title, description, deadline string) (PriorityAssessment, error) {
	if err := requireNonEmpty("title", title); err != nil {
		return PriorityAssessment{}, err
	}

	prompt, system := setPriorityPrompt(title, description, deadline)
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return PriorityAssessment{}, err
	}

	var result PriorityAssessment
	if err := decodeModelJSON(resp.Text, prioritySchema, &result); err != nil {
		a.logParseFailure("set-priority", err)
		return PriorityAssessment{}, err
	}
	return result, nil
}

// GenerateExecutionGuide produces a step-by-step plan for completing a task.
func (a *Assistant) GenerateExecutionGuide(ctx context.Context, title, description, category, priority string) (ExecutionGuide, error) {
	if err := requireNonEmpty("title", title); err != nil {
		return ExecutionGuide{}, err
	}
	if category == "" {
		category = "other"
	}
	if priority == "" {
		priority = "medium"
	}

	prompt, system := executionGuidePrompt(title, description, category, priority)
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return ExecutionGuide{}, err
	}

	var result ExecutionGuide
	if err := decodeModelJSON(resp.Text, executionGuideSchema, &result); err != nil {
		a.logParseFailure("generate-execution-guide", err)
		return ExecutionGuide{}, err
	}
	return result, nil
}

// GenerateCompletionMessage celebrates a just-completed task.
func (a *Assistant) GenerateCompletionMessage(ctx context.Context, title, description, category string) (CompletionMessage, error) {
	if err := requireNonEmpty("title", title); err != nil {
		return CompletionMessage{}, err
	}
	if category == "" {
		category = "other"
	}

	prompt, system := completionMessagePrompt(title, description, category)
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return CompletionMessage{}, err
	}

	var result CompletionMessage
	if err := decodeModelJSON(resp.Text, completionMessageSchema, &result); err != nil {
		a.logParseFailure("generate-completion-message", err)
		return CompletionMessage{}, err
	}
	return result, nil
}

type staleCandidate struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	DaysSinceUpdate int    `json:"daysSinceUpdate"`
}

// DetectStaleTasks finds incomplete todos untouched for 7 or more whole days
// and asks the model for encouragement. The staleness filter is local and
// deterministic; when nothing is stale the model is not called at all.
func (a *Assistant) DetectStaleTasks(ctx context.Context, items []todos.Todo) (StaleReport, error) {
	now := a.now()

	var candidates []staleCandidate
	for _, t := range items {
		if t.Completed {
			continue
		}
		updated := t.UpdatedAt
		if updated.IsZero() {
			updated = t.CreatedAt
		}
		days := int(now.Sub(updated).Hours() / 24)
		if days >= staleThresholdDays {
			candidates = append(candidates, staleCandidate{
				ID:              t.ID,
				Title:           t.Title,
				DaysSinceUpdate: days,
			})
		}
	}

	if len(candidates) == 0 {
		return StaleReport{
			StaleTasks:   []string{},
			TaskMessages: map[string]string{},
		}, nil
	}

	staleJSON, err := json.MarshalIndent(candidates, "", "  ")
	if err != nil {
		return StaleReport{}, fmt.Errorf("failed to serialize stale tasks: %w", err)
	}

	prompt, system := staleTasksPrompt(string(staleJSON))
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return StaleReport{}, err
	}

	var generated struct {
		OverallMessage   string            `json:"overallMessage"`
		TaskMessages     map[string]string `json:"taskMessages"`
		ActionSuggestion string            `json:"actionSuggestion"`
	}
	if err := decodeModelJSON(resp.Text, staleTasksSchema, &generated); err != nil {
		a.logParseFailure("detect-stale-tasks", err)
		return StaleReport{}, err
	}

	ids := make([]string, 0, len(candidates))
	for _, c := range candidates {
		ids = append(ids, c.ID)
	}
	if generated.TaskMessages == nil {
		generated.TaskMessages = map[string]string{}
	}

	return StaleReport{
		StaleTasks:       ids,
		OverallMessage:   generated.OverallMessage,
		TaskMessages:     generated.TaskMessages,
		ActionSuggestion: generated.ActionSuggestion,
	}, nil
}

// RecommendTasks sends the whole todo list to the model, which infers
// dependencies and scores tasks against the rubric in the prompt. The model's
// answer is returned as-is.
func (a *Assistant) RecommendTasks(ctx context.Context, items []todos.Todo) (RecommendationReport, error) {
	if len(items) == 0 {
		return RecommendationReport{}, &ValidationError{Field: "todos", Message: "todos must not be empty"}
	}

	todosJSON, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return RecommendationReport{}, fmt.Errorf("failed to serialize todos: %w", err)
	}

	prompt, system := recommendTasksPrompt(string(todosJSON))
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		return RecommendationReport{}, err
	}

	var result RecommendationReport
	if err := decodeModelJSON(resp.Text, recommendSchema, &result); err != nil {
		a.logParseFailure("recommend-tasks", err)
		return RecommendationReport{}, err
	}
	return result, nil
}

// GenerateSearchQuery turns task information into a short optimized search
// query. This is the one capability that degrades instead of failing: any
// model error falls back to the raw title.
func (a *Assistant) GenerateSearchQuery(ctx context.Context, title, description string) string {
	prompt, system := searchQueryPrompt(title, description)
	resp, err := a.model.Invoke(ctx, prompt, system)
	if err != nil {
		a.log.Warn("search query optimization failed, falling back to title", zap.Error(err))
		return title
	}

	query := strings.TrimSpace(resp.Text)
	if query == "" {
		return title
	}
	return query
}
