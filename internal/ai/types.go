package ai

// Allowed classification values. These are the only enum values the prompt
// contracts permit the model to return.
var (
	Categories = []string{"work", "personal", "shopping", "health", "other"}
	Priorities = []string{"low", "medium", "high", "urgent"}
)

// TaskDraft is one generated task suggestion.
type TaskDraft struct {
	Title             string `json:"title"`
	Description       string `json:"description"`
	EstimatedCategory string `json:"estimatedCategory"`
	EstimatedPriority string `json:"estimatedPriority"`
}

// Classification is the category/tag suggestion for a single task.
type Classification struct {
	Category  string   `json:"category"`
	Tags      []string `json:"tags"`
	Reasoning string   `json:"reasoning"`
}

// PriorityAssessment is the suggested priority for a single task.
type PriorityAssessment struct {
	Priority       string   `json:"priority"`
	Reasoning      string   `json:"reasoning"`
	UrgencyFactors []string `json:"urgencyFactors"`
}

// GuideStep is one step of an execution guide.
type GuideStep struct {
	StepNumber    int    `json:"stepNumber"`
	Instruction   string `json:"instruction"`
	EstimatedTime string `json:"estimatedTime"`
	Tips          string `json:"tips"`
}

// ExecutionGuide is a step-by-step plan for completing a task.
type ExecutionGuide struct {
	Steps              []GuideStep `json:"steps"`
	TotalEstimatedTime string      `json:"totalEstimatedTime"`
	Prerequisites      []string    `json:"prerequisites"`
	SuccessCriteria    string      `json:"successCriteria"`
}

// CompletionMessage celebrates a finished task.
type CompletionMessage struct {
	Message       string `json:"message"`
	Encouragement string `json:"encouragement"`
	Emoji         string `json:"emoji"`
}

// StaleReport combines the locally computed stale task ids with the
// model-generated encouragement.
type StaleReport struct {
	StaleTasks       []string          `json:"staleTasks"`
	OverallMessage   string            `json:"overallMessage"`
	TaskMessages     map[string]string `json:"taskMessages"`
	ActionSuggestion string            `json:"actionSuggestion"`
}

// Recommendation is one scored next-task suggestion. Scoring is performed by
// the model against the rubric embedded in the prompt; it is not recomputed
// locally.
type Recommendation struct {
	TaskID    string   `json:"taskId"`
	Title     string   `json:"title"`
	Score     float64  `json:"score"`
	Reason    string   `json:"reason"`
	BlockedBy []string `json:"blockedBy"`
}

// Dependency is an inferred ordering relation between tasks.
type Dependency struct {
	TaskID    string   `json:"taskId"`
	DependsOn []string `json:"dependsOn"`
	Reasoning string   `json:"reasoning"`
}

// RecommendationReport is the full analysis of a todo list.
type RecommendationReport struct {
	Recommendations []Recommendation `json:"recommendations"`
	Dependencies    []Dependency     `json:"dependencies"`
	Insights        string           `json:"insights"`
}
