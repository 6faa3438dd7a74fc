package ai

import "github.com/santhosh-tekuri/jsonschema/v5"

// Per-capability schemas enforced at the extraction boundary. The prompt
// templates describe the same shapes in natural language; these schemas are
// what actually rejects non-conforming model output.

var generateTasksSchema = jsonschema.MustCompileString("generate_tasks.json", `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["title"],
		"properties": {
			"title": {"type": "string"},
			"description": {"type": "string"},
			"estimatedCategory": {"type": "string"},
			"estimatedPriority": {"type": "string"}
		}
	}
}`)

var classifySchema = jsonschema.MustCompileString("classify_task.json", `{
	"type": "object",
	"required": ["category", "tags"],
	"properties": {
		"category": {"type": "string", "enum": ["work", "personal", "shopping", "health", "other"]},
		"tags": {"type": "array", "items": {"type": "string"}},
		"reasoning": {"type": "string"}
	}
}`)

var prioritySchema = jsonschema.MustCompileString("set_priority.json", `{
	"type": "object",
	"required": ["priority"],
	"properties": {
		"priority": {"type": "string", "enum": ["low", "medium", "high", "urgent"]},
		"reasoning": {"type": "string"},
		"urgencyFactors": {"type": "array", "items": {"type": "string"}}
	}
}`)

var executionGuideSchema = jsonschema.MustCompileString("execution_guide.json", `{
	"type": "object",
	"required": ["steps"],
	"properties": {
		"steps": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["stepNumber", "instruction"],
				"properties": {
					"stepNumber": {"type": "integer"},
					"instruction": {"type": "string"},
					"estimatedTime": {"type": "string"},
					"tips": {"type": "string"}
				}
			}
		},
		"totalEstimatedTime": {"type": "string"},
		"prerequisites": {"type": "array", "items": {"type": "string"}},
		"successCriteria": {"type": "string"}
	}
}`)

var completionMessageSchema = jsonschema.MustCompileString("completion_message.json", `{
	"type": "object",
	"required": ["message"],
	"properties": {
		"message": {"type": "string"},
		"encouragement": {"type": "string"},
		"emoji": {"type": "string"}
	}
}`)

var staleTasksSchema = jsonschema.MustCompileString("stale_tasks.json", `{
	"type": "object",
	"required": ["overallMessage"],
	"properties": {
		"overallMessage": {"type": "string"},
		"taskMessages": {"type": "object", "additionalProperties": {"type": "string"}},
		"actionSuggestion": {"type": "string"}
	}
}`)

var recommendSchema = jsonschema.MustCompileString("recommend_tasks.json", `{
	"type": "object",
	"required": ["recommendations"],
	"properties": {
		"recommendations": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["taskId", "score"],
				"properties": {
					"taskId": {"type": "string"},
					"title": {"type": "string"},
					"score": {"type": "number", "minimum": 0, "maximum": 100},
					"reason": {"type": "string"},
					"blockedBy": {"type": "array", "items": {"type": "string"}}
				}
			}
		},
		"dependencies": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"taskId": {"type": "string"},
					"dependsOn": {"type": "array", "items": {"type": "string"}},
					"reasoning": {"type": "string"}
				}
			}
		},
		"insights": {"type": "string"}
	}
}`)
