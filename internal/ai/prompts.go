package ai

import "fmt"

// Prompt templates. Each render function is pure: the same inputs always
// produce the same prompt text, so capability behavior can be pinned in tests
// without a live model. The JSON shape each capability expects is spelled out
// in the prompt itself; schema.go enforces the same contract on the way back.

func generateTasksPrompt(description string) (prompt, system string) {
	system = "You are a helpful task management assistant."
	prompt = fmt.Sprintf(`Based on the user's goal, generate a list of 3 to 7 concrete, actionable tasks.

User's goal: "%s"

Generate the tasks in the following JSON format:
[
  {
    "title": "task title",
    "description": "short description",
    "estimatedCategory": "category",
    "estimatedPriority": "priority"
  }
]

Categories: work, personal, shopping, health, other
Priorities: low, medium, high, urgent

Return ONLY the JSON array. No additional text.`, description)
	return prompt, system
}

func classifyTaskPrompt(title, description string) (prompt, system string) {
	system = "You are a helpful task management assistant."
	prompt = fmt.Sprintf(`Analyze this task and suggest the most appropriate category and related tags.

Task title: "%s"
Task description: "%s"

Categories: work, personal, shopping, health, other

Respond in the following JSON format:
{
  "category": "suggested category",
  "tags": ["tag1", "tag2", "tag3"],
  "reasoning": "brief explanation"
}

Return ONLY the JSON.`, title, description)
	return prompt, system
}

func setPriorityPrompt(title, description, deadline string) (prompt, system string) {
	system = "You are a helpful task management assistant."
	deadlineLine := ""
	if deadline != "" {
		deadlineLine = fmt.Sprintf("Deadline: %s\n", deadline)
	}
	prompt = fmt.Sprintf(`Analyze this task and suggest an appropriate priority.

Task title: "%s"
Task description: "%s"
%s
Priority levels:
- urgent: important and needs immediate attention
- high: important and should be handled soon
- medium: should be handled reasonably soon
- low: can be done at any time

Respond in the following JSON format:
{
  "priority": "priority level",
  "reasoning": "brief explanation of why this priority was chosen",
  "urgencyFactors": ["factor1", "factor2"]
}

Return ONLY the JSON.`, title, description, deadlineLine)
	return prompt, system
}

func executionGuidePrompt(title, description, category, priority string) (prompt, system string) {
	system = "You are a practical task management assistant."
	prompt = fmt.Sprintf(`Generate concrete execution steps for completing the following task.

Task title: "%s"
Task description: "%s"
Category: %s
Priority: %s

Generate a step-by-step execution guide in the following JSON format:
{
  "steps": [
    {
      "stepNumber": 1,
      "instruction": "concrete step description",
      "estimatedTime": "estimated duration (e.g. 5 minutes, 30 minutes, 1 hour)",
      "tips": "a helpful hint or piece of advice"
    }
  ],
  "totalEstimatedTime": "total estimated duration",
  "prerequisites": ["prerequisite 1", "prerequisite 2"],
  "successCriteria": "how to tell this task is complete"
}

Requirements:
- Break the task into 3 to 7 steps
- Each step must be concrete and actionable
- Time estimates must be realistic
- Tips must be practical and useful

Return ONLY the JSON.`, title, description, category, priority)
	return prompt, system
}

func completionMessagePrompt(title, description, category string) (prompt, system string) {
	system = "You are an encouraging, motivating assistant."
	prompt = fmt.Sprintf(`The user has just completed a task. Generate a heartfelt congratulatory message.

Task title: "%s"
Task description: "%s"
Category: %s

Respond in the following JSON format:
{
  "message": "short message celebrating the completed task (1-2 sentences)",
  "encouragement": "further encouragement or motivation for what comes next (1-2 sentences)",
  "emoji": "one fitting emoji (e.g. one of: celebration, star, trophy, muscle)"
}

Requirements:
- The message must be bright, positive and convey a sense of achievement
- Use wording appropriate for the category
- Keep it short and readable
- Exactly one emoji

Return ONLY the JSON.`, title, description, category)
	return prompt, system
}

func staleTasksPrompt(staleJSON string) (prompt, system string) {
	system = "You are a kind, encouraging task management assistant."
	prompt = fmt.Sprintf(`Generate positive, encouraging messages for the following stalled tasks.

Stalled tasks:
%s

Respond in the following JSON format:
{
  "overallMessage": "overall encouraging message (2-3 sentences)",
  "taskMessages": {
    "taskId1": "task-specific encouraging message (1-2 sentences)",
    "taskId2": "task-specific encouraging message (1-2 sentences)"
  },
  "actionSuggestion": "concrete suggestion for the next action to take (1-2 sentences)"
}

Requirements:
- Avoid blaming language; stay positive and encouraging
- Guess why each task might have stalled and include concrete advice
- Suggest starting with a small first step
- Use a bright, friendly tone

Return ONLY the JSON.`, staleJSON)
	return prompt, system
}

func recommendTasksPrompt(todosJSON string) (prompt, system string) {
	system = "You are an expert task management assistant."
	prompt = fmt.Sprintf(`Analyze the following task list, detect dependencies between tasks, and recommend which tasks to work on next.

Task list:
%s

Respond in the following JSON format:
{
  "recommendations": [
    {
      "taskId": "task id",
      "title": "task title",
      "score": 0-100,
      "reason": "why this task is recommended",
      "blockedBy": []
    }
  ],
  "dependencies": [
    {
      "taskId": "task id",
      "dependsOn": ["task id 1", "task id 2"],
      "reasoning": "why this dependency exists"
    }
  ],
  "insights": "overall analysis and advice"
}

Analysis criteria:
1. Dependency detection:
   - Analyze task titles and descriptions to identify logical ordering
   - Exclude completed tasks from dependencies

2. Recommendation scoring (in priority order):
   - Not blocked (all dependencies completed): +40 points
   - Priority weight (urgent=30, high=20, medium=10, low=5)
   - Other tasks depend on it: +15 points
   - Older creation date: +10 points
   - Completed: -100 points (excluded)

3. Recommendation list:
   - Return only the top 5
   - Sorted by score, highest first
   - Incomplete tasks only

Return ONLY the JSON.`, todosJSON)
	return prompt, system
}

func searchQueryPrompt(title, description string) (prompt, system string) {
	system = "You are an expert at optimizing web search queries."
	prompt = fmt.Sprintf(`Given the following task information, generate the best search query for finding the most relevant information.

Task title: "%s"
Task description: "%s"

Requirements:
- Make the query specific so useful results are easy to find
- Drop filler words and extract the keywords
- Balance the query so it is neither too broad nor too narrow
- Keep it concise, roughly 1 to 5 words

Return ONLY the search query. No JSON or other formatting.`, title, description)
	return prompt, system
}
