package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/BakariSp/Zero-AI-backend-sub000/config"

	"github.com/go-resty/resty/v2"
)

// PathDraft is the structured learning path returned by the AI planner
type PathDraft struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	Category        string        `json:"category"`
	DifficultyLevel string        `json:"difficulty_level"`
	EstimatedDays   int           `json:"estimated_days"`
	Courses         []CourseDraft `json:"courses"`
}

// CourseDraft is one course inside a generated path
type CourseDraft struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	EstimatedDays int            `json:"estimated_days"`
	Sections      []SectionDraft `json:"sections"`
}

// SectionDraft is one section inside a generated course
type SectionDraft struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Cards       []CardDraft `json:"cards"`
}

// CardDraft is one flashcard inside a generated section
type CardDraft struct {
	Keyword     string `json:"keyword"`
	Question    string `json:"question"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation"`
	Difficulty  string `json:"difficulty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateLearningPathDraft asks the configured OpenAI-compatible API for a
// complete learning path (courses, sections, cards) on the given topic
func GenerateLearningPathDraft(topic string, interests []string) (*PathDraft, error) {
	if config.AppConfig.AIApiKey == "" {
		return nil, fmt.Errorf("AI_API_KEY is not configured")
	}

	system := "You are a curriculum planner. Respond with a single JSON object matching the schema: " +
		"{title, description, category, difficulty_level, estimated_days, courses: [{title, description, estimated_days, " +
		"sections: [{title, description, cards: [{keyword, question, answer, explanation, difficulty}]}]}]}."
	user := fmt.Sprintf("Create a learning path about %q.", topic)
	if len(interests) > 0 {
		user += fmt.Sprintf(" The learner's interests: %v.", interests)
	}

	reqBody := chatRequest{
		Model: config.AppConfig.AIModel,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}
	reqBody.ResponseFormat.Type = "json_object"

	client := resty.New().SetTimeout(time.Duration(config.AppConfig.AITimeout) * time.Second)

	var chatResp chatResponse
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.AIApiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(reqBody).
		SetResult(&chatResp).
		Post(config.AppConfig.AIApiURL)
	if err != nil {
		return nil, fmt.Errorf("AI planner request failed: %v", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("AI planner API error (%d): %s", resp.StatusCode(), resp.String())
	}
	if chatResp.Error != nil {
		return nil, fmt.Errorf("AI planner API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return nil, fmt.Errorf("AI planner returned no choices")
	}

	var draft PathDraft
	if err := json.Unmarshal([]byte(chatResp.Choices[0].Message.Content), &draft); err != nil {
		return nil, fmt.Errorf("failed to parse AI planner response: %v", err)
	}
	if draft.Title == "" {
		return nil, fmt.Errorf("AI planner returned an empty path")
	}

	return &draft, nil
}
