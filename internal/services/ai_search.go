package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type aiClient interface {
	GenerateResponse(ctx context.Context, request string) (string, error)
}

var ErrUnreadableAIResponse = errors.New("could not understand the search request")

// AISearch turns a free-text request into search form fields.
type AISearch struct {
	aiClient aiClient
}

func NewAISearch(aiClient aiClient) *AISearch {
	return &AISearch{aiClient: aiClient}
}

func (a *AISearch) Translate(ctx context.Context, text string) (SearchForm, error) {

	text = strings.TrimSpace(text)
	if text == "" {
		return SearchForm{}, newValidationError("search request is empty")
	}

	response, err := a.aiClient.GenerateResponse(ctx, searchRequestPrompt(text))
	if err != nil {
		return SearchForm{}, err
	}
	log.Debugf("got response %q for search request %q", response, text)

	form, err := parseSearchResponse(response)
	if err != nil {
		return SearchForm{}, fmt.Errorf("%w: %v", ErrUnreadableAIResponse, err)
	}
	return form, nil
}

func searchRequestPrompt(text string) string {
	return "You translate a recruiter's request into candidate search filters. " +
		"Answer with one JSON object only, using any of these keys: keywords, current_city, " +
		"min_experience, max_experience (years), min_salary, max_salary (annual CTC), " +
		"qualification, industry, department, designation. " +
		"Leave out keys the request does not mention. Request: " + text
}

func parseSearchResponse(response string) (SearchForm, error) {

	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(response)), &fields); err != nil {
		return SearchForm{}, err
	}

	normalized := make(map[string]string, len(fields))
	for key, value := range fields {
		switch v := value.(type) {
		case string:
			normalized[key] = v
		case float64:
			normalized[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
		default:
			return SearchForm{}, fmt.Errorf("unexpected value for %s: %v", key, value)
		}
	}

	encoded, err := json.Marshal(normalized)
	if err != nil {
		return SearchForm{}, err
	}
	var form SearchForm
	if err = json.Unmarshal(encoded, &form); err != nil {
		return SearchForm{}, err
	}
	return form, nil
}
