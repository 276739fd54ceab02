package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
)

// SearchForm holds the raw text of the search fields.
type SearchForm struct {
	Keywords      string `json:"keywords"`
	CurrentCity   string `json:"current_city"`
	MinExperience string `json:"min_experience"`
	MaxExperience string `json:"max_experience"`
	MinSalary     string `json:"min_salary"`
	MaxSalary     string `json:"max_salary"`
	Qualification string `json:"qualification"`
	Industry      string `json:"industry"`
	Department    string `json:"department"`
	Designation   string `json:"designation"`
}

// Filter builds the sparse request: blank fields are left out and numbers must parse.
func (f SearchForm) Filter() (models.SearchFilter, error) {

	filter := models.SearchFilter{
		Keywords:      strings.TrimSpace(f.Keywords),
		CurrentCity:   strings.TrimSpace(f.CurrentCity),
		Qualification: strings.TrimSpace(f.Qualification),
		Industry:      strings.TrimSpace(f.Industry),
		Department:    strings.TrimSpace(f.Department),
		Designation:   strings.TrimSpace(f.Designation),
	}

	numbers := []struct {
		field  string
		raw    string
		target **float64
	}{
		{"min experience", f.MinExperience, &filter.MinExperience},
		{"max experience", f.MaxExperience, &filter.MaxExperience},
		{"min salary", f.MinSalary, &filter.MinSalary},
		{"max salary", f.MaxSalary, &filter.MaxSalary},
	}
	for _, number := range numbers {
		if strings.TrimSpace(number.raw) == "" {
			continue
		}
		value, err := ParseFloat(number.field, number.raw)
		if err != nil {
			return models.SearchFilter{}, err
		}
		*number.target = &value
	}

	return filter, nil
}

func (f SearchForm) IsEmpty() bool {
	filter, err := f.Filter()
	return err == nil && filter == (models.SearchFilter{})
}

type searchGateway interface {
	Search(ctx context.Context, filter models.SearchFilter) ([]models.Candidate, error)
}

type Searcher struct {
	candidates searchGateway
}

func NewSearcher(candidates searchGateway) *Searcher {
	return &Searcher{candidates: candidates}
}

// Search validates the form first and sends nothing when it is invalid.
func (s *Searcher) Search(ctx context.Context, form SearchForm) ([]models.Candidate, error) {
	filter, err := form.Filter()
	if err != nil {
		return nil, err
	}
	return s.candidates.Search(ctx, filter)
}

func FoundMessage(count int) string {
	return fmt.Sprintf("Found %d candidates", count)
}

func SearchFailureMessage(err error) string {
	return FailureMessage(err, "Search failed")
}
