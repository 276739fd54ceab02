package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/samber/lo"
)

const displayTimeLayout = "2006-01-02 15:04"

func renderList[T any](title, empty string, items []T, card func(T) string) string {
	if len(items) == 0 {
		return title + "\n\n" + empty
	}
	var builder strings.Builder
	builder.WriteString(title)
	for i, item := range items {
		builder.WriteString(fmt.Sprintf("\n\n%d. %s", i+1, card(item)))
	}
	return builder.String()
}

func optional(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}
	return *value
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}
	return strings.Join(values, ", ")
}

func humanize[T ~string](value T) string {
	return strings.ReplaceAll(string(value), "_", " ")
}

func clientCard(c models.Client) string {
	return fmt.Sprintf("%s\nIndustry: %s\nType: %s\nHeadquarters: %s\nOther branches: %s\nWebsite: %s\n"+
		"Core business: %s\nContacts: %s",
		c.ClientName, c.Industry, c.OrganizationType, c.HeadquarterLocation, optional(c.OtherBranches),
		optional(c.Website), c.CoreBusiness, joinOrDash(c.ContactEmails))
}

func positionCard(clientNames map[string]string) func(models.Position) string {
	return func(p models.Position) string {
		client := clientNames[p.ClientID]
		if client == "" {
			client = p.ClientID
		}
		teamSize := "-"
		if p.TeamSize != nil {
			teamSize = fmt.Sprint(*p.TeamSize)
		}
		return fmt.Sprintf("%s (%s)\nClient: %s\nDepartment: %s\nOpenings: %d, team size: %s\n"+
			"Location: %s, %s, %s\nQualification: %s\nExperience: %s\nMust have: %s\nGood to have: %s",
			p.JobTitle, humanize(p.Status), client, p.Department, p.NumOpenings, teamSize,
			p.Location, humanize(p.WorkMode), p.WorkingDays, p.Qualification, p.Experience,
			joinOrDash(p.MustHaveSkills), joinOrDash(p.GoodToHaveSkills))
	}
}

func candidateCard(c models.Candidate) string {
	card := fmt.Sprintf("%s (%s)\n%s at %s, %s\nEmail: %s, phone: %s\nQualification: %s\n"+
		"Experience: %g years, CTC: %g, expected: %g\nNotice period: %s",
		c.Name, humanize(c.Status), c.CurrentDesignation, c.Department, c.CurrentLocation,
		c.Email, c.ContactNumber, c.Qualification, c.YearsOfExperience, c.CurrentCTC, c.ExpectedCTC, c.NoticePeriod)
	if c.RejectionReason != nil && *c.RejectionReason != "" {
		card += "\nRejection reason: " + *c.RejectionReason
	}
	return card
}

func interviewCard(location *time.Location, candidateNames map[string]string) func(models.Interview) string {
	return func(i models.Interview) string {
		candidate := candidateNames[i.CandidateID]
		if candidate == "" {
			candidate = i.CandidateID
		}
		when := "-"
		if !i.InterviewDate.IsZero() {
			when = i.InterviewDate.In(location).Format(displayTimeLayout)
		}
		return fmt.Sprintf("%s\nWhen: %s (%s)\nMode: %s\nAction plan: %s\nFeedback: %s\nResult: %s",
			candidate, when, location.String(), humanize(i.InterviewMode), optional(i.ActionPlan),
			optional(i.Feedback), optional(i.Result))
	}
}

func userCard(u models.User) string {
	return fmt.Sprintf("%s (%s)\n%s", u.Name, humanize(u.Role), u.Email)
}

func candidateSummary(c models.Candidate) string {
	return fmt.Sprintf("%s, %s, %g yrs (%s)", c.Name, c.CurrentDesignation, c.YearsOfExperience, humanize(c.Status))
}

func namesByID[T any](items []T, id func(T) string, name func(T) string) map[string]string {
	return lo.SliceToMap(items, func(item T) (string, string) { return id(item), name(item) })
}
