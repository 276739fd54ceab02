package bot

import (
	"strconv"

	"github.com/maxaizer/recruithub-bot/internal/services"
	"github.com/samber/lo"
)

func numberValidation(field string) validation {
	return validation{
		function: func(input string) bool {
			value, err := services.ParseFloat(field, input)
			return err == nil && value >= 0
		},
		errorMessage: "Please enter a non-negative number.",
	}
}

func wholeNumberValidation(field string, min int) validation {
	return validation{
		function: func(input string) bool {
			value, err := services.ParseInt(field, input)
			return err == nil && value >= min
		},
		errorMessage: "Please enter a whole number of at least " + strconv.Itoa(min) + ".",
	}
}

func emailValidation() validation {
	return validation{
		function:     func(input string) bool { return services.ValidateEmail(input) == nil },
		errorMessage: "Please enter a valid email address.",
	}
}

// emailListValidation accepts comma separated addresses; empty entries are ignored.
func emailListValidation() validation {
	return validation{
		function: func(input string) bool {
			emails := services.SplitList(input)
			return len(emails) > 0 && lo.EveryBy(emails, func(email string) bool {
				return services.ValidateEmail(email) == nil
			})
		},
		errorMessage: "Please enter one or more valid email addresses separated by commas.",
	}
}

// parseNumbers reads a comma separated list of 1-based positions up to count.
func parseNumbers(input string, count int) ([]int, bool) {
	var indexes []int
	for _, part := range services.SplitList(input) {
		number, err := strconv.Atoi(part)
		if err != nil || number < 1 || number > count {
			return nil, false
		}
		indexes = append(indexes, number-1)
	}
	return lo.Uniq(indexes), len(indexes) > 0
}

func numbersValidation(count int) validation {
	return validation{
		function: func(input string) bool {
			_, ok := parseNumbers(input, count)
			return ok
		},
		errorMessage: "Please enter numbers from the list separated by commas.",
	}
}
