package services

import (
	"testing"
	"time"

	"github.com/maxaizer/recruithub-bot/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func Test_SplitList_ShouldTrimAndDropEmpty(t *testing.T) {
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, SplitList("a@x.com, b@x.com "))
	assert.Equal(t, []string{"go", "sql"}, SplitList(" go ,, sql ,"))
	assert.Empty(t, SplitList("  "))
}

func Test_ParseLocalDateTime_ShouldReturnUTCInstant(t *testing.T) {

	kolkata, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	instant, err := ParseLocalDateTime("2024-06-01 10:30", kolkata)
	assert.NoError(t, err)
	assert.Equal(t, "2024-06-01T05:00:00.000Z", models.FormatInstant(instant))
}

func Test_ParseLocalDateTime_WhenMalformed_ShouldBeValidationError(t *testing.T) {

	_, err := ParseLocalDateTime("01/06/2024 10:30", time.UTC)

	assert.True(t, IsValidationError(err))
}

func Test_Validate_ShouldNameJSONFields(t *testing.T) {

	err := Validate(models.NewClient{
		ClientName:    "Acme",
		ContactEmails: []string{"hr@acme.com", "not-an-email"},
	})

	assert.True(t, IsValidationError(err))
	assert.Contains(t, err.Error(), "industry is required")
	assert.Contains(t, err.Error(), "contact emails[1] must be a valid email address")
}

func Test_Validate_WhenPayloadValid_ShouldPass(t *testing.T) {

	err := Validate(models.NewUser{Email: "rec@agency.com", Password: "pw", Name: "Rec", Role: models.RoleRecruiter})

	assert.NoError(t, err)
}

func Test_ParseOptionalInt_ShouldTreatBlankAsAbsent(t *testing.T) {

	value, err := ParseOptionalInt("team size", " ")
	assert.NoError(t, err)
	assert.Nil(t, value)

	value, err = ParseOptionalInt("team size", "12")
	assert.NoError(t, err)
	assert.Equal(t, 12, *value)

	_, err = ParseOptionalInt("team size", "twelve")
	assert.True(t, IsValidationError(err))
}
