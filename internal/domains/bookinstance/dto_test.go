package bookinstance

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/shared"
)

func TestFormInput_Sanitize_DefaultsStatus(t *testing.T) {
	in := FormInput{Book: uuid.NewString(), Imprint: "Penguin Classics"}
	in.Sanitize()
	assert.Equal(t, string(StatusMaintenance), in.Status)

	in = FormInput{Status: " Available "}
	in.Sanitize()
	assert.Equal(t, string(StatusAvailable), in.Status)
}

func TestFormInput_Validate(t *testing.T) {
	valid := FormInput{
		Book:    uuid.NewString(),
		Imprint: "Penguin Classics, 1996",
		Status:  string(StatusLoaned),
		DueBack: "2026-09-15",
	}

	t.Run("valid input passes", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("every status in the set accepted", func(t *testing.T) {
		for _, status := range AllStatuses() {
			in := valid
			in.Status = string(status)
			assert.NoError(t, in.Validate(), string(status))
		}
	})

	t.Run("status outside the set rejected", func(t *testing.T) {
		in := valid
		in.Status = "Lost"

		fields, ok := shared.FieldErrors(in.Validate())
		require.True(t, ok)
		assert.Equal(t, "Invalid status", fields["status"])
	})

	t.Run("missing book and imprint", func(t *testing.T) {
		in := FormInput{Status: string(StatusMaintenance)}

		fields, ok := shared.FieldErrors(in.Validate())
		require.True(t, ok)
		assert.Equal(t, "Book must be specified", fields["book"])
		assert.Equal(t, "Imprint must be specified", fields["imprint"])
	})

	t.Run("malformed due date", func(t *testing.T) {
		in := valid
		in.DueBack = "next tuesday"

		fields, ok := shared.FieldErrors(in.Validate())
		require.True(t, ok)
		assert.Equal(t, "Invalid date", fields["due_back"])
	})

	t.Run("empty due date passes", func(t *testing.T) {
		in := valid
		in.DueBack = ""
		assert.NoError(t, in.Validate())
	})
}

func TestFormInput_ToEntity(t *testing.T) {
	bookID := uuid.New()

	t.Run("explicit due date", func(t *testing.T) {
		in := FormInput{
			Book:    bookID.String(),
			Imprint: "Penguin Classics",
			Status:  string(StatusLoaned),
			DueBack: "2026-09-15",
		}

		bi, err := in.ToEntity()
		require.NoError(t, err)

		assert.Equal(t, bookID, bi.BookID)
		assert.Equal(t, StatusLoaned, bi.Status)
		assert.Equal(t, "2026-09-15", bi.DueBackForm())
	})

	t.Run("imprint markup escaped", func(t *testing.T) {
		in := FormInput{
			Book:    bookID.String(),
			Imprint: "Penguin <i>Classics</i>",
			Status:  string(StatusMaintenance),
		}

		bi, err := in.ToEntity()
		require.NoError(t, err)
		assert.Equal(t, "Penguin &lt;i&gt;Classics&lt;/i&gt;", bi.Imprint)
	})

	t.Run("omitted due date defaults to now", func(t *testing.T) {
		in := FormInput{
			Book:    bookID.String(),
			Imprint: "Penguin Classics",
			Status:  string(StatusMaintenance),
		}

		bi, err := in.ToEntity()
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), bi.DueBack, time.Minute)
	})
}

func TestBookInstance_DueBackFormatted(t *testing.T) {
	bi := BookInstance{DueBack: time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, "Sep 15, 2026", bi.DueBackFormatted())
	assert.Equal(t, "2026-09-15", bi.DueBackForm())
}
