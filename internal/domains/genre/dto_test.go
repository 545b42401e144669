package genre

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/shared"
)

func TestFormInput_Sanitize(t *testing.T) {
	in := FormInput{Name: "  Fantasy "}
	in.Sanitize()
	assert.Equal(t, "Fantasy", in.Name)
}

func TestFormInput_Validate(t *testing.T) {
	t.Run("valid name passes", func(t *testing.T) {
		in := FormInput{Name: "Fantasy"}
		assert.NoError(t, in.Validate())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		in := FormInput{}

		fields, ok := shared.FieldErrors(in.Validate())
		require.True(t, ok)
		assert.Equal(t, "Genre name must be specified", fields["name"])
	})

	t.Run("too short", func(t *testing.T) {
		in := FormInput{Name: "SF"}

		_, ok := shared.FieldErrors(in.Validate())
		assert.True(t, ok)
	})

	t.Run("minimum length accepted", func(t *testing.T) {
		in := FormInput{Name: "War"}
		assert.NoError(t, in.Validate())
	})

	t.Run("short markup-only name rejected on raw length", func(t *testing.T) {
		// "<>" is 2 runes; its escaped form is 8. The length rule must
		// measure the raw input.
		in := FormInput{Name: "<>"}
		in.Sanitize()

		_, ok := shared.FieldErrors(in.Validate())
		assert.True(t, ok)
	})

	t.Run("markup chars at the upper bound accepted on raw length", func(t *testing.T) {
		in := FormInput{Name: strings.Repeat("&", MaxNameLength)}
		in.Sanitize()
		assert.NoError(t, in.Validate())
	})
}

func TestFormInput_ToEntity_EscapesMarkup(t *testing.T) {
	in := FormInput{Name: "Sci<fi> & Fantasy"}
	assert.Equal(t, "Sci&lt;fi&gt; &amp; Fantasy", in.ToEntity().Name)
}
