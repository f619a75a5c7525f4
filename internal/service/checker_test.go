package service

import (
	"StuffKeeper/internal/model/view"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckUser_FirstFailureWins(t *testing.T) {
	cases := []struct {
		name string
		in   view.User
		want string
	}{
		{"all empty", view.User{}, "The id cannot be empty."},
		{"blank id", view.User{ID: "  ", GivenName: "G", FamilyName: "F", Email: "e"}, "The id cannot be empty."},
		{"given", view.User{ID: "x", FamilyName: "F", Email: "e"}, "The given name cannot be empty."},
		{"family", view.User{ID: "x", GivenName: "G"}, "The family name cannot be empty."},
		{"email", view.User{ID: "x", GivenName: "G", FamilyName: "F", Email: "\n"}, "The email cannot be empty."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckUser(&tc.in)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.want, verr.Message)
		})
	}

	assert.NoError(t, CheckUser(&view.User{ID: "x", GivenName: "G", FamilyName: "F", Email: "e"}))
}

func TestCheckDatum(t *testing.T) {
	err := CheckDatum(&view.Datum{Description: "only description"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The label cannot be empty.", verr.Message)

	// владелец во входной модели не проверяется
	assert.NoError(t, CheckDatum(&view.Datum{Label: "lamp", User: &view.User{}}))
}
