package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	RegisterValidations(v)
	return v
}

// --- SanitizeStruct tests ---

func TestSanitizeStruct_TrimsWhitespace(t *testing.T) {
	req := AddCardRequest{
		OwnerName:  "  Johnny   Appleseed  ",
		CardNumber: " 5412345678901234 ",
	}
	SanitizeStruct(&req)

	assert.Equal(t, "Johnny Appleseed", req.OwnerName)
	assert.Equal(t, "5412345678901234", req.CardNumber)
}

func TestSanitizeStruct_KeepsApostrophes(t *testing.T) {
	req := AddCardRequest{OwnerName: "Liam O'Brien"}
	SanitizeStruct(&req)
	assert.Equal(t, "Liam O'Brien", req.OwnerName)
}

func TestSanitizeStruct_HandlesPointerString(t *testing.T) {
	note := "  a   note "
	req := struct {
		Note  *string
		Empty *string
	}{Note: &note}
	SanitizeStruct(&req)

	assert.Equal(t, "a note", *req.Note)
	assert.Nil(t, req.Empty)
}

func TestSanitizeStruct_NonPointerIsNoOp(t *testing.T) {
	s := "hello"
	SanitizeStruct(s) // should not panic
	SanitizeStruct(&s)
	assert.Equal(t, "hello", s)
}

// --- Custom Validator tests ---

func TestAddCardRequest_Valid(t *testing.T) {
	v := newValidator(t)
	cases := []AddCardRequest{
		{OwnerName: "Mia Davis"},
		{OwnerName: "Liam O'Brien", CardNumber: "5412345678901234"},
		{OwnerName: "Anne-Marie St. Clair", CardNumber: "541234567890"},
		{OwnerName: "Zoë Müller", CardNumber: "5412345678901234567"},
		{OwnerName: "Ava Scott", CardNumber: " 541234567890123 "},
	}
	for _, tc := range cases {
		assert.NoError(t, v.Struct(tc), "expected valid: %+v", tc)
	}
}

func TestAddCardRequest_Invalid(t *testing.T) {
	v := newValidator(t)
	cases := []struct {
		name string
		req  AddCardRequest
		tag  string
	}{
		{"missing owner", AddCardRequest{}, "required"},
		{"digits in owner", AddCardRequest{OwnerName: "R2D2"}, "owner_name"},
		{"markup in owner", AddCardRequest{OwnerName: "<b>Mia</b>"}, "owner_name"},
		{"leading dash", AddCardRequest{OwnerName: "-Mia"}, "owner_name"},
		{"dashed number", AddCardRequest{OwnerName: "Mia", CardNumber: "5412-3456-7890-1234"}, "card_number"},
		{"short number", AddCardRequest{OwnerName: "Mia", CardNumber: "54123456789"}, "card_number"},
		{"long number", AddCardRequest{OwnerName: "Mia", CardNumber: "54123456789012345678"}, "card_number"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			require.Error(t, err)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tc.tag, verrs[0].Tag())
		})
	}
}
