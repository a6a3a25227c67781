package candidate

import (
	"testing"

	"candidate-dashboard/models"

	"github.com/stretchr/testify/require"
)

func TestNextToggleValue(t *testing.T) {
	t.Run(`toggle table check`, func(t *testing.T) {
		cases := []struct {
			field   models.ToggleField
			current string
			want    string
		}{
			{models.FieldWhatsappMsg, "sent", "pending"},
			{models.FieldWhatsappMsg, "pending", "sent"},
			{models.FieldPhoneEnquiry, "done", "not done"},
			{models.FieldPhoneEnquiry, "not done", "done"},
			{models.FieldOnline, "attended", "absent"},
			{models.FieldOnline, "absent", "attended"},
			{models.FieldProgram, "attended", "ghosted"},
			{models.FieldProgram, "ghosted", "attended"},
		}
		for _, tc := range cases {
			next, err := nextToggleValue(tc.field, tc.current)
			require.Nil(t, err)
			require.Equal(t, tc.want, next)
		}
	})

	t.Run(`malformed current falls back to positive value`, func(t *testing.T) {
		cases := []struct {
			field   models.ToggleField
			current string
			want    string
		}{
			{models.FieldWhatsappMsg, "unexpected-value", "sent"},
			{models.FieldWhatsappMsg, "", "sent"},
			{models.FieldPhoneEnquiry, "unexpected-value", "done"},
			{models.FieldOnline, "", "attended"},
			{models.FieldProgram, "skipped", "attended"},
		}
		for _, tc := range cases {
			next, err := nextToggleValue(tc.field, tc.current)
			require.Nil(t, err)
			require.Equal(t, tc.want, next)
		}
	})

	t.Run(`unknown field is rejected`, func(t *testing.T) {
		_, err := nextToggleValue("fullName", "sent")
		require.NotNil(t, err)
	})
}
