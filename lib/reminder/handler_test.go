package reminder

import (
	"context"
	"testing"

	candidateapimodels "candidate-dashboard/models/api/candidate"
	datasheetapimodels "candidate-dashboard/models/api/datasheet"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeDatasheetClient struct {
	reminders   []datasheetapimodels.SendRemindersRequest
	reminderErr error
}

func (f *fakeDatasheetClient) GetCandidates(ctx context.Context) ([]candidateapimodels.Candidate, error) {
	return nil, nil
}

func (f *fakeDatasheetClient) UpdateCandidate(ctx context.Context, req datasheetapimodels.UpdateCandidateRequest) error {
	return nil
}

func (f *fakeDatasheetClient) SendReminders(ctx context.Context, req datasheetapimodels.SendRemindersRequest) error {
	f.reminders = append(f.reminders, req)
	return f.reminderErr
}

func TestSend(t *testing.T) {
	t.Run(`confirmation echoes days and batch`, func(t *testing.T) {
		client := &fakeDatasheetClient{}
		i := impl{client: client}
		confirmation, err := i.Send(context.TODO(), candidateapimodels.ReminderRequest{Days: 7, Batch: "Batch March 2024"})
		require.Nil(t, err)
		require.Equal(t, 7, confirmation.Days)
		require.Equal(t, "Batch March 2024", confirmation.Batch)
		require.Len(t, client.reminders, 1)
		require.Equal(t, 7, client.reminders[0].Days)
		require.Equal(t, "Batch March 2024", client.reminders[0].Batch)
	})

	t.Run(`dispatch failure surfaces without confirmation`, func(t *testing.T) {
		client := &fakeDatasheetClient{reminderErr: errors.New("HTTP 500")}
		i := impl{client: client}
		_, err := i.Send(context.TODO(), candidateapimodels.ReminderRequest{Days: 3, Batch: "Batch June 2024"})
		require.NotNil(t, err)
	})
}
