package candidatestore

import (
	"testing"

	"candidate-dashboard/models"
	candidateapimodels "candidate-dashboard/models/api/candidate"

	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	list := []candidateapimodels.Candidate{
		{ID: "1", Batch: "A", WhatsappMsg: "pending"},
		{ID: "2", Batch: "B"},
		{ID: "3", Batch: ""},
		{ID: "4", Batch: "A"},
	}

	t.Run(`filter count matches the roster`, func(t *testing.T) {
		store := NewInstance()
		store.Fill(list)
		require.Len(t, store.List(models.AllBatches), 4)
		require.Len(t, store.List("A"), 2)
		require.Len(t, store.List("B"), 1)
		require.Len(t, store.List("C"), 0)
		require.Equal(t, []string{"A", "B"}, store.Batches())
	})

	t.Run(`set field on missing candidate fails`, func(t *testing.T) {
		store := NewInstance()
		store.Fill(list)
		err := store.SetField("99", models.FieldWhatsappMsg, "sent")
		require.NotNil(t, err)
	})

	t.Run(`listed snapshot is detached from the store`, func(t *testing.T) {
		store := NewInstance()
		store.Fill(list)
		snapshot := store.List(models.AllBatches)
		require.Nil(t, store.SetField("1", models.FieldWhatsappMsg, "sent"))
		require.Equal(t, models.WhatsappPending, snapshot[0].WhatsappMsg)
		require.Equal(t, models.WhatsappSent, store.List(models.AllBatches)[0].WhatsappMsg)
	})
}
