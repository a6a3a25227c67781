package reminder

import (
	"context"

	datasheetclient "candidate-dashboard/lib/datasheet/client"
	initchecker "candidate-dashboard/lib/utils/init-checker"
	candidateapimodels "candidate-dashboard/models/api/candidate"
	datasheetapimodels "candidate-dashboard/models/api/datasheet"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Send(ctx context.Context, req candidateapimodels.ReminderRequest) (candidateapimodels.ReminderConfirmation, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		client: datasheetclient.Instance,
	}
	initchecker.CheckInit(
		"datasheetClient", instance.client,
	)
	Instance = instance
}

type impl struct {
	client datasheetclient.Provider
}

// Send запускает массовую рассылку напоминаний по потоку.
// Письма отправляет табличный сервис, локальное состояние не меняется.
func (i impl) Send(ctx context.Context, req candidateapimodels.ReminderRequest) (candidateapimodels.ReminderConfirmation, error) {
	err := i.client.SendReminders(ctx, datasheetapimodels.SendRemindersRequest{
		Days:  req.Days,
		Batch: req.Batch,
	})
	if err != nil {
		return candidateapimodels.ReminderConfirmation{}, err
	}
	log.
		WithField("batch", req.Batch).
		WithField("days", req.Days).
		Info("рассылка напоминаний запущена")
	return candidateapimodels.ReminderConfirmation{
		Days:  req.Days,
		Batch: req.Batch,
	}, nil
}
