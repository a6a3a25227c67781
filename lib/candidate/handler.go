package candidate

import (
	"context"

	candidatestore "candidate-dashboard/lib/candidate/store"
	datasheetclient "candidate-dashboard/lib/datasheet/client"
	initchecker "candidate-dashboard/lib/utils/init-checker"
	candidateapimodels "candidate-dashboard/models/api/candidate"
	datasheetapimodels "candidate-dashboard/models/api/datasheet"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Load(ctx context.Context) error
	List(batch string) ([]candidateapimodels.Candidate, error)
	Batches() ([]string, error)
	Toggle(ctx context.Context, req candidateapimodels.ToggleRequest) (nextValue string, err error)
}

var Instance Provider

func NewHandler() {
	instance := &impl{
		store:  candidatestore.NewInstance(),
		client: datasheetclient.Instance,
	}
	initchecker.CheckInit(
		"datasheetClient", instance.client,
	)
	Instance = instance
}

type impl struct {
	store  candidatestore.Provider
	client datasheetclient.Provider

	// ошибка единственной загрузки реестра, терминальна для сессии
	loadErr error
	loaded  bool
}

// Load выполняется один раз на старте, до запуска HTTP сервера.
// Повторной загрузки при ошибке нет, сессия остаётся в состоянии ошибки.
func (i *impl) Load(ctx context.Context) error {
	list, err := i.client.GetCandidates(ctx)
	if err != nil {
		i.loadErr = err
		return errors.Wrap(err, "ошибка загрузки реестра кандидатов")
	}
	i.store.Fill(list)
	i.loaded = true
	log.WithField("candidate_count", len(list)).Info("реестр кандидатов загружен")
	return nil
}

func (i *impl) List(batch string) ([]candidateapimodels.Candidate, error) {
	if err := i.sessionState(); err != nil {
		return nil, err
	}
	return i.store.List(batch), nil
}

func (i *impl) Batches() ([]string, error) {
	if err := i.sessionState(); err != nil {
		return nil, err
	}
	return i.store.Batches(), nil
}

// Toggle переключает одно из четырёх полей статуса: сначала оптимистично
// в реестре, затем в табличном сервисе. При ошибке записи поле
// возвращается к прежнему значению.
func (i *impl) Toggle(ctx context.Context, req candidateapimodels.ToggleRequest) (string, error) {
	if err := i.sessionState(); err != nil {
		return "", err
	}
	next, err := nextToggleValue(req.Field, req.Value)
	if err != nil {
		return "", err
	}
	if err = i.store.SetField(req.ID, req.Field, next); err != nil {
		return "", err
	}
	err = i.client.UpdateCandidate(ctx, datasheetapimodels.UpdateCandidateRequest{
		ID:    req.ID,
		Field: req.Field,
		Value: next,
	})
	if err != nil {
		if revertErr := i.store.SetField(req.ID, req.Field, req.Value); revertErr != nil {
			log.WithError(revertErr).
				WithField("candidate_id", req.ID).
				Error("не удалось вернуть поле к прежнему значению")
		}
		return "", errors.Wrap(err, "ошибка сохранения статуса в таблице")
	}
	return next, nil
}

func (i *impl) sessionState() error {
	if i.loadErr != nil {
		return errors.Wrap(i.loadErr, "реестр кандидатов не загружен")
	}
	if !i.loaded {
		return errors.New("реестр кандидатов ещё не загружен")
	}
	return nil
}
