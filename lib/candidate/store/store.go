package candidatestore

import (
	"sync"

	"candidate-dashboard/models"
	candidateapimodels "candidate-dashboard/models/api/candidate"

	"github.com/pkg/errors"
)

type Provider interface {
	Fill(list []candidateapimodels.Candidate)
	List(batch string) []candidateapimodels.Candidate
	Batches() []string
	SetField(id string, field models.ToggleField, value string) error
}

// Реестр кандидатов в памяти процесса, единственный владелец записей.
// Записи создаёт и удаляет только табличный сервис, здесь меняются лишь
// четыре переключаемых поля.
func NewInstance() Provider {
	return &impl{}
}

type impl struct {
	mx      sync.RWMutex
	list    []candidateapimodels.Candidate
	batches []string
}

func (i *impl) Fill(list []candidateapimodels.Candidate) {
	i.mx.Lock()
	defer i.mx.Unlock()
	i.list = list
	i.batches = []string{}
	seen := map[string]bool{}
	for _, rec := range list {
		if rec.Batch == "" || seen[rec.Batch] {
			continue
		}
		seen[rec.Batch] = true
		i.batches = append(i.batches, rec.Batch)
	}
}

// List выборка по потоку с сохранением исходного порядка,
// для сентинела AllBatches — весь реестр
func (i *impl) List(batch string) []candidateapimodels.Candidate {
	i.mx.RLock()
	defer i.mx.RUnlock()
	result := make([]candidateapimodels.Candidate, 0, len(i.list))
	for _, rec := range i.list {
		if batch == models.AllBatches || rec.Batch == batch {
			result = append(result, rec)
		}
	}
	return result
}

func (i *impl) Batches() []string {
	i.mx.RLock()
	defer i.mx.RUnlock()
	result := make([]string, len(i.batches))
	copy(result, i.batches)
	return result
}

func (i *impl) SetField(id string, field models.ToggleField, value string) error {
	i.mx.Lock()
	defer i.mx.Unlock()
	for idx := range i.list {
		if i.list[idx].ID != id {
			continue
		}
		switch field {
		case models.FieldWhatsappMsg:
			i.list[idx].WhatsappMsg = models.WhatsappStatus(value)
		case models.FieldPhoneEnquiry:
			i.list[idx].PhoneEnquiry = models.PhoneEnquiryStatus(value)
		case models.FieldOnline:
			i.list[idx].Online = models.OnlineStatus(value)
		case models.FieldProgram:
			i.list[idx].Program = models.ProgramStatus(value)
		default:
			return errors.Errorf("неизвестное поле статуса: %v", field)
		}
		return nil
	}
	return errors.New("кандидат не найден в реестре")
}
