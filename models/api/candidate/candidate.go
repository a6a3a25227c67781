package candidateapimodels

import (
	"candidate-dashboard/models"

	"github.com/pkg/errors"
)

// Candidate запись реестра, как её отдаёт табличный сервис.
// Имена json-полей зафиксированы контрактом табличного сервиса.
type Candidate struct {
	ID                string                    `json:"id"`                // Идентификатор кандидата (назначает табличный сервис)
	FullName          string                    `json:"fullName"`          // ФИО
	ContactNumber     string                    `json:"contactNumber"`     // Телефон
	EmailID           string                    `json:"emailId"`           // Емайл
	NameOfCollege     string                    `json:"nameOfCollege"`     // Колледж
	Stream            string                    `json:"stream"`            // Направление обучения
	DateOfApplication string                    `json:"dateOfApplication"` // Дата заявки
	YearOfCompletion  interface{}               `json:"yearOfCompletion"`  // Год выпуска, строка или число — как в таблице
	Batch             string                    `json:"batch"`             // Поток, может отсутствовать
	WhatsappMsg       models.WhatsappStatus     `json:"whatsappMsg"`       // Статус рассылки WhatsApp
	PhoneEnquiry      models.PhoneEnquiryStatus `json:"phoneEnquiry"`      // Статус обзвона
	Online            models.OnlineStatus       `json:"online"`            // Посещение онлайн-сессии
	Program           models.ProgramStatus      `json:"program"`           // Посещение программы
}

type RosterView struct {
	Candidates []Candidate `json:"candidates"`     // Кандидаты выбранного потока
	Batches    []string    `json:"batches"`        // Список потоков в порядке появления в реестре
	Selected   string      `json:"selected_batch"` // Выбранный поток
}

type ToggleRequest struct {
	ID    string             `json:"id"`    // Идентификатор кандидата
	Field models.ToggleField `json:"field"` // Переключаемое поле
	Value string             `json:"value"` // Текущее отображаемое значение
}

func (r ToggleRequest) Validate() error {
	if r.ID == "" {
		return errors.New("не указан идентификатор кандидата")
	}
	if !r.Field.IsKnown() {
		return errors.Errorf("неизвестное поле статуса: %v", r.Field)
	}
	return nil
}

type ToggleResponse struct {
	ID    string             `json:"id"`
	Field models.ToggleField `json:"field"`
	Value string             `json:"value"` // Применённое новое значение
}

type Statistics struct {
	CandidateCount   int         `json:"candidate_count"`    // Кандидатов в выборке
	WhatsappSent     int         `json:"whatsapp_sent"`      // Отправлено сообщений WhatsApp
	PhoneEnquiryDone int         `json:"phone_enquiry_done"` // Завершено обзвонов
	OnlineAttended   int         `json:"online_attended"`    // Посетили онлайн-сессию
	TopYears         []YearCount `json:"top_years"`          // До 3 годов выпуска по убыванию
	AttendanceRate   float64     `json:"attendance_rate"`    // Доля посетивших программу, %
}

type YearCount struct {
	Year  interface{} `json:"year"`
	Count int         `json:"count"`
}

type ReminderRequest struct {
	Days  int    `json:"days"`  // За сколько дней до программы
	Batch string `json:"batch"` // Поток рассылки
}

func (r ReminderRequest) Validate() error {
	if r.Days <= 0 {
		return errors.New("некорректное количество дней до программы")
	}
	if r.Batch == "" || r.Batch == models.AllBatches {
		return errors.New("рассылка доступна только для конкретного потока")
	}
	return nil
}

type ReminderConfirmation struct {
	Days  int    `json:"days"`
	Batch string `json:"batch"`
}
