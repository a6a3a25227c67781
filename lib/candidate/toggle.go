package candidate

import (
	"candidate-dashboard/models"

	"github.com/pkg/errors"
)

// nextToggleValue цикл из двух значений на каждое поле.
// Неожиданное текущее значение (битые данные в таблице) детерминированно
// сводится к "положительному" значению поля.
func nextToggleValue(field models.ToggleField, current string) (string, error) {
	switch field {
	case models.FieldWhatsappMsg:
		if models.WhatsappStatus(current) == models.WhatsappSent {
			return string(models.WhatsappPending), nil
		}
		return string(models.WhatsappSent), nil
	case models.FieldPhoneEnquiry:
		if models.PhoneEnquiryStatus(current) == models.PhoneEnquiryDone {
			return string(models.PhoneEnquiryNotDone), nil
		}
		return string(models.PhoneEnquiryDone), nil
	case models.FieldOnline:
		if models.OnlineStatus(current) == models.OnlineAttended {
			return string(models.OnlineAbsent), nil
		}
		return string(models.OnlineAttended), nil
	case models.FieldProgram:
		if models.ProgramStatus(current) == models.ProgramAttended {
			return string(models.ProgramGhosted), nil
		}
		return string(models.ProgramAttended), nil
	}
	return "", errors.Errorf("неизвестное поле статуса: %v", field)
}
