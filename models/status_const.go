package models

type WhatsappStatus string

const (
	WhatsappSent    WhatsappStatus = "sent"
	WhatsappPending WhatsappStatus = "pending"
)

type PhoneEnquiryStatus string

const (
	PhoneEnquiryDone    PhoneEnquiryStatus = "done"
	PhoneEnquiryNotDone PhoneEnquiryStatus = "not done"
)

type OnlineStatus string

const (
	OnlineAttended OnlineStatus = "attended"
	OnlineAbsent   OnlineStatus = "absent"
)

type ProgramStatus string

const (
	ProgramAttended ProgramStatus = "attended"
	ProgramGhosted  ProgramStatus = "ghosted"
)

// ToggleField поля статусов кандидата, доступные для переключения
type ToggleField string

const (
	FieldWhatsappMsg  ToggleField = "whatsappMsg"
	FieldPhoneEnquiry ToggleField = "phoneEnquiry"
	FieldOnline       ToggleField = "online"
	FieldProgram      ToggleField = "program"
)

func (f ToggleField) IsKnown() bool {
	switch f {
	case FieldWhatsappMsg, FieldPhoneEnquiry, FieldOnline, FieldProgram:
		return true
	}
	return false
}

// AllBatches сентинел выборки "все потоки"
const AllBatches = "All batches"
