package datasheetapimodels

import "candidate-dashboard/models"

// Запросы к табличному сервису, json-имена зафиксированы его контрактом.

type UpdateCandidateRequest struct {
	ID    string             `json:"id"`
	Field models.ToggleField `json:"field"`
	Value string             `json:"value"`
}

type SendRemindersRequest struct {
	Days  int    `json:"days"`
	Batch string `json:"batch"`
}

type ErrorData struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
