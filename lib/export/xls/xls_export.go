package xlsexport

import (
	"bytes"
	"fmt"

	candidateapimodels "candidate-dashboard/models/api/candidate"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportRoster(batch string, list []candidateapimodels.Candidate, stats candidateapimodels.Statistics) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var rosterHeaders = []string{"ФИО", "Телефон", "Email", "Колледж", "Направление", "Дата заявки", "Год выпуска", "Поток", "WhatsApp", "Обзвон", "Онлайн-сессия", "Программа"}

func (i impl) ExportRoster(batch string, list []candidateapimodels.Candidate, stats candidateapimodels.Statistics) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, rosterHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		if err = writeRosterData(f, sheet, list, row); err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Кандидаты")
	if err = writeSummarySheet(f, batch, stats); err != nil {
		return nil, errors.Wrap(err, "ошибка формирования листа сводки в xlsx")
	}
	return f.WriteToBuffer()
}

func writeRosterData(f *excelize.File, sheet string, list []candidateapimodels.Candidate, row int) error {
	for _, item := range list {
		row++
		values := []interface{}{
			item.FullName,
			item.ContactNumber,
			item.EmailID,
			item.NameOfCollege,
			item.Stream,
			item.DateOfApplication,
			item.YearOfCompletion,
			item.Batch,
			string(item.WhatsappMsg),
			string(item.PhoneEnquiry),
			string(item.Online),
			string(item.Program),
		}
		for idx, value := range values {
			if err := writeColumn(f, sheet, idx+1, row, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, batch string, stats candidateapimodels.Statistics) error {
	sheet := "Сводка"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	rows := [][]interface{}{
		{"Поток", batch},
		{"Кандидатов", stats.CandidateCount},
		{"Отправлено WhatsApp", stats.WhatsappSent},
		{"Завершено обзвонов", stats.PhoneEnquiryDone},
		{"Посетили онлайн-сессию", stats.OnlineAttended},
		{"Посещаемость программы, %", fmt.Sprintf("%.1f", stats.AttendanceRate)},
	}
	for _, yc := range stats.TopYears {
		rows = append(rows, []interface{}{fmt.Sprintf("Год выпуска %v", yc.Year), yc.Count})
	}
	for rowIdx, pair := range rows {
		for colIdx, value := range pair {
			if err := writeColumn(f, sheet, colIdx+1, rowIdx+1, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeColumn(f *excelize.File, sheet string, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}

func writeHeader(f *excelize.File, sheet string, row int, headers []string) (int, error) {
	row++
	style, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{
			Horizontal: "center",
		},
		Font: &excelize.Font{
			Bold:   true,
			Family: "Times New Roman",
			Size:   11,
		},
	})
	if err != nil {
		return row, err
	}
	cellFirst, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return row, err
	}
	cellLast, err := excelize.CoordinatesToCellName(len(headers), row)
	if err != nil {
		return row, err
	}
	if err = f.SetCellStyle(sheet, cellFirst, cellLast, style); err != nil {
		return row, err
	}
	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return row, err
	}
	if err = f.SetColWidth(sheet, "A", lastCol, 25); err != nil {
		return row, err
	}
	for idx, value := range headers {
		if err = writeColumn(f, sheet, idx+1, row, value); err != nil {
			return row, err
		}
	}
	return row, nil
}
