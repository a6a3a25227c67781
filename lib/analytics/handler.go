package analytics

import (
	"sort"

	"candidate-dashboard/models"
	candidateapimodels "candidate-dashboard/models/api/candidate"
)

type Provider interface {
	Summary(list []candidateapimodels.Candidate) candidateapimodels.Statistics
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const topYearsLimit = 3

// Summary сводка по выборке кандидатов, чистый пересчёт без I/O
func (i impl) Summary(list []candidateapimodels.Candidate) candidateapimodels.Statistics {
	result := candidateapimodels.Statistics{
		CandidateCount: len(list),
		TopYears:       []candidateapimodels.YearCount{},
	}
	yearCounts := map[interface{}]int{}
	yearOrder := []interface{}{}
	attended := 0
	total := 0
	for _, rec := range list {
		if rec.WhatsappMsg == models.WhatsappSent {
			result.WhatsappSent++
		}
		if rec.PhoneEnquiry == models.PhoneEnquiryDone {
			result.PhoneEnquiryDone++
		}
		if rec.Online == models.OnlineAttended {
			result.OnlineAttended++
		}
		// строка "2023" и число 2023 считаются разными ключами,
		// значения не нормализуются
		if year := rec.YearOfCompletion; isTruthy(year) {
			if _, ok := yearCounts[year]; !ok {
				yearOrder = append(yearOrder, year)
			}
			yearCounts[year]++
		}
		// бинарная таксономия attended/ghosted, иные значения
		// не входят ни в числитель, ни в знаменатель
		switch rec.Program {
		case models.ProgramAttended:
			attended++
			total++
		case models.ProgramGhosted:
			total++
		}
	}

	// стабильная сортировка: при равных счётчиках сохраняется порядок
	// первого появления года в выборке
	sort.SliceStable(yearOrder, func(a, b int) bool {
		return yearCounts[yearOrder[a]] > yearCounts[yearOrder[b]]
	})
	for idx, year := range yearOrder {
		if idx == topYearsLimit {
			break
		}
		result.TopYears = append(result.TopYears, candidateapimodels.YearCount{
			Year:  year,
			Count: yearCounts[year],
		})
	}

	if total > 0 {
		result.AttendanceRate = float64(attended) / float64(total) * 100
	}
	return result
}

func isTruthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case float64:
		return v != 0
	case int:
		return v != 0
	case bool:
		return v
	}
	return true
}
