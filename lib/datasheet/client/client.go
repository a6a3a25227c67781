package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	candidateapimodels "candidate-dashboard/models/api/candidate"
	datasheetapimodels "candidate-dashboard/models/api/datasheet"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GetCandidates(ctx context.Context) ([]candidateapimodels.Candidate, error)
	UpdateCandidate(ctx context.Context, req datasheetapimodels.UpdateCandidateRequest) error
	SendReminders(ctx context.Context, req datasheetapimodels.SendRemindersRequest) error
}

var Instance Provider

func NewProvider(host string, requestTimeout time.Duration) {
	Instance = &impl{
		host: host,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

type impl struct {
	host       string
	httpClient *http.Client
}

const (
	candidatesPath = "/api/candidates"
	updatePath     = "/api/update-candidate"
	remindersPath  = "/api/send-reminders"
)

func (i impl) GetCandidates(ctx context.Context) ([]candidateapimodels.Candidate, error) {
	uri := i.host + candidatesPath
	logger := log.
		WithField("external_request", uri)

	r, _ := http.NewRequestWithContext(ctx, "GET", uri, nil)
	r.Header.Add("Content-Type", "application/json")
	resp := []candidateapimodels.Candidate{}

	err := i.sendRequest(logger, r, &resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (i impl) UpdateCandidate(ctx context.Context, req datasheetapimodels.UpdateCandidateRequest) error {
	uri := i.host + updatePath
	logger := log.
		WithField("candidate_id", req.ID).
		WithField("field", req.Field).
		WithField("external_request", uri)
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации запроса")
	}

	r, _ := http.NewRequestWithContext(ctx, "POST", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")

	logger = logger.
		WithField("request_body", string(body))

	return i.sendRequest(logger, r, nil)
}

func (i impl) SendReminders(ctx context.Context, req datasheetapimodels.SendRemindersRequest) error {
	uri := i.host + remindersPath
	logger := log.
		WithField("batch", req.Batch).
		WithField("days", req.Days).
		WithField("external_request", uri)
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "ошибка сериализации запроса")
	}

	r, _ := http.NewRequestWithContext(ctx, "POST", uri, bytes.NewBuffer(body))
	r.Header.Add("Content-Type", "application/json")

	logger = logger.
		WithField("request_body", string(body))

	return i.sendRequest(logger, r, nil)
}

func (i impl) sendRequest(logger *log.Entry, r *http.Request, resp interface{}) error {
	r.Header.Add("User-Agent", "CandidateDashboard/1.0")
	response, err := i.httpClient.Do(r)
	if err != nil {
		logger.WithError(err).Error("ошибка отправки запроса в табличный сервис")
		return errors.Wrap(err, "табличный сервис недоступен")
	}
	defer response.Body.Close()
	if response.StatusCode >= 200 && response.StatusCode < 300 {
		if resp != nil {
			responseBody, _ := io.ReadAll(response.Body)
			err = json.Unmarshal(responseBody, resp)
			if err != nil {
				return errors.Wrap(err, "ошибка десериализации ответа")
			}
		}
		return nil
	}

	errorResp := datasheetapimodels.ErrorData{}
	responseBody, _ := io.ReadAll(response.Body)
	logger = logger.WithField("response_body", string(responseBody))
	if jsonErr := json.Unmarshal(responseBody, &errorResp); jsonErr == nil && errorResp.Error != "" {
		logger.Error("ошибка запроса в табличный сервис")
		return errors.Errorf("табличный сервис вернул ошибку: %v", errorResp.Error)
	}
	logger.Error("ошибка запроса в табличный сервис")
	return errors.New(fmt.Sprintf("табличный сервис вернул статус %v", response.StatusCode))
}
