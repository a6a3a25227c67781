package initializers

import (
	"context"
	"time"

	"candidate-dashboard/config"
	"candidate-dashboard/fiberlog"
	"candidate-dashboard/lib/analytics"
	"candidate-dashboard/lib/candidate"
	datasheetclient "candidate-dashboard/lib/datasheet/client"
	xlsexport "candidate-dashboard/lib/export/xls"
	reminderhandler "candidate-dashboard/lib/reminder"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	datasheetclient.NewProvider(
		config.Conf.DataSheet.Host,
		time.Duration(config.Conf.DataSheet.RequestTimeoutSec)*time.Second,
	)
	candidate.NewHandler()
	analytics.NewHandler()
	reminderhandler.NewHandler()
	xlsexport.NewHandler()
	loadCandidates(ctx)
}

// единственная загрузка реестра за сессию, при ошибке повторов нет —
// дашборд остаётся в состоянии ошибки до перезапуска
func loadCandidates(ctx context.Context) {
	if err := candidate.Instance.Load(ctx); err != nil {
		log.WithError(err).Error("ошибка загрузки реестра кандидатов, дашборд будет недоступен")
	}
}
