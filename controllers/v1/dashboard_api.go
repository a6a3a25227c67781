package apiv1

import (
	"fmt"
	"time"

	"candidate-dashboard/controllers"
	"candidate-dashboard/lib/analytics"
	"candidate-dashboard/lib/candidate"
	xlsexport "candidate-dashboard/lib/export/xls"
	"candidate-dashboard/lib/reminder"
	"candidate-dashboard/models"
	apimodels "candidate-dashboard/models/api"
	candidateapimodels "candidate-dashboard/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Get("candidates", controller.candidates)
		router.Get("statistics", controller.statistics)
		router.Post("toggle", controller.toggle)
		router.Post("reminders", controller.reminders)
		router.Get("export", controller.export)
	})
}

// @Summary Реестр кандидатов
// @Tags Дашборд
// @Description Кандидаты выбранного потока и список потоков
// @Param   batch	query	string	false	"Поток, по умолчанию все потоки"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.RosterView}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/dashboard/candidates [get]
func (c *dashboardApiController) candidates(ctx *fiber.Ctx) error {
	batch := getBatchSelection(ctx)
	list, err := candidate.Instance.List(batch)
	if err != nil {
		return c.sendLoadError(ctx, err)
	}
	batches, err := candidate.Instance.Batches()
	if err != nil {
		return c.sendLoadError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.RosterView{
		Candidates: list,
		Batches:    batches,
		Selected:   batch,
	}))
}

// @Summary Сводная статистика
// @Tags Дашборд
// @Description Сводка по кандидатам выбранного потока
// @Param   batch	query	string	false	"Поток, по умолчанию все потоки"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.Statistics}
// @Failure 503 {object} apimodels.Response
// @router /api/v1/dashboard/statistics [get]
func (c *dashboardApiController) statistics(ctx *fiber.Ctx) error {
	list, err := candidate.Instance.List(getBatchSelection(ctx))
	if err != nil {
		return c.sendLoadError(ctx, err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(analytics.Instance.Summary(list)))
}

// @Summary Переключить статус кандидата
// @Tags Дашборд
// @Description Переключает одно из полей whatsappMsg/phoneEnquiry/online/program
// @Param	body body	candidateapimodels.ToggleRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ToggleResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/toggle [post]
func (c *dashboardApiController) toggle(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ToggleRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	nextValue, err := candidate.Instance.Toggle(ctx.Context(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления статуса кандидата")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.ToggleResponse{
		ID:    payload.ID,
		Field: payload.Field,
		Value: nextValue,
	}))
}

// @Summary Рассылка напоминаний
// @Tags Дашборд
// @Description Запускает массовую рассылку напоминаний по потоку
// @Param	body body	candidateapimodels.ReminderRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ReminderConfirmation}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dashboard/reminders [post]
func (c *dashboardApiController) reminders(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ReminderRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	confirmation, err := reminder.Instance.Send(ctx.Context(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка запуска рассылки напоминаний")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(confirmation))
}

// @Summary Реестр кандидатов. Выгрузить в Excel
// @Tags Дашборд
// @Description Кандидаты выбранного потока со сводкой. Выгрузить в Excel
// @Param   batch	query	string	false	"Поток, по умолчанию все потоки"
// @Success 200
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/dashboard/export [get]
func (c *dashboardApiController) export(ctx *fiber.Ctx) error {
	batch := getBatchSelection(ctx)
	list, err := candidate.Instance.List(batch)
	if err != nil {
		return c.sendLoadError(ctx, err)
	}
	data, err := xlsexport.Instance.ExportRoster(batch, list, analytics.Instance.Summary(list))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки реестра кандидатов в Excel")
	}
	fileName := fmt.Sprintf("candidates-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}

func getBatchSelection(ctx *fiber.Ctx) string {
	batch := ctx.Query("batch")
	if batch == "" {
		return models.AllBatches
	}
	return batch
}

// реестр не загружен — терминальное состояние сессии, повторной загрузки нет
func (c *dashboardApiController) sendLoadError(ctx *fiber.Ctx, err error) error {
	c.GetLogger(ctx).WithError(err).Warn("дашборд недоступен")
	return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError(err.Error()))
}
