package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes wires the scheduling API, health check and metrics
// endpoints onto the fiber app.
func RegisterRoutes(app *fiber.App, handler SchedulerHandler) {
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.SendString("ok")
	})
	app.Get("/metrics", adaptor.HTTPHandler(metricsHandler()))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/schedule/fcfs", handler.FirstComeFirstServe)
		v1.Post("/schedule/sjf", handler.ShortestJobFirst)
		v1.Post("/schedule/sjf-preemptive", handler.ShortestRemainingTimeFirst)
		v1.Post("/schedule/rr", handler.RoundRobin)
		v1.Post("/schedule/priority", handler.Priority)
		v1.Post("/schedule/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/schedule/mlfq", handler.MultilevelFeedbackQueue)
	}
}
