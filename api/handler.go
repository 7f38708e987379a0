package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"schedsim/config"
	"schedsim/internal/core"
	"schedsim/internal/requests"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	Schedule(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	MultilevelFeedbackQueue(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Schedule runs the policy named in the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, err := parseBody(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	return s.schedule(ctx, request.Policy, request)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyFirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyShortestRemainingTime)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyRoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyPriority)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyPriorityPreemptive)
}

func (s *SchedulerHandlerImpl) MultilevelFeedbackQueue(ctx *fiber.Ctx) error {
	return s.schedulePolicy(ctx, schedulers.PolicyMultilevelFeedbackQueue)
}

func (s *SchedulerHandlerImpl) schedulePolicy(ctx *fiber.Ctx, policy string) error {
	request, err := parseBody(ctx)
	if err != nil {
		return badRequest(ctx, "invalid request format")
	}
	return s.schedule(ctx, policy, request)
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy string, request *requests.ScheduleRequest) error {
	jobs, err := request.ResolvedJobs()
	if err != nil {
		observeSimulation(policy, "rejected", 0)
		return badRequest(ctx, err.Error())
	}

	quantum := s.config.RoundRobinTimeQuantum
	if request.Quantum != nil {
		quantum = *request.Quantum
	}

	response, err := schedulers.Schedule(policy, jobs, schedulers.Options{
		Quantum:     quantum,
		LevelQuanta: s.config.MultilevelFeedbackQueueLevelsTimeQuantum,
	})
	if err != nil {
		observeSimulation(policy, "rejected", 0)
		var descriptorErr *core.InvalidDescriptorError
		var configurationErr *core.InvalidConfigurationError
		if errors.As(err, &descriptorErr) || errors.As(err, &configurationErr) {
			return badRequest(ctx, err.Error())
		}
		logrus.WithError(err).Error("can not process request")
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
	}

	observeSimulation(policy, "ok", response.TotalTime)
	logrus.WithFields(logrus.Fields{
		"policy":     policy,
		"jobs":       len(jobs),
		"total_time": response.TotalTime,
	}).Debug("simulation complete")
	return ctx.JSON(response)
}

func parseBody(ctx *fiber.Ctx) (*requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return nil, err
	}
	return &request, nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}
