package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/fadilmartias/talent-sourcer/internal/dto"
	"github.com/fadilmartias/talent-sourcer/internal/model"
	"github.com/fadilmartias/talent-sourcer/internal/usecase"
	"github.com/fadilmartias/talent-sourcer/internal/util"
)

type SourcingHandler struct {
	uc *usecase.SourcingUsecase
}

func NewSourcingHandler(uc *usecase.SourcingUsecase) *SourcingHandler {
	return &SourcingHandler{uc: uc}
}

func (h *SourcingHandler) RegisterRoutes(app *fiber.App) {
	app.Get("/health", h.Health)

	api := app.Group("/api")
	api.Post("/jobs/process", h.ProcessJob)
	api.Post("/jobs/batch", h.ProcessBatch)
	api.Post("/candidates/search", h.SearchCandidates)
	api.Post("/messages/generate", h.GenerateMessages)
	api.Get("/jobs/:id/stats", h.JobStats)
}

func (h *SourcingHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SourcingHandler) ProcessJob(c *fiber.Ctx) error {
	var req dto.JobRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid job payload",
		}, err)
	}
	if err := validateJob(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result := h.uc.ProcessJob(c.Context(), req.ToModel())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Job processed",
		Data:    result,
	})
}

func (h *SourcingHandler) ProcessBatch(c *fiber.Ctx) error {
	var req dto.BatchJobsRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid batch payload",
		}, err)
	}
	if len(req.Jobs) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jobs array is required",
		})
	}
	for i := range req.Jobs {
		if err := validateJob(&req.Jobs[i]); err != nil {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: err.Error(),
			})
		}
	}

	jobs := make([]*model.Job, 0, len(req.Jobs))
	for i := range req.Jobs {
		jobs = append(jobs, req.Jobs[i].ToModel())
	}

	results := h.uc.ProcessBatch(c.Context(), jobs)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Batch processed",
		Data:    results,
		Meta:    fiber.Map{"total": len(results)},
	})
}

func (h *SourcingHandler) SearchCandidates(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid search payload",
		}, err)
	}
	if req.JobDescription == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jobDescription is required",
		})
	}
	if err := validateJob(req.JobDescription); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	result, err := h.uc.SearchCandidates(c.Context(), req.JobDescription.ToModel())
	if err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "search failed",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Search completed",
		Data:    result,
	})
}

func (h *SourcingHandler) GenerateMessages(c *fiber.Ctx) error {
	var req dto.GenerateMessagesRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid message payload",
		}, err)
	}
	if len(req.Candidates) == 0 {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "candidates array is required",
		})
	}
	if req.JobDescription == nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "jobDescription is required",
		})
	}
	if err := validateJob(req.JobDescription); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: err.Error(),
		})
	}

	messages := h.uc.GenerateMessages(c.Context(), req.Candidates, req.JobDescription.ToModel())
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Messages generated",
		Data:    fiber.Map{"messages": messages},
		Meta:    fiber.Map{"total": len(messages)},
	})
}

func (h *SourcingHandler) JobStats(c *fiber.Ctx) error {
	jobID := c.Params("id")
	stats, err := h.uc.JobStats(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusNotFound,
				Message: "job not found",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to load job stats",
		}, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get job stats",
		Data:    stats,
	})
}

// NotFound is the catch-all for unmatched routes, registered after all
// other routes.
func (h *SourcingHandler) NotFound(c *fiber.Ctx) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusNotFound,
		Message: "route not found",
	})
}

func validateJob(req *dto.JobRequest) error {
	if req.Title == "" {
		return fiber.NewError(fiber.StatusBadRequest, "job title is required")
	}
	if req.Company == "" {
		return fiber.NewError(fiber.StatusBadRequest, "job company is required")
	}
	return nil
}
