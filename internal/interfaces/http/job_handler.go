package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/seedhouse/farmops-api/internal/application/draft"
	"github.com/seedhouse/farmops-api/internal/application/dto"
	appjob "github.com/seedhouse/farmops-api/internal/application/job"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
)

// JobHandler processing-job workflow: drafts, totals, completion (protected).
type JobHandler struct {
	completeUC *appjob.CompleteJobUseCase
	draftUC    *draft.UseCase
	autosaver  *draft.Autosaver
}

// NewJobHandler builds the handler.
func NewJobHandler(completeUC *appjob.CompleteJobUseCase, draftUC *draft.UseCase, autosaver *draft.Autosaver) *JobHandler {
	return &JobHandler{completeUC: completeUC, draftUC: draftUC, autosaver: autosaver}
}

// ListTypes godoc
// @Summary      List registered job types
// @Description  Returns the output categories each job page renders.
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.JobTypeResponse
// @Router       /api/jobs/types [get]
func (h *JobHandler) ListTypes(c *fiber.Ctx) error {
	types := job.Types()
	out := make([]dto.JobTypeResponse, 0, len(types))
	for _, t := range types {
		cfg, _ := job.Lookup(t)
		jt := dto.JobTypeResponse{
			Type:            cfg.Type,
			Label:           cfg.Label,
			RequireEmployee: cfg.RequireEmployee,
		}
		for _, cat := range cfg.Categories {
			jt.Categories = append(jt.Categories, dto.JobCategoryResponse{
				Key:         cat.Key,
				Label:       cat.Label,
				Code:        cat.Code,
				Destination: cat.Destination,
			})
		}
		out = append(out, jt)
	}
	return c.JSON(out)
}

// GetDraft godoc
// @Summary      Load the caller's draft for a job type
// @Description  Returns a fresh default draft when none is stored.
// @Tags         jobs
// @Security     Bearer
// @Produce      json
// @Param        type  path  string  true  "Job type"
// @Success      200   {object}  entity.JobDraft
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{type}/draft [get]
func (h *JobHandler) GetDraft(c *fiber.Ctx) error {
	d, err := h.draftUC.Load(GetUserID(c), c.Params("type"))
	if err != nil {
		if errors.Is(err, domain.ErrUnknownJobType) {
			return unknownJobType(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(d)
}

// SaveDraft godoc
// @Summary      Save the caller's draft for a job type
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string  true  "Job type"
// @Param        body  body  entity.JobDraft  true  "Current form state"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{type}/draft [put]
func (h *JobHandler) SaveDraft(c *fiber.Ctx) error {
	jobType := c.Params("type")
	var d entity.JobDraft
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if err := h.draftUC.Save(GetUserID(c), jobType, &d); err != nil {
		if errors.Is(err, domain.ErrUnknownJobType) {
			return unknownJobType(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toTotalsResponse(job.ComputeTotals(&d)))
}

// TouchDraft godoc
// @Summary      Queue an autosave of the caller's draft
// @Description  The draft is persisted later by the autosave policy, not
//
//	immediately. Use PUT for an explicit save.
//
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Param        type  path  string  true  "Job type"
// @Param        body  body  entity.JobDraft  true  "Current form state"
// @Success      202   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{type}/draft/touch [post]
func (h *JobHandler) TouchDraft(c *fiber.Ctx) error {
	jobType := c.Params("type")
	if _, ok := job.Lookup(jobType); !ok {
		return unknownJobType(c)
	}
	var d entity.JobDraft
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	h.autosaver.Touch(GetUserID(c), jobType, &d)
	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"message": "autosave queued"})
}

// ClearDraft godoc
// @Summary      Discard the caller's draft for a job type
// @Tags         jobs
// @Security     Bearer
// @Param        type  path  string  true  "Job type"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{type}/draft [delete]
func (h *JobHandler) ClearDraft(c *fiber.Ctx) error {
	userID := GetUserID(c)
	jobType := c.Params("type")
	if err := h.draftUC.Clear(userID, jobType); err != nil {
		if errors.Is(err, domain.ErrUnknownJobType) {
			return unknownJobType(c)
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.autosaver.Forget(userID, jobType)
	return c.JSON(fiber.Map{"message": "draft cleared"})
}

// Totals godoc
// @Summary      Recompute derived totals for a draft
// @Description  Stateless: nets are reparsed and the tare rule reapplied
//
//	server-side, nothing is stored.
//
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string  true  "Job type"
// @Param        body  body  entity.JobDraft  true  "Current form state"
// @Success      200   {object}  dto.TotalsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/jobs/{type}/totals [post]
func (h *JobHandler) Totals(c *fiber.Ctx) error {
	if _, ok := job.Lookup(c.Params("type")); !ok {
		return unknownJobType(c)
	}
	var d entity.JobDraft
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	return c.JSON(toTotalsResponse(h.completeUC.Totals(&d)))
}

// Complete godoc
// @Summary      Complete a processing job
// @Description  Validates the submitted draft and commits it in one
//
//	transaction: outputs stored, source bins decremented, consumed boxes
//	removed, report written, draft cleared. Soft warnings block with 409
//	CONFIRM_REQUIRED until resubmitted with acknowledge_warnings.
//
// @Tags         jobs
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        type  path  string  true  "Job type"
// @Param        body  body  dto.CompleteJobRequest  true  "Final draft state"
// @Success      201   {object}  dto.CompleteJobResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/jobs/{type}/complete [post]
func (h *JobHandler) Complete(c *fiber.Ctx) error {
	jobType := c.Params("type")
	var in dto.CompleteJobRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	userID := GetUserID(c)
	result, err := h.completeUC.Complete(c.Context(), userID, jobType, &in.Draft, in.AcknowledgeWarnings)
	if err != nil {
		var vErr *appjob.ValidationError
		var cErr *appjob.CommitError
		switch {
		case errors.Is(err, domain.ErrUnknownJobType):
			return unknownJobType(c)
		case errors.Is(err, domain.ErrJobInProgress):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "IN_PROGRESS", Message: "a completion for this job is already running"})
		case errors.As(err, &vErr):
			if vErr.Blocking() {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "draft failed validation", Details: vErr.Errors})
			}
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFIRM_REQUIRED", Message: "resubmit with acknowledge_warnings to proceed", Details: vErr.Warnings})
		case errors.As(err, &cErr):
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "COMMIT_FAILED", Message: "job rolled back, nothing was stored", Details: cErr.Details()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	h.autosaver.Forget(userID, jobType)
	return c.Status(fiber.StatusCreated).JSON(dto.CompleteJobResponse{
		ReportID:    result.ReportID,
		ProcessID:   in.Draft.ProcessID,
		InputTotal:  result.Totals.InputTotal.String(),
		OutputTotal: result.Totals.OutputTotal.String(),
		Balance:     result.Totals.Balance.String(),
		BoxesStored: result.BoxesStored,
	})
}

func unknownJobType(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_JOB_TYPE", Message: "no such job type"})
}

func toTotalsResponse(t job.Totals) dto.TotalsResponse {
	subtotals := make(map[string]string, len(t.Subtotals))
	for k, v := range t.Subtotals {
		subtotals[k] = v.String()
	}
	return dto.TotalsResponse{
		InputTotal:  t.InputTotal.String(),
		Subtotals:   subtotals,
		OutputTotal: t.OutputTotal.String(),
		Balance:     t.Balance.String(),
		LotNumbers:  t.LotNumbers,
		Products:    t.Products,
	}
}
