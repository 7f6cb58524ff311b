package job

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/seedhouse/farmops-api/internal/domain"
	"github.com/seedhouse/farmops-api/internal/domain/entity"
	"github.com/seedhouse/farmops-api/internal/domain/job"
	"github.com/seedhouse/farmops-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// CompleteJobUseCase runs the reconciliation commit for every job type:
// store output rows, decrement source bins, consume scanned boxes, write the
// report. The whole sequence executes inside one transaction; per-record
// failures are collected so the caller sees everything that went wrong, and
// any failure rolls the transaction back.
type CompleteJobUseCase struct {
	txRunner        TxRunner
	draftRepo       repository.DraftRepository
	physicalBoxRepo repository.PhysicalBoxRepository

	mu       sync.Mutex
	inflight map[string]struct{} // userID/jobType pairs mid-commit
}

// NewCompleteJobUseCase builds the use case.
func NewCompleteJobUseCase(
	txRunner TxRunner,
	draftRepo repository.DraftRepository,
	physicalBoxRepo repository.PhysicalBoxRepository,
) *CompleteJobUseCase {
	return &CompleteJobUseCase{
		txRunner:        txRunner,
		draftRepo:       draftRepo,
		physicalBoxRepo: physicalBoxRepo,
		inflight:        map[string]struct{}{},
	}
}

// CompletionResult summarizes a committed job.
type CompletionResult struct {
	ReportID    string
	Totals      job.Totals
	BoxesStored int
}

// Complete validates the submitted draft and, if it passes, commits the job.
// Validation failures issue no store writes. A second Complete for the same
// user and job type while one is running returns ErrJobInProgress.
func (uc *CompleteJobUseCase) Complete(
	ctx context.Context,
	userID, jobType string,
	draft *entity.JobDraft,
	ackWarnings bool,
) (*CompletionResult, error) {
	cfg, ok := job.Lookup(jobType)
	if !ok {
		return nil, domain.ErrUnknownJobType
	}
	key := userID + "/" + jobType
	if !uc.begin(key) {
		return nil, domain.ErrJobInProgress
	}
	defer uc.end(key)

	draft.JobType = jobType

	// Server-side nets are authoritative: reparse raw inputs and rerun the
	// tare rule before validating anything.
	tares := uc.tareLookup()
	job.RecomputeNets(draft, tares)

	res := job.Validate(draft, cfg)
	if len(res.Errors) > 0 {
		return nil, &ValidationError{Errors: res.Errors, Warnings: res.Warnings}
	}
	if len(res.Warnings) > 0 && !ackWarnings {
		return nil, &ValidationError{Warnings: res.Warnings}
	}

	totals := job.ComputeTotals(draft)
	now := time.Now()
	reportID := uuid.New().String()
	boxesStored := 0

	err := uc.txRunner.Run(ctx, func(
		itemRepo repository.StorageItemRepository,
		locationRepo repository.StorageLocationRepository,
		boxRepo repository.BoxRepository,
		reportRepo repository.ReportRepository,
	) error {
		var steps []StepError
		fail := func(step, ref string, err error) {
			log.Error().Err(err).Str("step", step).Str("ref", ref).
				Str("process_id", draft.ProcessID).Msg("commit step failed")
			steps = append(steps, StepError{Step: step, Ref: ref, Err: err})
		}

		// 1. One storage item per output line with positive net weight. A
		// failed insert is recorded and the loop keeps going, so the error
		// report covers every line, then the transaction rolls back.
		for _, cat := range cfg.Categories {
			for _, line := range draft.OutputLines[cat.Key] {
				if !line.NetWeight.IsPositive() {
					continue
				}
				product := totals.Products
				if line.ProductOverride != "" {
					product = line.ProductOverride
				}
				item := &entity.StorageItem{
					ID:          uuid.New().String(),
					BoxID:       job.BoxID(draft.ProcessID, cat.Code, line.BoxNumber),
					Destination: cat.Destination,
					ProcessID:   draft.ProcessID,
					ProcessType: jobType,
					Category:    cat.Key,
					Product:     product,
					LotNumbers:  totals.LotNumbers,
					Amount:      line.NetWeight,
					Location:    line.StorageLocation,
					JobDate:     draft.JobDate,
					CreatedAt:   now,
					CreatedBy:   userID,
				}
				if err := itemRepo.Create(item); err != nil {
					fail("store_outputs", item.BoxID, err)
					continue
				}
				boxesStored++
			}
		}

		// 2. Aggregate net consumption per source bin, then lock each row and
		// write back the clamped remainder.
		for bin, consumed := range job.ConsumedPerBin(draft) {
			loc, err := locationRepo.GetForUpdate(bin)
			if err != nil {
				fail("decrement_bins", bin, err)
				continue
			}
			if loc == nil {
				fail("decrement_bins", bin, domain.ErrNotFound)
				continue
			}
			remaining := loc.CurrentWeight.Sub(consumed)
			if remaining.IsNegative() {
				remaining = decimal.Zero
			}
			if err := locationRepo.UpdateWeight(bin, remaining); err != nil {
				fail("decrement_bins", bin, err)
			}
		}

		// 3. Scanned boxes: delete fully consumed records, write back the
		// remainder for partial draws.
		for _, line := range draft.InboundLines {
			if line.SourceType != entity.SourceTypeBoxID || line.BoxID == "" {
				continue
			}
			box, err := boxRepo.GetByBoxID(line.BoxID)
			if err != nil {
				fail("consume_boxes", line.BoxID, err)
				continue
			}
			if box == nil {
				fail("consume_boxes", line.BoxID, domain.ErrNotFound)
				continue
			}
			remaining := box.Weight.Sub(line.NetWeight)
			if remaining.IsPositive() {
				err = boxRepo.UpdateWeight(line.BoxID, remaining)
			} else {
				err = boxRepo.Delete(line.BoxID)
			}
			if err != nil {
				fail("consume_boxes", line.BoxID, err)
			}
		}

		// 4. The denormalized report row.
		report := &entity.Report{
			ID:          reportID,
			ProcessID:   draft.ProcessID,
			ProcessType: jobType,
			JobDate:     draft.JobDate,
			Employee:    draft.Employee,
			Supplier:    draft.Supplier,
			LotNumbers:  totals.LotNumbers,
			Products:    totals.Products,
			Notes:       draft.Notes,
			InputTotal:  totals.InputTotal,
			OutputTotal: totals.OutputTotal,
			Balance:     totals.Balance,
			SourceBins:  draft.SourceBins,
			Inbound:     draft.InboundLines,
			Outputs:     draft.OutputLines,
			CreatedAt:   now,
			CreatedBy:   userID,
		}
		if err := reportRepo.Create(report); err != nil {
			fail("write_report", reportID, err)
		}

		if len(steps) > 0 {
			return &CommitError{Steps: steps}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The draft is spent. A failed clear is only logged; the next save
	// overwrites it anyway.
	if err := uc.draftRepo.Delete(userID, jobType); err != nil {
		log.Warn().Err(err).Str("job_type", jobType).Msg("clear draft after completion")
	}

	return &CompletionResult{ReportID: reportID, Totals: totals, BoxesStored: boxesStored}, nil
}

// Totals recomputes the derived totals for a draft without committing
// anything. Used by the totals endpoint so the form never shows stale sums.
func (uc *CompleteJobUseCase) Totals(draft *entity.JobDraft) job.Totals {
	job.RecomputeNets(draft, uc.tareLookup())
	return job.ComputeTotals(draft)
}

func (uc *CompleteJobUseCase) tareLookup() job.TareLookup {
	return func(id string) (decimal.Decimal, bool) {
		pb, err := uc.physicalBoxRepo.GetByID(id)
		if err != nil || pb == nil {
			return decimal.Zero, false
		}
		return pb.Weight, true
	}
}

func (uc *CompleteJobUseCase) begin(key string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inflight[key]; busy {
		return false
	}
	uc.inflight[key] = struct{}{}
	return true
}

func (uc *CompleteJobUseCase) end(key string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inflight, key)
}
