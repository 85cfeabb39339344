package handlers

import (
	"errors"
	"math"
	"net/http"
	"time"

	"ppa-valuation/internal/analysis"
	"ppa-valuation/internal/api/models"
	"ppa-valuation/internal/model"
	"ppa-valuation/internal/timeutil"
	"ppa-valuation/internal/valuation"

	"github.com/gin-gonic/gin"
)

// ValuationHandler handles valuation-related requests
type ValuationHandler struct{}

// NewValuationHandler creates a new valuation handler
func NewValuationHandler() *ValuationHandler {
	return &ValuationHandler{}
}

// RunValuation handles POST /api/v1/valuation
func (h *ValuationHandler) RunValuation(c *gin.Context) {
	var req models.ValuationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	freq := timeutil.Frequency(req.SettlementFrequency)
	if _, err := timeutil.PeriodsPerYear(freq); err != nil {
		errorJSON(c, http.StatusBadRequest, "UNKNOWN_FREQUENCY", err)
		return
	}

	contract, err := buildContract(req.Contract)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_CONTRACT", err)
		return
	}

	gen := &model.GenerationProfile{
		Technology: req.Generation.Technology,
		Location:   req.Contract.ProjectLocation,
		CapacityMW: req.Generation.CapacityMW,
		Start:      contract.StartDate(),
		End:        contract.EndDate(),
		Profile:    toSeries(req.Generation.Profile),
	}
	if err := contract.AttachGeneration(gen); err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_GENERATION", err)
		return
	}

	market := toSeries(req.Market)
	schedule, err := contract.BuildPriceSchedule(market)
	if err != nil {
		errorJSON(c, statusFor(err), "SCHEDULE_ERROR", err)
		return
	}

	fairPrice, err := contract.FairPrice(freq)
	if err != nil {
		errorJSON(c, statusFor(err), "VALUATION_ERROR", err)
		return
	}
	if math.IsNaN(fairPrice) || math.IsInf(fairPrice, 0) {
		// Zero weighted generation over the window. Surface explicitly:
		// JSON cannot carry NaN and silent coercion would hide it.
		errorJSON(c, http.StatusUnprocessableEntity, "NON_FINITE_RESULT",
			errors.New("fair price is non-finite: weighted generation over the window is zero"))
		return
	}

	npv, err := contract.NPV(freq)
	if err != nil {
		errorJSON(c, statusFor(err), "VALUATION_ERROR", err)
		return
	}
	volume, err := contract.GenerationVolume()
	if err != nil {
		errorJSON(c, statusFor(err), "VALUATION_ERROR", err)
		return
	}

	resp := models.ValuationResponse{
		Status: "ok",
		Summary: models.ValuationSummary{
			FairPrice:           fairPrice,
			NPV:                 npv,
			VolumeMWh:           volume,
			SettlementFrequency: string(freq),
			Window: models.TimeWindow{
				Start: contract.StartDate(),
				End:   contract.EndDate(),
			},
			TenorHours: len(contract.Tenor()),
		},
	}
	if req.Options.IncludeMarketSummary {
		summary := analysis.Summarize(
			market.Window(contract.StartDate(), contract.EndDate()),
			gen.Profile.Window(contract.StartDate(), contract.EndDate()),
		)
		resp.Summary.Market = toMarketSummary(summary)
	}
	if req.Options.IncludeSchedule {
		resp.Schedule = fromSeries(schedule)
	}

	c.JSON(http.StatusOK, resp)
}

// BuildSchedule handles POST /api/v1/schedule
func (h *ValuationHandler) BuildSchedule(c *gin.Context) {
	var req models.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_REQUEST", err)
		return
	}

	contract, err := buildContract(req.Contract)
	if err != nil {
		errorJSON(c, http.StatusBadRequest, "INVALID_CONTRACT", err)
		return
	}

	schedule, err := contract.BuildPriceSchedule(toSeries(req.Market))
	if err != nil {
		errorJSON(c, statusFor(err), "SCHEDULE_ERROR", err)
		return
	}

	c.JSON(http.StatusOK, models.ScheduleResponse{
		Status: "ok",
		Window: models.TimeWindow{
			Start: contract.StartDate(),
			End:   contract.EndDate(),
		},
		Schedule: fromSeries(schedule),
	})
}

func buildContract(spec models.ContractSpec) (*valuation.Contract, error) {
	start, err := timeutil.ParseDay(spec.Start)
	if err != nil {
		return nil, err
	}
	end, err := timeutil.ParseDay(spec.End)
	if err != nil {
		return nil, err
	}
	return valuation.New(valuation.ContractTerms{
		Locations: model.Locations{
			Project:   spec.ProjectLocation,
			Corporate: spec.CorporateLocation,
		},
		Start:    start,
		End:      end,
		Discount: spec.Discount,
		Price: model.PriceTerms{
			Kind:  model.PriceKind(spec.Price.Type),
			Fixed: spec.Price.Fixed,
			Floor: spec.Price.Floor,
			Ceil:  spec.Price.Ceil,
			Index: spec.Price.Index,
		},
	})
}

// statusFor maps engine precondition failures to 422 and everything else to
// 400. Misalignment means the supplied data cannot be computed on, not that
// the request shape was wrong.
func statusFor(err error) int {
	switch {
	case errors.Is(err, valuation.ErrMisalignedSeries),
		errors.Is(err, valuation.ErrLengthMismatch):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

func errorJSON(c *gin.Context, status int, code string, err error) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: err.Error(),
		},
	})
}

func toSeries(points []models.SeriesPoint) model.Series {
	times := make([]time.Time, len(points))
	values := make([]float64, len(points))
	for i, p := range points {
		times[i] = p.Time
		values[i] = p.Value
	}
	return model.Series{Times: times, Values: values}
}

func fromSeries(s model.Series) []models.SeriesPoint {
	out := make([]models.SeriesPoint, s.Len())
	for i := range out {
		out[i] = models.SeriesPoint{Time: s.Times[i], Value: s.Values[i]}
	}
	return out
}

func toMarketSummary(s analysis.MarketSummary) *models.MarketSummary {
	return &models.MarketSummary{
		MeanPrice:    s.MeanPrice,
		MinPrice:     s.MinPrice,
		MaxPrice:     s.MaxPrice,
		P05Price:     s.P05Price,
		P95Price:     s.P95Price,
		SpreadP95P05: s.SpreadP95P05,
		CapturePrice: s.CapturePrice,
		CaptureRate:  s.CaptureRate,
	}
}
