package rest

import (
	"encoding/json"
	"io"
	"net/http"

	"realnest-backend/internal/contextkeys"
	"realnest-backend/internal/contracts"
	"realnest-backend/internal/core/domain"
	"realnest-backend/internal/core/port"
	"realnest-backend/internal/core/port/usecases_port"
)

// ExpertHandlers - справочник районов и оценка стоимости.
type ExpertHandlers struct {
	districtsUC usecases_port.GetDistrictsUseCasePort
	priceUC     usecases_port.CalculatePriceUseCasePort
}

func NewExpertHandlers(
	districtsUC usecases_port.GetDistrictsUseCasePort,
	priceUC usecases_port.CalculatePriceUseCasePort,
) *ExpertHandlers {
	return &ExpertHandlers{
		districtsUC: districtsUC,
		priceUC:     priceUC,
	}
}

// Districts обрабатывает GET /api/expert/districts
func (h *ExpertHandlers) Districts(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "Districts"})

	districts, err := h.districtsUC.Execute(r.Context())
	if err != nil {
		logger.Error("GetDistricts use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"districts": districts,
	})
}

// CalculatePrice обрабатывает POST /api/expert/calculate-price
func (h *ExpertHandlers) CalculatePrice(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "CalculatePrice"})

	body, err := io.ReadAll(r.Body)
	if err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if err := contracts.Validate("estimate", body); err != nil {
		logger.Warn("Estimate request failed schema validation", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var req EstimateRequestBody
	if err := json.Unmarshal(body, &req); err != nil {
		WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	condition := req.Condition
	if condition == "" {
		condition = domain.ConditionGood
	}

	result, err := h.priceUC.Execute(r.Context(), domain.EstimateRequest{
		PropertyType: req.PropertyType,
		District:     req.District,
		Area:         req.Area,
		Rooms:        req.Rooms,
		YearBuilt:    req.YearBuilt,
		Condition:    condition,
	})
	if err != nil {
		logger.Error("CalculatePrice use case failed", err, nil)
		WriteJSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	RespondWithJSON(w, http.StatusOK, EstimateResponse{
		Success:          true,
		EstimatedPrice:   result.Price,
		PricePerSqMeter:  result.PricePerSq,
		PriceRangeMin:    result.Range.Min,
		PriceRangeMax:    result.Range.Max,
		BasedOnAnalogues: result.UsedComparable,
	})
}
