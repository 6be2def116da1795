package domain

import (
	"math"

	"realnest-backend/internal/constants"
)

// Состояния объекта для оценки.
const (
	ConditionExcellent    = "excellent"
	ConditionGood         = "good"
	ConditionNeedsRepair  = "needs_repair"
	ConditionConstruction = "construction"
)

// EstimateRequest - входные параметры оценки стоимости.
type EstimateRequest struct {
	PropertyType string
	District     string
	Area         float64
	Rooms        *int
	YearBuilt    *int
	Condition    string
}

// Comparable - сопоставимое объявление из базы, по которому считается
// средняя цена за м².
type Comparable struct {
	Price float64
	Area  float64
}

// PriceRange - "вероятный диапазон" ±10% от итоговой цены.
type PriceRange struct {
	Min int64
	Max int64
}

// EstimateResult - результат оценки. Это эвристика, а не точная оценка.
type EstimateResult struct {
	Price          int64
	PricePerSq     int64
	Range          PriceRange
	UsedComparable bool // true, если расчет шел от сопоставимых объявлений
}

func IsValidCondition(c string) bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionNeedsRepair, ConditionConstruction:
		return true
	}
	return false
}

// EstimatePrice - чистая функция оценки. randomFactor (0.9..1.1) и currentYear
// передаются снаружи, чтобы расчет был детерминированным и тестируемым.
// Для земли используется отдельная логика: цена за сотку по району,
// скидка/надбавка по размеру участка. Для остальных типов - средняя цена за м²
// по сопоставимым объявлениям, либо статические ставки по районам.
func EstimatePrice(req EstimateRequest, comparables []Comparable, currentYear int, randomFactor float64) EstimateResult {
	var calculated float64
	usedComparable := false

	if req.PropertyType == PropertyTypeLand {
		calculated = estimateLandPrice(req)
	} else if len(comparables) > 0 {
		calculated = estimateFromComparables(req, comparables, currentYear)
		usedComparable = true
	} else {
		calculated = estimateFromBaseRates(req)
	}

	// Добавляем случайность для реалистичности и округляем до тысячи.
	finalPrice := int64(math.Round(calculated*randomFactor/1000)) * 1000

	return EstimateResult{
		Price:      finalPrice,
		PricePerSq: int64(math.Round(float64(finalPrice) / req.Area)),
		Range: PriceRange{
			Min: int64(math.Round(float64(finalPrice) * 0.9)),
			Max: int64(math.Round(float64(finalPrice) * 1.1)),
		},
		UsedComparable: usedComparable,
	}
}

// estimateLandPrice считает цену участка: ставка за сотку × площадь в сотках
// × коэффициент размера. Чем больше участок, тем ниже цена за сотку.
func estimateLandPrice(req EstimateRequest) float64 {
	basePrice, ok := constants.LandBasePrices[req.District]
	if !ok {
		basePrice = constants.DefaultLandBasePrice
	}

	priceMultiplier := 1.0
	switch {
	case req.Area > 50:
		priceMultiplier = 0.85
	case req.Area > 20:
		priceMultiplier = 0.9
	case req.Area > 10:
		priceMultiplier = 0.95
	case req.Area < 5:
		priceMultiplier = 1.1
	}

	// Площадь приходит в м², сотка = 100 м².
	sotkiArea := req.Area / 100
	return math.Round(basePrice * sotkiArea * priceMultiplier)
}

// estimateFromComparables - средняя цена за м² по найденным объявлениям
// с поправкой на состояние и возраст дома.
func estimateFromComparables(req EstimateRequest, comparables []Comparable, currentYear int) float64 {
	var totalPricePerSq float64
	for _, c := range comparables {
		totalPricePerSq += c.Price / c.Area
	}
	avgPricePerSq := totalPricePerSq / float64(len(comparables))

	priceMultiplier := 1.0
	switch req.Condition {
	case ConditionExcellent:
		priceMultiplier *= 1.15
	case ConditionNeedsRepair:
		priceMultiplier *= 0.8
	case ConditionConstruction:
		priceMultiplier *= 0.7
	}

	if req.YearBuilt != nil {
		age := currentYear - *req.YearBuilt
		switch {
		case age < 2:
			priceMultiplier *= 1.1
		case age < 5:
			priceMultiplier *= 1.05
		case age < 10:
			priceMultiplier *= 1.0
		case age < 20:
			priceMultiplier *= 0.9
		default:
			priceMultiplier *= 0.8
		}
	}

	return math.Round(avgPricePerSq * req.Area * priceMultiplier)
}

// estimateFromBaseRates - запасной расчет по статическим ставкам,
// когда сопоставимых объявлений нет.
func estimateFromBaseRates(req EstimateRequest) float64 {
	basePrice, ok := constants.BasePricesPerSq[req.District]
	if !ok {
		basePrice = constants.DefaultBasePricePerSq
	}

	typeMultiplier, ok := constants.TypeMultipliers[req.PropertyType]
	if !ok {
		typeMultiplier = 1
	}

	conditionMultiplier, ok := constants.ConditionMultipliers[req.Condition]
	if !ok {
		conditionMultiplier = 1
	}

	return math.Round(basePrice * typeMultiplier * conditionMultiplier * req.Area)
}
