package constants

// Справочник районов Астаны. Ключи используются как канонические названия
// районов в объявлениях и в оценщике стоимости.
var DistrictsInfo = map[string]string{
	"Есиль":      "Современный, престижный район с новыми высотками и правительственными зданиями",
	"Алматы":     "Старый, исторический центр города с развитой инфраструктурой",
	"Сарыарка":   "Большой спальный район с разнообразной недвижимостью",
	"Байконур":   "Промышленный район с доступным жильем",
	"Нура-Есиль": "Быстрорастущий новый район с современными ЖК",
}

// DefaultDistricts - стандартный список районов, если в базе еще нет объявлений.
var DefaultDistricts = []string{"Есиль", "Алматы", "Сарыарка", "Байконур", "Нура-Есиль"}

// Базовые цены за сотку земли по районам (в тенге).
var LandBasePrices = map[string]float64{
	"Есиль":      3500000,
	"Алматы":     2800000,
	"Сарыарка":   2200000,
	"Байконур":   2000000,
	"Нура-Есиль": 3000000,
}

// DefaultLandBasePrice - ставка за сотку для неизвестного района.
const DefaultLandBasePrice = 2500000

// Базовые цены за квадратный метр по районам (в тенге),
// используются когда в базе нет сопоставимых объявлений.
var BasePricesPerSq = map[string]float64{
	"Есиль":      550000,
	"Алматы":     450000,
	"Сарыарка":   400000,
	"Байконур":   420000,
	"Нура-Есиль": 480000,
}

// DefaultBasePricePerSq - ставка за м² для неизвестного района.
const DefaultBasePricePerSq = 450000

// Коэффициенты для типов недвижимости (кроме земли).
var TypeMultipliers = map[string]float64{
	"apartment":  1,
	"house":      0.9,
	"commercial": 1.2,
}

// Коэффициенты для состояния объекта.
var ConditionMultipliers = map[string]float64{
	"excellent":    1.15,
	"good":         1,
	"needs_repair": 0.8,
	"construction": 0.7,
}
