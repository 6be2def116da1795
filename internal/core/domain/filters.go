package domain

// PropertyFilters - произвольное подмножество фильтров для поиска объявлений.
// Пустая строка / nil означает "фильтр не задан". Все заданные фильтры
// объединяются через AND, плюс неявный предикат status = 'active'.
type PropertyFilters struct {
	DealType     string // sale | rent
	PropertyType string // apartment | house | commercial | land
	District     string
	Rooms        *int
	PriceMin     *float64
	PriceMax     *float64
	AreaMin      *float64
	AreaMax      *float64

	// Сортировка. Колонка проверяется по whitelist в репозитории,
	// по умолчанию created_at DESC.
	SortBy    string
	SortOrder string
}

// Page - результат постраничной выборки.
type Page[T any] struct {
	Items       []T
	TotalCount  int
	TotalPages  int
	CurrentPage int
}

// NewPage считает количество страниц из общего числа строк и лимита.
func NewPage[T any](items []T, totalCount, limit, offset int) Page[T] {
	if limit < 1 {
		limit = 1
	}
	totalPages := (totalCount + limit - 1) / limit
	return Page[T]{
		Items:       items,
		TotalCount:  totalCount,
		TotalPages:  totalPages,
		CurrentPage: offset/limit + 1,
	}
}
