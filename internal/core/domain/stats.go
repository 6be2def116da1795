package domain

// CountByKey - пара "значение - количество" для группировок статистики.
type CountByKey struct {
	Key   string
	Count int
}

// DashboardStats - сводка для панели администратора.
type DashboardStats struct {
	UserCount        int
	PropertyCount    int
	NewMessagesCount int
	PropertiesByType []CountByKey
	TopDistricts     []CountByKey
	NewUsersLast30d  int
	NewPropsLast30d  int
}
