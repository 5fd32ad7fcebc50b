package domain

// GSTRate фиксированная ставка налога на аренду
const GSTRate = 0.05

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 50
)

// Sort keys для списка бронирований клиента
const (
	SortLatest = "latest"
	SortOldest = "oldest"
	SortAmount = "amount"
	SortStatus = "status"
)

// SortKeys допустимые ключи сортировки
var SortKeys = []string{SortLatest, SortOldest, SortAmount, SortStatus}

// Tabs вкладки списка бронирований.
// Фильтрация по вкладке применяется только к уже загруженной странице,
// поэтому счётчики вкладок отражают текущую страницу, а не все бронирования.
const (
	TabAll       = "all"
	TabActive    = "active"
	TabCompleted = "completed"
)
