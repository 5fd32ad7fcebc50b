package coupon

import "github.com/omkargore6239/vegobike-checkout-service/pkg/dbmetrics"

// DBExecutor интерфейс для работы с БД.
// Поддерживает *sql.DB и обёртку *dbmetrics.DB с метриками.
type DBExecutor = dbmetrics.DBExecutor
