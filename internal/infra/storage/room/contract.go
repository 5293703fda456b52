package room

import "github.com/m04kA/SMC-HotelBooking/pkg/dbmetrics"

// DBExecutor интерфейс для выполнения запросов (*sql.DB, *sql.Tx, *dbmetrics.DB)
type DBExecutor = dbmetrics.DBExecutor
