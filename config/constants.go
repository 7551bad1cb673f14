package config

const (
	StoreKindPostgres = "Postgres"
	StoreKindSQLite   = "SQLite"
)
