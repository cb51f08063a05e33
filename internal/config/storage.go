package config

const (
	DriverJSON     = "json"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type StorageConfig struct {
	DriverName string         `yaml:"driver"`
	FilePath   string         `yaml:"path"`
	Postgres   PostgresConfig `yaml:"postgres"`
}

func (s *StorageConfig) Driver() string {
	return s.DriverName
}

// Path is the JSON file or the sqlite database file.
func (s *StorageConfig) Path() string {
	return s.FilePath
}

func (s *StorageConfig) PostgresDSN() string {
	return s.Postgres.DSN()
}
