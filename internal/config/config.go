package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "data/config.yaml"

type config struct {
	App     AppConfig     `yaml:"app"`
	Storage StorageConfig `yaml:"storage"`
	Charts  ChartsConfig  `yaml:"charts"`
}

type Service struct {
	config config
}

func defaults() config {
	return config{
		App: AppConfig{
			RecentLimitValue:  10,
			CategoryDaysValue: 30,
			TrendMonthsValue:  6,
			DailyDaysValue:    30,
		},
		Storage: StorageConfig{
			DriverName: DriverJSON,
			FilePath:   "expenses.json",
		},
		Charts: ChartsConfig{
			Enable: true,
			Folder: "charts",
			Width:  10,
			Height: 6,
		},
	}
}

// New reads the YAML file at path on top of the defaults.
// A missing file is not an error.
func New(path string) (*Service, error) {
	s := &Service{config: defaults()}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return nil, errors.Wrap(err, "parsing yaml")
	}

	if err = s.validate(); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}
	return s, nil
}

func (s *Service) validate() error {
	switch s.config.Storage.DriverName {
	case DriverJSON, DriverSQLite:
		if s.config.Storage.FilePath == "" {
			return errors.Errorf("storage driver %s needs a path", s.config.Storage.DriverName)
		}
	case DriverPostgres, DriverMemory:
	default:
		return errors.Errorf("unknown storage driver %q", s.config.Storage.DriverName)
	}
	if s.config.Charts.Width <= 0 || s.config.Charts.Height <= 0 {
		return errors.New("chart size must be positive")
	}
	return nil
}

func (s *Service) App() *AppConfig {
	return &s.config.App
}

func (s *Service) Storage() *StorageConfig {
	return &s.config.Storage
}

func (s *Service) Charts() *ChartsConfig {
	return &s.config.Charts
}
