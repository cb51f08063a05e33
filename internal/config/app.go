package config

type AppConfig struct {
	RecentLimitValue  int `yaml:"recent-limit"`
	CategoryDaysValue int `yaml:"category-days"`
	TrendMonthsValue  int `yaml:"trend-months"`
	DailyDaysValue    int `yaml:"daily-days"`
}

func (s *AppConfig) RecentLimit() int {
	return s.RecentLimitValue
}

func (s *AppConfig) CategoryDays() int {
	return s.CategoryDaysValue
}

func (s *AppConfig) TrendMonths() int {
	return s.TrendMonthsValue
}

func (s *AppConfig) DailyDays() int {
	return s.DailyDaysValue
}
