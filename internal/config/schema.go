package config

// Config describes where the puzzle inputs live and the per-day settings
type Config struct {
	Year     int            `yaml:"year"`
	InputDir string         `yaml:"input_dir"`
	Calories CaloriesConfig `yaml:"day01"`
	Strategy StrategyConfig `yaml:"day02"`
	Rucksack RucksackConfig `yaml:"day03"`
}

// CaloriesConfig configures the calorie counting puzzle
type CaloriesConfig struct {
	Input string `yaml:"input"`
	TopN  int    `yaml:"top_n"`
}

// StrategyConfig configures the rock paper scissors strategy guide puzzle
type StrategyConfig struct {
	Input string `yaml:"input"`
}

// RucksackConfig configures the rucksack reorganization puzzle
type RucksackConfig struct {
	Input     string `yaml:"input"`
	Alphabet  string `yaml:"alphabet"`
	GroupSize int    `yaml:"group_size"`
}
