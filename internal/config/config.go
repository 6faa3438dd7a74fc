package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port int
	Env  string

	AWSRegion   string
	ModelID     string
	MaxAttempts int

	GoogleAPIKey         string
	GoogleSearchEngineID string
	SearchTimeout        time.Duration

	DataFile string
}

// Load reads configuration from the environment. A .env file in the working
// directory is merged in first if present.
func Load() *Config {
	_ = godotenv.Load()

	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil {
		port = 5000
	}

	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}

	modelID := os.Getenv("BEDROCK_MODEL_ID")
	if modelID == "" {
		modelID = "anthropic.claude-3-5-sonnet-20240620-v1:0"
	}

	dataFile := os.Getenv("TODO_DATA_FILE")
	if dataFile == "" {
		dataFile = "data/todos.json"
	}

	return &Config{
		Port: port,
		Env:  os.Getenv("APP_ENV"),

		AWSRegion:   region,
		ModelID:     modelID,
		MaxAttempts: 3,

		GoogleAPIKey:         os.Getenv("GOOGLE_SEARCH_API_KEY"),
		GoogleSearchEngineID: os.Getenv("GOOGLE_SEARCH_ENGINE_ID"),
		SearchTimeout:        10 * time.Second,

		DataFile: dataFile,
	}
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
