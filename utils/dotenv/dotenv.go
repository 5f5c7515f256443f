package dotenv

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadDotEnvs loads environment variables from .env.<FOODGRAM_ENV> when
// present, falling back to plain .env. Missing files are not an error:
// deployed environments inject variables directly.
func LoadDotEnvs() error {
	env := os.Getenv("FOODGRAM_ENV")
	if len(env) > 0 {
		if err := godotenv.Load(".env." + env); err == nil {
			return nil
		}
	}
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
