package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string

	// source locations
	CSVURL    string
	CSVFile   string
	MigelURL  string
	MigelFile string

	// outputs
	DBFile     string
	DeployDest string

	// matching
	StopwordsFile string
	Workers       int // 0 = NumCPU

	// serve mode
	RefreshCron string
}

func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	workers, _ := strconv.Atoi(getenv("WORKERS", "0"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")

	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/migel-service.log"),

		CSVURL:    getenv("CSV_URL", "https://id.gs1.ch/01/07612345000961"),
		CSVFile:   getenv("CSV_FILE", "firstbase.csv"),
		MigelURL:  getenv("MIGEL_URL", "https://www.bag.admin.ch/dam/de/sd-web/77j5rwUTzbkq/Mittel-%20und%20Gegenst%C3%A4ndeliste%20per%2001.01.2026%20in%20Excel-Format.xlsx"),
		MigelFile: getenv("MIGEL_FILE", "migel.xlsx"),

		DBFile:     getenv("DB_FILE", "firstbase.db"),
		DeployDest: getenv("DEPLOY_DEST", "zdavatz@65.109.137.20:/var/www/pillbox.oddb.org/"),

		StopwordsFile: getenv("STOPWORDS_FILE", ""),
		Workers:       workers,

		RefreshCron: getenv("REFRESH_CRON", ""),
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
