package config

import "os"

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

func GetStorageBackend() string {
	backend := os.Getenv("STORE_BACKEND")
	if backend == "" {
		return BackendFile
	}
	return backend
}

func GetStoragePath() string {
	path := os.Getenv("STORE_PATH")
	if path != "" {
		return path
	}
	if GetStorageBackend() == BackendSQLite {
		return "employee_records.db"
	}
	return "employee_records.json"
}

func GetLogFilePath() string {
	path := os.Getenv("LOG_FILE")
	if path == "" {
		return "employeeform.log"
	}
	return path
}
