package domain

import "path/filepath"

// DataDirName is the directory under the user's data home that holds the
// task store, config, and logs.
const DataDirName = "dailyflo"

// StoreFileName is the name of the JSON task store file.
const StoreFileName = "tasks.json"

// StorePath returns the path to the task store inside the data directory.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// ConfigPath returns the path to the config file inside the given directory.
func ConfigPath(dir string) string {
	return filepath.Join(dir, ConfigFileName)
}

// LogPath returns the path to the application log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", "dailyflo.log")
}
