package envutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile loads variables from a file and returns them as a map. The
// format follows the extension:
//   - .env files are KEY=VALUE lines (parsed by godotenv)
//   - .json files have an "env" object of string values
//   - .yml/.yaml files have an "env" mapping of string values
func LoadEnvFile(path string) (map[string]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(fileInfo.Name())

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadJSONFile(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, fileInfo.Name())
	}
}

type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadJSONFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := json.Unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out.Env, nil
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile

	if err := yaml.Unmarshal(bts, &out); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return out.Env, nil
}

// WriteEnvFile writes vars to path as a .env file readable by LoadEnvFile.
func WriteEnvFile(path string, vars map[string]string) error {
	return godotenv.Write(vars, path)
}
