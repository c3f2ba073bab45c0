// Package config intsort 설정 (YAML 파일 + 환경 변수)
package config

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"intsort/qsort"
)

// 환경 변수 오버라이드
const (
	EnvInputDir     = "INTSORT_INPUT_DIR"
	EnvOutputDir    = "INTSORT_OUTPUT_DIR"
	EnvStoreBackend = "INTSORT_STORE_BACKEND"
)

// Config 전체 설정
type Config struct {
	InputDir  string      `yaml:"input_dir"`
	OutputDir string      `yaml:"output_dir"`
	Algorithm string      `yaml:"algorithm"` // recursive, iterative
	Store     StoreConfig `yaml:"store"`
	Bench     BenchConfig `yaml:"bench"`
}

// StoreConfig 실행 기록 저장소
type StoreConfig struct {
	Backend string `yaml:"backend"` // none, bbolt, badger, pebble
	Path    string `yaml:"path"`
}

// BenchConfig bench 명령 설정
type BenchConfig struct {
	Sizes    []int    `yaml:"sizes"`
	Patterns []string `yaml:"patterns"`
	Runs     int      `yaml:"runs"`
	Seed     int64    `yaml:"seed"`
}

// DefaultConfig 기본값
func DefaultConfig() *Config {
	return &Config{
		InputDir:  "datasets",
		OutputDir: "outputs",
		Algorithm: string(qsort.Recursive),
		Store: StoreConfig{
			Backend: "none",
			Path:    "intsort-history",
		},
		Bench: BenchConfig{
			Sizes:    []int{1000, 10000},
			Patterns: []string{"random", "sorted", "reversed", "equal"},
			Runs:     3,
			Seed:     42, // 동일한 시드로 재현 가능한 결과
		},
	}
}

// Load path의 YAML을 기본값 위에 덮어쓴다. 파일이 없으면 기본값 그대로
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// 기본값 사용
	case err != nil:
		return nil, errors.Wrapf(err, "read config %s", path)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save path에 YAML로 저장
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshal config")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "mkdir %s", dir)
		}
	}
	return errors.Wrapf(os.WriteFile(path, data, 0o644), "write config %s", path)
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvInputDir); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvStoreBackend); v != "" {
		c.Store.Backend = v
	}
}

// Validate 값 검사
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("config: input_dir is empty")
	}
	if c.OutputDir == "" {
		return errors.New("config: output_dir is empty")
	}
	if _, err := qsort.ParseAlgorithm(c.Algorithm); err != nil {
		return errors.Wrap(err, "config: algorithm")
	}
	switch c.Store.Backend {
	case "none", "bbolt", "badger", "pebble":
	default:
		return errors.Newf("config: unknown store backend %q", c.Store.Backend)
	}
	if c.Store.Backend != "none" && c.Store.Path == "" {
		return errors.New("config: store.path is empty")
	}
	if c.Bench.Runs < 1 {
		return errors.Newf("config: bench.runs must be >= 1, got %d", c.Bench.Runs)
	}
	for _, n := range c.Bench.Sizes {
		if n < 0 {
			return errors.Newf("config: negative bench size %d", n)
		}
	}
	return nil
}
