package production

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/comalice/memsemx/internal/core"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSONRecorder is a file-based transcript recorder using JSON
// serialization, one file per run.
type JSONRecorder struct {
	dir string
}

// NewJSONRecorder creates a JSONRecorder, ensuring the directory exists.
func NewJSONRecorder(dir string) (*JSONRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &JSONRecorder{dir: dir}, nil
}

func (r *JSONRecorder) Save(ctx context.Context, transcript core.Transcript) error {
	data, err := json.MarshalIndent(transcript, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}

	fn := filepath.Join(r.dir, transcript.RunID+".json")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (r *JSONRecorder) Load(ctx context.Context, runID string) (core.Transcript, error) {
	fn := filepath.Join(r.dir, runID+".json")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.Transcript{}, fmt.Errorf("run %q: %w", runID, os.ErrNotExist)
		}
		return core.Transcript{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var transcript core.Transcript
	if err := json.Unmarshal(data, &transcript); err != nil {
		return core.Transcript{}, fmt.Errorf("json unmarshal: %w", err)
	}

	return transcript, nil
}

// YAMLRecorder is a file-based transcript recorder using YAML
// serialization, one file per run.
type YAMLRecorder struct {
	dir string
}

// NewYAMLRecorder creates a YAMLRecorder, ensuring the directory exists.
func NewYAMLRecorder(dir string) (*YAMLRecorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &YAMLRecorder{dir: dir}, nil
}

func (r *YAMLRecorder) Save(ctx context.Context, transcript core.Transcript) error {
	data, err := yaml.Marshal(transcript)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}

	fn := filepath.Join(r.dir, transcript.RunID+".yaml")
	if err := os.WriteFile(fn, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", fn, err)
	}

	return nil
}

func (r *YAMLRecorder) Load(ctx context.Context, runID string) (core.Transcript, error) {
	fn := filepath.Join(r.dir, runID+".yaml")
	data, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return core.Transcript{}, fmt.Errorf("run %q: %w", runID, os.ErrNotExist)
		}
		return core.Transcript{}, fmt.Errorf("read %s: %w", fn, err)
	}

	var transcript core.Transcript
	if err := yaml.Unmarshal(data, &transcript); err != nil {
		return core.Transcript{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	return transcript, nil
}
