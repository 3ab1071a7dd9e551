// Package catalog loads and indexes the crop catalog and quality probability table.
package catalog

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/osse101/CropCalc_Go/internal/logger"
	"github.com/osse101/CropCalc_Go/internal/validation"
)

// Loader reads reference data files
type Loader interface {
	Load(ctx context.Context, cropsPath, probabilitiesPath string) (*ReferenceData, error)
	LoadBytes(cropsData, probabilitiesData []byte) (*ReferenceData, error)
}

type fileLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a Loader that validates files against the bundled JSON schemas
func NewLoader() Loader {
	return &fileLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-checks, parses and indexes both reference files
func (l *fileLoader) Load(ctx context.Context, cropsPath, probabilitiesPath string) (*ReferenceData, error) {
	cropsData, err := os.ReadFile(cropsPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, cropsPath, err)
	}
	probData, err := os.ReadFile(probabilitiesPath)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadFileFailed, probabilitiesPath, err)
	}

	if err := l.schemaValidator.ValidateBytes(cropsData, CropsSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, cropsPath, err)
	}
	if err := l.schemaValidator.ValidateBytes(probData, ProbabilitiesSchemaPath); err != nil {
		return nil, fmt.Errorf(ErrMsgSchemaFailed, probabilitiesPath, err)
	}

	ref, err := l.build(cropsData, probData, cropsPath, probabilitiesPath)
	if err != nil {
		return nil, err
	}

	minLevel, maxLevel := ref.SkillRange()
	logger.FromContext(ctx).Info(LogMsgReferenceLoaded,
		"crops", len(ref.crops),
		"min_level", minLevel,
		"max_level", maxLevel,
		"fingerprint", ref.fingerprint)

	return ref, nil
}

// LoadBytes parses in-memory data without schema validation
func (l *fileLoader) LoadBytes(cropsData, probabilitiesData []byte) (*ReferenceData, error) {
	return l.build(cropsData, probabilitiesData, "crops", "probabilities")
}

func (l *fileLoader) build(cropsData, probData []byte, cropsSource, probSource string) (*ReferenceData, error) {
	crops, err := parseCrops(cropsData, cropsSource)
	if err != nil {
		return nil, err
	}
	rows, err := parseProbabilities(probData, probSource)
	if err != nil {
		return nil, err
	}

	ref, err := NewReferenceData(crops, rows)
	if err != nil {
		return nil, err
	}
	ref.fingerprint = fingerprint(cropsData, probData)
	return ref, nil
}

// fingerprint hashes both files so clients can tell when reference data changed
func fingerprint(parts ...[]byte) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write(p)
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}
