// SPDX-License-Identifier: AGPL-3.0-only
package profile

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"go.uber.org/zap"
)

//go:embed seed.json
var seedData []byte

const SeedSource = "embedded seed"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// Load reads the profile from path, or from the embedded seed when path is
// empty. Malformed activities are dropped and logged; anything that prevents
// building a profile at all comes back as a *DataLoadError.
func Load(path string, log *zap.Logger) (UserProfile, error) {
	source := SeedSource
	data := seedData
	format := ".json"

	if path != "" {
		source = path
		format = strings.ToLower(filepath.Ext(path))
		raw, err := os.ReadFile(path)
		if err != nil {
			return UserProfile{}, &DataLoadError{Source: source, Err: err}
		}
		data = raw
	}

	user, err := Decode(data, format)
	if err != nil {
		return UserProfile{}, &DataLoadError{Source: source, Err: err}
	}

	kept, skipped := Sanitize(user.Activities)
	for _, e := range skipped {
		log.Warn("Skipping malformed activity", zap.String("source", source), zap.Error(e))
	}
	user.Activities = kept

	if dup := DuplicateIDs(user.Activities); len(dup) > 0 {
		log.Warn("Activity ids are not unique", zap.String("source", source), zap.Ints("ids", dup))
	}

	log.Info("Profile loaded",
		zap.String("source", source),
		zap.String("name", user.Name),
		zap.Int("activities", len(user.Activities)),
	)

	return user, nil
}

// Decode parses a profile document. format is a file extension.
func Decode(data []byte, format string) (UserProfile, error) {
	var user UserProfile

	switch format {
	case ".json":
		if err := json.Unmarshal(data, &user); err != nil {
			return UserProfile{}, fmt.Errorf("invalid JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &user); err != nil {
			return UserProfile{}, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		return UserProfile{}, fmt.Errorf("unsupported profile format %q", format)
	}

	if err := getValidator().Struct(user); err != nil {
		return UserProfile{}, fmt.Errorf("invalid profile: %w", err)
	}

	return user, nil
}

// Sanitize keeps the valid activities in their original order and reports a
// *RenderError for each one it drops.
func Sanitize(activities []Activity) ([]Activity, []error) {
	kept := make([]Activity, 0, len(activities))
	var skipped []error

	for i, a := range activities {
		if err := getValidator().Struct(a); err != nil {
			skipped = append(skipped, &RenderError{Index: i, ID: a.ID, Err: err})
			continue
		}
		kept = append(kept, a)
	}

	return kept, skipped
}

// DuplicateIDs lists ids that occur more than once, in order of first repeat.
func DuplicateIDs(activities []Activity) []int {
	seen := make(map[int]bool, len(activities))
	var dup []int
	for _, a := range activities {
		if seen[a.ID] {
			dup = append(dup, a.ID)
			continue
		}
		seen[a.ID] = true
	}
	return dup
}
