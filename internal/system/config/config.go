/*
 * Copyright (c) 2026, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package config

import (
	"os"

	"gopkg.in/yaml.v2"

	"github.com/wso2/customer-resolution-service/internal/system/errors"
)

type LogConfig struct {
	LogLevel string `yaml:"log_level"`
}

// ResolutionConfig carries the tunable constants of the matching cascade.
// The thresholds are empirically chosen; they were lifted out of the
// matching code so they can be recalibrated without a rebuild.
type ResolutionConfig struct {
	AddressMatchThreshold  float64 `yaml:"address_match_threshold"`
	NameMatchThreshold     float64 `yaml:"name_match_threshold"`
	ConfidenceIncrement    float64 `yaml:"confidence_increment"`
	CalendarSeedConfidence float64 `yaml:"calendar_seed_confidence"`
	EmailSeedConfidence    float64 `yaml:"email_seed_confidence"`
}

type Config struct {
	Log        LogConfig        `yaml:"log"`
	Resolution ResolutionConfig `yaml:"resolution"`
}

// DefaultConfig returns the configuration used when no file is supplied.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			LogLevel: "INFO",
		},
		Resolution: ResolutionConfig{
			AddressMatchThreshold:  0.7,
			NameMatchThreshold:     0.75,
			ConfidenceIncrement:    0.05,
			CalendarSeedConfidence: 0.8,
			EmailSeedConfidence:    0.7,
		},
	}
}

// LoadConfig reads the yaml configuration file at the given path and overlays
// it on top of the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewServerError(errors.ErrLoadConfig, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewServerError(errors.ErrLoadConfig, err)
	}
	if err := cfg.Resolution.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every tunable lies in [0,1].
func (rc ResolutionConfig) Validate() error {
	values := []float64{
		rc.AddressMatchThreshold,
		rc.NameMatchThreshold,
		rc.ConfidenceIncrement,
		rc.CalendarSeedConfidence,
		rc.EmailSeedConfidence,
	}
	for _, v := range values {
		if v < 0 || v > 1 {
			return errors.NewClientError(errors.ErrInvalidThreshold)
		}
	}
	return nil
}
