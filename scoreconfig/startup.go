package scoreconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/watchman-screening/screen-core/config"
)

// startupEnvVarSpecs lists the environment variables that can override the
// on-disk startup configuration, keyed to the same dotted paths the YAML
// config file uses (see the yaml tags on Override's fields).
var startupEnvVarSpecs = []config.EnvVarSpec{
	{Name: "SCREEN_CORE_SCORING_NAME_WEIGHT", Path: []string{"scoring", "nameWeight"}, Type: config.EnvFloat},
	{Name: "SCREEN_CORE_SCORING_ADDRESS_WEIGHT", Path: []string{"scoring", "addressWeight"}, Type: config.EnvFloat},
	{Name: "SCREEN_CORE_SCORING_CRITICAL_ID_WEIGHT", Path: []string{"scoring", "criticalIdWeight"}, Type: config.EnvFloat},
	{Name: "SCREEN_CORE_SCORING_SUPPORTING_INFO_WEIGHT", Path: []string{"scoring", "supportingInfoWeight"}, Type: config.EnvFloat},
	{Name: "SCREEN_CORE_SCORING_ALT_NAME_ENABLED", Path: []string{"scoring", "altNameEnabled"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SCORING_GOV_ID_ENABLED", Path: []string{"scoring", "govIdEnabled"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SCORING_CRYPTO_ENABLED", Path: []string{"scoring", "cryptoEnabled"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SCORING_CONTACT_ENABLED", Path: []string{"scoring", "contactEnabled"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SCORING_DATE_ENABLED", Path: []string{"scoring", "dateEnabled"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SIMILARITY_JARO_WINKLER_BOOST_THRESHOLD", Path: []string{"similarity", "jaroWinklerBoostThreshold"}, Type: config.EnvFloat},
	{Name: "SCREEN_CORE_SIMILARITY_PHONETIC_FILTERING_DISABLED", Path: []string{"similarity", "phoneticFilteringDisabled"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SIMILARITY_KEEP_STOPWORDS", Path: []string{"similarity", "keepStopwords"}, Type: config.EnvBool},
	{Name: "SCREEN_CORE_SEARCH_MIN_MATCH", Path: []string{"search", "minMatch"}, Type: config.EnvFloat},
	{Name: "SCREEN_CORE_SEARCH_LIMIT", Path: []string{"search", "limit"}, Type: config.EnvInt},
}

// LoadStartupOverride builds an Override from an optional on-disk YAML
// config file, found via config.GetAppConfigPaths(appName), with
// environment variables layered on top. Both layers are optional: a
// deployment with neither produces a nil, nil result, and Resolve(nil)
// falls back to pure defaults. The on-disk file is read once per call;
// callers that want to reload on SIGHUP should call this again.
func LoadStartupOverride(appName string) (*Override, error) {
	override := &Override{}

	for _, path := range config.GetAppConfigPaths(appName) {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("scoreconfig: reading startup config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, override); err != nil {
			return nil, fmt.Errorf("scoreconfig: parsing startup config %s: %w", path, err)
		}
		break
	}

	envValues, err := config.LoadEnvOverrides(startupEnvVarSpecs)
	if err != nil {
		return nil, fmt.Errorf("scoreconfig: loading environment overrides: %w", err)
	}
	if len(envValues) > 0 {
		envYAML, err := yaml.Marshal(envValues)
		if err != nil {
			return nil, fmt.Errorf("scoreconfig: encoding environment overrides: %w", err)
		}
		if err := yaml.Unmarshal(envYAML, override); err != nil {
			return nil, fmt.Errorf("scoreconfig: applying environment overrides: %w", err)
		}
	}

	if override.Similarity == nil && override.Scoring == nil && override.Search == nil {
		return nil, nil
	}
	return override, nil
}
