package configloader

// merge combines two configurations, with override taking precedence over base.
// Scalars overwrite when non-zero; pointer booleans overwrite when set, so an
// explicit false in a higher-precedence source still wins.
func merge(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.Format != "" {
		result.Format = override.Format
	}
	if override.MaxNestingDepth != 0 {
		result.MaxNestingDepth = override.MaxNestingDepth
	}

	if override.DetectLanguage != nil {
		result.DetectLanguage = override.DetectLanguage
	}
	if override.NormalizeTags != nil {
		result.NormalizeTags = override.NormalizeTags
	}
	if override.IndentedCodeBlocks != nil {
		result.IndentedCodeBlocks = override.IndentedCodeBlocks
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*Config) *Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
