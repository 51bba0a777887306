package domain

// Resolve builds the constructor argument list for a built-in variant
func Resolve(variant ContractVariant, values ConfigValues) (ArgumentList, error) {
	return defaultRegistry.Resolve(variant, values)
}

// Resolve looks up each key of the variant in declared order and returns the
// values verbatim. The first absent or empty key fails the whole resolution.
func (r *Registry) Resolve(variant ContractVariant, values ConfigValues) (ArgumentList, error) {
	spec, err := r.Lookup(string(variant))
	if err != nil {
		return nil, err
	}
	return ResolveSpec(spec, values)
}

// ResolveSpec resolves the arguments of an already looked-up variant
func ResolveSpec(spec VariantSpec, values ConfigValues) (ArgumentList, error) {
	args := make(ArgumentList, 0, len(spec.Keys))
	for _, key := range spec.Keys {
		value, ok := values[key]
		if !ok || value == "" {
			return nil, MissingConfigValueError{Key: key, Variant: spec.Variant}
		}
		args = append(args, value)
	}
	return args, nil
}

// MissingKeys reports every required key of spec that values lacks, in declared order
func MissingKeys(spec VariantSpec, values ConfigValues) []string {
	var missing []string
	for _, key := range spec.Keys {
		if values[key] == "" {
			missing = append(missing, key)
		}
	}
	return missing
}
