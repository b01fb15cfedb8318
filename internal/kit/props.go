package kit

// Props is a property-override bag for a single component type or
// instance. Values are the raw forms components interpret at render
// time ("rounded": "lg", "location": "top", ...).
type Props map[string]any

// String returns the string value for key, or fallback when the key is
// absent or not a string.
func (p Props) String(key, fallback string) string {
	if value, ok := p[key].(string); ok {
		return value
	}
	return fallback
}

// Bool returns the bool value for key, or fallback when absent.
func (p Props) Bool(key string, fallback bool) bool {
	if value, ok := p[key].(bool); ok {
		return value
	}
	return fallback
}

// Int returns the int value for key, or fallback when absent.
func (p Props) Int(key string, fallback int) int {
	switch value := p[key].(type) {
	case int:
		return value
	case float64:
		return int(value)
	}
	return fallback
}

func (p Props) clone() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for key, value := range p {
		out[key] = value
	}
	return out
}

// merge layers overrides on top of p without mutating either side.
func (p Props) merge(overrides Props) Props {
	merged := make(Props, len(p)+len(overrides))
	for key, value := range p {
		merged[key] = value
	}
	for key, value := range overrides {
		merged[key] = value
	}
	return merged
}

// Defaults maps a component type name to the prop overrides applied to
// every instance of that type unless locally overridden.
type Defaults map[string]Props

func (d Defaults) clone() Defaults {
	if d == nil {
		return Defaults{}
	}
	out := make(Defaults, len(d))
	for name, props := range d {
		if props == nil {
			// An explicitly present empty entry stays present.
			out[name] = Props{}
			continue
		}
		out[name] = props.clone()
	}
	return out
}
