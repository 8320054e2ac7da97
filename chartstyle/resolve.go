package chartstyle

// DataItem is one entry of the payload a chart engine reports on a hover or
// render event. Every field is optional; Payload carries the item's original
// datum (fill color and arbitrary extra fields) as reported by the engine.
// Items are ephemeral — this package never retains them.
type DataItem struct {
	Name    string
	Value   any
	Color   string
	DataKey string
	Payload map[string]any
}

// stringField returns the string value of the named item-level field, if that
// field is set and string-typed.
func (it DataItem) stringField(key string) (string, bool) {
	switch key {
	case "name":
		if it.Name != "" {
			return it.Name, true
		}
	case "dataKey":
		if it.DataKey != "" {
			return it.DataKey, true
		}
	case "color":
		if it.Color != "" {
			return it.Color, true
		}
	case "value":
		if s, ok := it.Value.(string); ok {
			return s, true
		}
	}
	return "", false
}

// payloadString returns the string value of the named field in the item's
// original payload, if present and string-typed.
func (it DataItem) payloadString(key string) (string, bool) {
	v, ok := it.Payload[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Resolve maps a reported payload item onto the configuration entry that
// describes it. candidateKey is tried three ways, first match wins:
//
//  1. If the item itself carries a string field named candidateKey, that
//     field's value replaces the working key (the item declares which entry
//     describes it). Otherwise, if the item's original payload carries such
//     a string field, its value replaces the working key.
//  2. The working key is looked up in cfg.
//  3. Failing that, the original candidateKey is looked up in cfg, so that
//     datasets where the field name itself is the series key still resolve.
//
// A miss is not an error: callers fall back to the item's raw name and value.
func Resolve(cfg StyleConfig, item DataItem, candidateKey string) (SeriesStyle, bool) {
	working := candidateKey
	if s, ok := item.stringField(candidateKey); ok {
		working = s
	} else if s, ok := item.payloadString(candidateKey); ok {
		working = s
	}

	if entry, ok := cfg[working]; ok {
		return entry, true
	}
	if entry, ok := cfg[candidateKey]; ok {
		return entry, true
	}
	return SeriesStyle{}, false
}
