package kachelmann

// Keys removed from each endpoint's response before it is returned.
// All lists are currently empty.
var excludedKeys = map[Endpoint][]string{
	EndpointCurrent:      {},
	EndpointForecast3Day: {},
	EndpointTrend14Day:   {},
}

// StripKeys returns a new map holding every entry of obj whose key is not excluded.
func StripKeys(obj map[string]any, excluded []string) map[string]any {
	skip := make(map[string]struct{}, len(excluded))
	for _, k := range excluded {
		skip[k] = struct{}{}
	}

	result := make(map[string]any, len(obj))
	for k, v := range obj {
		if _, ok := skip[k]; ok {
			continue
		}
		result[k] = v
	}
	return result
}

// Strip applies StripKeys to an object payload, or to every object element
// of an array payload. Other payloads are returned unchanged.
func (p *Payload) Strip(excluded []string) *Payload {
	if len(excluded) == 0 {
		return p
	}

	switch v := p.Value().(type) {
	case map[string]any:
		return NewPayload(StripKeys(v, excluded))
	case []any:
		items := make([]any, len(v))
		for i, item := range v {
			if obj, ok := item.(map[string]any); ok {
				items[i] = StripKeys(obj, excluded)
				continue
			}
			items[i] = item
		}
		return NewPayload(items)
	default:
		return p
	}
}
