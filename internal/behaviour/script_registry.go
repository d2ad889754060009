package behaviour

import "sort"

// ScriptConstructor builds a script using the engine services in host.
type ScriptConstructor func(host *Host) Component

var scriptRegistry = make(map[string]ScriptConstructor)

func RegisterScript(name string, constructor ScriptConstructor) {
	scriptRegistry[name] = constructor
}

func GetAvailableScripts() []string {
	names := make([]string, 0, len(scriptRegistry))
	for name := range scriptRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateScript builds the named script, or returns nil if it is not
// registered.
func CreateScript(name string, host *Host) Component {
	if constructor, exists := scriptRegistry[name]; exists {
		return constructor(host)
	}
	return nil
}
