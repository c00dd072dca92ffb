package template

import "fmt"

// Variables holds template variable values and provides type-safe access.
type Variables interface {
	// Get retrieves a variable value by name.
	// Returns (value, true) if found, (nil, false) if not found.
	Get(name string) (interface{}, bool)

	// GetString retrieves a string variable.
	// Returns error if variable not found or type mismatch.
	GetString(name string) (string, error)

	// GetBool retrieves a boolean variable.
	// Returns error if variable not found or type mismatch.
	GetBool(name string) (bool, error)

	// Set sets a variable value.
	Set(name string, value interface{})

	// All returns all variables as a map.
	All() map[string]interface{}
}

// MapVariables implements Variables using a map[string]interface{}.
type MapVariables struct {
	data map[string]interface{}
}

// NewMapVariables creates a new MapVariables from a map.
func NewMapVariables(data map[string]interface{}) *MapVariables {
	if data == nil {
		data = make(map[string]interface{})
	}
	return &MapVariables{data: data}
}

// Get retrieves a variable value by name.
func (m *MapVariables) Get(name string) (interface{}, bool) {
	val, ok := m.data[name]
	return val, ok
}

// GetString retrieves a string variable.
func (m *MapVariables) GetString(name string) (string, error) {
	val, ok := m.data[name]
	if !ok {
		return "", fmt.Errorf("variable not found: %s", name)
	}

	switch v := val.(type) {
	case string:
		return v, nil
	default:
		return "", fmt.Errorf("variable %s is not a string (got %T)", name, val)
	}
}

// GetBool retrieves a boolean variable.
func (m *MapVariables) GetBool(name string) (bool, error) {
	val, ok := m.data[name]
	if !ok {
		return false, fmt.Errorf("variable not found: %s", name)
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("variable %s is not a boolean (got %T)", name, val)
	}
}

// Set sets a variable value.
func (m *MapVariables) Set(name string, value interface{}) {
	m.data[name] = value
}

// All returns all variables as a map.
func (m *MapVariables) All() map[string]interface{} {
	result := make(map[string]interface{}, len(m.data))
	for k, v := range m.data {
		result[k] = v
	}
	return result
}

// valueToString converts a variable value to its string representation.
func valueToString(val interface{}) string {
	switch v := val.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}
