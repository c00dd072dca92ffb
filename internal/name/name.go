// Package name provides plugin name validation and derived identifiers.
//
// A valid plugin name must start with an ASCII letter and contain only
// ASCII letters, digits, hyphens, or underscores. The validated name is
// used verbatim in file and directory names; a shell-safe variant with
// hyphens replaced by underscores is derived for shell variable names,
// since shell identifiers cannot contain hyphens.
package name

import "strings"

// Name is a validated plugin name.
//
// The zero value is not valid; construct values with Parse.
type Name struct {
	value string
}

// Parse validates raw and returns it as a Name.
// Case is preserved: callers performing case-sensitive filesystem
// operations see the name exactly as given.
func Parse(raw string) (Name, error) {
	if raw == "" {
		return Name{}, newNameError(ErrorEmpty, raw)
	}
	first := raw[0]
	if !isASCIILetter(first) {
		return Name{}, newNameError(ErrorInvalidInitialChar, raw)
	}
	for i := 1; i < len(raw); i++ {
		c := raw[i]
		if !isASCIILetter(c) && !isASCIIDigit(c) && c != '-' && c != '_' {
			return Name{}, newNameError(ErrorInvalidChar, raw)
		}
	}
	return Name{value: raw}, nil
}

// String returns the name exactly as given to Parse.
func (n Name) String() string {
	return n.value
}

// DirName returns the plugin root directory name, "zsh-<name>-plugin".
func (n Name) DirName() string {
	return "zsh-" + n.value + "-plugin"
}

// ScriptName returns the main plugin script file name, "<name>.plugin.zsh".
func (n Name) ScriptName() string {
	return n.value + ".plugin.zsh"
}

// WrapperName returns the Bash wrapper file name, "<name>.bash".
func (n Name) WrapperName() string {
	return n.value + ".bash"
}

// ExampleFunctionName returns the name of the example autoload function,
// "<name>_example".
func (n Name) ExampleFunctionName() string {
	return n.value + "_example"
}

// ShellVar returns the shell-identifier-safe variant used for the
// generated plugin's global state variable: hyphens replaced with
// underscores, upper-cased.
func (n Name) ShellVar() string {
	return strings.ToUpper(strings.ReplaceAll(n.value, "-", "_"))
}

// Display returns a human-readable form of the name with separators
// replaced by spaces and each word title-cased. Only used in generated
// comments and documentation, never in executed shell code.
func (n Name) Display() string {
	words := strings.FieldsFunc(n.value, func(r rune) bool {
		return r == '-' || r == '_'
	})
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
