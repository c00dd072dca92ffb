package name

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseValid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "simple", input: "myplugin"},
		{name: "with hyphens", input: "my-plugin"},
		{name: "with underscores", input: "my_plugin"},
		{name: "with digits", input: "plugin2"},
		{name: "mixed", input: "My-Plugin_v2"},
		{name: "single char", input: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.input, n.String(), "name must be preserved as-given")
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{name: "empty", input: "", kind: ErrorEmpty},
		{name: "starts with digit", input: "1abc", kind: ErrorInvalidInitialChar},
		{name: "starts with hyphen", input: "-plugin", kind: ErrorInvalidInitialChar},
		{name: "starts with underscore", input: "_plugin", kind: ErrorInvalidInitialChar},
		{name: "contains space", input: "ab c", kind: ErrorInvalidChar},
		{name: "contains dot", input: "ab.c", kind: ErrorInvalidChar},
		{name: "contains at sign", input: "my@plugin", kind: ErrorInvalidChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			var nameErr *Error
			require.ErrorAs(t, err, &nameErr)
			assert.Equal(t, tt.kind, nameErr.Kind)
		})
	}
}

func TestDerivedNames(t *testing.T) {
	n, err := Parse("a-b_c2")
	require.NoError(t, err)

	assert.Equal(t, "zsh-a-b_c2-plugin", n.DirName())
	assert.Equal(t, "a-b_c2.plugin.zsh", n.ScriptName())
	assert.Equal(t, "a-b_c2.bash", n.WrapperName())
	assert.Equal(t, "a-b_c2_example", n.ExampleFunctionName())
}

func TestShellVarReplacesEveryHyphen(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "containers", want: "CONTAINERS"},
		{input: "my-plugin", want: "MY_PLUGIN"},
		{input: "a-b-c-d", want: "A_B_C_D"},
		{input: "under_score", want: "UNDER_SCORE"},
	}

	for _, tt := range tests {
		n, err := Parse(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n.ShellVar())
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "containers", want: "Containers"},
		{input: "my-plugin", want: "My Plugin"},
		{input: "my_plugin_v2", want: "My Plugin V2"},
		{input: "Already-Caps", want: "Already Caps"},
	}

	for _, tt := range tests {
		n, err := Parse(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, n.Display())
	}
}
