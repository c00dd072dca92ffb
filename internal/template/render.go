// Package template implements the text template engine used to render
// the embedded plugin templates.
//
// Templates contain literal text, substitution markers ({{ key }}) and
// conditional regions ({% if expr %} ... {% else %} ... {% endif %}).
// Conditions combine boolean variables with "and" and "not". Conditional
// regions nest. Substitution is literal text insertion with no escaping:
// the output is shell source and callers are responsible for ensuring
// substituted values cannot break out of their syntactic context.
//
// A reference to a variable that is not present is a hard error, never a
// silent empty substitution, so drift between templates and the context
// that feeds them is caught immediately.
package template

import (
	"fmt"
	"strings"
)

// conditionalBlock represents an if/else/endif block structure.
type conditionalBlock struct {
	expr        string // Condition expression for the block
	rawTag      string // The opening {% if ... %} tag text
	ifContent   string // Content between if and else (or endif if no else)
	elseContent string // Content between else and endif (empty if no else)
	outerStart  int    // Start of entire block (start of {% if %})
	outerEnd    int    // End of entire block (end of {% endif %})
}

// Render processes a template with variable substitution and conditional
// evaluation.
func Render(input string, vars Variables) (string, error) {
	tags, err := findTags(input)
	if err != nil {
		return "", err
	}

	// Reject unknown block tags up front, before conditional evaluation
	// can discard the region containing them.
	for _, tag := range tags {
		if tag.Kind == TagUnknown {
			return "", newRenderErrorWithTag(UnknownTag,
				fmt.Sprintf("unknown tag keyword: %s", tag.Args), tag.RawText)
		}
	}

	// Process conditional blocks innermost-first so that nested blocks
	// are evaluated before their enclosing block is spliced out.
	text := input
	for {
		block, err := findInnermostBlock(tags, text)
		if err != nil {
			return "", err
		}
		if block == nil {
			break
		}

		value, err := evalCondition(block.expr, block.rawTag, vars)
		if err != nil {
			return "", err
		}

		var replacement string
		if value {
			replacement = block.ifContent
		} else {
			replacement = block.elseContent
		}
		text = text[:block.outerStart] + replacement + text[block.outerEnd:]

		// Re-scan since offsets shifted.
		tags, err = findTags(text)
		if err != nil {
			return "", err
		}
	}

	// Substitute variables from last to first to keep offsets stable.
	for i := len(tags) - 1; i >= 0; i-- {
		tag := tags[i]
		if tag.Kind != TagVar {
			continue
		}
		val, ok := vars.Get(tag.Args)
		if !ok {
			return "", newRenderErrorWithTag(MissingVariable,
				fmt.Sprintf("required variable not found: %s", tag.Args), tag.RawText)
		}
		text = text[:tag.Start] + valueToString(val) + text[tag.End:]
	}

	return text, nil
}

// Validate checks template syntax without rendering: tag syntax, unknown
// keywords, and balanced conditional blocks.
func Validate(input string) error {
	tags, err := findTags(input)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		if tag.Kind == TagUnknown {
			return newRenderErrorWithTag(UnknownTag,
				fmt.Sprintf("unknown tag keyword: %s", tag.Args), tag.RawText)
		}
	}
	_, err = findInnermostBlock(tags, input)
	return err
}

// ExtractVariables returns the names of all variables a template
// references, in substitution markers and condition expressions alike.
func ExtractVariables(input string) ([]string, error) {
	tags, err := findTags(input)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var names []string
	record := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}

	for _, tag := range tags {
		switch tag.Kind {
		case TagVar:
			record(tag.Args)
		case TagIf:
			for _, word := range strings.Fields(tag.Args) {
				if word == "and" || word == "not" {
					continue
				}
				record(word)
			}
		}
	}
	return names, nil
}

// findInnermostBlock finds the innermost (most nested) complete
// conditional block. Returns nil if no block remains, an error for
// unclosed or unmatched tags.
func findInnermostBlock(tags []Tag, text string) (*conditionalBlock, error) {
	type stackEntry struct {
		ifTag   Tag
		elseTag *Tag
	}

	var stack []stackEntry
	var innermost *conditionalBlock
	maxDepth := 0

	for _, tag := range tags {
		switch tag.Kind {
		case TagIf:
			if len(stack) > maxDepth {
				maxDepth = len(stack)
			}
			stack = append(stack, stackEntry{ifTag: tag})

		case TagElse:
			if len(stack) == 0 {
				return nil, newRenderErrorWithTag(InvalidTagSyntax,
					"{% else %} without matching {% if %}", tag.RawText)
			}
			top := &stack[len(stack)-1]
			if top.elseTag != nil {
				return nil, newRenderErrorWithTag(InvalidTagSyntax,
					"duplicate {% else %} in conditional block", tag.RawText)
			}
			elseTag := tag
			top.elseTag = &elseTag

		case TagEndif:
			if len(stack) == 0 {
				return nil, newRenderErrorWithTag(InvalidTagSyntax,
					"{% endif %} without matching {% if %}", tag.RawText)
			}
			entry := stack[len(stack)-1]
			depth := len(stack) - 1
			stack = stack[:len(stack)-1]

			block := &conditionalBlock{
				expr:       entry.ifTag.Args,
				rawTag:     entry.ifTag.RawText,
				outerStart: entry.ifTag.Start,
				outerEnd:   tag.End,
			}
			if entry.elseTag != nil {
				block.ifContent = text[entry.ifTag.End:entry.elseTag.Start]
				block.elseContent = text[entry.elseTag.End:tag.Start]
			} else {
				block.ifContent = text[entry.ifTag.End:tag.Start]
			}

			if innermost == nil || depth >= maxDepth {
				innermost = block
			}
		}
	}

	if len(stack) > 0 {
		unclosed := stack[len(stack)-1]
		return nil, newRenderErrorWithTag(UnclosedBlock,
			fmt.Sprintf("unclosed conditional block (missing {%% endif %%} for %s)", unclosed.ifTag.RawText),
			unclosed.ifTag.RawText)
	}
	return innermost, nil
}
