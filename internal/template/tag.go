package template

import "strings"

// TagKind identifies the kind of a template tag.
type TagKind int

const (
	// TagVar is a substitution marker: {{ key }}.
	TagVar TagKind = iota
	// TagIf opens a conditional region: {% if expr %}.
	TagIf
	// TagElse separates the branches of a conditional region: {% else %}.
	TagElse
	// TagEndif closes a conditional region: {% endif %}.
	TagEndif
	// TagUnknown is a {% ... %} tag with an unrecognized keyword.
	TagUnknown
)

const (
	varOpen    = "{{"
	varClose   = "}}"
	blockOpen  = "{%"
	blockClose = "%}"
)

// Tag is a single tag occurrence in a template.
type Tag struct {
	// Kind is the tag kind.
	Kind TagKind
	// Args is the tag content: the key for TagVar, the condition
	// expression for TagIf, empty otherwise.
	Args string
	// Start is the byte offset of the opening delimiter.
	Start int
	// End is the byte offset just past the closing delimiter.
	End int
	// RawText is the full tag text including delimiters.
	RawText string
}

// findTags scans input and returns all tags in order of appearance.
// Returns an error for unterminated tags; unknown block keywords are
// reported as TagUnknown for the caller to reject.
func findTags(input string) ([]Tag, error) {
	var tags []Tag
	pos := 0
	for {
		varIdx := strings.Index(input[pos:], varOpen)
		blockIdx := strings.Index(input[pos:], blockOpen)
		if varIdx == -1 && blockIdx == -1 {
			return tags, nil
		}

		if varIdx != -1 && (blockIdx == -1 || varIdx < blockIdx) {
			start := pos + varIdx
			rel := strings.Index(input[start:], varClose)
			if rel == -1 {
				return nil, newRenderErrorWithTag(InvalidTagSyntax,
					"unterminated substitution marker",
					truncateTag(input[start:]))
			}
			end := start + rel + len(varClose)
			raw := input[start:end]
			args := strings.TrimSpace(input[start+len(varOpen) : start+rel])
			if args == "" {
				return nil, newRenderErrorWithTag(InvalidTagSyntax,
					"substitution marker has no key", raw)
			}
			tags = append(tags, Tag{
				Kind:    TagVar,
				Args:    args,
				Start:   start,
				End:     end,
				RawText: raw,
			})
			pos = end
			continue
		}

		start := pos + blockIdx
		rel := strings.Index(input[start:], blockClose)
		if rel == -1 {
			return nil, newRenderErrorWithTag(InvalidTagSyntax,
				"unterminated block tag",
				truncateTag(input[start:]))
		}
		end := start + rel + len(blockClose)
		raw := input[start:end]
		content := strings.TrimSpace(input[start+len(blockOpen) : start+rel])

		tag := Tag{Start: start, End: end, RawText: raw}
		keyword, rest, _ := strings.Cut(content, " ")
		switch keyword {
		case "if":
			tag.Kind = TagIf
			tag.Args = strings.TrimSpace(rest)
			if tag.Args == "" {
				return nil, newRenderErrorWithTag(InvalidTagSyntax,
					"condition expression is empty", raw)
			}
		case "else":
			tag.Kind = TagElse
		case "endif":
			tag.Kind = TagEndif
		default:
			tag.Kind = TagUnknown
			tag.Args = content
		}
		if (tag.Kind == TagElse || tag.Kind == TagEndif) && rest != "" {
			return nil, newRenderErrorWithTag(InvalidTagSyntax,
				"unexpected arguments after "+keyword, raw)
		}
		tags = append(tags, tag)
		pos = end
	}
}

// truncateTag limits tag text in error messages to a single short line.
func truncateTag(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		s = s[:i]
	}
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return s
}
