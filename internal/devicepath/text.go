// File: internal/devicepath/text.go
package devicepath

import (
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-efiboot/internal/types"
)

// FromText parses the textual device path form: "/"-separated node
// expressions such as "PciRoot(0x0)/Pci(0x1,0x2)/Ata(0x0)". Tokens
// that are not recognized node expressions become literal Media file
// path components, mirroring the reference grammar; the resulting
// chain is always terminated with an end-of-entire-path node.
func FromText(text string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: empty path text", ErrSyntax)
	}

	var path []byte
	for _, token := range splitTokens(text, '/') {
		if token == "" {
			continue
		}
		node, err := parseToken(token)
		if err != nil {
			return nil, err
		}
		path = append(path, node...)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: no nodes in %q", ErrSyntax, text)
	}
	return append(path, End()...), nil
}

// ToText renders a binary device path chain as text. displayOnly
// selects the abbreviated per-node renderings (e.g. the short IPv4 and
// Ata forms); allowShortcuts permits composite shortcut forms, of
// which none are currently distinct from the per-node renderings, so
// the flag is accepted for interface parity.
func ToText(path []byte, displayOnly, allowShortcuts bool) (string, error) {
	_ = allowShortcuts

	if !Valid(path, len(path)) {
		return "", fmt.Errorf("%w: cannot render invalid chain", ErrMalformed)
	}

	var sb strings.Builder
	sep := ""
	off := 0
	for {
		typ, sub, length, _ := nodeHeader(path, off)
		payload := path[off+types.NodeHeaderLen : off+length]
		off += length

		if typ == types.TypeEnd {
			if sub == types.EndSubTypeEntire {
				return sb.String(), nil
			}
			// Instance separator within a multi-instance path.
			sep = ","
			continue
		}

		text, err := formatNode(typ, sub, payload, displayOnly)
		if err != nil {
			return "", err
		}
		sb.WriteString(sep)
		sb.WriteString(text)
		sep = "/"
	}
}

// Plausible applies a heuristic guard against mistyped node
// expressions that the fallback grammar silently turned into literal
// file path components (e.g. "URI(...)" typed instead of "Uri(...)").
// For each file path node, one trailing NUL is stripped, then a
// leading run of alphanumeric characters; if the remainder is a
// parenthesized expression the path is flagged implausible. Advisory
// only; callers may override.
func Plausible(path []byte) bool {
	off := 0
	for {
		typ, sub, length, ok := nodeHeader(path, off)
		if !ok || length < types.NodeHeaderLen || off+length > len(path) {
			return true // malformed chains are someone else's problem
		}
		if typ == types.TypeEnd && sub == types.EndSubTypeEntire {
			return true
		}
		if typ == types.TypeMedia && sub == types.MediaSubTypeFilePath {
			text, err := formatFilePath(path[off+types.NodeHeaderLen:off+length], false)
			if err == nil && looksLikeNodeExpression(text) {
				return false
			}
		}
		off += length
	}
}

func looksLikeNodeExpression(text string) bool {
	text = strings.TrimSuffix(text, "\x00")
	i := 0
	for i < len(text) && isAlnum(text[i]) {
		i++
	}
	rest := text[i:]
	return len(rest) >= 2 && rest[0] == '(' && rest[len(rest)-1] == ')'
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// splitTokens splits on sep at parenthesis depth zero, so URI
// arguments containing the separator stay intact.
func splitTokens(s string, sep byte) []string {
	var tokens []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case sep:
			if depth == 0 {
				tokens = append(tokens, s[start:i])
				start = i + 1
			}
		}
	}
	return append(tokens, s[start:])
}

// parseToken converts one textual token into a binary node. A token
// of the form Name(args) with a registered name uses that kind's
// parser; anything else is a literal file path component.
func parseToken(token string) ([]byte, error) {
	name, args, ok := splitExpression(token)
	var parse nodeParser
	if ok {
		parse, ok = lookupParser(name)
		// Unknown Name(...) degrades to a file path component; the
		// Plausible check exists to catch this.
	}
	var node []byte
	var err error
	if ok {
		node, err = parse(args)
	} else {
		node, err = filePathNode(token)
	}
	if err != nil {
		return nil, fmt.Errorf("%w in token %q", err, token)
	}
	return node, nil
}

// splitExpression decomposes "Name(arg1,arg2)" into its name and
// arguments. ok is false when the token does not have that shape.
func splitExpression(token string) (name string, args []string, ok bool) {
	open := strings.IndexByte(token, '(')
	if open <= 0 || !strings.HasSuffix(token, ")") {
		return "", nil, false
	}
	name = token[:open]
	for i := 0; i < len(name); i++ {
		if !isAlnum(name[i]) {
			return "", nil, false
		}
	}
	inner := token[open+1 : len(token)-1]
	if inner == "" {
		return name, []string{""}, true
	}
	return name, splitTokens(inner, ','), true
}

// formatNode renders one node, falling back to the generic Path(...)
// form for kinds without a registered formatter, or when a registered
// formatter rejects a payload it cannot interpret.
func formatNode(typ, sub uint8, payload []byte, displayOnly bool) (string, error) {
	if format, ok := nodeFormatters[nodeKey{typ, sub}]; ok {
		text, err := format(payload, displayOnly)
		if err == nil {
			return text, nil
		}
	}
	return formatRaw(typ, sub, payload), nil
}
