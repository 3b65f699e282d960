package domain

import "strings"

// clientsPrefix marks the clients line inside the notes text.
// Parsing also accepts the English spelling left behind by older rows.
const clientsPrefix = "clientes:"
const clientsPrefixEN = "clients:"

// ComposeNotes encodes the optional company and clients values into the
// flat notes text stored on every row of a group:
//
//	"<company>\nClientes: <clients>"
//
// Either part may be absent. ParseNotes reverses the encoding.
func ComposeNotes(company, clients string) string {
	base := strings.TrimSpace(company)
	clientsText := strings.TrimSpace(clients)
	if clientsText == "" {
		return base
	}
	if base == "" {
		return "Clientes: " + clientsText
	}
	return base + "\nClientes: " + clientsText
}

// ParseNotes decodes the notes text: the first non-empty line is the
// company, the first line with a clients prefix (case-insensitive) is
// the clients value. Returns empty strings for absent parts.
func ParseNotes(notes string) (company, clients string) {
	lines := make([]string, 0, 2)
	for _, l := range strings.Split(notes, "\n") {
		if trimmed := strings.TrimSpace(strings.TrimSuffix(l, "\r")); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	if len(lines) == 0 {
		return "", ""
	}

	for _, l := range lines {
		lower := strings.ToLower(l)
		var rest string
		switch {
		case strings.HasPrefix(lower, clientsPrefix):
			rest = l[len(clientsPrefix):]
		case strings.HasPrefix(lower, clientsPrefixEN):
			rest = l[len(clientsPrefixEN):]
		default:
			continue
		}
		clients = strings.TrimSpace(rest)
		break
	}

	first := lines[0]
	lowerFirst := strings.ToLower(first)
	if !strings.HasPrefix(lowerFirst, clientsPrefix) && !strings.HasPrefix(lowerFirst, clientsPrefixEN) {
		company = first
	}
	return company, clients
}
