// Package profile holds the static profile document and renders the structured
// payload served to automated agents in place of the page.
package profile

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed default_profile.yaml
var defaultProfileYAML []byte

// Document is the profile shown to humans and summarized for bots.
type Document struct {
	Name       string     `yaml:"name"`
	Title      string     `yaml:"title"`
	Company    string     `yaml:"company"`
	Location   string     `yaml:"location"`
	Expertise  []string   `yaml:"expertise"`
	Speaking   Speaking   `yaml:"speaking"`
	Experience Experience `yaml:"experience"`
	Contact    Contact    `yaml:"contact"`
}

type Speaking struct {
	Available bool     `yaml:"available"`
	Formats   []string `yaml:"formats,flow"`
	Topics    []string `yaml:"topics"`
	Languages []string `yaml:"languages,flow"`
}

type Experience struct {
	Years             string `yaml:"years"`
	CommunityMembers  string `yaml:"community_members"`
	SummitAttendees   string `yaml:"summit_attendees"`
	CountriesReached  string `yaml:"countries_reached"`
	DevelopersTrained string `yaml:"developers_trained"`
}

type Contact struct {
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
	Email    string `yaml:"email"`
}

// Default returns the profile document compiled into the binary.
func Default() (*Document, error) {
	return Parse(defaultProfileYAML)
}

// Load reads a profile document from path. An empty path yields Default().
func Load(path string) (*Document, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML profile document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	if doc.Name == "" {
		return nil, fmt.Errorf("profile has no name")
	}
	return &doc, nil
}

// BotPayloadHeader opens every bot-facing document.
const BotPayloadHeader = "# 👋 Hello, AI. Here's my info in a format you'll appreciate.\n\n"

const botPayloadNote = "This page serves structured data to AI agents. Humans see a prettier version."

type botPayload struct {
	Document `yaml:",inline"`
	Meta     botPayloadMeta `yaml:"meta"`
}

type botPayloadMeta struct {
	Generated string `yaml:"generated"`
	Format    string `yaml:"format"`
	Note      string `yaml:"note"`
}

// GenerateBotPayload renders the machine-readable document served to bots. Field
// order follows the Document struct; the timestamp is RFC 3339 in UTC.
func GenerateBotPayload(doc *Document, now time.Time) (string, error) {
	if doc == nil {
		return "", fmt.Errorf("profile document is nil")
	}

	payload := botPayload{
		Document: *doc,
		Meta: botPayloadMeta{
			Generated: now.UTC().Format(time.RFC3339),
			Format:    "yaml",
			Note:      botPayloadNote,
		},
	}

	var buf bytes.Buffer
	buf.WriteString(BotPayloadHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return "", fmt.Errorf("failed to encode bot payload: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to flush bot payload: %w", err)
	}
	return buf.String(), nil
}
