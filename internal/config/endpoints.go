package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Lookup modes
const (
	LookupType = "type" // equality lookup on the question-type partition key
	LookupScan = "scan" // full table scan
)

// EndpointProfile configures one retrieval endpoint of the generic question pipeline
type EndpointProfile struct {
	Name             string   `yaml:"name"`
	Lookup           string   `yaml:"lookup"`
	Table            string   `yaml:"table"`
	ExamScoped       bool     `yaml:"exam_scoped"`
	DefaultExam      string   `yaml:"default_exam"`
	AllowedExams     []string `yaml:"allowed_exams"`
	DefaultType      string   `yaml:"default_type"`
	DefaultCount     int      `yaml:"default_count"`
	MaxCount         int      `yaml:"max_count"`
	Filters          bool     `yaml:"filters"`
	AttachSourceExam bool     `yaml:"attach_source_exam"`
	RequireAPIKey    bool     `yaml:"require_api_key"`
}

// ExamAllowed reports whether exam passes the profile's allow-list
func (p *EndpointProfile) ExamAllowed(exam string) bool {
	if len(p.AllowedExams) == 0 {
		return true
	}
	for _, allowed := range p.AllowedExams {
		if allowed == exam {
			return true
		}
	}
	return false
}

// DefaultEndpoints returns the built-in question endpoints
func DefaultEndpoints() []EndpointProfile {
	return []EndpointProfile{
		{
			Name:         "commands",
			Lookup:       LookupType,
			Table:        "Commands",
			DefaultType:  "command_to_description",
			DefaultCount: 1,
			MaxCount:     50,
		},
		{
			Name:         "ports",
			Lookup:       LookupType,
			Table:        "ports",
			DefaultType:  "identify_protocol_from_number",
			DefaultCount: 1,
			MaxCount:     50,
		},
		{
			Name:         "net-commands",
			Lookup:       LookupType,
			Table:        "netCommands",
			DefaultCount: 1,
			MaxCount:     50,
		},
		{
			Name:         "practice-exam",
			Lookup:       LookupScan,
			ExamScoped:   true,
			DefaultCount: 30,
			MaxCount:     100,
		},
		{
			Name:             "exam-quiz",
			Lookup:           LookupScan,
			ExamScoped:       true,
			AllowedExams:     []string{"A1101", "A1102", "Net09", "Sec701"},
			DefaultCount:     10,
			MaxCount:         100,
			AttachSourceExam: true,
			RequireAPIKey:    true,
		},
		{
			Name:         "daily-quiz",
			Lookup:       LookupScan,
			ExamScoped:   true,
			DefaultExam:  "A1101",
			DefaultCount: 1,
			MaxCount:     100,
			Filters:      true,
		},
	}
}

// LoadEndpoints reads endpoint profiles from a YAML file and validates them
func LoadEndpoints(path string) ([]EndpointProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseEndpoints(data)
}

// ParseEndpoints decodes a YAML document of the form `endpoints: [...]`
func ParseEndpoints(data []byte) ([]EndpointProfile, error) {
	var doc struct {
		Endpoints []EndpointProfile `yaml:"endpoints"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse endpoints: %w", err)
	}
	if len(doc.Endpoints) == 0 {
		return nil, fmt.Errorf("endpoints: at least one endpoint is required")
	}

	seen := make(map[string]bool, len(doc.Endpoints))
	for i := range doc.Endpoints {
		p := &doc.Endpoints[i]
		if p.Name == "" {
			return nil, fmt.Errorf("endpoints[%d].name is required", i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("endpoints[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = true

		if p.Lookup == "" {
			p.Lookup = LookupScan
		}
		if p.Lookup != LookupType && p.Lookup != LookupScan {
			return nil, fmt.Errorf("endpoint %s: lookup must be %q or %q", p.Name, LookupType, LookupScan)
		}
		if p.Table == "" && !p.ExamScoped {
			return nil, fmt.Errorf("endpoint %s: table is required unless exam_scoped", p.Name)
		}
		if p.DefaultCount == 0 {
			p.DefaultCount = 1
		}
		if p.DefaultCount < 0 || p.MaxCount < 0 {
			return nil, fmt.Errorf("endpoint %s: counts must be positive", p.Name)
		}
		if p.MaxCount == 0 {
			p.MaxCount = 100
		}
		if p.DefaultCount > p.MaxCount {
			return nil, fmt.Errorf("endpoint %s: default_count exceeds max_count", p.Name)
		}
	}
	return doc.Endpoints, nil
}
