// Package project defines the validated project configuration consumed by
// the generation pipeline. Raw caller input (CLI JSON, web form payload)
// enters through FromMap and never flows past it untyped.
package project

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports malformed or missing configuration input.
// Generation never starts when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// nameRe is the accepted shape of a project name after trimming and
// lower-casing. Names that do not match are rejected, never rewritten.
var nameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Config is the validated, immutable representation of a project request.
type Config struct {
	ProjectName        string
	ProjectDescription string

	BackendStack      string
	FrontendStack     string
	DatabaseType      string
	AuthType          string
	DeployTarget      string
	ArchitectureStyle string
	CloudProvider     string

	CoreFeatures       []string
	NiceToHaveFeatures []string

	FinalProductVision     string
	ComplianceTargets      string
	ThirdPartyIntegrations string
	Performance            string

	Internationalization bool
}

// FromMap builds a Config from an untyped mapping (decoded JSON or form
// data). All string fields are trimmed; list fields accept both string
// slices and single comma-separated strings; boolean-like fields coerce
// common truthy spellings. Unknown keys are ignored so the schema can grow
// without breaking older callers.
func FromMap(raw map[string]any) (*Config, error) {
	name := strings.ToLower(strings.TrimSpace(stringField(raw, "project_name")))
	if name == "" {
		return nil, &ValidationError{Field: "project_name", Reason: "is required"}
	}
	if !nameRe.MatchString(name) {
		return nil, &ValidationError{
			Field:  "project_name",
			Reason: fmt.Sprintf("%q contains invalid characters (allowed: lowercase letters, digits, '.', '_', '-')", name),
		}
	}

	cfg := &Config{
		ProjectName:        name,
		ProjectDescription: stringField(raw, "project_description", "description"),

		BackendStack:      stringField(raw, "backend_stack", "backend_framework"),
		FrontendStack:     stringField(raw, "frontend_stack", "frontend_framework"),
		DatabaseType:      stringField(raw, "database_type"),
		AuthType:          stringField(raw, "auth_type"),
		DeployTarget:      stringField(raw, "deploy_target", "deployment_target"),
		ArchitectureStyle: stringField(raw, "architecture_style"),
		CloudProvider:     stringField(raw, "cloud_provider"),

		CoreFeatures:       listField(raw, "core_features", "features"),
		NiceToHaveFeatures: listField(raw, "nice_to_have_features"),

		FinalProductVision:     stringField(raw, "final_product_vision"),
		ComplianceTargets:      stringField(raw, "compliance_targets"),
		ThirdPartyIntegrations: stringField(raw, "third_party_integrations"),
		Performance:            stringField(raw, "performance"),

		Internationalization: boolField(raw, "internationalization", "i18n"),
	}
	return cfg, nil
}

// stringField returns the first present key as a trimmed string.
func stringField(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch s := v.(type) {
		case string:
			return strings.TrimSpace(s)
		case fmt.Stringer:
			return strings.TrimSpace(s.String())
		case float64:
			// JSON numbers decode as float64
			return strings.TrimSuffix(fmt.Sprintf("%v", s), ".0")
		case int, int64, bool:
			return fmt.Sprintf("%v", s)
		}
	}
	return ""
}

// listField returns the first present key as a cleaned string slice.
// A bare string is split on commas; blank entries are dropped.
func listField(raw map[string]any, keys ...string) []string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		var items []string
		switch list := v.(type) {
		case []string:
			items = list
		case []any:
			for _, e := range list {
				items = append(items, fmt.Sprintf("%v", e))
			}
		case string:
			items = strings.Split(list, ",")
		default:
			continue
		}
		out := make([]string, 0, len(items))
		for _, it := range items {
			if s := strings.TrimSpace(it); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// boolField coerces truthy/falsy spellings: true, "true", "yes", "on", "1", 1.
func boolField(raw map[string]any, keys ...string) bool {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		switch b := v.(type) {
		case bool:
			return b
		case string:
			switch strings.ToLower(strings.TrimSpace(b)) {
			case "true", "yes", "on", "1":
				return true
			}
			return false
		case float64:
			return b != 0
		case int:
			return b != 0
		}
	}
	return false
}

// Vars returns the flat placeholder map used for template substitution.
// List fields render as markdown bullet lists; absent fields are present
// with empty values so lookups never miss.
func (c *Config) Vars() map[string]string {
	boolStr := ""
	if c.Internationalization {
		boolStr = "true"
	}
	return map[string]string{
		"project_name":             c.ProjectName,
		"project_description":      c.ProjectDescription,
		"backend_stack":            c.BackendStack,
		"frontend_stack":           c.FrontendStack,
		"database_type":            c.DatabaseType,
		"auth_type":                c.AuthType,
		"deploy_target":            c.DeployTarget,
		"architecture_style":       c.ArchitectureStyle,
		"cloud_provider":           c.CloudProvider,
		"core_features":            bulletList(c.CoreFeatures),
		"nice_to_have_features":    bulletList(c.NiceToHaveFeatures),
		"final_product_vision":     c.FinalProductVision,
		"compliance_targets":       c.ComplianceTargets,
		"third_party_integrations": c.ThirdPartyIntegrations,
		"performance":              c.Performance,
		"internationalization":     boolStr,
	}
}

func bulletList(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, it := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(it)
	}
	return b.String()
}
