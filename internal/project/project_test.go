package project

import (
	"errors"
	"testing"
)

func TestFromMap_MinimalConfig(t *testing.T) {
	cfg, err := FromMap(map[string]any{"project_name": "demo"})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if cfg.ProjectName != "demo" {
		t.Fatalf("expected project name demo, got %q", cfg.ProjectName)
	}
	if cfg.ProjectDescription != "" {
		t.Fatalf("expected empty description, got %q", cfg.ProjectDescription)
	}
	if len(cfg.CoreFeatures) != 0 {
		t.Fatalf("expected no core features, got %v", cfg.CoreFeatures)
	}
}

func TestFromMap_NameIsCaseNormalized(t *testing.T) {
	cfg, err := FromMap(map[string]any{"project_name": "  My-App  "})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if cfg.ProjectName != "my-app" {
		t.Fatalf("expected my-app, got %q", cfg.ProjectName)
	}
}

func TestFromMap_InvalidNameRejected(t *testing.T) {
	// Names with spaces or punctuation are rejected, never rewritten.
	for _, name := range []string{"My Project!", "a b", "-leading", "snake case", "é"} {
		_, err := FromMap(map[string]any{"project_name": name})
		if err == nil {
			t.Fatalf("expected validation error for %q", name)
		}
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError for %q, got %T", name, err)
		}
	}
}

func TestFromMap_MissingNameRejected(t *testing.T) {
	for _, raw := range []map[string]any{
		{},
		{"project_name": ""},
		{"project_name": "   "},
	} {
		_, err := FromMap(raw)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if verr.Field != "project_name" {
			t.Fatalf("expected project_name field, got %q", verr.Field)
		}
	}
}

func TestFromMap_ListCoercion(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"project_name":          "demo",
		"core_features":         []any{"auth", " payments ", ""},
		"nice_to_have_features": "dark mode, offline",
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if len(cfg.CoreFeatures) != 2 || cfg.CoreFeatures[1] != "payments" {
		t.Fatalf("unexpected core features: %v", cfg.CoreFeatures)
	}
	if len(cfg.NiceToHaveFeatures) != 2 || cfg.NiceToHaveFeatures[0] != "dark mode" {
		t.Fatalf("unexpected nice-to-have features: %v", cfg.NiceToHaveFeatures)
	}
}

func TestFromMap_BoolCoercion(t *testing.T) {
	cases := map[any]bool{
		true:    true,
		"yes":   true,
		"TRUE":  true,
		"1":     true,
		"no":    false,
		"":      false,
		false:   false,
		float64(1): true,
	}
	for in, want := range cases {
		cfg, err := FromMap(map[string]any{
			"project_name":         "demo",
			"internationalization": in,
		})
		if err != nil {
			t.Fatalf("FromMap failed for %v: %v", in, err)
		}
		if cfg.Internationalization != want {
			t.Fatalf("internationalization=%v: expected %v, got %v", in, want, cfg.Internationalization)
		}
	}
}

func TestFromMap_AliasKeys(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"project_name":      "demo",
		"backend_framework": "fastapi",
		"deployment_target": "kubernetes",
		"description":       "a demo",
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	if cfg.BackendStack != "fastapi" {
		t.Fatalf("expected fastapi, got %q", cfg.BackendStack)
	}
	if cfg.DeployTarget != "kubernetes" {
		t.Fatalf("expected kubernetes, got %q", cfg.DeployTarget)
	}
	if cfg.ProjectDescription != "a demo" {
		t.Fatalf("expected description alias to apply, got %q", cfg.ProjectDescription)
	}
}

func TestVars_CoversAllPlaceholders(t *testing.T) {
	cfg, err := FromMap(map[string]any{
		"project_name":  "demo",
		"core_features": []any{"auth", "billing"},
	})
	if err != nil {
		t.Fatalf("FromMap failed: %v", err)
	}
	vars := cfg.Vars()
	if vars["project_name"] != "demo" {
		t.Fatalf("unexpected project_name var: %q", vars["project_name"])
	}
	if vars["core_features"] != "- auth\n- billing" {
		t.Fatalf("unexpected core_features var: %q", vars["core_features"])
	}
	// Absent fields must resolve to empty strings, not missing keys.
	if _, ok := vars["database_type"]; !ok {
		t.Fatal("database_type var missing")
	}
	if vars["database_type"] != "" {
		t.Fatalf("expected empty database_type, got %q", vars["database_type"])
	}
}
