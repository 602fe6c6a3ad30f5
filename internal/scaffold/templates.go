package scaffold

// Starter template bodies written by Init. The master template shows every
// placeholder the composer supplies; conditional sections are elided when
// the matching config field is empty.

const masterTemplate = `# Project: {{project_name}}

{{project_description}}

## Requirements

Build a production-quality {{backend_stack}} application.

{{#if frontend_stack}}
## Frontend

Use {{frontend_stack}} for the client application.
{{/if}}

{{#if database_type}}
## Database

Use {{database_type}} as the primary datastore. Include schema definitions
and a data access layer.
{{/if}}

{{#if auth_type}}
## Authentication

Implement {{auth_type}} authentication with proper session handling.
{{/if}}

{{#if core_features}}
## Core Features

{{core_features}}
{{/if}}

{{#if nice_to_have_features}}
## Nice to Have

{{nice_to_have_features}}
{{/if}}

{{#if deploy_target}}
## Deployment

Target deployment: {{deploy_target}}{{#if cloud_provider}} on {{cloud_provider}}{{/if}}.
{{/if}}

{{#if final_product_vision}}
## Vision

{{final_product_vision}}
{{/if}}
`

const systemTemplate = `You are an expert software architect. Generate a complete, runnable
project structure based on the provided configuration and requirements.

Rules:
- Output each file as a block starting with a line "Fichier: <relative/path>"
  followed by the file's full content.
- Do not wrap file contents in code fences.
- Use relative paths only. Never use absolute paths or "..".
- Include configuration files, dependencies, and a README.
`

const databasePrompt = `---
database_required: true
priority: 10
---
## Database Guidance

Design the {{database_type}} schema before writing application code. Include
migrations, connection pooling configuration, and indexes for the access
patterns implied by the core features.
`

const authPrompt = `---
auth_required: true
priority: 5
---
## Authentication Guidance

Wire {{auth_type}} authentication through middleware. Keep secrets out of
source files; read them from environment variables.
`
