package docs

var topics = []Topic{
	{
		Name:    "quickstart",
		Title:   "Quick Start",
		Summary: "Getting started with vibe",
		Content: topicQuickstart,
	},
	{
		Name:    "config",
		Title:   "Configuration Reference",
		Summary: "Project config fields and the vibe.yaml settings file",
		Content: topicConfig,
	},
	{
		Name:    "templates",
		Title:   "Template Syntax",
		Summary: "Placeholders, conditional sections, and agent prompts",
		Content: topicTemplates,
	},
	{
		Name:    "format",
		Title:   "Response Format",
		Summary: "The Fichier: wire format the model must emit",
		Content: topicFormat,
	},
	{
		Name:    "workflow",
		Title:   "Workflow Stages",
		Summary: "Stages, failure handling, and the result object",
		Content: topicWorkflow,
	},
}

const topicQuickstart = `Quick Start
===========

1. Initialize a workspace:

    cd your-workspace
    vibe init

   This creates templates/, vibe.yaml, and .env.example.

2. Copy .env.example to .env and set ANTHROPIC_API_KEY.

3. Describe your project in a JSON file:

    {
      "project_name": "demo",
      "project_description": "A task tracker",
      "backend_stack": "fastapi",
      "database_type": "postgresql",
      "core_features": ["tasks", "tags"]
    }

4. Preview without touching disk or calling a file write:

    vibe generate --config-json project.json --dry-run

5. Generate for real:

    vibe generate --config-json project.json --output ./generated

   Files land under ./generated/<project_name>/, together with the raw
   model response. A ZIP archive is created next to the project directory
   when archiving is enabled.

Run 'vibe doctor' any time to check the environment.
`

const topicConfig = `Configuration Reference
=======================

Project configuration (JSON, passed via --config-json)
------------------------------------------------------

  project_name              required; trimmed and lower-cased, then must
                            match [a-z0-9][a-z0-9._-]* — anything else is
                            rejected
  project_description       free text
  backend_stack             e.g. fastapi, express, gin
  frontend_stack            e.g. react, vue
  database_type             e.g. postgresql; empty or "none" disables
                            database sections
  auth_type                 e.g. jwt, oauth2; empty or "none" disables
                            auth sections
  deploy_target             e.g. docker, kubernetes
  architecture_style        e.g. monolith, microservices
  cloud_provider            e.g. aws, gcp
  core_features             list of strings (or comma-separated string)
  nice_to_have_features     list of strings
  final_product_vision      free text
  compliance_targets        list of strings
  third_party_integrations  list of strings
  performance               free text
  internationalization      boolean-like (true/false/yes/no/1/0)

Unknown fields are ignored. Missing optional fields default to empty.

Settings file (vibe.yaml)
-------------------------

  model          completion model (default claude-3-5-sonnet-20241022)
  base-url       override the provider endpoint
  max-tokens     completion budget (default 4096)
  timeout        request timeout in seconds (default 120)
  templates-dir  template directory (default templates)
  output-dir     where projects are generated (default generated)
  build-dir      run manifests and prompt snapshots (default build)
  memory-path    JSON vector memory store; empty disables memory
  archive        create a ZIP next to the project directory

API keys come from the environment or a .env file:
ANTHROPIC_API_KEY for completions, OPENAI_API_KEY for embeddings.
`

const topicTemplates = `Template Syntax
===============

Templates are Markdown files in the templates directory. Two names are
required:

  master_init_template.md      the user prompt skeleton
  system_prompt_architect.md   the system prompt (optional; a built-in
                               default is used when absent)

Placeholders
------------

{{field_name}} substitutes the config value. Unknown placeholders render
as an empty string so templates stay forward-compatible.

List fields (core_features and friends) render as bullet lists.

Conditional sections
--------------------

{{#if database_type}}
## Database
Use {{database_type}}.
{{/if}}

The block is included only when the field is non-empty (and, for
database_type/auth_type, not "none"). When a marker sits alone on its
line, the whole line is elided, so skipped sections leave no blank gaps.
Blocks nest; unbalanced markers are a template error.

Agent prompts
-------------

Files under templates/agent_prompts/ are appended to the composed prompt
when their YAML frontmatter matches the configuration:

  ---
  stack: [fastapi, django]     # only for these backend stacks
  database_required: true      # only when a database is configured
  auth_required: true          # only when auth is configured
  priority: 10                 # higher priority sections come first
  ---

A generation plan derived from the configuration is always appended last.
`

const topicFormat = `Response Format
===============

The model must emit generated files in a fixed wire format: each file is
a block starting with a marker line

  Fichier: relative/path/to/file

followed by the file's full content up to the next marker or the end of
the response.

Parsing rules:

  - Text before the first marker is treated as preamble and discarded.
  - At most one trailing newline is trimmed from each file's content.
  - Absolute paths and paths escaping the project root via ".." are
    rejected; the block is dropped with a warning.
  - A marker with an empty path is dropped with a warning.
  - Duplicate paths: the last occurrence wins, with a warning.
  - A response with zero valid blocks is a parse failure, not an empty
    success.
`

const topicWorkflow = `Workflow Stages
===============

Each generate invocation runs one workflow:

  init -> validating -> merging -> generating -> done

  validating  builds the typed project config; failure stops the run
              with no files
  merging     composes the prompt from the templates; failure stops the
              run with no files
  generating  calls the model, parses the response, and writes files
              (or previews them in dry-run mode)
  done        produces the final result

Failure handling during generating:

  - Provider failure or an unparseable response: run fails, no files.
  - A target file that already exists (without --overwrite): that file
    is skipped with a warning, the rest are still written, and the run
    reports success=false.
  - A filesystem write failure: remaining writes are aborted; the files
    already written are reported with success=false.

The result object is serialized as:

  {
    "success": bool,
    "files": [{"path", "content", "size", "type"}],
    "errors": [string],
    "warnings": [string],
    "metadata": {
      "generation_time", "total_files", "total_size",
      "framework", "features_used"
    }
  }

In non-dry runs the build directory receives manifest.json, the config
snapshot, and the composed prompt for audit.
`
