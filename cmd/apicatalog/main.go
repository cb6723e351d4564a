// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Precision Solutions Tech
// Source: github.com/precisionsolutionstech-netizen/api-catalog

// apicatalog generates docs and request artifacts for the data format converter API.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	catalog "github.com/precisionsolutionstech-netizen/api-catalog"
)

var (
	Version    = "dev"
	Commit     = "unknown"
	BuildTime  = time.Unix(0, 0)
	URL        = "https://github.com/precisionsolutionstech-netizen/api-catalog"
	_buildTime string
)

// cliOptions describes apicatalog CLI flags and subcommands.
type cliOptions struct {
	Version  versionCommand  `command:"version" description:"Print version information"`
	Formats  formatsCommand  `command:"formats" description:"List supported formats with roles and media types"`
	Options  optionsCommand  `command:"options" description:"Render the format option reference"`
	Matrix   matrixCommand   `command:"matrix" description:"Render the conversion request matrix document"`
	Postman  postmanCommand  `command:"postman" description:"Generate the Postman collection artifact"`
	Template templateCommand `command:"template" description:"Print built-in markdown template"`
	Validate validateCommand `command:"validate" description:"Validate conversion options for one format and direction"`
}

// markdownRenderFlags groups markdown rendering flags.
type markdownRenderFlags struct {
	TemplatePath string `short:"f" long:"template-file" description:"Path to custom markdown template (.gotmpl)"`
	Title        string `short:"T" long:"title" description:"Markdown document title (defaults per document)"`
	ListMarker   string `short:"l" long:"list-marker" description:"Unordered list marker for markdown lists" choice:"-" choice:"*" default:"*"`
	WrapWidth    int    `short:"w" long:"wrap" description:"Wrap width for option descriptions" default:"80"`
}

// templateSelectFlags groups built-in template selection flags.
type templateSelectFlags struct {
	TemplateName string `short:"t" long:"template" description:"Built-in template name" choice:"options" choice:"matrix" default:"options"`
}

// endpointFlags groups converter service endpoint overrides.
type endpointFlags struct {
	Host string `short:"H" long:"host" description:"Converter service host (defaults to the RapidAPI host)"`
	Path string `short:"P" long:"path" description:"Conversion endpoint path (defaults to /convert)"`
}

// formatsCommand lists registered formats with roles, group keys and media types.
type formatsCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs formats subcommand.
func (command *formatsCommand) Execute(_ []string) error {
	return command.runner.runFormats(command.Args.Output)
}

// optionsCommand renders the option reference as markdown, YAML or JSON.
type optionsCommand struct {
	runner *cliRunner

	Encoding string `short:"e" long:"encoding" description:"Output encoding" choice:"markdown" choice:"yaml" choice:"json" default:"markdown"`

	RenderFlags markdownRenderFlags `group:"Markdown Render"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Output file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs options subcommand.
func (command *optionsCommand) Execute(_ []string) error {
	return command.runner.runOptions(command.Encoding, command.RenderFlags, command.Args.Output)
}

// matrixCommand renders the conversion request matrix walkthrough.
type matrixCommand struct {
	runner *cliRunner

	RenderFlags   markdownRenderFlags `group:"Markdown Render"`
	EndpointFlags endpointFlags       `group:"Endpoint"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Output markdown file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs matrix subcommand.
func (command *matrixCommand) Execute(_ []string) error {
	return command.runner.runMatrix(command.RenderFlags, command.EndpointFlags, command.Args.Output)
}

// postmanCommand generates the Postman collection covering every conversion pair.
type postmanCommand struct {
	runner *cliRunner

	Name        string `short:"n" long:"name" description:"Collection display name"`
	Description string `short:"d" long:"description" description:"Collection description"`

	EndpointFlags endpointFlags `group:"Endpoint"`

	Args struct {
		Output string `positional-arg-name:"output" description:"Output collection file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs postman subcommand.
func (command *postmanCommand) Execute(_ []string) error {
	return command.runner.runPostman(command.Name, command.Description, command.EndpointFlags, command.Args.Output)
}

// templateCommand exports built-in markdown template.
type templateCommand struct {
	runner *cliRunner
	Args   struct {
		Output string `positional-arg-name:"output" description:"Output template file path (optional; stdout when omitted)"`
	} `positional-args:"yes"`

	TemplateFlags templateSelectFlags `group:"Template Select"`
}

// Execute runs template subcommand.
func (command *templateCommand) Execute(_ []string) error {
	return command.runner.runTemplate(command.TemplateFlags.TemplateName, command.Args.Output)
}

// validateCommand validates an options document against the registry.
type validateCommand struct {
	runner *cliRunner

	Format    string `short:"F" long:"format" description:"Wire-level format id (for example: csv, sql-insert)" required:"yes"`
	Direction string `short:"D" long:"direction" description:"Conversion direction" choice:"input" choice:"output" default:"output"`

	Args struct {
		Input string `positional-arg-name:"input" description:"Options JSON file path (optional; stdin when omitted)"`
	} `positional-args:"yes"`
}

// Execute runs validate subcommand.
func (command *validateCommand) Execute(_ []string) error {
	return command.runner.runValidate(command.Format, command.Direction, command.Args.Input)
}

// cliRunner executes CLI operations with custom IO streams.
type cliRunner struct {
	stdin       io.Reader
	stdout      io.Writer
	stderr      io.Writer
	programName string
}

// versionCommand prints version information.
type versionCommand struct {
}

// Execute runs version subcommand.
func (command *versionCommand) Execute(_ []string) error {
	printVersionInfo()
	return nil
}

func init() {
	if _buildTime != "" {
		if t, err := time.Parse(time.RFC3339, _buildTime); err == nil {
			BuildTime = t.UTC()
		}
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes CLI logic and returns process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	return runWithIO(args, os.Stdin, stdout, stderr)
}

// runWithIO executes CLI logic with custom stdin, for tests.
func runWithIO(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	programName := strings.TrimSpace(os.Args[0])
	if programName == "" {
		programName = "apicatalog"
	}

	programName = filepath.Base(programName)
	runner := cliRunner{
		programName: programName,
		stdin:       stdin,
		stdout:      stdout,
		stderr:      stderr,
	}

	return runner.run(args)
}

// run parses CLI args and maps errors to process exit codes.
func (runner *cliRunner) run(args []string) int {
	err := parseCLIArgs(args, runner)
	if err == nil {
		return 0
	}

	var flagErr *flags.Error
	if errors.As(err, &flagErr) {
		if flagErr.Type == flags.ErrHelp {
			writeCLIError(runner.stdout, err)
			return 0
		}

		writeCLIError(runner.stderr, err)
		return 2
	}

	writeCLIError(runner.stderr, err)
	return 1
}

// runFormats writes the aligned format listing to stdout or file.
func (runner *cliRunner) runFormats(outputPath string) error {
	registry := catalog.Default()
	inputs := registry.InputFormats()

	var out strings.Builder

	for _, format := range registry.OutputFormats() {
		roles := "output only"
		if slices.Contains(inputs, format) {
			roles = "input, output"
		}

		groupKey, err := registry.NormalizeFormatID(format)
		if err != nil {
			return fmt.Errorf("normalize format id %q: %w", format, err)
		}

		fmt.Fprintf(&out, "%-12s %-14s %-10s %s\n", format, roles, groupKey, registry.AcceptHeader(format))
	}

	return runner.writeOutput(outputPath, out.String())
}

// runOptions renders the option reference and writes it to stdout or file.
func (runner *cliRunner) runOptions(encoding string, renderFlags markdownRenderFlags, outputPath string) error {
	registry := catalog.Default()

	switch encoding {
	case "yaml":
		data, err := catalog.EncodeRegistryYAML(registry)
		if err != nil {
			return fmt.Errorf("encode registry yaml: %w", err)
		}

		return runner.writeOutput(outputPath, string(data))
	case "json":
		data, err := catalog.EncodeRegistryJSON(registry)
		if err != nil {
			return fmt.Errorf("encode registry json: %w", err)
		}

		return runner.writeOutput(outputPath, string(data))
	default:
		renderOptions, err := buildRenderOptions(renderFlags, endpointFlags{})
		if err != nil {
			return err
		}

		markdown, err := catalog.RenderOptionsDoc(registry, renderOptions)
		if err != nil {
			return fmt.Errorf("render option reference: %w", err)
		}

		return runner.writeOutput(outputPath, markdown)
	}
}

// runMatrix renders the request matrix document and writes it to stdout or file.
func (runner *cliRunner) runMatrix(renderFlags markdownRenderFlags, endpoint endpointFlags, outputPath string) error {
	renderOptions, err := buildRenderOptions(renderFlags, endpoint)
	if err != nil {
		return err
	}

	markdown, err := catalog.RenderMatrixDoc(catalog.Default(), renderOptions)
	if err != nil {
		return fmt.Errorf("render request matrix: %w", err)
	}

	return runner.writeOutput(outputPath, markdown)
}

// runPostman generates the Postman collection and writes it to stdout or file.
func (runner *cliRunner) runPostman(name, description string, endpoint endpointFlags, outputPath string) error {
	matrix := catalog.Default().BuildRequestMatrix()

	collection, err := catalog.BuildPostmanCollection(matrix, catalog.CollectionOptions{
		Name:        name,
		Description: description,
		Host:        endpoint.Host,
		Path:        endpoint.Path,
	})
	if err != nil {
		return fmt.Errorf("build postman collection: %w", err)
	}

	data, err := catalog.EncodeCollectionJSON(collection)
	if err != nil {
		return fmt.Errorf("encode postman collection: %w", err)
	}

	return runner.writeOutput(outputPath, string(data))
}

// runTemplate writes selected built-in template to stdout or file.
func (runner *cliRunner) runTemplate(templateName, outputPath string) error {
	tpl, err := catalog.BuiltinTemplate(templateName)
	if err != nil {
		return fmt.Errorf("load built-in template %q: %w", templateName, err)
	}

	return runner.writeOutput(outputPath, tpl)
}

// runValidate validates an options document and reports every violation at once.
//
// The fully defaulted mapping always goes to stdout; violations make the
// command fail after the mapping is written.
func (runner *cliRunner) runValidate(format, direction, inputPath string) error {
	data, err := runner.readInput(inputPath)
	if err != nil {
		return fmt.Errorf("read options input: %w", err)
	}

	userOptions, err := decodeOptionsJSON(data)
	if err != nil {
		return fmt.Errorf("decode options json: %w", err)
	}

	registry := catalog.Default()

	result, err := registry.ValidateOptions(catalog.FormatID(format), catalog.Direction(direction), userOptions)
	if err != nil {
		return err
	}

	validated, err := encodeOptionsJSON(result.Options)
	if err != nil {
		return fmt.Errorf("encode validated options: %w", err)
	}

	if _, err := runner.stdout.Write(validated); err != nil {
		return fmt.Errorf("write validated options to stdout: %w", err)
	}

	return result.Err()
}

// buildRenderOptions maps CLI flags to library render options.
func buildRenderOptions(renderFlags markdownRenderFlags, endpoint endpointFlags) (catalog.Options, error) {
	renderOptions := catalog.Options{
		Title:      renderFlags.Title,
		WrapWidth:  renderFlags.WrapWidth,
		ListMarker: renderFlags.ListMarker,
		Host:       endpoint.Host,
		Path:       endpoint.Path,
	}

	if renderFlags.TemplatePath != "" {
		customTemplate, err := os.ReadFile(renderFlags.TemplatePath)
		if err != nil {
			return catalog.Options{}, fmt.Errorf("read template file %q: %w", renderFlags.TemplatePath, err)
		}

		renderOptions.TemplateText = string(customTemplate)
	}

	return renderOptions, nil
}

// readInput reads an options document from file path or stdin.
func (runner *cliRunner) readInput(path string) ([]byte, error) {
	path = strings.TrimSpace(path)
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read options file %q: %w", path, err)
		}

		return data, nil
	}

	data, err := io.ReadAll(runner.stdin)
	if err != nil {
		return nil, fmt.Errorf("read options from stdin: %w", err)
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("read options from stdin: empty input")
	}

	return data, nil
}

// writeOutput writes rendered content to stdout or the selected file path.
func (runner *cliRunner) writeOutput(outputPath, content string) error {
	if strings.TrimSpace(outputPath) == "" {
		if _, err := io.WriteString(runner.stdout, content); err != nil {
			return fmt.Errorf("write output to stdout: %w", err)
		}

		return nil
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write output file %q: %w", outputPath, err)
	}

	return nil
}

// decodeOptionsJSON parses one JSON object of user options preserving number values.
func decodeOptionsJSON(data []byte) (map[string]any, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var out map[string]any
	if err := decoder.Decode(&out); err != nil {
		return nil, err
	}

	return out, nil
}

// encodeOptionsJSON serializes the validated option mapping as pretty JSON.
func encodeOptionsJSON(options map[string]any) ([]byte, error) {
	var out bytes.Buffer

	encoder := json.NewEncoder(&out)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(options); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

// writeCLIError writes a plain-text CLI error line to the selected stream.
func writeCLIError(output io.Writer, err error) {
	if err == nil {
		return
	}

	//nolint:gosec // CLI writes plain-text diagnostics to terminal streams, not HTTP responses.
	_, _ = fmt.Fprintln(output, err.Error())
}

// parseCLIArgs parses CLI arguments and triggers selected subcommand execution.
func parseCLIArgs(args []string, runner *cliRunner) error {
	options := &cliOptions{}
	options.Formats.runner = runner
	options.Options.runner = runner
	options.Matrix.runner = runner
	options.Postman.runner = runner
	options.Template.runner = runner
	options.Validate.runner = runner

	parser := flags.NewParser(options, flags.HelpFlag)
	parser.Name = runner.programName
	applyCommandLongDescriptions(parser, runner.programName)

	_, err := parser.ParseArgs(args)
	if err != nil {
		return err
	}

	return nil
}

// applyCommandLongDescriptions configures detailed command help text with examples.
func applyCommandLongDescriptions(parser *flags.Parser, programName string) {
	descriptions := map[string]string{
		"postman": strings.TrimSpace(fmt.Sprintf(`
Generate the Postman v2.1.0 collection covering every source and target pair.
One folder per source format, one request per conversion pair.

Examples:
> $ %s postman > collection.json
> $ %s postman --name "Converter API" collections/converter.postman.json
`, programName, programName)),
		"options": strings.TrimSpace(fmt.Sprintf(`
Render the format option reference.
Markdown encoding honors the render flags; yaml and json encodings ignore them.

Examples:
> $ %s options > docs/options.md
> $ %s options --encoding yaml options.yaml
`, programName, programName)),
		"matrix": strings.TrimSpace(fmt.Sprintf(`
Render the conversion request matrix with a ready-to-run curl snippet per pair.

Examples:
> $ %s matrix > docs/matrix.md
> $ %s matrix --host example.test --path /v2/convert docs/matrix.md
`, programName, programName)),
		"validate": strings.TrimSpace(fmt.Sprintf(`
Validate a JSON options object for one format and direction.
Prints the fully defaulted mapping to stdout; every violation is reported at
once and makes the command exit non-zero.

Examples:
> $ echo '{"delimiter": ";"}' | %s validate --format csv --direction output
> $ %s validate --format sql-insert options.json
`, programName, programName)),
		"template": strings.TrimSpace(fmt.Sprintf(`
Print built-in markdown template text (`+"`options` or `matrix`"+`).
Use it as a starting point for a custom template file.

Examples:
> $ %s template > options.gotmpl
> $ %s template -t matrix templates/matrix.gotmpl
`, programName, programName)),
	}

	for commandName, description := range descriptions {
		command := parser.Find(commandName)
		if command == nil {
			continue
		}

		command.LongDescription = description
	}
}

func printVersionInfo() {
	fmt.Printf(`url:      %s
file:     %s
version:  %s
commit:   %s
built:    %s
`, URL, os.Args[0], Version, Commit, BuildTime)
}
