package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"gopkg.in/yaml.v3"

	cardgen "github.com/goliatone/go-cardgen"
	"github.com/goliatone/go-cardgen/pkg/document"
	"github.com/goliatone/go-cardgen/pkg/legacy"
	"github.com/goliatone/go-cardgen/pkg/orchestrator"
	"github.com/goliatone/go-cardgen/pkg/render"
	"github.com/goliatone/go-cardgen/pkg/validation"
)

func main() {
	var (
		templateFlag    = flag.String("template", "", "Template document path (JSON)")
		legacyFlag      = flag.Bool("legacy", false, "Treat the template as a flat legacy template")
		sideFlag        = flag.String("side", "front", "Card side for legacy templates (front, back)")
		dataFlag        = flag.String("data", "", "Data context path (YAML or JSON)")
		modeFlag        = flag.String("mode", "preview", "Render mode (preview, display, export, thumbnail)")
		scaleFlag       = flag.Float64("scale", 0, "Scale override (0 uses the mode default)")
		outputFlag      = flag.String("output", "", "Output file (stdout when empty)")
		timeoutFlag     = flag.Duration("timeout", 15*time.Second, "Render timeout")
		interactiveFlag = flag.Bool("interactive", false, "Prompt for missing inputs")
		checkFlag       = flag.Bool("check", false, "Validate the template and exit")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	if *interactiveFlag {
		if err := promptMissing(templateFlag, sideFlag, modeFlag, outputFlag); err != nil {
			if errors.Is(err, terminal.InterruptErr) {
				os.Exit(130)
			}
			log.Fatalf("prompt failed: %v", err)
		}
	}
	if *templateFlag == "" {
		log.Fatal("a template path is required (-template or -interactive)")
	}

	doc, err := loadTemplate(*templateFlag, *legacyFlag, document.Side(*sideFlag))
	if err != nil {
		log.Fatalf("load template: %v", err)
	}

	if *checkFlag {
		report := validation.ValidateDocument(doc)
		if report.Valid {
			fmt.Println("template is valid")
			return
		}
		for _, issue := range report.Issues {
			fmt.Fprintf(os.Stderr, "%s: %s\n", issue.Path, issue.Message)
		}
		os.Exit(1)
	}

	data, err := loadData(*dataFlag)
	if err != nil {
		log.Fatalf("load data: %v", err)
	}

	gen := cardgen.NewOrchestrator(cardgen.WithLogger(stdLogger{}))
	result, err := gen.Render(ctx, orchestrator.Request{
		Document: doc,
		Data:     data,
		Mode:     render.Mode(*modeFlag),
		Scale:    *scaleFlag,
	})
	if err != nil {
		log.Fatalf("render failed: %v", err)
	}

	if *outputFlag != "" {
		if err := os.WriteFile(*outputFlag, result.Body, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Rendered %dx%d to %s\n", result.PixelWidth, result.PixelHeight, *outputFlag)
	} else {
		fmt.Println(string(result.Body))
	}
}

// stdLogger surfaces the library's warn-and-continue diagnostics on stderr.
type stdLogger struct{}

func (stdLogger) Warnf(format string, args ...any) {
	log.Printf("warn: "+format, args...)
}

func promptMissing(template, side, mode, output *string) error {
	if *template == "" {
		prompt := &survey.Input{
			Message: "Template file:",
			Help:    "Path to a template document or legacy template JSON",
		}
		if err := survey.AskOne(prompt, template, survey.WithValidator(fileExists)); err != nil {
			return err
		}
	}

	var choice string
	if err := survey.AskOne(&survey.Select{
		Message: "Card side:",
		Options: []string{"front", "back"},
		Default: *side,
	}, &choice); err != nil {
		return err
	}
	*side = choice

	if err := survey.AskOne(&survey.Select{
		Message: "Render mode:",
		Options: []string{"preview", "display", "export", "thumbnail"},
		Default: *mode,
	}, &choice); err != nil {
		return err
	}
	*mode = choice

	if *output == "" {
		if err := survey.AskOne(&survey.Input{
			Message: "Output file (empty for stdout):",
		}, output); err != nil {
			return err
		}
	}
	return nil
}

func fileExists(val any) error {
	path, ok := val.(string)
	if !ok || path == "" {
		return errors.New("a file path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("cannot read %s", path)
	}
	return nil
}

func loadTemplate(path string, asLegacy bool, side document.Side) (document.TemplateDocument, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return document.TemplateDocument{}, err
	}

	if asLegacy {
		var tpl legacy.Template
		if err := json.Unmarshal(raw, &tpl); err != nil {
			return document.TemplateDocument{}, fmt.Errorf("parse legacy template: %w", err)
		}
		return legacy.Convert(tpl, side), nil
	}

	var doc document.TemplateDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return document.TemplateDocument{}, fmt.Errorf("parse template: %w", err)
	}
	return doc, nil
}

// loadData accepts YAML or JSON; YAML is a superset so a single decoder
// covers both.
func loadData(path string) (map[string]any, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse data: %w", err)
	}
	return data, nil
}
