package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/nucleonics/coreaxial/pkg/axial"
	"github.com/nucleonics/coreaxial/pkg/core"
	"github.com/nucleonics/coreaxial/pkg/mesh"
	"github.com/nucleonics/coreaxial/pkg/report"
	"github.com/nucleonics/coreaxial/pkg/spec"
	"github.com/nucleonics/coreaxial/pkg/validate"
)

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	return cfg.Build()
}

// loadAndValidate loads the case and runs schema validation.
func loadAndValidate(projectPath string) (*spec.CaseSpec, *validate.Report, error) {
	cs, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading case: %w", err)
	}
	return cs, validate.ValidateSchema(cs), nil
}

// loadSettings resolves the effective settings: case defaults, overridden by
// the project settings.yaml if present, overridden by --settings.
func loadSettings(projectPath string, base spec.SettingsDef) (spec.SettingsDef, error) {
	v := viper.New()
	v.SetDefault("detailed_axial_expansion", base.DetailedAxialExpansion)
	v.SetDefault("cold_block_heights", base.ColdBlockHeights)

	if settingsFile != "" {
		v.SetConfigFile(settingsFile)
		if err := v.ReadInConfig(); err != nil {
			return base, fmt.Errorf("reading settings: %w", err)
		}
	} else {
		v.SetConfigName("settings")
		v.SetConfigType("yaml")
		v.AddConfigPath(projectPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return base, fmt.Errorf("reading settings: %w", err)
			}
		}
	}

	return spec.SettingsDef{
		DetailedAxialExpansion: v.GetBool("detailed_axial_expansion"),
		ColdBlockHeights:       v.GetBool("cold_block_heights"),
	}, nil
}

func runValidate(projectPath string) error {
	_, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runReport(projectPath string) error {
	cs, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("case has validation errors; fix before reporting")
	}

	asm, err := cs.Build(core.NewNumberer(1))
	if err != nil {
		return err
	}
	summary, err := report.Summarize(asm)
	if err != nil {
		return err
	}

	printInventory(summary)

	if len(schemaReport.Warnings) > 0 {
		fmt.Println()
		printValidationReport(schemaReport)
	}
	return nil
}

func runExpand(projectPath string) error {
	cs, schemaReport, err := loadAndValidate(projectPath)
	if err != nil {
		return err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return fmt.Errorf("case has validation errors")
	}

	settings, err := loadSettings(projectPath, cs.Settings)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	asm, err := cs.Build(core.NewNumberer(1))
	if err != nil {
		return err
	}

	if settings.ColdBlockHeights {
		err = axial.ExpandColdDimsToHot([]*core.Assembly{asm}, settings.DetailedAxialExpansion, nil, log)
		if err != nil {
			return fmt.Errorf("cold-to-hot construction: %w", err)
		}
	}

	ch := axial.NewChanger(settings.DetailedAxialExpansion, log)
	switch cs.Scenario.Kind {
	case spec.ScenarioThermal:
		err = ch.PerformThermalAxialExpansion(asm, cs.Scenario.TempGrid, cs.Scenario.TempField, true, false)
		if err != nil {
			return fmt.Errorf("thermal expansion: %w", err)
		}
	case spec.ScenarioPrescribed:
		comps, err := resolveScenarioComponents(asm, cs.Scenario.Components)
		if err != nil {
			return err
		}
		err = ch.PerformPrescribedAxialExpansion(asm, comps, cs.Scenario.Factors, true)
		if err != nil {
			return fmt.Errorf("prescribed expansion: %w", err)
		}
	case "":
		// Cold-to-hot construction only.
	default:
		return fmt.Errorf("unknown scenario kind %q", cs.Scenario.Kind)
	}

	snapshot := mesh.Capture(asm)
	meshReport := mesh.ValidateSnapshot(snapshot)
	schemaReport.Merge(meshReport)

	summary, err := report.Summarize(asm)
	if err != nil {
		return err
	}

	output := map[string]any{
		"case_version": cs.CaseVersion,
		"settings":     settings,
		"validation":   schemaReport,
		"mesh":         snapshot,
		"inventory":    summary,
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// resolveScenarioComponents maps block/component references onto the built
// assembly.
func resolveScenarioComponents(asm *core.Assembly, refs []string) ([]*core.Component, error) {
	comps := make([]*core.Component, 0, len(refs))
	for _, ref := range refs {
		blockName, compName, ok := strings.Cut(ref, "/")
		if !ok {
			return nil, fmt.Errorf("component reference %q must be of the form block/component", ref)
		}
		var blk *core.Block
		for _, b := range asm.Blocks {
			if b.Name == blockName {
				blk = b
				break
			}
		}
		if blk == nil {
			return nil, fmt.Errorf("component reference %q names unknown block %q", ref, blockName)
		}
		comp := blk.ComponentByName(compName)
		if comp == nil {
			return nil, fmt.Errorf("component reference %q names unknown component %q in block %s", ref, compName, blockName)
		}
		comps = append(comps, comp)
	}
	return comps, nil
}
