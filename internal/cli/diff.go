package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/klondiff/klondiff/internal/configloader"
	"github.com/klondiff/klondiff/internal/fileio"
	"github.com/klondiff/klondiff/internal/logging"
	"github.com/klondiff/klondiff/internal/ui/pretty"
	"github.com/klondiff/klondiff/pkg/config"
	"github.com/klondiff/klondiff/pkg/reporter"
	"github.com/klondiff/klondiff/pkg/textdiff"
)

// devNull is the path git passes for the missing side of a created or
// deleted file.
const devNull = "/dev/null"

type diffFlags struct {
	algorithm            string
	unified              int
	format               string
	checkStyle           bool
	extraEffort          bool
	stat                 bool
	minSignificantLength int
	repeatedCharWeight   float64
	coalesceThreshold    float64
	anchorThreshold      float64
	noWhitespaceFold     bool
}

func addDiffFlags(cmd *cobra.Command, flags *diffFlags) {
	cmd.Flags().StringVar(&flags.algorithm, "algorithm", "klondike",
		"line matching algorithm: klondike, patience, difflib")
	cmd.Flags().IntVarP(&flags.unified, "unified", "u", config.DefaultContext,
		"number of context lines around each change")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.checkStyle, "check-style", false,
		"report style issues on added lines")
	cmd.Flags().BoolVar(&flags.extraEffort, "extra-effort", false,
		"run the fallback matcher inside unanchored gaps (slower)")
	cmd.Flags().BoolVar(&flags.stat, "stat", false, "print a change summary instead of the diff")
	cmd.Flags().IntVar(&flags.minSignificantLength, "min-significant-length",
		config.DefaultMinSignificantLength,
		"minimum normalized length for a line to carry full weight")
	cmd.Flags().Float64Var(&flags.repeatedCharWeight, "repeated-char-weight",
		config.DefaultRepeatedCharWeight,
		"weight of separator lines made of one repeated character")
	cmd.Flags().Float64Var(&flags.coalesceThreshold, "coalesce-threshold",
		config.DefaultCoalesceThreshold,
		"maximum weight of a matched line absorbable into a change")
	cmd.Flags().Float64Var(&flags.anchorThreshold, "anchor-threshold",
		config.DefaultAnchorThreshold,
		"minimum weight for a line to serve as an alignment anchor")
	cmd.Flags().BoolVar(&flags.noWhitespaceFold, "no-whitespace-fold", false,
		"compare whitespace runs exactly instead of folding them")
}

// comparePair names the two inputs of one comparison, plus any header
// lines owed to the git external-diff protocol.
type comparePair struct {
	pathA, pathB   string
	labelA, labelB string
	meta           []string
}

func runDiff(cmd *cobra.Command, args []string, flags *diffFlags) error {
	logger := logging.FromContext(cmd.Context())

	finalCfg, err := loadDiffConfig(cmd, flags)
	if err != nil {
		return err
	}

	pair, err := resolveArgs(args)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	srcA, err := fileio.Read(ctx, pair.pathA)
	if err != nil {
		return err
	}
	srcB, err := fileio.Read(ctx, pair.pathB)
	if err != nil {
		return err
	}

	if srcA.Binary || srcB.Binary {
		return reportBinary(cmd, pair, srcA, srcB)
	}

	result, err := textdiff.Diff(srcA.Lines, srcB.Lines, diffOptions(finalCfg))
	if err != nil {
		return fmt.Errorf("compare %s and %s: %w", pair.labelA, pair.labelB, err)
	}

	logger.Debug("comparison complete",
		logging.FieldLinesA, len(srcA.Lines),
		logging.FieldLinesB, len(srcB.Lines),
		logging.FieldAnchors, result.Anchors(),
		logging.FieldHunks, len(result.Hunks),
		logging.FieldAdditions, result.Additions,
		logging.FieldDeletions, result.Deletions,
	)

	colorMode := string(finalCfg.Color)
	if colorMode == "" {
		colorMode = "auto"
	}

	if finalCfg.Stat {
		styles := pretty.NewStyles(pretty.IsColorEnabled(colorMode, cmd.OutOrStdout()))
		fmt.Fprint(cmd.OutOrStdout(), styles.FormatStatLine(result.Additions, result.Deletions))
		if result.Changed() {
			return ErrDifferencesFound
		}
		return nil
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		Context:     finalCfg.Context,
		CheckStyle:  finalCfg.CheckStyle,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	cmp := &reporter.Comparison{
		LabelA:     pair.labelA,
		LabelB:     pair.labelB,
		Meta:       pair.meta,
		ALines:     srcA.Lines,
		BLines:     srcB.Lines,
		NoNewlineA: srcA.NoTrailingNewline,
		NoNewlineB: srcB.NoTrailingNewline,
		Result:     result,
	}

	if _, err := rep.Report(ctx, cmp); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.Changed() {
		return ErrDifferencesFound
	}
	return nil
}

// loadDiffConfig merges file, environment, and flag configuration for
// one run. String and boolean flags ride the normal merge; numeric
// flags with meaningful zero values are applied afterward, gated on the
// flag having been set.
func loadDiffConfig(cmd *cobra.Command, flags *diffFlags) (*config.Config, error) {
	logger := logging.FromContext(cmd.Context())

	cliCfg := &config.Config{}
	if cmd.Flags().Changed("algorithm") {
		cliCfg.Algorithm = config.Algorithm(flags.algorithm)
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("color") {
		colorFlag, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cliCfg.Color = config.ColorMode(colorFlag)
	}
	cliCfg.CheckStyle = flags.checkStyle
	cliCfg.ExtraEffort = flags.extraEffort
	cliCfg.Stat = flags.stat

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return nil, errors.Join(errors.New("failed to load configuration"), err)
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", "files", loadResult.LoadedFrom)
	}

	// Zero is a valid value for these, so the merge cannot distinguish
	// "set to zero" from "unset". Apply them directly when given.
	if cmd.Flags().Changed("unified") {
		finalCfg.Context = flags.unified
	}
	if cmd.Flags().Changed("min-significant-length") {
		finalCfg.Weights.MinSignificantLength = flags.minSignificantLength
	}
	if cmd.Flags().Changed("repeated-char-weight") {
		finalCfg.Weights.RepeatedCharWeight = flags.repeatedCharWeight
	}
	if cmd.Flags().Changed("coalesce-threshold") {
		finalCfg.Weights.CoalesceThreshold = flags.coalesceThreshold
	}
	if cmd.Flags().Changed("anchor-threshold") {
		finalCfg.Weights.AnchorThreshold = flags.anchorThreshold
	}
	if flags.noWhitespaceFold {
		fold := false
		finalCfg.WhitespaceFold = &fold
	}

	if validation := configloader.Validate(finalCfg); !validation.Valid() {
		return nil, fmt.Errorf("invalid configuration: %s",
			strings.Join(validation.AllMessages(), "; "))
	}

	logger.Debug("configuration loaded",
		logging.FieldAlgorithm, finalCfg.Algorithm,
		logging.FieldContext, finalCfg.Context,
		logging.FieldFormat, finalCfg.Format,
	)

	return finalCfg, nil
}

// diffOptions maps the merged configuration onto pipeline options.
func diffOptions(cfg *config.Config) textdiff.Options {
	opts := textdiff.DefaultOptions()
	opts.Algorithm = textdiff.Algorithm(cfg.Algorithm)
	opts.WhitespaceFold = cfg.WhitespaceFoldEnabled()
	opts.ExtraEffort = cfg.ExtraEffort
	opts.MinSignificantLength = cfg.Weights.MinSignificantLength
	opts.RepeatedCharWeight = cfg.Weights.RepeatedCharWeight
	opts.AnchorThreshold = cfg.Weights.AnchorThreshold
	opts.SaturationLength = cfg.Weights.SaturationLength
	opts.CoalesceThreshold = cfg.Weights.CoalesceThreshold
	return opts
}

// resolveArgs interprets the positional arguments. Two arguments name
// the files directly. Seven or nine arguments follow the protocol git
// uses to invoke an external diff driver:
//
//	path old-file old-hex old-mode new-file new-hex new-mode [new-path similarity]
func resolveArgs(args []string) (*comparePair, error) {
	switch len(args) {
	case 2:
		return &comparePair{
			pathA:  args[0],
			pathB:  args[1],
			labelA: args[0],
			labelB: args[1],
		}, nil
	case 7:
		return gitPair(args, args[0]), nil
	case 9:
		return gitPair(args, args[7]), nil
	default:
		return nil, fmt.Errorf("expected 2 files or a git external-diff argument list, got %d arguments", len(args))
	}
}

// gitPair builds the comparison for a git external-diff invocation,
// including the diff --git and index header lines git itself would have
// printed.
func gitPair(args []string, newPath string) *comparePair {
	path := args[0]
	oldFile, oldHex, oldMode := args[1], args[2], args[3]
	newFile, newHex, newMode := args[4], args[5], args[6]

	pair := &comparePair{
		pathA:  oldFile,
		pathB:  newFile,
		labelA: "a/" + path,
		labelB: "b/" + newPath,
	}

	pair.meta = append(pair.meta, fmt.Sprintf("diff --git a/%s b/%s", path, newPath))

	switch {
	case oldFile == devNull:
		pair.labelA = devNull
		pair.meta = append(pair.meta, "new file mode "+newMode)
		pair.meta = append(pair.meta, fmt.Sprintf("index %s..%s", oldHex, newHex))
	case newFile == devNull:
		pair.labelB = devNull
		pair.meta = append(pair.meta, "deleted file mode "+oldMode)
		pair.meta = append(pair.meta, fmt.Sprintf("index %s..%s", oldHex, newHex))
	case oldMode != newMode:
		pair.meta = append(pair.meta, "old mode "+oldMode)
		pair.meta = append(pair.meta, "new mode "+newMode)
		pair.meta = append(pair.meta, fmt.Sprintf("index %s..%s", oldHex, newHex))
	default:
		pair.meta = append(pair.meta, fmt.Sprintf("index %s..%s %s", oldHex, newHex, oldMode))
	}

	return pair
}

// reportBinary handles comparisons where at least one side is binary.
// The contents are compared bytewise; differing binaries exit 2 the way
// diff(1) does when it cannot show the difference.
func reportBinary(cmd *cobra.Command, pair *comparePair, srcA, srcB *fileio.Source) error {
	if fileio.BinaryEqual(srcA, srcB) {
		return nil
	}

	for _, meta := range pair.meta {
		fmt.Fprintln(cmd.OutOrStdout(), meta)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Binary files %s and %s differ\n", pair.labelA, pair.labelB)
	return ErrBinaryFilesDiffer
}
