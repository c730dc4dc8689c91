/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package params resolves activity parameters shared by the generate and
// validate commands from flags, environment, and project config.
package params

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"bennypowers.dev/actigen/activity"
	"bennypowers.dev/actigen/config"
	"bennypowers.dev/actigen/generate/renderer"
	"bennypowers.dev/actigen/internal/datestamp"
	"bennypowers.dev/actigen/internal/logger"
	"bennypowers.dev/actigen/naming"
)

// EnvPrefix prefixes environment overrides, e.g. ACTIGEN_PACKAGE.
const EnvPrefix = "ACTIGEN"

// Now returns the creation time used when no date is given.
var Now = time.Now

// Params are the fully resolved inputs for one activity.
type Params struct {
	// Root is the project root directory.
	Root string

	// Config is the project config with defaults applied.
	Config *config.Config

	// Paths are the config's paths made absolute against Root.
	Paths config.Paths

	// Request is the generation request.
	Request *activity.Request

	// Options configure the renderers.
	Options renderer.Options
}

// Register adds the activity parameter flags to flags.
func Register(flags *pflag.FlagSet) {
	flags.StringP("activity", "a", "", "Activity class name (derived from --layout if omitted)")
	flags.StringP("layout", "l", "", "Layout resource name (derived from --activity if omitted)")
	flags.Bool("no-layout", false, "Generate a Compose activity without a layout file")
	flags.Bool("launcher", false, "Launcher activity: adds the CATEGORY_LAUNCHER intent filter")
	flags.StringP("package", "p", "", "Package name (default from config)")
	flags.String("date", "", "Creation date written to the source header (default today)")
	flags.String("locale", "", "Locale for the creation date, e.g. ko-KR (default from config or system)")
	flags.String("author", "", "Author written to the source header (default from config)")
}

// RootDir returns the --root flag's value, or "." when the command has none.
func RootDir(cmd *cobra.Command) string {
	if f := cmd.Flag("root"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return "."
}

// LoadConfig loads the project config under root, falling back to defaults
// when there is none.
func LoadConfig(filesystem afero.Fs, root string) (*config.Config, error) {
	logger.Debug("loading config from %s", root)
	return config.LoadOrDefault(filesystem, root)
}

// Resolve reads cmd's flags and the project config into Params. Values come
// from flags, then ACTIGEN_* environment variables, then the config file,
// then built-in defaults.
func Resolve(cmd *cobra.Command, filesystem afero.Fs) (*Params, error) {
	root := RootDir(cmd)
	cfg, err := LoadConfig(filesystem, root)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("package", cfg.Package)
	v.SetDefault("author", cfg.Author)
	v.SetDefault("locale", cfg.Locale)
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	cfg.Package = v.GetString("package")
	cfg.Author = v.GetString("author")
	cfg.Locale = v.GetString("locale")

	activityName, layoutName := Suggest(
		strings.TrimSpace(v.GetString("activity")),
		strings.TrimSpace(v.GetString("layout")),
		cfg.Template.LayoutPrefix,
	)

	layout := activity.LayoutNamed(layoutName)
	if v.GetBool("no-layout") {
		layout = activity.NoLayout()
	}

	date := v.GetString("date")
	if date == "" {
		date = datestamp.Full(Now(), localeTag(cfg.Locale))
	}

	req := &activity.Request{
		PackageName:  cfg.Package,
		ActivityName: activityName,
		Layout:       layout,
		Launcher:     v.GetBool("launcher"),
		CreationDate: date,
	}
	logger.Debug("resolved %s with layout %s", req.QualifiedName(), layout.Kind)

	return &Params{
		Root:    root,
		Config:  cfg,
		Paths:   cfg.Resolve(root),
		Request: req,
		Options: cfg.RendererOptions(),
	}, nil
}

// Suggest fills in whichever of activityName and layoutName is missing from
// the other. When both are missing it returns the defaults.
func Suggest(activityName, layoutName, prefix string) (string, string) {
	switch {
	case activityName == "" && layoutName == "":
		activityName = naming.DefaultActivity
		layoutName = naming.LayoutFromActivityWithPrefix(activityName, prefix)
	case activityName == "":
		activityName = naming.ActivityFromLayout(layoutName)
	case layoutName == "":
		layoutName = naming.LayoutFromActivityWithPrefix(activityName, prefix)
	}
	return activityName, layoutName
}

func localeTag(value string) language.Tag {
	if tag := datestamp.Parse(value); !tag.IsRoot() {
		return tag
	}
	return datestamp.Detect()
}
