// Package config loads grid settings from YAML files.
package config

import (
	"github.com/go-theft-auto/grid"
)

// File is the on-disk document. Fields left out of the YAML keep the values
// of grid.DefaultConfig.
type File struct {
	PageSize             int        `yaml:"page_size" validate:"gt=0,lte=1000"`
	RowHeight            float32    `yaml:"row_height" validate:"gt=0"`
	HeaderHeight         float32    `yaml:"header_height" validate:"gte=0"`
	FooterHeight         float32    `yaml:"footer_height" validate:"gte=0"`
	RowSeparatorWidth    float32    `yaml:"row_separator_width" validate:"gte=0"`
	ColumnSeparatorWidth float32    `yaml:"column_separator_width" validate:"gte=0"`
	FooterSeparatorWidth float32    `yaml:"footer_separator_width" validate:"gte=0"`
	CellLeftPadding      float32    `yaml:"cell_left_padding" validate:"gte=0"`
	DefaultColumnWidth   float32    `yaml:"default_column_width" validate:"gte=0"`
	ScrollbarWidth       float32    `yaml:"scrollbar_width" validate:"gte=0"`
	Width                float32    `yaml:"width" validate:"gte=0"`
	Fit                  string     `yaml:"fit" validate:"fit_criterion"`
	Theme                string     `yaml:"theme" validate:"theme_mode"`
	Palettes             PaletteSet `yaml:"palettes,omitempty"`
	Source               Source     `yaml:"source,omitempty"`
}

// PaletteSet overrides the stock palettes. Missing colors keep their defaults.
type PaletteSet struct {
	Light PaletteFile `yaml:"light,omitempty"`
	Dark  PaletteFile `yaml:"dark,omitempty"`
}

// PaletteFile holds "#RRGGBB" colors.
type PaletteFile struct {
	Background string `yaml:"background,omitempty" validate:"omitempty,hex_color"`
	Row        string `yaml:"row,omitempty" validate:"omitempty,hex_color"`
	AltRow     string `yaml:"alt_row,omitempty" validate:"omitempty,hex_color"`
	Hover      string `yaml:"hover,omitempty" validate:"omitempty,hex_color"`
	Selected   string `yaml:"selected,omitempty" validate:"omitempty,hex_color"`
	Separator  string `yaml:"separator,omitempty" validate:"omitempty,hex_color"`
	Text       string `yaml:"text,omitempty" validate:"omitempty,hex_color"`

	ScrollTrack string `yaml:"scroll_track,omitempty" validate:"omitempty,hex_color"`
	ScrollThumb string `yaml:"scroll_thumb,omitempty" validate:"omitempty,hex_color"`
}

// Source names the workbook the desk opens at startup.
type Source struct {
	File   string `yaml:"file,omitempty" validate:"omitempty,workbook"`
	Sheet  string `yaml:"sheet,omitempty"`
	Marker string `yaml:"marker,omitempty"`
}

// Settings is a loaded and validated document.
type Settings struct {
	Grid   grid.Config
	Source Source
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{Grid: grid.DefaultConfig()}
}

func fileFromConfig(cfg grid.Config) File {
	return File{
		PageSize:             cfg.PageSize,
		RowHeight:            cfg.RowHeight,
		HeaderHeight:         cfg.HeaderHeight,
		FooterHeight:         cfg.FooterHeight,
		RowSeparatorWidth:    cfg.RowSeparatorWidth,
		ColumnSeparatorWidth: cfg.ColumnSeparatorWidth,
		FooterSeparatorWidth: cfg.FooterSeparatorWidth,
		CellLeftPadding:      cfg.CellLeftPadding,
		DefaultColumnWidth:   cfg.DefaultColumnWidth,
		ScrollbarWidth:       cfg.ScrollbarWidth,
		Width:                cfg.Width,
		Fit:                  cfg.Fit.String(),
		Theme:                cfg.Theme.String(),
		Palettes: PaletteSet{
			Light: paletteToFile(cfg.Palettes.Light),
			Dark:  paletteToFile(cfg.Palettes.Dark),
		},
	}
}

// toConfig converts a validated file. Validation guarantees the names and
// colors parse.
func (f File) toConfig() (grid.Config, error) {
	fit, err := grid.ParseFitCriterion(f.Fit)
	if err != nil {
		return grid.Config{}, err
	}
	theme, err := grid.ParseThemeMode(f.Theme)
	if err != nil {
		return grid.Config{}, err
	}
	pals := grid.DefaultPalettes()
	if pals.Light, err = f.Palettes.Light.apply(pals.Light); err != nil {
		return grid.Config{}, err
	}
	if pals.Dark, err = f.Palettes.Dark.apply(pals.Dark); err != nil {
		return grid.Config{}, err
	}

	return grid.Config{
		PageSize:             f.PageSize,
		RowHeight:            f.RowHeight,
		HeaderHeight:         f.HeaderHeight,
		FooterHeight:         f.FooterHeight,
		RowSeparatorWidth:    f.RowSeparatorWidth,
		ColumnSeparatorWidth: f.ColumnSeparatorWidth,
		FooterSeparatorWidth: f.FooterSeparatorWidth,
		CellLeftPadding:      f.CellLeftPadding,
		DefaultColumnWidth:   f.DefaultColumnWidth,
		ScrollbarWidth:       f.ScrollbarWidth,
		Width:                f.Width,
		Fit:                  fit,
		Theme:                theme,
		Palettes:             pals,
	}, nil
}
