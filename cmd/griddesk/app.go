package main

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/grid"
	"github.com/go-theft-auto/grid/config"
	"github.com/go-theft-auto/grid/source/xlsx"
)

// settings loads the config file, if any, and applies the flag overrides.
func (a *app) settings() (config.Settings, error) {
	s := config.Default()
	if a.flags.configPath != "" {
		loaded, err := config.Load(a.flags.configPath)
		if err != nil {
			return config.Settings{}, err
		}
		s = loaded
	}

	if a.flags.file != "" {
		s.Source.File = a.flags.file
	}
	if a.flags.sheet != "" {
		s.Source.Sheet = a.flags.sheet
	}
	if a.flags.theme != "" {
		mode, err := grid.ParseThemeMode(a.flags.theme)
		if err != nil {
			return config.Settings{}, fmt.Errorf("--theme: %w", err)
		}
		s.Grid.Theme = mode
	}
	if a.flags.pageSize != 0 {
		s.Grid.PageSize = a.flags.pageSize
	}

	if err := s.Grid.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

// model reads the configured workbook, or returns the sample table.
func (a *app) model(src config.Source) (*grid.Model, error) {
	if strings.TrimSpace(src.File) == "" {
		a.log.Debug("no workbook given, showing the sample table")
		return sampleModel()
	}

	opts := xlsx.DefaultOptions()
	opts.Sheet = src.Sheet
	if src.Marker != "" {
		opts.Marker = src.Marker
	}
	m, err := xlsx.ReadFile(src.File, opts)
	if err != nil {
		return nil, err
	}
	a.log.WithFields(map[string]any{
		"file":    src.File,
		"rows":    m.NumRows(),
		"columns": m.NumColumns(),
	}).Info("workbook loaded")
	return m, nil
}

// gridOptions routes grid logs and selection events through the app logger.
func (a *app) gridOptions() []grid.Option {
	return []grid.Option{
		grid.WithLogger(a.log.Slog()),
		grid.WithRowSelected(func(row int) {
			a.log.WithFields(map[string]any{"row": row}).Debug("row selected")
		}),
	}
}

func sampleModel() (*grid.Model, error) {
	return grid.NewModel(
		[]string{"Nome", "Idade", "Cidade", "Telefone"},
		[][]string{
			{"Ana Souza", "34", "Lisboa", "912 345 678"},
			{"Bruno Lima", "41", "Porto", "913 222 101"},
			{"Carla Dias", "29", "Coimbra", "914 876 300"},
			{"Diogo Reis", "52", "Braga", "915 004 912"},
			{"Eva Martins", "23", "Faro", "916 731 245"},
			{"Filipe Costa", "38", "Aveiro", "917 118 660"},
			{"Gabriela Nunes", "45", "Évora", "918 502 377"},
			{"Hugo Pereira", "31", "Viseu", "919 640 028"},
			{"Inês Carvalho", "27", "Setúbal", "921 355 804"},
			{"João Ferreira", "60", "Leiria", "922 907 513"},
			{"Lara Gomes", "36", "Guarda", "923 418 196"},
			{"Miguel Rocha", "48", "Beja", "924 263 759"},
		},
	)
}
