// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Craft - Craft is a helper toolkit for the markdown-command plugin ecosystem of AI coding assistants.
It ships the teaching commands' calendar engine, configuration loader, and report renderers.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package teachconfig loads and validates the teaching configuration file
// consumed by the semester calendar engine.
package teachconfig

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/craft/internal/semester"
)

// TeachConfig mirrors the top-level shape of .flow/teach-config.yml.
type TeachConfig struct {
	Course   Course   `yaml:"course"`
	Dates    Dates    `yaml:"dates"`
	Progress Progress `yaml:"progress"`
}

// Course holds descriptive course metadata used by the renderers.
type Course struct {
	Name       string `yaml:"name"`
	Code       string `yaml:"code"`
	Semester   string `yaml:"semester"`
	Instructor string `yaml:"instructor"`
}

// Title returns the best available display name for the course.
func (c Course) Title() string {
	switch {
	case c.Code != "" && c.Name != "":
		return c.Code + ": " + c.Name
	case c.Name != "":
		return c.Name
	default:
		return c.Code
	}
}

// Dates holds the semester range and its breaks.
type Dates struct {
	Start  Date          `yaml:"start"`
	End    Date          `yaml:"end"`
	Breaks []BreakPeriod `yaml:"breaks"`
}

// BreakPeriod is a named inclusive date range.
type BreakPeriod struct {
	Name  string `yaml:"name"`
	Start Date   `yaml:"start"`
	End   Date   `yaml:"end"`
}

// Progress holds the progress-tracking settings.
type Progress struct {
	CurrentWeek WeekSetting `yaml:"current_week"`
}

// Date is a calendar date that decodes from both quoted and bare YAML dates.
type Date struct {
	time.Time
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Date) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a date, got a %s", node.Line, kindName(node.Kind))
	}
	if node.ShortTag() == "!!null" {
		d.Time = time.Time{}
		return nil
	}
	t, err := semester.ParseDate(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	d.Time = t
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Date) MarshalYAML() (interface{}, error) {
	if d.IsZero() {
		return nil, nil
	}
	return semester.FormatDate(d.Time), nil
}

// String renders the date as YYYY-MM-DD.
func (d Date) String() string {
	return semester.FormatDate(d.Time)
}

// WeekSetting is either "auto" (compute from the calendar) or a manual
// week number. The zero value is auto.
type WeekSetting struct {
	manual *int
}

// AutoWeek returns the auto setting.
func AutoWeek() WeekSetting { return WeekSetting{} }

// ManualWeek returns a setting pinned to week n.
func ManualWeek(n int) WeekSetting { return WeekSetting{manual: &n} }

// IsAuto reports whether the week is computed from the calendar.
func (w WeekSetting) IsAuto() bool { return w.manual == nil }

// Week returns the manual week number, if one is set.
func (w WeekSetting) Week() (int, bool) {
	if w.manual == nil {
		return 0, false
	}
	return *w.manual, true
}

// String renders "auto" or the week number.
func (w WeekSetting) String() string {
	if n, ok := w.Week(); ok {
		return strconv.Itoa(n)
	}
	return "auto"
}

// UnmarshalYAML accepts the literal "auto", null, or an integer.
func (w *WeekSetting) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: current_week must be \"auto\" or an integer", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		*w = AutoWeek()
		return nil
	case "!!int":
		n, err := strconv.Atoi(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: current_week: %w", node.Line, err)
		}
		*w = ManualWeek(n)
		return nil
	}
	if node.Value == "auto" {
		*w = AutoWeek()
		return nil
	}
	return fmt.Errorf("line %d: current_week must be \"auto\" or an integer, got %q", node.Line, node.Value)
}

// MarshalYAML implements yaml.Marshaler.
func (w WeekSetting) MarshalYAML() (interface{}, error) {
	if n, ok := w.Week(); ok {
		return n, nil
	}
	return "auto", nil
}

// SemesterConfig converts the file model into the engine's configuration.
func (c *TeachConfig) SemesterConfig() semester.Config {
	cfg := semester.Config{
		Start: c.Dates.Start.Time,
		End:   c.Dates.End.Time,
	}
	for _, b := range c.Dates.Breaks {
		cfg.Breaks = append(cfg.Breaks, semester.Break{
			Name:  b.Name,
			Start: b.Start.Time,
			End:   b.End.Time,
		})
	}
	if n, ok := c.Progress.CurrentWeek.Week(); ok {
		cfg.ManualWeek = &n
	}
	return cfg
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.MappingNode:
		return "mapping"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.AliasNode:
		return "alias"
	case yaml.DocumentNode:
		return "document"
	default:
		return "scalar"
	}
}
