// Command timetablectl loads a catalog file and prints the generated
// schedule. The wire format here is not a contract of the engine itself —
// it's the minimal concrete transport this repo ships to exercise
// Generate end to end.
package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/campustt/timetable-engine/internal/catalog"
	"github.com/campustt/timetable-engine/internal/engine"
	"github.com/campustt/timetable-engine/internal/exporter"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var catalogPath string
	var jsonOut string

	root := &cobra.Command{
		Use:   "timetablectl",
		Short: "Generate a department timetable from a catalog file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(catalogPath, jsonOut)
		},
	}
	root.Flags().StringVar(&catalogPath, "catalog", "catalog.yaml", "path to the catalog config file")
	root.Flags().StringVar(&jsonOut, "json", "", "also write the schedule to this JSON file")
	return root
}

type catalogConfig struct {
	Subjects        []catalog.SubjectRow   `mapstructure:"subjects"`
	Teachers        []catalog.TeacherRow   `mapstructure:"teachers"`
	Rooms           []catalog.RoomRow      `mapstructure:"rooms"`
	SemesterFilter  any                    `mapstructure:"semester_filter"`
	Programs        []string               `mapstructure:"programs"`
	ProgramSections map[string]map[int]int `mapstructure:"program_sections"`
}

func run(catalogPath, jsonOut string) error {
	v := viper.New()
	v.SetConfigFile(catalogPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading catalog file: %w", err)
	}

	var cfg catalogConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("parsing catalog file: %w", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()

	result := engine.Generate(ctx, engine.Input{
		Subjects:        cfg.Subjects,
		Teachers:        cfg.Teachers,
		Rooms:           cfg.Rooms,
		SemesterFilter:  cfg.SemesterFilter,
		Programs:        cfg.Programs,
		ProgramSections: cfg.ProgramSections,
	}, logger)

	printSchedule(result)

	if jsonOut != "" {
		if err := exporter.WriteJSON(result, jsonOut); err != nil {
			return fmt.Errorf("writing json export: %w", err)
		}
	}
	return nil
}

func printSchedule(result engine.Result) {
	if len(result.Schedule) == 0 {
		fmt.Println("No schedule produced. Logs:")
		for _, line := range result.Logs {
			fmt.Println(" ", line)
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "SECTION\tSUBJECT\tTYPE\tDAY\tSTART\tDURATION\tTEACHER\tROOM")
	for _, m := range result.Schedule {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			m.SectionID, m.SubjectCode, m.Type, m.Day, m.StartTimeSlot, m.DurationSlots, m.TeacherName, m.RoomID)
	}
	w.Flush()
}
