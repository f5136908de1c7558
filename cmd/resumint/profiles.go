package main

import (
	"github.com/spf13/cobra"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List profiles with their entry counts",
	RunE:  runProfiles,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}

func runProfiles(_ *cobra.Command, _ []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	profiles, err := a.store.ListProfiles()
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		a.printer.Printf("No profiles found. Run \"resumint init\" to create samples.")
		return nil
	}

	for _, p := range profiles {
		bullets := 0
		for _, ref := range p.Experience {
			bullets += len(ref.Bullets)
		}
		for _, ref := range p.Projects {
			bullets += len(ref.Bullets)
		}
		a.printer.Printf("%s", p.Name)
		if p.Description != "" {
			a.printer.Printf("  %s", p.Description)
		}
		a.printer.Printf("  %d experience entries, %d projects, %d bullets, sections: %s",
			len(p.Experience), len(p.Projects), bullets, joinArrow(p.Sections))
	}

	return nil
}
