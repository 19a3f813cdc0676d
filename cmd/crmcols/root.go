package main

import (
	"github.com/spf13/cobra"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	configPath string
	logLevel   string
	fieldMap   string
}

func (f *rootFlags) appOptions(needStore bool) appOptions {
	return appOptions{
		configPath: f.configPath,
		logLevel:   f.logLevel,
		fieldMap:   f.fieldMap,
		needStore:  needStore,
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "crmcols",
		Short: "Discover CRM record columns and manage saved column selections",
		Long: `crmcols - column discovery and preference storage for CRM exports.

It walks a sample record to find every addressable column, names, classifies
and orders them, and stores the selection each user or team picked.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (YAML); defaults plus CRMCOLS_ env when empty")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&flags.fieldMap, "fields", "", "field-map YAML overriding the configured one")

	root.AddGroup(
		&cobra.Group{ID: "core", Title: "Core Commands:"},
		&cobra.Group{ID: "prefs", Title: "Preference Commands:"},
	)

	root.AddCommand(newDiscoverCmd(flags), newPrefsCmd(flags))

	return root
}
