package cmd

import (
	"fmt"
	"io"

	"redelex-panel/core/config"
	"redelex-panel/core/database"
	inmobiliariasmodels "redelex-panel/feature/inmobiliarias/models"
	usuariosmodels "redelex-panel/feature/usuarios/models"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var schemaMigrate bool

// schemaCmd checks that the panel tables carry every column the code uses.
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Check the database schema",
	Long: `Compares the usuarios and inmobiliarias tables with the columns the
panel relies on. With --migrate missing tables and columns are created first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if schemaMigrate {
			if err := database.Migrate(db, &usuariosmodels.Usuario{}, &inmobiliariasmodels.Inmobiliaria{}); err != nil {
				return err
			}
		}
		return checkSchema(cmd.OutOrStdout(), db)
	},
}

type schemaTable struct {
	name    string
	columns []string
}

func panelTables() []schemaTable {
	return []schemaTable{
		{name: usuariosmodels.Usuario{}.TableName(), columns: usuariosmodels.Usuario{}.Columns()},
		{name: inmobiliariasmodels.Inmobiliaria{}.TableName(), columns: inmobiliariasmodels.Inmobiliaria{}.Columns()},
	}
}

// checkSchema reports each table and fails when any column is missing.
func checkSchema(w io.Writer, db *gorm.DB) error {
	broken := 0
	for _, t := range panelTables() {
		missing, err := database.MissingColumns(db, t.name, t.columns)
		if err != nil {
			return err
		}
		if len(missing) == 0 {
			fmt.Fprintf(w, "%-16s ok\n", t.name)
			continue
		}
		broken++
		fmt.Fprintf(w, "%-16s missing: %v\n", t.name, missing)
	}
	if broken > 0 {
		return fmt.Errorf("%d table(s) do not match the expected schema", broken)
	}
	return nil
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaMigrate, "migrate", false, "run migrations before checking")
	RootCmd.AddCommand(schemaCmd)
}
