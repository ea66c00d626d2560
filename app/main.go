package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"employeeform/config"
	"employeeform/domain"
	"employeeform/services/employee/delivery"
	"employeeform/services/employee/repository"
	"employeeform/services/employee/usecase"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var log *logrus.Logger

var ephemeral bool

var rootCmd = &cobra.Command{
	Use:   "employeeform",
	Short: "Employee records form backed by local storage",
	Long: `employeeform is a single-page terminal form for managing employee
records. Records live in a local store (JSON file or SQLite) scoped to this
machine, with no server and no multi-user semantics.

Run without arguments to start the interactive form.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// The TUI owns the terminal, keep logs out of it.
		config.RedirectLogsToFile(config.GetLogFilePath())

		confirmer := delivery.NewModalConfirmer()
		uc, closeRepo, err := buildUseCase(confirmer)
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := uc.LoadUC(cmd.Context()); err != nil {
			return err
		}
		return delivery.Run(uc, confirmer)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print all employee records",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeRepo, err := buildUseCase(denyConfirmer())
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := uc.LoadUC(cmd.Context()); err != nil {
			return err
		}
		employees := uc.AllUC()
		if len(employees) == 0 {
			fmt.Println("no employee records")
			return nil
		}
		for _, emp := range employees {
			fmt.Printf("%s  %-20s  %-12s  %-26s  %s\n", emp.ID, emp.Name, emp.DOB, emp.Email, emp.Phone)
		}
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export [path]",
	Short: "Export all employee records as pretty-printed JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := delivery.ExportFileName
		if len(args) == 1 {
			path = args[0]
		}

		uc, closeRepo, err := buildUseCase(denyConfirmer())
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := uc.LoadUC(cmd.Context()); err != nil {
			return err
		}

		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", path, err)
		}
		defer f.Close()

		if err := uc.ExportUC(cmd.Context(), f); err != nil {
			return err
		}
		log.Infof("exported employees to %s", path)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every employee record and the stored snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeRepo, err := buildUseCase(stdinConfirmer())
		if err != nil {
			return err
		}
		defer closeRepo()

		if err := uc.LoadUC(cmd.Context()); err != nil {
			return err
		}
		return uc.ClearAllUC(cmd.Context())
	},
}

func buildUseCase(confirmer domain.Confirmer) (domain.EmployeeUseCase, func(), error) {
	var repo domain.EmployeeRepo
	var err error

	switch {
	case ephemeral:
		repo = repository.NewMemoryRepository()
	case config.GetStorageBackend() == config.BackendSQLite:
		repo, err = repository.NewSQLiteRepository(config.GetStoragePath())
		if err != nil {
			return nil, nil, err
		}
	case config.GetStorageBackend() == config.BackendFile:
		repo = repository.NewFileRepository(config.GetStoragePath())
	default:
		return nil, nil, fmt.Errorf("unknown STORE_BACKEND %q", config.GetStorageBackend())
	}

	uc := usecase.NewEmployeeUseCase(repo, confirmer, 5*time.Second)
	return uc, func() {
		if err := repo.Close(); err != nil {
			log.Errorf("could not close storage: %v", err)
		}
	}, nil
}

// stdinConfirmer prompts on the terminal for the non-interactive commands.
func stdinConfirmer() domain.Confirmer {
	return domain.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		fmt.Printf("%s [y/N]: ", prompt)
		reader := bufio.NewReader(os.Stdin)
		answer, err := reader.ReadString('\n')
		if err != nil {
			return false, err
		}
		return strings.EqualFold(strings.TrimSpace(answer), "y"), nil
	})
}

// denyConfirmer backs commands that never reach a destructive operation.
func denyConfirmer() domain.Confirmer {
	return domain.ConfirmFunc(func(ctx context.Context, prompt string) (bool, error) {
		return false, nil
	})
}

func main() {
	// No .env is fine, the defaults cover every setting.
	_ = godotenv.Load()

	log = config.GetLogrusInstance()

	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep records in memory only, nothing is written to disk")
	rootCmd.AddCommand(listCmd, exportCmd, clearCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
