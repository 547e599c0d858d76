package commands

import (
	"context"
	"fmt"
	"os"

	"kochindex-backend/lib/configutil"
	"kochindex-backend/lib/scrapers/chefkoch"
	"kochindex-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl    string `json:"base_url"`
	ApiBaseUrl string `json:"api_base_url"`
	Username   string `json:"username"`
	Password   string `json:"password"`
	Database   string `json:"database"`
}

var rootCmd = &cobra.Command{
	Use:   "kochindex-cli",
	Short: "kochindex-cli is a CLI for pulling recipes, profiles and ratings off chefkoch.de.",
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func readConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

func createClient(ctx context.Context, cfg Config) *chefkoch.Client {
	client, err := chefkoch.NewClient(chefkoch.ClientOptions{
		BaseUrl:    cfg.BaseUrl,
		ApiBaseUrl: cfg.ApiBaseUrl,
	})
	if err != nil {
		serviceutil.Fatal("failed to initialize client", err)
	}
	if cfg.Username != "" {
		err = client.Login(ctx, cfg.Username, cfg.Password)
		if err != nil {
			serviceutil.Fatal("failed to login", err)
		}
	}
	return client
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}
