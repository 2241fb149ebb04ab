// Command probe exercises the provider clients from the command line.
//
// Usage:
//
//	playtrack-probe riot summoner --region na1 --name Faker
//	playtrack-probe riot profile --region na1 --name Faker
//	playtrack-probe riot validate-key
//	playtrack-probe dota player --id arteezy
//	playtrack-probe overwatch profile --battletag Player-1234
//	playtrack-probe valorant account --routing americas --name Shroud --tag NA1
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/playtrack/playtrack-data/internal/config"
	"github.com/playtrack/playtrack-data/internal/provider/opendota"
	"github.com/playtrack/playtrack-data/internal/provider/overfast"
	"github.com/playtrack/playtrack-data/internal/provider/riot"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "playtrack-probe",
		Short: "PlayTrack provider probe CLI",
	}

	root.AddCommand(riotCmd())
	root.AddCommand(dotaCmd())
	root.AddCommand(overwatchCmd())
	root.AddCommand(valorantCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// runProbe loads config and hands a signal-aware context to fn.
func runProbe(fn func(ctx context.Context, cfg *config.Config) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	return fn(ctx, cfg)
}

// printJSON renders a result for the terminal.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// --------------------------------------------------------------------------
// riot command
// --------------------------------------------------------------------------

func riotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "riot",
		Short: "Probe the Riot client",
	}
	cmd.AddCommand(riotSummonerCmd())
	cmd.AddCommand(riotProfileCmd())
	cmd.AddCommand(riotValidateKeyCmd())
	return cmd
}

func riotSummonerCmd() *cobra.Command {
	var region, name string
	cmd := &cobra.Command{
		Use:   "summoner",
		Short: "Look up a summoner by name",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(func(ctx context.Context, cfg *config.Config) error {
				client := riot.NewClient("", cfg.RiotAPIKey, cfg.RiotRequestsPerMinute, logger)
				if region == "" {
					region = cfg.RiotRegion
				}
				s, err := client.SummonerByName(ctx, region, name)
				if err != nil {
					return err
				}
				return printJSON(s)
			})
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "Platform region (defaults to RIOT_REGION)")
	cmd.Flags().StringVar(&name, "name", "", "Summoner name")
	cmd.MarkFlagRequired("name")
	return cmd
}

func riotProfileCmd() *cobra.Command {
	var region, name string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Fetch the combined LoL profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(func(ctx context.Context, cfg *config.Config) error {
				client := riot.NewClient("", cfg.RiotAPIKey, cfg.RiotRequestsPerMinute, logger)
				if region == "" {
					region = cfg.RiotRegion
				}
				p, err := client.LoLProfile(ctx, region, name)
				if err != nil {
					return err
				}
				return printJSON(p)
			})
		},
	}
	cmd.Flags().StringVar(&region, "region", "", "Platform region (defaults to RIOT_REGION)")
	cmd.Flags().StringVar(&name, "name", "", "Summoner name")
	cmd.MarkFlagRequired("name")
	return cmd
}

func riotValidateKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate-key",
		Short: "Check whether the configured Riot API key is accepted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(func(ctx context.Context, cfg *config.Config) error {
				client := riot.NewClient("", cfg.RiotAPIKey, cfg.RiotRequestsPerMinute, logger)
				if client.MockEnabled() {
					logger.Warn("no RIOT_API_KEY configured, client runs on mock data")
					return nil
				}
				logger.Info("key validation", "valid", client.ValidateKey(ctx))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// dota command
// --------------------------------------------------------------------------

func dotaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dota",
		Short: "Probe the OpenDota client",
	}
	cmd.AddCommand(dotaPlayerCmd())
	return cmd
}

func dotaPlayerCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Look up a player by account ID or pro alias",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(func(ctx context.Context, cfg *config.Config) error {
				client := opendota.NewClient(opendota.DefaultBaseURL, cfg.OpenDotaRequestsPerMinute, logger)
				raw, err := client.PlayerInfo(ctx, opendota.ResolveAccountID(id))
				if err != nil {
					return err
				}
				return printJSON(raw)
			})
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "Account ID or pro-player alias")
	cmd.MarkFlagRequired("id")
	return cmd
}

// --------------------------------------------------------------------------
// overwatch command
// --------------------------------------------------------------------------

func overwatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overwatch",
		Short: "Probe the OverFast client",
	}
	cmd.AddCommand(overwatchProfileCmd())
	return cmd
}

func overwatchProfileCmd() *cobra.Command {
	var battletag string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Fetch the combined Overwatch profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(func(ctx context.Context, cfg *config.Config) error {
				client := overfast.NewClient(overfast.DefaultBaseURL, cfg.OverFastRequestsPerMinute, logger)
				p, err := client.CombinedProfile(ctx, battletag)
				if err != nil {
					return err
				}
				return printJSON(p)
			})
		},
	}
	cmd.Flags().StringVar(&battletag, "battletag", "", "Battletag, dash form (Player-1234)")
	cmd.MarkFlagRequired("battletag")
	return cmd
}

// --------------------------------------------------------------------------
// valorant command
// --------------------------------------------------------------------------

func valorantCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "valorant",
		Short: "Probe the Valorant endpoints",
	}
	cmd.AddCommand(valorantAccountCmd())
	return cmd
}

func valorantAccountCmd() *cobra.Command {
	var routing, name, tag string
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Resolve a Riot ID to an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProbe(func(ctx context.Context, cfg *config.Config) error {
				client := riot.NewClient("", cfg.RiotAPIKey, cfg.RiotRequestsPerMinute, logger)
				if routing == "" {
					routing = cfg.RiotRoutingRegion
				}
				acct, err := client.AccountByRiotID(ctx, routing, name, tag)
				if err != nil {
					return err
				}
				return printJSON(acct)
			})
		},
	}
	cmd.Flags().StringVar(&routing, "routing", "", "Routing region (defaults to RIOT_ROUTING_REGION)")
	cmd.Flags().StringVar(&name, "name", "", "Riot ID game name")
	cmd.Flags().StringVar(&tag, "tag", "", "Riot ID tag line")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("tag")
	return cmd
}
