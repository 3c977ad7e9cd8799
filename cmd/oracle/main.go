package main

import (
	"fmt"
	"io"
	"log/slog"
	"oracle_predict/internal/app"
	"oracle_predict/internal/logger"
	"oracle_predict/internal/model"
	"oracle_predict/internal/service/oracle"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "oracle",
		Short:        "Oracle Predict game server and terminal client",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newPlayCmd(), newMarketCmd(), newRulesCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.NewApp().Run()
		},
	}
}

type playOptions struct {
	kind   string
	guess  string
	bet    float64
	rounds int
	debug  bool
}

func newPlayCmd() *cobra.Command {
	opts := playOptions{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play rounds against a fresh local session",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.debug {
				level = slog.LevelDebug
			}
			logger.Init(&logger.Options{Level: level, Writer: cmd.ErrOrStderr()})

			src, err := oracle.NewRandomSource()
			if err != nil {
				return err
			}
			return runPlay(cmd.OutOrStdout(), oracle.NewEngine(src), opts)
		},
	}
	cmd.Flags().StringVar(&opts.kind, "kind", "", "prediction kind, e.g. signal_digit")
	cmd.Flags().StringVar(&opts.guess, "guess", "", "guess digits")
	cmd.Flags().Float64Var(&opts.bet, "bet", 100, "bet per round")
	cmd.Flags().IntVar(&opts.rounds, "rounds", 1, "number of rounds")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logs")
	_ = cmd.MarkFlagRequired("kind")
	_ = cmd.MarkFlagRequired("guess")
	return cmd
}

// runPlay играет до opts.rounds раундов, останавливается на первой отклоненной ставке
func runPlay(out io.Writer, engine *oracle.Engine, opts playOptions) error {
	kind, err := model.ParseKind(opts.kind)
	if err != nil {
		return err
	}
	guess, err := model.ParseGuess(kind, opts.guess)
	if err != nil {
		return err
	}
	if opts.rounds < 1 {
		return fmt.Errorf("rounds must be at least 1")
	}

	bet := decimal.NewFromFloat(opts.bet)
	state := oracle.ResetSession()
	for i := 1; i <= opts.rounds; i++ {
		res, err := engine.PlaceBet(kind, guess, bet, &state)
		if err != nil {
			return fmt.Errorf("round %d: %w", i, err)
		}

		outcome := "LOSS"
		if res.Won {
			outcome = "WIN"
		}
		fmt.Fprintf(out, "#%d %s %s  feeds %s %s  signal %s  %s +%s",
			i, kind, guess, res.Draw.Feed1.Result(), res.Draw.Feed2.Result(),
			res.Draw.CombinedSignal(), outcome, oracle.FormatCurrency(res.TotalPayout()))
		if res.JackpotWon {
			fmt.Fprintf(out, "  JACKPOT %s", oracle.FormatCurrency(res.JackpotAmount))
		}
		fmt.Fprintf(out, "  balance %s\n", oracle.FormatCurrency(res.NewBalance))
	}

	stats := oracle.ComputeStats(state)
	fmt.Fprintf(out, "rounds %d  wins %d  win rate %.1f%%  wagered %s  paid %s  jackpot %s\n",
		stats.Rounds, stats.Wins, stats.WinRate,
		oracle.FormatCurrency(stats.TotalWagered), oracle.FormatCurrency(stats.TotalPaid),
		oracle.FormatCurrency(state.Jackpot))
	return nil
}

func newMarketCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "market",
		Short: "Show market status and draw countdown",
		Run: func(cmd *cobra.Command, args []string) {
			printMarket(cmd.OutOrStdout(), time.Now())
		},
	}
}

func printMarket(out io.Writer, now time.Time) {
	_, label, seconds := oracle.IsMarketOpen(now)
	fmt.Fprintf(out, "%s %s\n", label, oracle.FormatSeconds(seconds))
	fmt.Fprintf(out, "Next draw in: %s\n", oracle.FormatSeconds(oracle.TimeToNextDraw(now)))
}

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Show prediction kinds, payouts and bonuses",
		Run: func(cmd *cobra.Command, args []string) {
			printRules(cmd.OutOrStdout(), oracle.BuildRules())
		},
	}
}

func printRules(out io.Writer, rules model.Rules) {
	for _, k := range rules.Kinds {
		fmt.Fprintf(out, "%-18s %-22s %d digit(s)  x%s\n", k.Kind, k.Label, k.GuessDigits, k.Multiplier.String())
	}
	for _, s := range rules.StreakBonuses {
		fmt.Fprintf(out, "streak %d+  bonus %s%%\n", s.Streak, s.Rate.Mul(decimal.NewFromInt(100)).String())
	}
	fmt.Fprintf(out, "bet %s - %s\n", oracle.FormatCurrency(rules.MinBet), oracle.FormatCurrency(rules.MaxBet))
	fmt.Fprintf(out, "jackpot floor %s, %.0f%% chance on Consensus Pattern wins\n",
		oracle.FormatCurrency(rules.JackpotFloor), rules.JackpotWinChance*100)
}
