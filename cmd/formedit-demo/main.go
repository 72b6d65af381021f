package main

import (
	"errors"
	"os"

	logging "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/light-bringer/formedit/internal/app/form/domain"
	"github.com/light-bringer/formedit/internal/app/form/editctx"
	"github.com/light-bringer/formedit/internal/models/m_forecast"
	"github.com/light-bringer/formedit/internal/pkg/clock"
	"github.com/light-bringer/formedit/internal/services"
)

var (
	flagVerbose bool

	log logging.Logger = logging.New("module", "demo")
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "formedit-demo",
		Short: "Scripted walkthrough of form edit-state tracking",
		RunE: func(c *cobra.Command, args []string) error {
			setupLogging()
			return runDemo()
		},
	}
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	lvl := logging.LvlInfo
	if flagVerbose {
		lvl = logging.LvlDebug
	}
	handler := logging.LvlFilterHandler(lvl, logging.StreamHandler(os.Stdout, logging.TerminalFormat()))
	log.SetHandler(handler)

	svcLog := logging.New("module", "services")
	svcLog.SetHandler(handler)
	services.SetLogger(svcLog)
}

func forecastRules() []editctx.Rule {
	return []editctx.Rule{
		{
			Field: m_forecast.Summary,
			Check: func(v any) error {
				if s, _ := v.(string); s == "" {
					return errors.New("summary is required")
				}
				return nil
			},
		},
		{
			Field: m_forecast.TemperatureC,
			Check: func(v any) error {
				c, _ := v.(int64)
				if c < -60 || c > 60 {
					return errors.New("temperature must be between -60 and 60")
				}
				return nil
			},
		},
	}
}

func runDemo() error {
	clk := clock.NewRealClock()
	rec := m_forecast.New(clk.Now(), -4, m_forecast.Summaries[0])

	session, err := services.NewEditSession(rec, clk, forecastRules())
	if err != nil {
		return err
	}
	defer session.Close()

	release := session.Tracker().Subscribe(func(ev domain.DirtyStateChange) {
		log.Info("dirty state changed", "field", ev.Field, "fieldDirty", ev.FieldDirty, "dirty", ev.Dirty)
	})
	defer release()

	log.Info("session opened", "session", session.ID(), "summary", rec.Summary, "temperatureC", rec.TemperatureC)

	// Edit a field; the tracker flags it against the attach-time snapshot.
	if err := session.SetField(m_forecast.Summary, "Hot"); err != nil {
		return err
	}
	log.Info("after edit", "dirtyFields", session.Tracker().DirtyFields())

	// Navigation is blocked while edits are pending.
	if d := session.Guard().Confirm("/counter"); !d.Allowed {
		log.Info("navigation blocked", "target", d.Target)
	}

	// An invalid value is caught on save and routed to its field.
	if err := session.SetField(m_forecast.Summary, ""); err != nil {
		return err
	}
	if err := session.Save(); err != nil {
		log.Warn("save rejected", "error", err,
			"messages", session.Context().Messages().MessagesFor(m_forecast.Summary))
	}

	// Revert restores every dirty field to its snapshot value.
	if err := session.Revert(); err != nil {
		return err
	}
	log.Info("after revert", "summary", rec.Summary, "hasChanges", session.Tracker().HasChanges())

	// A valid edit saves and becomes the new clean baseline.
	if err := session.SetField(m_forecast.TemperatureC, int64(21)); err != nil {
		return err
	}
	if err := session.SetField(m_forecast.Summary, "Mild"); err != nil {
		return err
	}
	rec.RecomputeF()
	if err := session.Save(); err != nil {
		return err
	}
	log.Info("saved", "summary", rec.Summary, "temperatureC", rec.TemperatureC,
		"temperatureF", rec.TemperatureF, "hasChanges", session.Tracker().HasChanges())

	if d := session.Guard().Confirm("/counter"); d.Allowed {
		log.Info("navigation allowed", "target", d.Target)
	}
	return nil
}
